package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/darkermage/alfred-bluetooth/internal/alfred"
	"github.com/darkermage/alfred-bluetooth/internal/bluetooth"
)

func newListCommand(app *App) *cobra.Command {
	var (
		allDevices bool
		deviceList string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List paired devices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := bluetooth.ByName(app.Config.DefaultFilter)
			if allDevices {
				filter = bluetooth.AllDevices()
			}
			if addresses := SplitAddresses(deviceList); len(addresses) > 0 {
				filter = bluetooth.ByAddresses(addresses)
			}

			devices, err := app.Directory.ListDevices(cmd.Context(), bluetooth.ListOptions{
				Filter:          filter,
				PreviousAddress: app.Config.PreviousAddress,
			})
			if err != nil {
				return err
			}

			// Alfred invokes the command with stdout piped; the JSON form
			// is the contract there. A terminal gets a readable listing.
			if term.IsTerminal(int(os.Stdout.Fd())) {
				printListing(cmd.OutOrStdout(), devices)
				return nil
			}
			return alfred.Write(cmd.OutOrStdout(), devices)
		},
	}

	cmd.Flags().BoolVarP(&allDevices, "all", "a", false, "list every paired device instead of applying the default name filter")
	cmd.Flags().StringVarP(&deviceList, "devices", "d", "", "comma-separated device addresses to list")

	return cmd
}

func printListing(w io.Writer, devices []bluetooth.Device) {
	for _, device := range devices {
		state := "disconnected"
		if device.Connected {
			state = "connected"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", device.Address, state, device.Name)
	}
}

// SplitAddresses parses the --devices flag value. Empty input means the flag
// was not used and no address filter applies.
func SplitAddresses(list string) []string {
	if list == "" {
		return nil
	}

	var addresses []string
	for _, part := range strings.Split(list, ",") {
		if part = strings.TrimSpace(part); part != "" {
			addresses = append(addresses, part)
		}
	}
	return addresses
}
