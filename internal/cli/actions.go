package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConnectCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "connect <address>",
		Short: "Connect to a paired device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Gateway.Connect(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Connected to device")
			return nil
		},
	}
}

func newDisconnectCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect <address>",
		Short: "Disconnect from a paired device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Gateway.Disconnect(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Disconnected from device")
			return nil
		},
	}
}

func newToggleCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <address>",
		Short: "Toggle a device's connection state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			connected, err := app.Toggler.Toggle(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if connected {
				fmt.Fprintln(cmd.OutOrStdout(), "connected")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "disconnected")
			}
			return nil
		},
	}
}
