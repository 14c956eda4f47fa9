// Package cli defines the cobra command tree.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/darkermage/alfred-bluetooth/internal/bluetooth"
	"github.com/darkermage/alfred-bluetooth/internal/blueutil"
	"github.com/darkermage/alfred-bluetooth/internal/config"
	"github.com/darkermage/alfred-bluetooth/internal/logging"
)

// App bundles the dependencies the commands operate on. It is populated by
// the root command's PersistentPreRunE so every subcommand sees the same
// wiring.
type App struct {
	Config    *config.Config
	Gateway   bluetooth.Gateway
	Directory *bluetooth.Directory
	Toggler   *bluetooth.Toggler
	Log       zerolog.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	var (
		app        App
		verbosity  int
		configPath string
	)

	root := &cobra.Command{
		Use:           "alfred-bluetooth",
		Short:         "Connect, disconnect and toggle paired Bluetooth devices from Alfred",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			path := configPath
			if path == "" {
				var err error
				path, err = config.DefaultConfigPath()
				if err != nil {
					return err
				}
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			log, err := logging.New(cfg.LogLevel, verbosity)
			if err != nil {
				return err
			}

			gateway := blueutil.NewClient(cfg.BlueutilPath(), log)
			directory := bluetooth.NewDirectory(gateway)

			app = App{
				Config:    cfg,
				Gateway:   gateway,
				Directory: directory,
				Toggler:   bluetooth.NewToggler(directory, gateway),
				Log:       log,
			}
			return nil
		},
	}

	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file path")

	root.AddCommand(
		newListCommand(&app),
		newConnectCommand(&app),
		newDisconnectCommand(&app),
		newToggleCommand(&app),
	)

	return root
}
