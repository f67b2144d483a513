package main

import (
	"os"

	"github.com/matthewfinger/solitaire-lightweight/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "solitaire",
	Short: "Klondike solitaire in the terminal or over a websocket",
	Long: `Solitaire deals Klondike games driven by pointer clicks.
Play one in the terminal with "solitaire play", or serve games over HTTP
and websockets with "solitaire serve".

Settings are read from $XDG_CONFIG_HOME/solitaire/config.toml (or --config)
and can be overridden with SOLITAIRE_* environment variables.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to a config file")
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the config named by --config, or the default one
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// useColor decides whether stdout gets ANSI colors
func useColor(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
