package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/cardseed/internal/config"
	"github.com/arcanaland/cardseed/internal/logging"
)

// cfg holds the configuration loaded before any subcommand runs
var cfg = config.Default()

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardseed",
	Short: "Tool for turning card spreadsheets into SQL seed data",
	Long: `Cardseed reads the base game and expansion card spreadsheets for the party
card game, normalizes prompt (black) and response (white) cards, and writes the
SQL insert script and pack list used to seed the game server's database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// config init must work before any config file exists
		if cmd == configInitCmd {
			return nil
		}

		configPath, _ := cmd.Flags().GetString("config")

		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
		}
		if cmd.Flags().Changed("log-format") {
			cfg.Log.Format, _ = cmd.Flags().GetString("log-format")
		}
		logging.Setup(cfg.Log.Level, cfg.Log.Format, os.Stderr)

		noColor, _ := cmd.Flags().GetBool("no-color")
		if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
			color.NoColor = true
		}

		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "Path to the config file (default $XDG_CONFIG_HOME/cardseed/config.toml)")
	RootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	RootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// addSourceFlags registers the flags naming the input spreadsheets
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("base", "b", "", "Base game source (default from config: basecards.csv)")
	cmd.Flags().StringP("expansions", "e", "", "Expansion source (default from config: expansions.csv)")
}

// stringFlag returns the flag value when it was set, otherwise fallback
func stringFlag(cmd *cobra.Command, name, fallback string) string {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}

// sourcePaths resolves the base and expansion source paths
func sourcePaths(cmd *cobra.Command) (string, string) {
	return stringFlag(cmd, "base", cfg.BaseSource), stringFlag(cmd, "expansions", cfg.ExpansionSource)
}
