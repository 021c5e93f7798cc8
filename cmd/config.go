package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardseed/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the cardseed config file",
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		path, err := config.Init(configPath)
		if err != nil {
			return err
		}

		fmt.Println("Config file initialized at:", path)
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("base_source      = %q\n", cfg.BaseSource)
		fmt.Printf("expansion_source = %q\n", cfg.ExpansionSource)
		fmt.Printf("sql_output       = %q\n", cfg.SQLOutput)
		fmt.Printf("packs_output     = %q\n", cfg.PacksOutput)
		fmt.Printf("sqlite_output    = %q\n", cfg.SQLiteOutput)
		fmt.Printf("database         = %q\n", cfg.Database)
		fmt.Printf("pack_variable    = %q\n", cfg.PackVariable)
		fmt.Printf("log.level        = %q\n", cfg.Log.Level)
		fmt.Printf("log.format       = %q\n", cfg.Log.Format)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
