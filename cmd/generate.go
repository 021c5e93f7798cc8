package cmd

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardseed/internal/cardsdb"
	"github.com/arcanaland/cardseed/internal/deck"
	"github.com/arcanaland/cardseed/internal/sqlout"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the SQL seed script and pack list",
	Long: `Generate parses the base game and expansion sources and writes:

  - a SQL script inserting packs, black cards, black card editions,
    white cards and white card editions (in that order)
  - a pack list of the form exports.Packs = ["...", ...]; for the web client

Nothing is written unless every source parses. Sources may be CSV or XLSX,
optionally compressed (.gz, .bz2, .xz, .zst).

Examples:
  cardseed generate
  cardseed generate --base basecards.csv --expansions expansions.csv.gz
  cardseed generate --sqlite cards.db --no-use`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		basePath, expansionPath := sourcePaths(cmd)
		sqlPath := stringFlag(cmd, "out", cfg.SQLOutput)
		packsPath := stringFlag(cmd, "packs-out", cfg.PacksOutput)
		sqlitePath := stringFlag(cmd, "sqlite", cfg.SQLiteOutput)

		opts := sqlout.Options{
			Database:     stringFlag(cmd, "database", cfg.Database),
			PackVariable: stringFlag(cmd, "pack-variable", cfg.PackVariable),
		}
		if noUse, _ := cmd.Flags().GetBool("no-use"); noUse {
			opts.Database = ""
		}

		d, err := deck.LoadDeck(basePath, expansionPath)
		if err != nil {
			return err
		}

		script, packs, err := d.Render(opts)
		if err != nil {
			return err
		}

		// Both files are staged before anything is replaced, and they are
		// moved into place at the database's commit point
		var out sqlout.Batch
		defer out.Discard()
		if err := out.Add(sqlPath, script); err != nil {
			return err
		}
		if err := out.Add(packsPath, packs); err != nil {
			return err
		}

		if sqlitePath != "" {
			db, err := cardsdb.Open(sqlitePath)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := cardsdb.Load(cmd.Context(), db, d.Tables, cardsdb.WithBeforeCommit(out.Commit)); err != nil {
				return fmt.Errorf("error loading %s: %w", sqlitePath, err)
			}
			slog.Info("loaded sqlite database", "path", sqlitePath)
		} else if err := out.Commit(); err != nil {
			return err
		}
		slog.Info("wrote output", "sql", sqlPath, "packs", packsPath, "bytes", len(script))

		printSummary(d, sqlPath, packsPath, sqlitePath)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	addSourceFlags(generateCmd)
	generateCmd.Flags().StringP("out", "o", "", "SQL script output (default from config: generated.sql)")
	generateCmd.Flags().String("packs-out", "", "Pack list output (default from config: packs.js)")
	generateCmd.Flags().String("database", "", "Database named in the USE statement (default from config: cah-online)")
	generateCmd.Flags().Bool("no-use", false, "Omit the USE statement")
	generateCmd.Flags().String("pack-variable", "", "Exported name of the pack list (default from config: Packs)")
	generateCmd.Flags().String("sqlite", "", "Also load the cards into this SQLite database")
}

func printSummary(d *deck.Deck, sqlPath, packsPath, sqlitePath string) {
	counts := d.Tables.Counts()

	fmt.Printf("%s Parsed %s black cards and %s white cards!\n",
		color.GreenString("✅"),
		color.HiWhiteString("%d", counts.BlackCards),
		color.HiWhiteString("%d", counts.WhiteCards))
	fmt.Printf("   %s %d packs, %d black card editions, %d white card editions\n",
		color.CyanString("Rows:"), counts.Packs, counts.BlackLinks, counts.WhiteLinks)
	fmt.Printf("   %s %s\n", color.CyanString("SQL:  "), sqlPath)
	fmt.Printf("   %s %s\n", color.CyanString("Packs:"), packsPath)
	if sqlitePath != "" {
		fmt.Printf("   %s %s\n", color.CyanString("DB:   "), sqlitePath)
	}
	if n := len(d.Result.Skipped); n > 0 {
		fmt.Printf("   %s %d rows skipped (run 'cardseed validate' for details)\n", color.YellowString("Note:"), n)
	}
}
