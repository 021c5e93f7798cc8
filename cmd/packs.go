package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardseed/internal/deck"
)

// packsCmd represents the packs command
var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List the expansion packs found in the expansion source",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, expansionPath := sourcePaths(cmd)

		d, err := deck.LoadDeck("", expansionPath)
		if err != nil {
			return err
		}

		packs := d.Packs()
		if len(packs) == 0 {
			fmt.Println("No packs found in", expansionPath)
			return nil
		}

		for _, p := range packs {
			fmt.Printf("  %-10s %s  %s\n",
				color.HiWhiteString(p.ID),
				p.Name,
				color.CyanString("(%d black, %d white)", p.BlackCards, p.WhiteCards))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(packsCmd)

	packsCmd.Flags().StringP("expansions", "e", "", "Expansion source (default from config: expansions.csv)")
}
