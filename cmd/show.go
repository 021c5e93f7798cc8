package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/cardseed/internal/card"
	"github.com/arcanaland/cardseed/internal/deck"
)

var showCmd = &cobra.Command{
	Use:   "show black|white ID",
	Short: "Display a single card as it will be stored in the database",
	Long: `Show parses the sources and displays one card by color and assigned id.
Ids are the database ids written by generate: black and white cards are
numbered separately from 0 in source order.

Examples:
  cardseed show black 0
  cardseed show white 120 --expansions expansions.csv`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		color := card.Color(strings.ToLower(args[0]))
		if color != card.Black && color != card.White {
			return fmt.Errorf("invalid card color: %s (expected black or white)", args[0])
		}

		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid card id: %s", args[1])
		}

		basePath, expansionPath := sourcePaths(cmd)
		d, err := deck.LoadDeck(basePath, expansionPath)
		if err != nil {
			return err
		}

		e, err := d.GetCard(color, id)
		if err != nil {
			return err
		}

		displayCard(e)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	addSourceFlags(showCmd)
}

// displayCard displays the card information wrapped to the terminal width
func displayCard(e *deck.Entry) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}

	label := colorize.CyanString
	value := colorize.HiWhiteString

	fmt.Println()
	fmt.Println("  " + label("Card: ") + value("%s #%d", strings.Title(string(e.Color)), e.ID))
	fmt.Println("  " + label("Pack: ") + value("%s (%s)", e.PackName, e.Pack))
	if e.Color == card.Black {
		fmt.Println("  " + label("Play: ") + value("draw %d, pick %d", e.Draw, e.Pick))
	}
	if len(e.Editions) > 0 {
		fmt.Println("  " + label("Eds:  ") + value("%s", strings.Join(e.Editions, ", ")))
	}

	fmt.Println()
	// Hard line breaks in the card text are kept
	for _, paragraph := range strings.Split(e.Text, "\n") {
		for _, line := range wrapText(paragraph, width-4) {
			fmt.Println("  " + line)
		}
	}
	fmt.Println()
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			// First word on the line, always add it
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
