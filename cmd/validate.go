package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardseed/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the card sources without writing any output",
	Long: `Validate parses the base game and expansion sources exactly as generate does,
but writes nothing. Rows that would abort generation are reported as errors;
rows, columns and packs that would be silently dropped are reported as warnings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		basePath, expansionPath := sourcePaths(cmd)

		v := validator.NewValidator(basePath, expansionPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("%s Sources '%s' and '%s' are valid.\n", color.GreenString("✅"), basePath, expansionPath)
		} else {
			fmt.Printf("%s Found %d validation errors:\n", color.RedString("❌"), len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, color.YellowString("%s", warn))
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)

	addSourceFlags(validateCmd)
}
