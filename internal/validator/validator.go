package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arcanaland/cardseed/internal/card"
	"github.com/arcanaland/cardseed/internal/parser"
	"github.com/arcanaland/cardseed/internal/source"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	BasePath      string
	ExpansionPath string
	Results       ValidationResults

	result *parser.Result
}

func NewValidator(basePath, expansionPath string) *Validator {
	return &Validator{
		BasePath:      basePath,
		ExpansionPath: expansionPath,
		Results:       ValidationResults{},
		result:        parser.NewResult(),
	}
}

// Validate parses both sources without writing anything. Problems that
// would abort generation are errors; rows and columns that would be
// silently dropped are warnings. The returned error is reserved for
// sources that cannot be read at all.
func (v *Validator) Validate() (ValidationResults, error) {
	if v.BasePath != "" {
		if err := v.validateBase(); err != nil {
			return v.Results, err
		}
	}

	if v.ExpansionPath != "" {
		if err := v.validateExpansion(); err != nil {
			return v.Results, err
		}
	}

	v.validateSkippedRows()
	v.validateCardCounts()
	v.validateDuplicateText()

	return v.Results, nil
}

func (v *Validator) validateBase() error {
	rows, err := source.ReadRows(v.BasePath)
	if err != nil {
		return err
	}

	resolver, err := parser.ParseBase(v.BasePath, rows, v.result)
	if err != nil {
		v.addParseError(err)
		return nil
	}

	if resolver.Len() == 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: no v2.0 or KICKSTARTER version columns, base cards will have no editions", v.BasePath))
	}

	for _, column := range resolver.Ignored() {
		label := ""
		if column < len(rows[0]) {
			label = rows[0][column]
		}
		tag := ""
		if column < len(rows[1]) {
			tag = rows[1][column]
		}
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: version column %d (%q, tag %q) is ignored", v.BasePath, column, label, tag))
	}

	for column := parser.FirstEditionColumn; column < len(rows[1]); column++ {
		if code, ok := resolver.Edition(column); ok && code == "" {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s: version column %d is tagged %s but has no edition label", v.BasePath, column, parser.TagCurrent))
		}
	}

	return nil
}

func (v *Validator) validateExpansion() error {
	rows, err := source.ReadRows(v.ExpansionPath)
	if err != nil {
		return err
	}

	if err := parser.ParseExpansion(v.ExpansionPath, rows, v.result); err != nil {
		v.addParseError(err)
		return nil
	}

	for _, id := range v.result.Redeclared {
		name, _ := v.result.Packs.Name(id)
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: pack %q declared more than once, keeping name %q", v.ExpansionPath, id, name))
	}

	used := make(map[string]bool)
	for _, c := range v.result.Prompts {
		used[c.Pack] = true
	}
	for _, c := range v.result.Responses {
		used[c.Pack] = true
	}
	for _, p := range v.result.Packs.Packs() {
		if !used[p.ID] {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s: pack %q (%s) has no cards", v.ExpansionPath, p.ID, p.Name))
		}
	}

	return nil
}

// addParseError records a fatal parse problem
func (v *Validator) addParseError(err error) {
	if errors.Is(err, parser.ErrNoPack) {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("%v (add a Set row before the first card)", err))
		return
	}
	v.Results.Errors = append(v.Results.Errors, err.Error())
}

// validateSkippedRows warns about rows dropped because of their type.
// Blank rows are expected and not reported.
func (v *Validator) validateSkippedRows() {
	for _, s := range v.result.Skipped {
		if strings.TrimSpace(s.Kind) == "" {
			continue
		}
		v.Results.Warnings = append(v.Results.Warnings, s.Error())
	}
}

// validateCardCounts checks that each table will receive rows
func (v *Validator) validateCardCounts() {
	if len(v.result.Prompts) == 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			"no black cards found, the black_cards insert will be omitted")
	}
	if len(v.result.Responses) == 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			"no white cards found, the white_cards insert will be omitted")
	}
}

// validateDuplicateText warns about cards repeated within the same pack
func (v *Validator) validateDuplicateText() {
	type key struct {
		color card.Color
		pack  string
		text  string
	}
	seen := make(map[key]int)

	check := func(color card.Color, id int, c card.Card) {
		k := key{color, c.Pack, c.Text}
		if first, ok := seen[k]; ok {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s card %d duplicates %s card %d in pack %q", color, id, color, first, c.Pack))
			return
		}
		seen[k] = id
	}

	for id, c := range v.result.Prompts {
		check(card.Black, id, c.Card)
	}
	for id, c := range v.result.Responses {
		check(card.White, id, c.Card)
	}
}
