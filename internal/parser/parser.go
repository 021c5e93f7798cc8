// Package parser turns rows read from the card sources into typed cards.
//
// A run parses one base game source, whose two header rows describe the
// edition columns, and any number of expansion sources, where "Set" rows
// split the file into packs. Cards from every source accumulate into one
// Result in discovery order.
package parser

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/arcanaland/cardseed/internal/card"
)

// SkippedRow records a row that was ignored because of its type
type SkippedRow struct {
	Source string
	Row    int
	Kind   string
}

func (s SkippedRow) Error() string {
	return fmt.Sprintf("%s: row %d: type %q skipped", s.Source, s.Row, s.Kind)
}

func (s SkippedRow) Unwrap() error {
	return ErrSkippableRow
}

// Result accumulates cards and packs across all parsed sources
type Result struct {
	Prompts   []card.PromptCard
	Responses []card.ResponseCard
	Packs     *card.Registry

	// Skipped lists rows with an unrecognized type
	Skipped []SkippedRow
	// Redeclared lists pack ids declared more than once
	Redeclared []string
}

// NewResult creates an empty result
func NewResult() *Result {
	return &Result{Packs: card.NewRegistry()}
}

// ParseBase parses the base game source. rows[0] holds the version labels,
// rows[1] the version tags, and every later row is a data row.
func ParseBase(source string, rows [][]string, res *Result) (*Resolver, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: %w", source, ErrMissingHeader)
	}

	resolver := NewResolver(rows[0], rows[1])
	slog.Debug("resolved edition columns",
		"source", source,
		"editions", resolver.Len(),
		"ignored", len(resolver.Ignored()))

	for i := 2; i < len(rows); i++ {
		cells := rows[i]
		row, err := DecodeRow(cells)
		if err != nil {
			return nil, malformed(source, i, cells, err)
		}

		switch r := row.(type) {
		case PromptRow:
			res.Prompts = append(res.Prompts,
				card.NewPromptCard(r.Text, card.BasePack, r.Special, resolver.Editions(r.Cells)))
		case ResponseRow:
			res.Responses = append(res.Responses, card.ResponseCard{
				Card: card.Card{Text: r.Text, Pack: card.BasePack, Editions: resolver.Editions(r.Cells)},
			})
		default:
			// Set markers carry no meaning in the base source
			res.skip(source, i, row.Type())
		}
	}

	return resolver, nil
}

// ParseExpansion parses an expansion source made of packs, each introduced
// by a "Set" row naming the pack. Card rows before the first "Set" row are
// an error.
func ParseExpansion(source string, rows [][]string, res *Result) error {
	current := ""

	for i, cells := range rows {
		row, err := DecodeRow(cells)
		if err != nil {
			return malformed(source, i, cells, err)
		}

		switch r := row.(type) {
		case SetRow:
			if r.ID == "" {
				return malformed(source, i, cells, errors.New("empty pack id"))
			}
			if res.Packs.Declare(r.ID, r.Name) {
				slog.Warn("pack declared more than once", "source", source, "pack", r.ID)
				res.Redeclared = append(res.Redeclared, r.ID)
			}
			current = r.ID

		case PromptRow:
			if current == "" {
				return malformed(source, i, cells, ErrNoPack)
			}
			res.Prompts = append(res.Prompts, card.NewPromptCard(r.Text, current, r.Special, nil))

		case ResponseRow:
			if current == "" {
				return malformed(source, i, cells, ErrNoPack)
			}
			res.Responses = append(res.Responses, card.ResponseCard{
				Card: card.Card{Text: r.Text, Pack: current},
			})

		case UnrecognizedRow:
			res.skip(source, i, r.Kind)
		}
	}

	return nil
}

func (res *Result) skip(source string, index int, kind string) {
	skipped := SkippedRow{Source: source, Row: index + 1, Kind: kind}
	slog.Debug("skipping row", "source", source, "row", skipped.Row, "type", kind)
	res.Skipped = append(res.Skipped, skipped)
}

func malformed(source string, index int, cells []string, err error) error {
	kind := ""
	if len(cells) > 0 {
		kind = cells[0]
	}
	return &MalformedRowError{Source: source, Row: index + 1, Kind: kind, Err: err}
}
