// Package assemble flattens parsed cards into relational rows.
package assemble

import (
	"github.com/arcanaland/cardseed/internal/card"
	"github.com/arcanaland/cardseed/internal/parser"
)

// PackRow is one row of the packs table
type PackRow struct {
	ID   string
	Name string
}

// BlackRow is one row of the black_cards table
type BlackRow struct {
	ID   int
	Pack string
	Text string
	Draw int
	Pick int
}

// WhiteRow is one row of the white_cards table
type WhiteRow struct {
	ID   int
	Pack string
	Text string
}

// LinkRow ties a card id to one edition
type LinkRow struct {
	CardID  int
	Edition string
}

// Tables holds every row destined for the database
type Tables struct {
	Packs      []PackRow
	BlackCards []BlackRow
	BlackLinks []LinkRow
	WhiteCards []WhiteRow
	WhiteLinks []LinkRow
}

// Build assigns ids to the parsed cards and produces table rows. Prompt
// and response cards are numbered separately from 0 in discovery order.
func Build(res *parser.Result) *Tables {
	t := &Tables{}

	for _, p := range res.Packs.Packs() {
		t.Packs = append(t.Packs, PackRow{ID: p.ID, Name: p.Name})
	}

	for id, c := range res.Prompts {
		t.BlackCards = append(t.BlackCards, BlackRow{
			ID:   id,
			Pack: c.Pack,
			Text: c.Text,
			Draw: c.Draw,
			Pick: c.Pick,
		})
		t.BlackLinks = append(t.BlackLinks, links(id, c.Card)...)
	}

	for id, c := range res.Responses {
		t.WhiteCards = append(t.WhiteCards, WhiteRow{ID: id, Pack: c.Pack, Text: c.Text})
		t.WhiteLinks = append(t.WhiteLinks, links(id, c.Card)...)
	}

	return t
}

// links returns one link row per edition. Only base cards carry editions.
func links(id int, c card.Card) []LinkRow {
	if !c.IsBase() {
		return nil
	}
	rows := make([]LinkRow, 0, len(c.Editions))
	for _, edition := range c.Editions {
		rows = append(rows, LinkRow{CardID: id, Edition: edition})
	}
	return rows
}

// Counts summarizes the size of each table
type Counts struct {
	Packs      int
	BlackCards int
	BlackLinks int
	WhiteCards int
	WhiteLinks int
}

// Counts returns the number of rows in each table
func (t *Tables) Counts() Counts {
	return Counts{
		Packs:      len(t.Packs),
		BlackCards: len(t.BlackCards),
		BlackLinks: len(t.BlackLinks),
		WhiteCards: len(t.WhiteCards),
		WhiteLinks: len(t.WhiteLinks),
	}
}

// PackIDs returns the pack ids in discovery order
func (t *Tables) PackIDs() []string {
	ids := make([]string, len(t.Packs))
	for i, p := range t.Packs {
		ids[i] = p.ID
	}
	return ids
}
