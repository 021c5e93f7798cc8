package deck

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/arcanaland/cardseed/internal/assemble"
	"github.com/arcanaland/cardseed/internal/card"
	"github.com/arcanaland/cardseed/internal/parser"
	"github.com/arcanaland/cardseed/internal/source"
	"github.com/arcanaland/cardseed/internal/sqlout"
)

// Deck is the complete card set parsed from the base game source and the
// expansion source
type Deck struct {
	BasePath      string
	ExpansionPath string

	Result   *parser.Result
	Resolver *parser.Resolver
	Tables   *assemble.Tables
}

// Entry is one card as stored in the database, with its assigned id
type Entry struct {
	Color    card.Color
	ID       int
	Pack     string
	PackName string
	Text     string
	Draw     int
	Pick     int
	Editions []string
}

// LoadDeck reads and parses both sources and assembles the table rows.
// An empty path skips that source.
func LoadDeck(basePath, expansionPath string) (*Deck, error) {
	d := &Deck{
		BasePath:      basePath,
		ExpansionPath: expansionPath,
		Result:        parser.NewResult(),
	}

	if basePath != "" {
		rows, err := source.ReadRows(basePath)
		if err != nil {
			return nil, err
		}
		d.Resolver, err = parser.ParseBase(basePath, rows, d.Result)
		if err != nil {
			return nil, err
		}
		slog.Info("parsed base source",
			"source", basePath,
			"black_cards", len(d.Result.Prompts),
			"white_cards", len(d.Result.Responses),
			"editions", d.Resolver.Len())
	}

	if expansionPath != "" {
		prompts, responses := len(d.Result.Prompts), len(d.Result.Responses)

		rows, err := source.ReadRows(expansionPath)
		if err != nil {
			return nil, err
		}
		if err := parser.ParseExpansion(expansionPath, rows, d.Result); err != nil {
			return nil, err
		}
		slog.Info("parsed expansion source",
			"source", expansionPath,
			"packs", d.Result.Packs.Len(),
			"black_cards", len(d.Result.Prompts)-prompts,
			"white_cards", len(d.Result.Responses)-responses)
	}

	d.Tables = assemble.Build(d.Result)

	return d, nil
}

// Render produces the SQL script and the pack list in memory
func (d *Deck) Render(opts sqlout.Options) (script, packs []byte, err error) {
	var sqlBuf, packBuf bytes.Buffer

	if err := sqlout.WriteScript(&sqlBuf, d.Tables, opts); err != nil {
		return nil, nil, fmt.Errorf("error rendering SQL script: %w", err)
	}
	if err := sqlout.WritePackList(&packBuf, d.Tables.PackIDs(), opts); err != nil {
		return nil, nil, fmt.Errorf("error rendering pack list: %w", err)
	}

	return sqlBuf.Bytes(), packBuf.Bytes(), nil
}

// GetCard gets a card by color and assigned id
func (d *Deck) GetCard(color card.Color, id int) (*Entry, error) {
	var e Entry

	switch color {
	case card.Black:
		if id < 0 || id >= len(d.Result.Prompts) {
			return nil, fmt.Errorf("card not found: %s.%d", color, id)
		}
		c := d.Result.Prompts[id]
		e = Entry{Pack: c.Pack, Text: c.Text, Draw: c.Draw, Pick: c.Pick, Editions: c.Editions}
	case card.White:
		if id < 0 || id >= len(d.Result.Responses) {
			return nil, fmt.Errorf("card not found: %s.%d", color, id)
		}
		c := d.Result.Responses[id]
		e = Entry{Pack: c.Pack, Text: c.Text, Editions: c.Editions}
	default:
		return nil, fmt.Errorf("invalid card color: %s", color)
	}

	e.Color = color
	e.ID = id
	if e.Pack == card.BasePack {
		e.PackName = "Base Game"
	} else if name, ok := d.Result.Packs.Name(e.Pack); ok {
		e.PackName = name
	}

	return &e, nil
}

// Packs returns the expansion packs with their card counts
func (d *Deck) Packs() []PackSummary {
	counts := make(map[string]*PackSummary)
	var summaries []*PackSummary
	for _, p := range d.Result.Packs.Packs() {
		s := &PackSummary{Pack: p}
		counts[p.ID] = s
		summaries = append(summaries, s)
	}

	for _, c := range d.Result.Prompts {
		if s, ok := counts[c.Pack]; ok {
			s.BlackCards++
		}
	}
	for _, c := range d.Result.Responses {
		if s, ok := counts[c.Pack]; ok {
			s.WhiteCards++
		}
	}

	out := make([]PackSummary, len(summaries))
	for i, s := range summaries {
		out[i] = *s
	}
	return out
}

// PackSummary describes a pack and how many cards it holds
type PackSummary struct {
	card.Pack
	BlackCards int
	WhiteCards int
}
