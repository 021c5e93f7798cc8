// Package sqlout renders assembled card tables as a SQL script and the pack
// ids as an embeddable JavaScript array.
package sqlout

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arcanaland/cardseed/internal/assemble"
)

// Options controls script and pack list rendering
type Options struct {
	// Database, when set, emits a USE statement before the inserts
	Database string
	// PackVariable names the exported pack list (exports.<PackVariable>)
	PackVariable string
}

// DefaultOptions returns the conventions used by the game server
func DefaultOptions() Options {
	return Options{
		Database:     "cah-online",
		PackVariable: "Packs",
	}
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
)

// Quote returns s as a single-quoted SQL string literal with backslash
// escapes for backslash, quote and line breaks.
func Quote(s string) string {
	return "'" + escaper.Replace(s) + "'"
}

// statement collects the value tuples of one INSERT
type statement struct {
	table   string
	columns string
	values  []string
}

func (s statement) write(w io.Writer) error {
	// An INSERT without values is invalid SQL, so empty tables are skipped
	if len(s.values) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "INSERT INTO %s (%s) VALUES %s;\n",
		s.table, s.columns, strings.Join(s.values, ", "))
	return err
}

// WriteScript writes the insert statements in table dependency order:
// packs, black cards, black card links, white cards, white card links.
func WriteScript(w io.Writer, t *assemble.Tables, opts Options) error {
	bw := bufio.NewWriter(w)

	if opts.Database != "" {
		if _, err := fmt.Fprintf(bw, "USE `%s`;\n", opts.Database); err != nil {
			return err
		}
	}

	for _, stmt := range statements(t) {
		if err := stmt.write(bw); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func statements(t *assemble.Tables) []statement {
	packs := statement{table: "packs", columns: "id, name"}
	for _, p := range t.Packs {
		packs.values = append(packs.values, fmt.Sprintf("(%s, %s)", Quote(p.ID), Quote(p.Name)))
	}

	black := statement{table: "black_cards", columns: "id, pack, text, draw, pick"}
	for _, c := range t.BlackCards {
		black.values = append(black.values,
			fmt.Sprintf("(%d, %s, %s, %d, %d)", c.ID, Quote(c.Pack), Quote(c.Text), c.Draw, c.Pick))
	}

	white := statement{table: "white_cards", columns: "id, pack, text"}
	for _, c := range t.WhiteCards {
		white.values = append(white.values, fmt.Sprintf("(%d, %s, %s)", c.ID, Quote(c.Pack), Quote(c.Text)))
	}

	return []statement{
		packs,
		black,
		linkStatement("black_cards_link", t.BlackLinks),
		white,
		linkStatement("white_cards_link", t.WhiteLinks),
	}
}

func linkStatement(table string, links []assemble.LinkRow) statement {
	stmt := statement{table: table, columns: "card_id, edition"}
	for _, l := range links {
		stmt.values = append(stmt.values, fmt.Sprintf("(%d, %s)", l.CardID, Quote(l.Edition)))
	}
	return stmt
}

// WritePackList writes the pack ids as a CommonJS export, for example
//
//	exports.Packs = ["RED", "BLUE"];
func WritePackList(w io.Writer, ids []string, opts Options) error {
	name := opts.PackVariable
	if name == "" {
		name = DefaultOptions().PackVariable
	}

	quoted := make([]string, len(ids))
	for i, id := range ids {
		b, err := json.Marshal(id)
		if err != nil {
			return fmt.Errorf("quoting pack id %s: %w", strconv.Quote(id), err)
		}
		quoted[i] = string(b)
	}

	_, err := fmt.Fprintf(w, "exports.%s = [%s];\n", name, strings.Join(quoted, ", "))
	return err
}
