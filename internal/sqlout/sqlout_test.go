package sqlout

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardseed/internal/assemble"
)

// unquote reverses Quote the way a MySQL client reads a string literal
func unquote(t *testing.T, lit string) string {
	t.Helper()

	require.True(t, strings.HasPrefix(lit, "'") && strings.HasSuffix(lit, "'"), "not a literal: %s", lit)
	body := lit[1 : len(lit)-1]

	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\'' {
			t.Fatalf("unescaped quote at %d in %s", i, lit)
		}
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		require.Less(t, i, len(body), "dangling backslash in %s", lit)
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(body[i])
		}
	}
	return b.String()
}

func TestQuoteRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"plain",
		"Don't stop\nbelieving",
		`a \ backslash`,
		`\'`,
		"windows\r\nline",
		"''\n\n''",
	}

	for _, text := range tests {
		lit := Quote(text)
		assert.Equal(t, text, unquote(t, lit))
		assert.NotContains(t, lit, "\n")
	}
}

func TestWriteScript(t *testing.T) {
	tables := &assemble.Tables{
		Packs: []assemble.PackRow{{ID: "big", Name: "Big Expansion"}},
		BlackCards: []assemble.BlackRow{
			{ID: 0, Pack: "base", Text: "What's that?", Draw: 0, Pick: 1},
			{ID: 1, Pack: "big", Text: "___ + ___", Draw: 2, Pick: 3},
		},
		BlackLinks: []assemble.LinkRow{{CardID: 0, Edition: "US"}, {CardID: 0, Edition: "KS"}},
		WhiteCards: []assemble.WhiteRow{{ID: 0, Pack: "base", Text: "Line one\nline two"}},
		WhiteLinks: []assemble.LinkRow{{CardID: 0, Edition: "AU"}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteScript(&buf, tables, DefaultOptions()))

	want := "USE `cah-online`;\n" +
		"INSERT INTO packs (id, name) VALUES ('big', 'Big Expansion');\n" +
		"INSERT INTO black_cards (id, pack, text, draw, pick) VALUES (0, 'base', 'What\\'s that?', 0, 1), (1, 'big', '___ + ___', 2, 3);\n" +
		"INSERT INTO black_cards_link (card_id, edition) VALUES (0, 'US'), (0, 'KS');\n" +
		"INSERT INTO white_cards (id, pack, text) VALUES (0, 'base', 'Line one\\nline two');\n" +
		"INSERT INTO white_cards_link (card_id, edition) VALUES (0, 'AU');\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteScriptOmitsEmptyStatements(t *testing.T) {
	tables := &assemble.Tables{
		BlackCards: []assemble.BlackRow{{ID: 0, Pack: "base", Text: "Alone.", Pick: 1}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteScript(&buf, tables, Options{}))

	assert.Equal(t,
		"INSERT INTO black_cards (id, pack, text, draw, pick) VALUES (0, 'base', 'Alone.', 0, 1);\n",
		buf.String())
	assert.NotContains(t, buf.String(), "VALUES ;")
}

func TestWriteScriptNoRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteScript(&buf, &assemble.Tables{}, Options{Database: "cards"}))

	assert.Equal(t, "USE `cards`;\n", buf.String())
}

func TestWritePackList(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		opts Options
		want string
	}{
		{"default variable", []string{"RED", "2012-HOL"}, Options{}, "exports.Packs = [\"RED\", \"2012-HOL\"];\n"},
		{"custom variable", []string{"big"}, Options{PackVariable: "ExpansionPacks"}, "exports.ExpansionPacks = [\"big\"];\n"},
		{"no packs", nil, DefaultOptions(), "exports.Packs = [];\n"},
		{"quotes escaped", []string{`we"ird`}, Options{}, "exports.Packs = [\"we\\\"ird\"];\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WritePackList(&buf, tt.ids, tt.opts))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "generated.sql")

	require.NoError(t, WriteFile(path, []byte("first")))
	require.NoError(t, WriteFile(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestBatchStagesBeforeReplacing(t *testing.T) {
	dir := t.TempDir()
	sqlPath := filepath.Join(dir, "generated.sql")
	require.NoError(t, os.WriteFile(sqlPath, []byte("old"), 0644))

	// A regular file cannot hold the second output's directory
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	var b Batch
	require.NoError(t, b.Add(sqlPath, []byte("new")))
	require.Error(t, b.Add(filepath.Join(blocker, "packs.js"), []byte("packs")))
	b.Discard()

	data, err := os.ReadFile(sqlPath)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "staged files must be removed on discard")
}

func TestBatchCommit(t *testing.T) {
	dir := t.TempDir()
	var b Batch
	require.NoError(t, b.Add(filepath.Join(dir, "a.sql"), []byte("a")))
	require.NoError(t, b.Add(filepath.Join(dir, "b.js"), []byte("b")))
	require.NoError(t, b.Commit())
	b.Discard()

	for name, want := range map[string]string{"a.sql": "a", "b.js": "b"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, want, string(data))
	}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
