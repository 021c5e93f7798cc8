package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSpecial(t *testing.T) {
	tests := []struct {
		special  string
		wantDraw int
		wantPick int
	}{
		{"", 0, 1},
		{"PICK 2", 0, 2},
		{"PICK 3", 0, 3},
		{"DRAW 2, PICK 3", 2, 3},
		{"DRAW 2", 2, 1},
		{"PICK 2 PICK 3", 0, 2},
		{"pick 2", 0, 1},
		{"Haiku. PICK 3 DRAW 2", 2, 3},
		{"DRAW 3", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.special, func(t *testing.T) {
			draw, pick := ParseSpecial(tt.special)
			assert.Equal(t, tt.wantDraw, draw)
			assert.Equal(t, tt.wantPick, pick)
		})
	}
}

func TestNewPromptCard(t *testing.T) {
	c := NewPromptCard("Why can't I sleep at night?", BasePack, "DRAW 2, PICK 3", []string{"US"})

	assert.Equal(t, 2, c.Draw)
	assert.Equal(t, 3, c.Pick)
	assert.True(t, c.IsBase())
	assert.Equal(t, []string{"US"}, c.Editions)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.Declare("big", "Big Expansion"))
	assert.False(t, r.Declare("red", "Red Box"))
	assert.True(t, r.Declare("big", "Bigger Expansion"))

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"big", "red"}, r.IDs())
	assert.Equal(t, []Pack{
		{ID: "big", Name: "Bigger Expansion"},
		{ID: "red", Name: "Red Box"},
	}, r.Packs())

	name, ok := r.Name("red")
	assert.True(t, ok)
	assert.Equal(t, "Red Box", name)

	_, ok = r.Name("blue")
	assert.False(t, ok)
}
