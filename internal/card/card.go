package card

import "strings"

// BasePack is the pack id of every card read from the base game source
const BasePack = "base"

// Color selects the black (prompt) or white (response) card table
type Color string

const (
	Black Color = "black"
	White Color = "white"
)

// Card represents a single game card
type Card struct {
	Text     string   // Display text, unescaped
	Pack     string   // "base" or an expansion pack id
	Editions []string // Edition codes (US, AU, KS, ...); base cards only
}

// PromptCard is a black card
type PromptCard struct {
	Card
	Draw int // Extra cards drawn before answering: 0 or 2
	Pick int // Cards played in answer: 1, 2 or 3
}

// ResponseCard is a white card
type ResponseCard struct {
	Card
}

// NewPromptCard builds a prompt card, deriving draw and pick from the
// free-text special field.
func NewPromptCard(text, pack, special string, editions []string) PromptCard {
	draw, pick := ParseSpecial(special)
	return PromptCard{
		Card: Card{Text: text, Pack: pack, Editions: editions},
		Draw: draw,
		Pick: pick,
	}
}

// ParseSpecial reads the draw and pick counts from a special field.
// The checks are plain substring matches, so "DRAW 2, PICK 3" yields (2, 3).
func ParseSpecial(special string) (draw, pick int) {
	if strings.Contains(special, "DRAW 2") {
		draw = 2
	}

	switch {
	case strings.Contains(special, "PICK 2"):
		pick = 2
	case strings.Contains(special, "PICK 3"):
		pick = 3
	default:
		pick = 1
	}
	return draw, pick
}

// IsBase reports whether the card belongs to the base game
func (c Card) IsBase() bool {
	return c.Pack == BasePack
}
