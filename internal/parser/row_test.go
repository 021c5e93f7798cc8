package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRow(t *testing.T) {
	tests := []struct {
		name    string
		cells   []string
		want    Row
		wantErr bool
	}{
		{
			name:  "prompt",
			cells: []string{"Prompt", "What's that smell?", "PICK 2", "1"},
			want:  PromptRow{Text: "What's that smell?", Special: "PICK 2", Cells: []string{"Prompt", "What's that smell?", "PICK 2", "1"}},
		},
		{
			name:  "response",
			cells: []string{"Response", "Bees?"},
			want:  ResponseRow{Text: "Bees?", Cells: []string{"Response", "Bees?"}},
		},
		{
			name:  "set",
			cells: []string{"Set", "Big Expansion", "big"},
			want:  SetRow{Name: "Big Expansion", ID: "big"},
		},
		{
			name:  "unknown type",
			cells: []string{"Prompts", "close but no"},
			want:  UnrecognizedRow{Kind: "Prompts"},
		},
		{
			name:  "empty row",
			cells: nil,
			want:  UnrecognizedRow{},
		},
		{
			name:    "prompt without special",
			cells:   []string{"Prompt", "text"},
			wantErr: true,
		},
		{
			name:    "response without text",
			cells:   []string{"Response"},
			wantErr: true,
		},
		{
			name:    "set without id",
			cells:   []string{"Set", "Name only"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeRow(tt.cells)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRowType(t *testing.T) {
	assert.Equal(t, TypePrompt, PromptRow{}.Type())
	assert.Equal(t, TypeResponse, ResponseRow{}.Type())
	assert.Equal(t, TypeSet, SetRow{}.Type())
	assert.Equal(t, "Blank", UnrecognizedRow{Kind: "Blank"}.Type())
}
