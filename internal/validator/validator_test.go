package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardseed/internal/source"
)

func write(t *testing.T, name, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestValidateClean(t *testing.T) {
	base := write(t, "base.csv", ",,,US\n,,,v2.0\nPrompt,Why?,,1\nResponse,Because.,,1\n")
	exp := write(t, "exp.csv", "Set,Big,big\nResponse,Big answer.\n")

	results, err := NewValidator(base, exp).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidateWarnings(t *testing.T) {
	base := write(t, "base.csv",
		",,,US,UK,\n"+
			",,,v2.0,v1.6,v2.0\n"+
			"Prompt,Why?,,1,1,\n"+
			"Prompt,Why?,,1,,\n"+
			"Respones,Typo row.,,1\n"+
			",,,\n")
	exp := write(t, "exp.csv", "Set,Big,big\nSet,Bigger,big\nPrompt,Big prompt.,\n")

	results, err := NewValidator(base, exp).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)

	assert.ElementsMatch(t, []string{
		base + `: version column 4 ("UK", tag "v1.6") is ignored`,
		base + ": version column 5 is tagged v2.0 but has no edition label",
		exp + `: pack "big" declared more than once, keeping name "Bigger"`,
		base + `: row 5: type "Respones" skipped`,
		"no white cards found, the white_cards insert will be omitted",
		`black card 1 duplicates black card 0 in pack "base"`,
	}, results.Warnings)
}

func TestValidateEmptyPack(t *testing.T) {
	exp := write(t, "exp.csv", "Set,Big,big\nResponse,Answer.\nSet,Empty,empty\n")

	results, err := NewValidator("", exp).Validate()
	require.NoError(t, err)
	assert.Contains(t, results.Warnings, exp+`: pack "empty" (Empty) has no cards`)
}

func TestValidateErrors(t *testing.T) {
	base := write(t, "base.csv", ",,,US\n,,,v1.0\nPrompt,Missing special\n")
	exp := write(t, "exp.csv", "Response,Orphan.\nSet,Big,big\n")

	results, err := NewValidator(base, exp).Validate()
	require.NoError(t, err)
	require.Len(t, results.Errors, 2)
	assert.Contains(t, results.Errors[0], base+": row 3 (Prompt)")
	assert.Contains(t, results.Errors[1], "add a Set row before the first card")
}

func TestValidateNoEditionColumns(t *testing.T) {
	base := write(t, "base.csv", ",,,US\n,,,v1.0\nResponse,Fine.,,1\n")

	results, err := NewValidator(base, "").Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	require.NotEmpty(t, results.Warnings)
	assert.Contains(t, results.Warnings[0], "no v2.0 or KICKSTARTER version columns")
}

func TestValidateMissingSource(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "missing.csv"), "").Validate()
	assert.ErrorIs(t, err, source.ErrNotFound)
}
