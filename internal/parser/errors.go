package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrSkippableRow marks a row whose type is not a card or pack marker.
	// Such rows are ignored and never abort a run.
	ErrSkippableRow = errors.New("parser: unrecognized row type")

	// ErrMalformedRow is matched by every MalformedRowError.
	ErrMalformedRow = errors.New("parser: malformed row")

	// ErrNoPack is returned for card rows that appear in an expansion
	// source before any "Set" row.
	ErrNoPack = errors.New("parser: card row precedes the first Set row")

	// ErrMissingHeader is returned when a base source lacks its two header rows.
	ErrMissingHeader = errors.New("parser: base source is missing its version header rows")
)

// MalformedRowError reports a recognized row that cannot be parsed
type MalformedRowError struct {
	Source string // Source name, usually a file path
	Row    int    // 1-based record number within the source
	Kind   string // Row type read from the first cell
	Err    error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("%s: row %d (%s): %v", e.Source, e.Row, e.Kind, e.Err)
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrMalformedRow as well as the wrapped cause
func (e *MalformedRowError) Is(target error) bool {
	return target == ErrMalformedRow
}

// missingCellError is produced by DecodeRow when a required cell is absent
type missingCellError struct {
	index int
	name  string
	have  int
}

func (e *missingCellError) Error() string {
	return fmt.Sprintf("missing %s cell (column %d, row has %d)", e.name, e.index, e.have)
}
