// Package source reads card spreadsheets into rows of string cells.
//
// Sources are CSV files or XLSX workbooks, optionally compressed with
// gzip, bzip2, xz or zstd. The format is chosen from the file name, so
// "basecards.csv.zst" is a zstd-compressed CSV file.
package source

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Format is the tabular format of a source
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var (
	// ErrNotFound indicates the source file does not exist
	ErrNotFound = errors.New("source: file not found")

	// ErrNoSheets indicates a workbook without any sheet
	ErrNoSheets = errors.New("source: workbook has no sheets")
)

const utf8BOM = "\ufeff"

// Source describes one input file
type Source struct {
	Path        string
	Format      Format
	Compression Compression
}

// New inspects path and returns the matching source description
func New(path string) Source {
	ct, bare := detectCompression(path)

	format := FormatCSV
	if strings.EqualFold(filepath.Ext(bare), ".xlsx") {
		format = FormatXLSX
	}

	return Source{Path: path, Format: format, Compression: ct}
}

// ReadRows reads every row of the source at path
func ReadRows(path string) ([][]string, error) {
	return New(path).ReadRows()
}

// ReadRows opens the source file and reads every row
func (s Source) ReadRows() ([][]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.Path)
		}
		return nil, fmt.Errorf("error opening source %s: %w", s.Path, err)
	}
	defer f.Close()

	rows, err := s.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("error reading source %s: %w", s.Path, err)
	}
	return rows, nil
}

// Decode reads every row from r, which holds the raw file contents
func (s Source) Decode(r io.Reader) ([][]string, error) {
	reader, closer, err := decompress(r, s.Compression)
	if err != nil {
		return nil, err
	}
	defer closer()

	switch s.Format {
	case FormatXLSX:
		return decodeXLSX(reader)
	default:
		return decodeCSV(reader)
	}
}

// decodeCSV reads comma separated rows. Rows may have any number of
// cells and quoted cells may span lines.
func decodeCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	}
	return rows, nil
}

// decodeXLSX reads the rows of the first sheet of a workbook
func decodeXLSX(r io.Reader) ([][]string, error) {
	// excelize needs random access, so the whole workbook is buffered
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	// GetRows drops trailing empty cells, which CSV keeps. Pad every row
	// to the sheet width so both formats yield the same cells.
	width := sheetWidth(f, sheets[0])
	for _, row := range rows {
		width = max(width, len(row))
	}
	for i, row := range rows {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			rows[i] = padded
		}
	}
	return rows, nil
}

// sheetWidth returns the column count recorded in the sheet dimension,
// or 0 when the workbook does not record one
func sheetWidth(f *excelize.File, sheet string) int {
	dim, err := f.GetSheetDimension(sheet)
	if err != nil {
		return 0
	}
	_, last, ok := strings.Cut(dim, ":")
	if !ok {
		last = dim
	}
	col, _, err := excelize.CellNameToCoordinates(last)
	if err != nil {
		return 0
	}
	return col
}
