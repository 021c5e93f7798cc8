package parser

// Row type literals read from the first cell of a row
const (
	TypePrompt   = "Prompt"
	TypeResponse = "Response"
	TypeSet      = "Set"
)

// Row is one decoded source row: a PromptRow, ResponseRow, SetRow or
// UnrecognizedRow.
type Row interface {
	Type() string
}

// PromptRow describes a black card
type PromptRow struct {
	Text    string
	Special string
	Cells   []string
}

// ResponseRow describes a white card
type ResponseRow struct {
	Text  string
	Cells []string
}

// SetRow starts a new expansion pack
type SetRow struct {
	Name string
	ID   string
}

// UnrecognizedRow is any row whose first cell is not a known type.
// Blank lines and section markers land here.
type UnrecognizedRow struct {
	Kind string
}

func (PromptRow) Type() string         { return TypePrompt }
func (ResponseRow) Type() string       { return TypeResponse }
func (SetRow) Type() string            { return TypeSet }
func (r UnrecognizedRow) Type() string { return r.Kind }

// DecodeRow reads the row type from cell 0 and pulls the cells that type
// requires. A missing required cell is an error; unknown types are not.
func DecodeRow(cells []string) (Row, error) {
	if len(cells) == 0 {
		return UnrecognizedRow{}, nil
	}

	switch cells[0] {
	case TypePrompt:
		if err := requireCells(cells, "text", "special"); err != nil {
			return nil, err
		}
		return PromptRow{Text: cells[1], Special: cells[2], Cells: cells}, nil

	case TypeResponse:
		if err := requireCells(cells, "text"); err != nil {
			return nil, err
		}
		return ResponseRow{Text: cells[1], Cells: cells}, nil

	case TypeSet:
		if err := requireCells(cells, "name", "pack id"); err != nil {
			return nil, err
		}
		return SetRow{Name: cells[1], ID: cells[2]}, nil

	default:
		return UnrecognizedRow{Kind: cells[0]}, nil
	}
}

// requireCells checks that the named cells following the type cell exist
func requireCells(cells []string, names ...string) error {
	for i, name := range names {
		if len(cells) <= i+1 {
			return &missingCellError{index: i + 1, name: name, have: len(cells)}
		}
	}
	return nil
}
