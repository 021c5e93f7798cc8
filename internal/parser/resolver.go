package parser

// FirstEditionColumn is the index of the first version column. Earlier
// columns hold the row type, the text and the special field.
const FirstEditionColumn = 3

// Version tags read from the second header row
const (
	TagKickstarter = "KICKSTARTER"
	TagCurrent     = "v2.0"

	// KickstarterEdition is the edition code for KICKSTARTER columns
	KickstarterEdition = "KS"
)

// Resolver maps base source column indexes to edition codes.
// Columns with no edition are ignored for every data row.
type Resolver struct {
	editions map[int]string
	ignored  []int
}

// NewResolver builds a resolver from the two header rows of a base source.
// labels holds raw version labels (US, AU, ...), tags holds the
// normalization tag of each column.
func NewResolver(labels, tags []string) *Resolver {
	r := &Resolver{editions: make(map[int]string)}

	for i := FirstEditionColumn; i < len(tags); i++ {
		switch tags[i] {
		case TagKickstarter:
			r.editions[i] = KickstarterEdition
		case TagCurrent:
			label := ""
			if i < len(labels) {
				label = labels[i]
			}
			r.editions[i] = label
		default:
			r.ignored = append(r.ignored, i)
		}
	}

	// Label columns with no tag at all are ignored too
	for i := max(len(tags), FirstEditionColumn); i < len(labels); i++ {
		r.ignored = append(r.ignored, i)
	}

	return r
}

// Edition returns the edition code for a column, or false if the column
// does not contribute editions.
func (r *Resolver) Edition(column int) (string, bool) {
	code, ok := r.editions[column]
	return code, ok
}

// Editions collects the edition codes of every non-empty, resolved cell
// of a data row, in column order.
func (r *Resolver) Editions(cells []string) []string {
	var editions []string
	for i := FirstEditionColumn; i < len(cells); i++ {
		if cells[i] == "" {
			continue
		}
		if code, ok := r.editions[i]; ok {
			editions = append(editions, code)
		}
	}
	return editions
}

// Ignored returns the version columns that resolve to no edition
func (r *Resolver) Ignored() []int {
	return r.ignored
}

// Len returns the number of columns that resolve to an edition
func (r *Resolver) Len() int {
	return len(r.editions)
}
