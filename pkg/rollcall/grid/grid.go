// Package grid defines the read-only cell grid the attendance parsers
// scan, with implementations backed by local xlsx workbooks and remote
// Google spreadsheets.
package grid

// DateRender selects how date-typed cells are rendered when reading a
// column.
type DateRender int

const (
	// RenderDefault leaves date rendering to the provider.
	RenderDefault DateRender = iota
	// RenderFormattedString keeps date cells as the text the sheet
	// displays, so they can be fed back through date parsing.
	RenderFormattedString
)

// Cell is a single grid cell. Indices are 1-based, matching spreadsheet
// addressing, so positions reported in errors line up with the sheet UI.
type Cell struct {
	Row int
	Col int
	// Value is the formatted cell text, as displayed.
	Value string
	// Raw is the unformatted cell value, as entered.
	Raw string
}

// Grid is the read-only surface the parsers depend on. Implementations may
// block on network or file I/O on every call; no caching or batching is
// assumed.
type Grid interface {
	// Row returns row i left to right. With includeTrailingEmpty false the
	// trailing run of empty cells is dropped.
	Row(i int, includeTrailingEmpty bool) ([]Cell, error)
	// Col returns column i top to bottom, rendering date cells per render.
	Col(i int, includeTrailingEmpty bool, render DateRender) ([]Cell, error)
	// Cell returns the cell at row r, column c.
	Cell(r, c int) (Cell, error)
}

// trimTrailingEmpty drops the trailing run of cells with no content.
func trimTrailingEmpty(cells []Cell) []Cell {
	n := len(cells)
	for n > 0 && cells[n-1].Value == "" && cells[n-1].Raw == "" {
		n--
	}
	return cells[:n]
}
