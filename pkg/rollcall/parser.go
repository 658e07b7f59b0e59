package rollcall

import (
	"strings"
	"time"

	"github.com/rondou/blisswisdom-roll-call-assistant/pkg/rollcall/grid"
)

// Parser extracts attendance records from one acquired sheet. A parser is
// built once per sheet and may be reused for repeated date queries; it
// holds nothing but the grid handle.
type Parser interface {
	// Records returns every member's attendance for the class on date, or
	// ErrNoRelevantRow when the sheet holds nothing for that date.
	Records(date time.Time) ([]Record, error)
	// GroupNumber resolves the group recorded on a sheet row. Only form
	// log sheets carry a per-row group; roster sheets always return "".
	GroupNumber(rowIndex int) (string, error)
}

// Build inspects cell (1,1) and selects the parser for the sheet's layout.
// A time-of-day rendering in that cell marks a roster matrix; the
// timestamp column header marks a form log. The checks run in exactly this
// order.
func Build(g grid.Grid) (Parser, error) {
	first, err := g.Cell(1, 1)
	if err != nil {
		return nil, err
	}
	v := first.Value
	lower := strings.ToLower(v)
	if strings.HasSuffix(lower, " am") || strings.HasSuffix(lower, " pm") ||
		strings.HasPrefix(v, "上午 ") || strings.HasPrefix(v, "下午 ") {
		return &RosterParser{grid: g}, nil
	}
	if v == "Timestamp" || v == "時間戳記" {
		return &FormLogParser{grid: g}, nil
	}
	return nil, ErrUnsupportedSheet
}
