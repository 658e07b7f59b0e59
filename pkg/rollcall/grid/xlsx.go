package grid

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXGrid serves grid reads from the first sheet of a local workbook,
// for extraction from exported .xlsx snapshots of a tracker.
type XLSXGrid struct {
	file  *excelize.File
	sheet string
}

// OpenXLSX opens the workbook at path and binds to its first sheet.
func OpenXLSX(path string) (*XLSXGrid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	sheet := f.GetSheetName(0)
	if sheet == "" {
		f.Close()
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	return &XLSXGrid{file: f, sheet: sheet}, nil
}

// Close releases the underlying workbook.
func (g *XLSXGrid) Close() error {
	return g.file.Close()
}

func (g *XLSXGrid) Row(i int, includeTrailingEmpty bool) ([]Cell, error) {
	vals, err := g.file.GetRows(g.sheet)
	if err != nil {
		return nil, err
	}
	raws, err := g.file.GetRows(g.sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	cells := zipLine(i, lineAt(vals, i), lineAt(raws, i), width(vals), includeTrailingEmpty, false)
	return cells, nil
}

// Col renders date cells as their displayed text regardless of render:
// excelize only exposes the applied number format, which is already the
// formatted string the parsers expect.
func (g *XLSXGrid) Col(i int, includeTrailingEmpty bool, render DateRender) ([]Cell, error) {
	vals, err := g.file.GetCols(g.sheet)
	if err != nil {
		return nil, err
	}
	raws, err := g.file.GetCols(g.sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	cells := zipLine(i, lineAt(vals, i), lineAt(raws, i), width(vals), includeTrailingEmpty, true)
	return cells, nil
}

func (g *XLSXGrid) Cell(r, c int) (Cell, error) {
	name, err := excelize.CoordinatesToCellName(c, r)
	if err != nil {
		return Cell{}, err
	}
	val, err := g.file.GetCellValue(g.sheet, name)
	if err != nil {
		return Cell{}, err
	}
	raw, err := g.file.GetCellValue(g.sheet, name, excelize.Options{RawCellValue: true})
	if err != nil {
		return Cell{}, err
	}
	return Cell{Row: r, Col: c, Value: val, Raw: raw}, nil
}

// lineAt returns 1-based line i of lines, or nil past the end.
func lineAt(lines [][]string, i int) []string {
	if i-1 < 0 || i-1 >= len(lines) {
		return nil
	}
	return lines[i-1]
}

// width is the longest line length, used to pad when trailing empty cells
// are requested.
func width(lines [][]string) int {
	w := 0
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	return w
}

// zipLine pairs formatted and raw values of one row or column into cells.
// For a row, index is the row number and cells advance by column; for a
// column (vertical) the roles swap.
func zipLine(index int, vals, raws []string, full int, includeTrailingEmpty, vertical bool) []Cell {
	n := len(vals)
	if len(raws) > n {
		n = len(raws)
	}
	if includeTrailingEmpty && full > n {
		n = full
	}
	cells := make([]Cell, 0, n)
	for j := 0; j < n; j++ {
		c := Cell{Row: index, Col: j + 1}
		if vertical {
			c.Row, c.Col = j+1, index
		}
		if j < len(vals) {
			c.Value = vals[j]
		}
		if j < len(raws) {
			c.Raw = raws[j]
		}
		cells = append(cells, c)
	}
	if !includeTrailingEmpty {
		cells = trimTrailingEmpty(cells)
	}
	return cells
}
