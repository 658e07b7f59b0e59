package rollcall

import (
	"time"

	"github.com/rondou/blisswisdom-roll-call-assistant/pkg/rollcall/grid"
)

// RosterParser reads the roster matrix layout: column 1 lists members with
// group header rows interleaved, and each later column holds one class
// date's statuses under a month-first date header.
type RosterParser struct {
	grid grid.Grid
}

// GroupNumber always returns "": roster sheets record groups as section
// header rows inside the name column, not per row.
func (p *RosterParser) GroupNumber(rowIndex int) (string, error) {
	return "", nil
}

func (p *RosterParser) Records(date time.Time) ([]Record, error) {
	header, err := p.grid.Row(1, false)
	if err != nil {
		return nil, err
	}

	statusCol := 0
	for _, c := range header {
		t, err := time.Parse(monthFirstLayout, c.Value)
		if err != nil {
			continue // not a date header cell
		}
		if Date(t.Year(), t.Month(), t.Day()).Equal(date) {
			statusCol = c.Col
			break
		}
	}
	if statusCol == 0 {
		return nil, ErrNoRelevantRow
	}

	names, err := p.grid.Col(1, false, grid.RenderDefault)
	if err != nil {
		return nil, err
	}
	states, err := p.grid.Col(statusCol, false, grid.RenderDefault)
	if err != nil {
		return nil, err
	}

	var records []Record
	group := ""
	for i := 1; i < min(len(names), len(states)); i++ {
		name := names[i].Value
		if name == "" {
			continue
		}
		// Group headers update the running group and are not members.
		if g := ParseGroupLabel(name); g != "" {
			group = g
			continue
		}
		state, err := ParseState(states[i].Value)
		if err != nil {
			return nil, err
		}
		records = append(records, Record{
			Name:        DisplayName(name),
			State:       state,
			GroupNumber: group,
			Date:        date,
		})
	}
	return records, nil
}
