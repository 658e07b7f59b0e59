package rollcall

import (
	"strings"
	"time"

	"github.com/rondou/blisswisdom-roll-call-assistant/pkg/rollcall/grid"
)

// formHeaderPrefix marks the per-member status columns in a form log's
// header row, e.g. "出席記錄 [王小明]".
const formHeaderPrefix = "出席記錄 ["

// FormLogParser reads the form log layout: each row is one form
// submission, with the class date in column 2, the submitter's group in
// column 3, and one status column per member.
type FormLogParser struct {
	grid grid.Grid
}

// classDateRow finds the submission row for date. Groups sometimes
// resubmit the form to correct mistakes, so the last matching row wins.
func (p *FormLogParser) classDateRow(date time.Time) (int, error) {
	col, err := p.grid.Col(2, false, grid.RenderFormattedString)
	if err != nil {
		return 0, err
	}
	last := 0
	for _, c := range col {
		if c.Row == 1 {
			continue
		}
		t, err := ParseFlexibleDate(c.Value)
		if err != nil {
			return 0, err
		}
		if t.Equal(date) {
			last = c.Row
		}
	}
	if last == 0 {
		return 0, ErrNoRelevantRow
	}
	return last, nil
}

// GroupNumber reads the group from column 3 of a submission row. The
// unformatted value is used so a bare numeric entry survives whatever
// display format the sheet applies.
func (p *FormLogParser) GroupNumber(rowIndex int) (string, error) {
	c, err := p.grid.Cell(rowIndex, 3)
	if err != nil {
		return "", err
	}
	return GroupDigits(c.Raw), nil
}

func (p *FormLogParser) Records(date time.Time) ([]Record, error) {
	row, err := p.classDateRow(date)
	if err != nil {
		return nil, err
	}
	group, err := p.GroupNumber(row)
	if err != nil {
		return nil, err
	}

	header, err := p.grid.Row(1, false)
	if err != nil {
		return nil, err
	}
	data, err := p.grid.Row(row, false)
	if err != nil {
		return nil, err
	}

	var records []Record
	for i := 0; i < min(len(header), len(data)); i++ {
		title := header[i].Value
		if !strings.HasPrefix(title, formHeaderPrefix) {
			continue
		}
		state, err := ParseState(data[i].Value)
		if err != nil {
			return nil, err
		}
		records = append(records, Record{
			Name:        DisplayName(title),
			State:       state,
			GroupNumber: group,
			Date:        date,
		})
	}
	return records, nil
}
