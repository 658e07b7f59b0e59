package rollcall

import "time"

// Record is one member's attendance fact for one class date. Records are
// plain values; a parser builds a fresh list per extraction and never
// retains them.
type Record struct {
	// Name is the member's display name with sheet decorations stripped.
	Name string `json:"name"`
	// State is the member's attendance status.
	State State `json:"state"`
	// GroupNumber identifies the member's subgroup. Empty when the sheet
	// carries no grouping for the member.
	GroupNumber string `json:"group_number"`
	// Date is the class date, normalized to midnight UTC.
	Date time.Time `json:"date"`
}

// Date builds the midnight-UTC time the parsers compare class dates
// against. Callers should construct target dates with it so equality
// checks are purely by calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
