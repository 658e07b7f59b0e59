// Package rollcall extracts structured attendance records from class roll
// call spreadsheets. Two sheet layouts are supported: a roster matrix
// (members down the side, class dates across the top) and a form log (one
// submission per row). Build detects the layout and returns the matching
// parser.
package rollcall

// State represents a member's attendance status for one class date.
// The values are the canonical labels used in the sheets themselves.
type State string

const (
	// StateInPerson means the member attended at the venue.
	StateInPerson State = "現場"
	// StateOnline means the member joined the class remotely.
	StateOnline State = "線上"
	// StateLeave means the member asked for leave in advance.
	StateLeave State = "請假"
	// StateAbsent means the member did not show up.
	StateAbsent State = "未出席"
)

// ParseState maps a status cell's text to a State. An empty cell means
// nothing was recorded for the member, which counts as absent; any other
// unrecognized text is reported as a StateError rather than defaulted.
func ParseState(label string) (State, error) {
	switch label {
	case "":
		return StateAbsent, nil
	case string(StateInPerson), string(StateOnline), string(StateLeave), string(StateAbsent):
		return State(label), nil
	}
	return "", &StateError{Label: label}
}
