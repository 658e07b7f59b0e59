package rollcall

import (
	"errors"
	"fmt"
)

// ErrNoRelevantRow indicates the sheet holds no row or column for the
// requested class date.
var ErrNoRelevantRow = errors.New("no relevant row for date")

// ErrUnsupportedSheet indicates the sheet matches neither known layout.
var ErrUnsupportedSheet = errors.New("unsupported sheet format")

// StateError reports a status cell whose text is not one of the canonical
// attendance labels.
type StateError struct {
	Label string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("unrecognized attendance state %q", e.Label)
}
