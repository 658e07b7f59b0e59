package rollcall

import (
	"errors"
	"testing"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		label    string
		expected State
	}{
		{"現場", StateInPerson},
		{"線上", StateOnline},
		{"請假", StateLeave},
		{"未出席", StateAbsent},
		{"", StateAbsent}, // blank cell means nothing recorded
	}

	for _, tt := range tests {
		got, err := ParseState(tt.label)
		if err != nil {
			t.Fatalf("ParseState(%q) failed: %v", tt.label, err)
		}
		if got != tt.expected {
			t.Errorf("ParseState(%q) = %q, expected %q", tt.label, got, tt.expected)
		}
	}
}

func TestParseStateUnrecognized(t *testing.T) {
	_, err := ParseState("遲到")
	if err == nil {
		t.Fatal("ParseState should reject labels outside the canonical set")
	}

	var stateErr *StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected *StateError, got %T", err)
	}
	if stateErr.Label != "遲到" {
		t.Errorf("StateError.Label = %q, expected %q", stateErr.Label, "遲到")
	}
}
