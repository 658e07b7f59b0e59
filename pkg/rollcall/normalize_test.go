package rollcall

import (
	"testing"
	"time"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"出席記錄 [王小明]", "王小明"},
		{"王小明（組長）", "王小明"},
		{"王小明(組長)", "王小明"},
		{"  王小明  ", "王小明"},
		{"王小明", "王小明"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := DisplayName(tt.input); got != tt.expected {
			t.Errorf("DisplayName(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestDisplayNameIdempotent(t *testing.T) {
	inputs := []string{"出席記錄 [王小明]", "王小明（組長）", "王小明", ""}
	for _, input := range inputs {
		once := DisplayName(input)
		twice := DisplayName(once)
		if once != twice {
			t.Errorf("DisplayName not idempotent on %q: %q then %q", input, once, twice)
		}
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"第3組", "3"},
		{"abc", ""},
		{"12a3", "123"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := GroupDigits(tt.input); got != tt.expected {
			t.Errorf("GroupDigits(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestParseGroupLabel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"第 5 組清涼組", "5"},
		{"第1組", "1"},
		{"王小明", ""},
		{"第 0 組", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ParseGroupLabel(tt.input); got != tt.expected {
			t.Errorf("ParseGroupLabel(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestParseFlexibleDate(t *testing.T) {
	want := Date(2024, time.March, 15)

	// Sheets render dates without zero padding, so both forms must parse.
	for _, input := range []string{"2024/03/15", "03/15/2024", "2024/3/15", "3/15/2024", " 2024/03/15 "} {
		got, err := ParseFlexibleDate(input)
		if err != nil {
			t.Fatalf("ParseFlexibleDate(%q) failed: %v", input, err)
		}
		if !got.Equal(want) {
			t.Errorf("ParseFlexibleDate(%q) = %v, expected %v", input, got, want)
		}
	}

	if got, err := ParseFlexibleDate("2024/3/5"); err != nil || !got.Equal(Date(2024, time.March, 5)) {
		t.Errorf("ParseFlexibleDate(\"2024/3/5\") = %v, %v, expected 2024-03-05", got, err)
	}

	if _, err := ParseFlexibleDate("15/03/2024"); err == nil {
		t.Error("ParseFlexibleDate(\"15/03/2024\") should fail, day-first is not a supported layout")
	}
	if _, err := ParseFlexibleDate("not a date"); err == nil {
		t.Error("ParseFlexibleDate(\"not a date\") should fail")
	}
}
