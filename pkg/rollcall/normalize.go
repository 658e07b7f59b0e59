package rollcall

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// Date layouts found in the sheets. Roster matrix headers are month-first,
// form log submissions year-first. The non-padded elements accept both
// "3/15/2024" and "03/15/2024"; sheets render dates without zero padding.
const (
	yearFirstLayout  = "2006/1/2"
	monthFirstLayout = "1/2/2006"
)

// groupLabelPattern matches section header rows such as "第 5 組清涼組".
var groupLabelPattern = regexp.MustCompile(`第\s*([1-9])\s*組`)

// DisplayName strips sheet decorations from a raw name cell. Form log
// headers look like "出席記錄 [王小明]" and roster cells may carry trailing
// annotations like "王小明（組長）"; the name is what remains after the
// bracket prefix and the first closing mark onward are removed. Idempotent
// on already clean names.
func DisplayName(raw string) string {
	if i := strings.Index(raw, "["); i >= 0 {
		raw = raw[i+len("["):]
	}
	if i := strings.IndexAny(raw, "](（"); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSpace(raw)
}

// GroupDigits collects every digit of raw in original order, e.g. "第3組"
// yields "3". Returns "" when raw holds no digits.
func GroupDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseGroupLabel extracts the group number from a section header row such
// as "第 5 組清涼組". Returns "" when raw is not a group header, which is
// how the roster parser tells header rows from member rows.
func ParseGroupLabel(raw string) string {
	m := groupLabelPattern.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return m[1]
}

// ParseFlexibleDate parses a date cell that may be year-first
// (2024/03/15) or month-first (03/15/2024). The result is normalized to
// midnight UTC.
func ParseFlexibleDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{yearFirstLayout, monthFirstLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			return Date(t.Year(), t.Month(), t.Day()), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}
