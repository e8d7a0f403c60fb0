package attendance

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type FilterKind int

const (
	FilterAll FilterKind = iota
	FilterQuarter
	FilterMonth
)

// DateFilter restricts the session dates a report looks at.
// The zero value matches every date.
type DateFilter struct {
	Kind    FilterKind
	Quarter int // 1..4
	Month   int // 0..11
}

var All = DateFilter{}

// Quarter covers three calendar months: Q1 = months 0-2, ..., Q4 = months 9-11.
func Quarter(q int) DateFilter { return DateFilter{Kind: FilterQuarter, Quarter: q} }

// Month selects one calendar month by 0-based index.
func Month(m int) DateFilter { return DateFilter{Kind: FilterMonth, Month: m} }

var monthNames = map[string]int{
	"jan": 0, "feb": 1, "mar": 2, "apr": 3, "may": 4, "jun": 5,
	"jul": 6, "aug": 7, "sep": 8, "oct": 9, "nov": 10, "dec": 11,
	"enero": 0, "febrero": 1, "marzo": 2, "abril": 3, "mayo": 4, "junio": 5,
	"julio": 6, "agosto": 7, "septiembre": 8, "octubre": 9, "noviembre": 10, "diciembre": 11,
}

// ParseFilter accepts "all", "q1".."q4", a month index "0".."11" or a month name.
func ParseFilter(s string) (DateFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "all", "todo":
		return All, nil
	case "q1", "q2", "q3", "q4":
		return Quarter(int(s[1] - '0')), nil
	}
	if m, err := strconv.Atoi(s); err == nil {
		if m < 0 || m > 11 {
			return All, fmt.Errorf("month index out of range: %d", m)
		}
		return Month(m), nil
	}
	if m, ok := monthNames[s]; ok {
		return Month(m), nil
	}
	return All, fmt.Errorf("unknown date filter %q", s)
}

// Match reports whether date falls inside the filter. Unparseable dates only
// match All.
func (f DateFilter) Match(date string) bool {
	if f.Kind == FilterAll {
		return true
	}
	t, ok := ParseDate(date)
	if !ok {
		return false
	}
	m := int(t.Month()) - 1
	switch f.Kind {
	case FilterQuarter:
		return m/3 == f.Quarter-1
	case FilterMonth:
		return m == f.Month
	}
	return false
}

func (f DateFilter) String() string {
	switch f.Kind {
	case FilterQuarter:
		return fmt.Sprintf("q%d", f.Quarter)
	case FilterMonth:
		return strconv.Itoa(f.Month)
	}
	return "all"
}

// ParseDate reads a calendar date, or an RFC 3339 timestamp, in UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(time.DateOnly, s, time.UTC); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// dateKey is the canonical session key of a record date.
func dateKey(s string) string {
	if t, ok := ParseDate(s); ok {
		return t.Format(time.DateOnly)
	}
	return s
}
