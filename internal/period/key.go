// Package period locates months and years in a journal corpus laid out as
// <root>/<yyyy>/<mm>/<entries>/<entry><ext>.
package period

import (
	"fmt"
	"strconv"
	"strings"
)

// Key identifies a month (Month 1..12) or a whole year (Month 0).
type Key struct {
	Year  int
	Month int
}

// MonthKey returns the key for year/month.
func MonthKey(year, month int) Key { return Key{Year: year, Month: month} }

// YearKey returns the key for a whole year.
func YearKey(year int) Key { return Key{Year: year} }

// IsYear reports whether k names a whole year.
func (k Key) IsYear() bool { return k.Month == 0 }

// Index maps k onto a line: year*12+month for months, the year itself for years.
func (k Key) Index() int {
	if k.IsYear() {
		return k.Year
	}
	return k.Year*12 + k.Month
}

// FromMonthIndex inverts Index for month keys. A remainder of 0 is December of the prior year.
func FromMonthIndex(i int) Key {
	y, m := i/12, i%12
	if m == 0 {
		y--
		m = 12
	}
	return Key{Year: y, Month: m}
}

// Add moves k by n steps (months for month keys, years for year keys).
func (k Key) Add(n int) Key {
	if k.IsYear() {
		return Key{Year: k.Year + n}
	}
	return FromMonthIndex(k.Index() + n)
}

// YearDir is the zero-padded year directory name.
func (k Key) YearDir() string { return fmt.Sprintf("%04d", k.Year) }

// MonthDir is the zero-padded month directory name.
func (k Key) MonthDir() string { return fmt.Sprintf("%02d", k.Month) }

// String renders "2025-01" for months and "2025" for years.
func (k Key) String() string {
	if k.IsYear() {
		return k.YearDir()
	}
	return k.YearDir() + "-" + k.MonthDir()
}

// ParseMonth accepts "YYYY-MM" (also "YYYY/MM" and "YYYYMM").
func ParseMonth(s string) (Key, error) {
	s = strings.TrimSpace(s)
	var ys, ms string
	switch {
	case strings.ContainsAny(s, "-/"):
		parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '/' })
		if len(parts) != 2 {
			return Key{}, fmt.Errorf("invalid month %q: want YYYY-MM", s)
		}
		ys, ms = parts[0], parts[1]
	case len(s) == 6:
		ys, ms = s[:4], s[4:]
	default:
		return Key{}, fmt.Errorf("invalid month %q: want YYYY-MM", s)
	}
	y, err := strconv.Atoi(ys)
	if err != nil || len(ys) != 4 {
		return Key{}, fmt.Errorf("invalid year in %q", s)
	}
	m, err := strconv.Atoi(ms)
	if err != nil || m < 1 || m > 12 {
		return Key{}, fmt.Errorf("invalid month in %q", s)
	}
	return MonthKey(y, m), nil
}

// ParseYear accepts a four digit year.
func ParseYear(s string) (Key, error) {
	s = strings.TrimSpace(s)
	y, err := strconv.Atoi(s)
	if err != nil || len(s) != 4 {
		return Key{}, fmt.Errorf("invalid year %q", s)
	}
	return YearKey(y), nil
}

// MonthRange lists every month from start to end inclusive.
func MonthRange(start, end Key) ([]Key, error) {
	if start.IsYear() || end.IsYear() {
		return nil, fmt.Errorf("month range needs month keys, got %s..%s", start, end)
	}
	if start.Index() > end.Index() {
		return nil, fmt.Errorf("range start %s is after end %s", start, end)
	}
	out := make([]Key, 0, end.Index()-start.Index()+1)
	for i := start.Index(); i <= end.Index(); i++ {
		out = append(out, FromMonthIndex(i))
	}
	return out, nil
}
