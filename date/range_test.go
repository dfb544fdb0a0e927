package date

import (
	"testing"
	"time"
)

func TestNewRange(t *testing.T) {
	day := New(2025, time.June, 10) // a Tuesday
	testCases := []struct {
		period Period
		want   Range
	}{
		{Daily, Range{From: day, To: day}},
		{Weekly, Range{From: New(2025, time.June, 9), To: New(2025, time.June, 15)}},
		{Monthly, Range{From: New(2025, time.June, 1), To: New(2025, time.June, 30)}},
		{Quarterly, Range{From: New(2025, time.April, 1), To: New(2025, time.June, 30)}},
		{Yearly, Range{From: New(2025, time.January, 1), To: New(2025, time.December, 31)}},
	}
	for _, tc := range testCases {
		t.Run(tc.period.String(), func(t *testing.T) {
			if got := NewRange(day, tc.period); got != tc.want {
				t.Errorf("NewRange(%v, %v) = %v, want %v", day, tc.period, got, tc.want)
			}
		})
	}

	// February of a leap year ends on the 29th.
	if got := NewRange(New(2024, time.February, 15), Monthly).To; got != New(2024, time.February, 29) {
		t.Errorf("end of February 2024 = %v", got)
	}
}

func TestRange_Identifier(t *testing.T) {
	testCases := []struct {
		name string
		in   Range
		want string
	}{
		{"day", NewRange(New(2025, time.June, 10), Daily), "2025-06-10"},
		{"week", NewRange(New(2025, time.June, 10), Weekly), "2025-W24"},
		// the first ISO week of 2026 starts in December 2025.
		{"week across years", NewRange(New(2025, time.December, 31), Weekly), "2026-W01"},
		{"month", NewRange(New(2025, time.June, 10), Monthly), "2025-06"},
		{"quarter", NewRange(New(2025, time.November, 2), Quarterly), "2025-Q4"},
		{"year", NewRange(New(2025, time.June, 10), Yearly), "2025"},
		{"any other span", Range{From: New(2025, time.June, 2), To: New(2025, time.June, 10)}, "2025-06-02_2025-06-10"},
		{"month not from its first day", Range{From: New(2025, time.June, 2), To: New(2025, time.June, 30)}, "2025-06-02_2025-06-30"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Identifier(); got != tc.want {
				t.Errorf("Identifier() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(New(2025, time.June, 10), Monthly)
	testCases := []struct {
		in   Date
		want bool
	}{
		{New(2025, time.June, 1), true},
		{New(2025, time.June, 30), true},
		{New(2025, time.May, 31), false},
		{New(2025, time.July, 1), false},
	}
	for _, tc := range testCases {
		if got := r.Contains(tc.in); got != tc.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", r.Identifier(), tc.in, got, tc.want)
		}
	}
}

func TestRange_ContainsTime(t *testing.T) {
	june := NewRange(New(2025, time.June, 10), Monthly)
	testCases := []struct {
		name string
		in   time.Time
		want bool
	}{
		{"first instant", time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local), true},
		{"last instant", time.Date(2025, time.June, 30, 23, 59, 59, 999e6, time.Local), true},
		{"day before", time.Date(2025, time.May, 31, 23, 59, 59, 999e6, time.Local), false},
		{"day after", time.Date(2025, time.July, 1, 0, 0, 0, 0, time.Local), false},
		// records are stored in UTC and still filtered on their local day.
		{"stored in utc", time.Date(2025, time.June, 30, 23, 59, 0, 0, time.Local).UTC(), true},
		{"stored in utc after", time.Date(2025, time.July, 1, 0, 1, 0, 0, time.Local).UTC(), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := june.ContainsTime(tc.in); got != tc.want {
				t.Errorf("ContainsTime(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	for _, name := range Periods {
		p, err := ParsePeriod(name)
		if err != nil {
			t.Errorf("ParsePeriod(%q) error = %v", name, err)
			continue
		}
		// what -p accepts also names the period in the long form.
		if back, err := ParsePeriod(p.String()); err != nil || back != p {
			t.Errorf("ParsePeriod(%q) = %v, %v, want %v", p.String(), back, err, p)
		}
	}
	for _, name := range []string{"Month", "WEEK"} {
		if _, err := ParsePeriod(name); err != nil {
			t.Errorf("ParsePeriod(%q) error = %v", name, err)
		}
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Error("ParsePeriod(fortnight) did not fail")
	}
}
