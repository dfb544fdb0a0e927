package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestFromTime(t *testing.T) {
	paris := time.FixedZone("CEST", 2*3600)
	testCases := []struct {
		name string
		in   time.Time
		want Date
	}{
		{"utc", time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC), New(2025, 6, 10)},
		{"ahead of utc", time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC).In(paris), New(2025, 6, 11)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromTime(tc.in); got != tc.want {
				t.Errorf("FromTime() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseFrom(t *testing.T) {
	today := New(2025, time.June, 10) // a Tuesday
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-01-15", want: New(2025, time.January, 15)},
		{in: "2025-1-5", want: New(2025, time.January, 5)},
		{in: " 2024-02-29 ", want: New(2024, time.February, 29)},
		{in: "0d", want: today},
		{in: "-1d", want: New(2025, time.June, 9)},
		{in: "+2w", want: New(2025, time.June, 24)},
		{in: "-1m", want: New(2025, time.May, 10)},
		{in: "-1q", want: New(2025, time.March, 10)},
		{in: "+1y", want: New(2026, time.June, 10)},
		{in: "27", want: New(2025, time.June, 27)},
		{in: "8-27", want: New(2025, time.August, 27)},
		{in: "0", want: New(2025, time.May, 31)},
		{in: "3-0", want: New(2025, time.February, 28)},
		{in: "0-15", want: New(2024, time.December, 15)},
		{in: "1d", wantErr: true},
		{in: "yesterday", wantErr: true},
		{in: "2025/01/15", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFrom(tc.in, today)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseFrom(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseFrom(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
