package date

import (
	"fmt"
	"time"
)

// Range is a span of days, both ends included.
type Range struct{ From, To Date }

// NewRange returns the calendar period p that contains d.
func NewRange(d Date, p Period) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

// Contains reports whether d is within r.
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// ContainsTime reports whether the local day of t is in the range.
func (r Range) ContainsTime(t time.Time) bool { return r.Contains(FromTime(t.Local())) }

// Period returns the calendar period that r covers exactly, if any.
func (r Range) Period() (Period, bool) {
	for _, p := range []Period{Daily, Weekly, Monthly, Quarterly, Yearly} {
		if NewRange(r.From, p) == r {
			return p, true
		}
	}
	return Daily, false
}

// Identifier is the short name of r used in view headers: "2025-06-10",
// "2025-W24", "2025-06", "2025-Q2" or "2025". Any other span is named after
// its bounds.
func (r Range) Identifier() string {
	p, ok := r.Period()
	if !ok {
		return r.From.String() + "_" + r.To.String()
	}
	switch p {
	case Weekly:
		year, week := r.From.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case Monthly:
		return r.From.Format("2006-01")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.Year(), (r.From.Month()-1)/3+1)
	case Yearly:
		return r.From.Format("2006")
	default:
		return r.From.String()
	}
}
