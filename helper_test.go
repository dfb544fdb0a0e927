package founder

import (
	"time"
)

// tick is a test clock: every call returns one millisecond more than the
// previous one, starting on 2025-06-10T09:30:00Z.
func tick() func() time.Time {
	now := time.Date(2025, time.June, 10, 9, 30, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Millisecond)
		return now
	}
}

// newTestState returns an empty State on the test clock.
func newTestState() *State { return NewState(WithClock(tick())) }

// changes records the domains notified by a State.
type changes []Domain

func (c *changes) listen(s *State) {
	s.OnChange(func(d Domain) error {
		*c = append(*c, d)
		return nil
	})
}
