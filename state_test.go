package founder

import (
	"errors"
	"testing"
	"time"
)

func TestState_UnknownDomain(t *testing.T) {
	s := newTestState()
	if err := s.Delete(Domain("contacts"), 1); !errors.Is(err, ErrUnknownDomain) {
		t.Errorf("Delete() error = %v, want %v", err, ErrUnknownDomain)
	}
	if n := s.Len(Domain("contacts")); n != 0 {
		t.Errorf("Len() = %d, want 0", n)
	}
}

func TestState_ListenerErrors(t *testing.T) {
	s := newTestState()
	errFirst, errSecond := errors.New("first"), errors.New("second")
	s.OnChange(func(Domain) error { return errFirst })
	s.OnChange(func(Domain) error { return errSecond })

	_, err := s.Notes.Add(&NoteDraft{Title: "t", Content: "c"})
	if !errors.Is(err, errFirst) || !errors.Is(err, errSecond) {
		t.Errorf("Add() error = %v, want both listener errors", err)
	}
}

func TestState_SameMillisecond(t *testing.T) {
	now := tick()()
	s := NewState(WithClock(func() time.Time { return now }))
	a, _ := s.Tasks.Add(&TaskDraft{Title: "a"})
	b, _ := s.Tasks.Add(&TaskDraft{Title: "b"})
	if a != b {
		t.Fatalf("ids %v and %v differ, want a collision", a, b)
	}
	// operations on a colliding id affect every record that has it.
	s.Tasks.Transition(a, Done)
	if got := len(s.Tasks.Column(Done)); got != 2 {
		t.Errorf("done column has %d tasks, want 2", got)
	}
	s.Tasks.Delete(a)
	if n := s.Tasks.Len(); n != 0 {
		t.Errorf("Len() = %d, want 0", n)
	}
}

func TestParseDomain(t *testing.T) {
	testCases := []struct {
		in   string
		want Domain
	}{
		{"journal", JournalDomain},
		{"entries", JournalDomain},
		{"Task", TasksDomain},
		{"notes", NotesDomain},
		{"expense", ExpensesDomain},
	}
	for _, tc := range testCases {
		if got, err := ParseDomain(tc.in); err != nil || got != tc.want {
			t.Errorf("ParseDomain(%q) = %q, %v, want %q", tc.in, got, err, tc.want)
		}
	}
	if _, err := ParseDomain("contacts"); !errors.Is(err, ErrUnknownDomain) {
		t.Errorf("ParseDomain(contacts) error = %v, want %v", err, ErrUnknownDomain)
	}
}

func TestParseID(t *testing.T) {
	if id, err := ParseID(" 1718000000000 "); err != nil || id != 1718000000000 {
		t.Errorf("ParseID() = %v, %v", id, err)
	}
	for _, s := range []string{"", "0", "-1", "abc", "1.5"} {
		if _, err := ParseID(s); err == nil {
			t.Errorf("ParseID(%q) succeeded, want an error", s)
		}
	}
}
