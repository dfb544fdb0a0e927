package founder

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"
)

// State owns the records of all domains for a session.
//
// Each mutation of a domain notifies the listeners registered with OnChange,
// and returns their errors.
type State struct {
	Journal  *Journal
	Tasks    *Tasks
	Notes    *Notes
	Expenses *Expenses

	now       func() time.Time
	listeners []func(Domain) error
}

// Option configures a State.
type Option func(*State)

// WithClock sets the clock used to create IDs and dates.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// WithCurrency sets the currency expenses are totaled in.
func WithCurrency(currency string) Option {
	return func(s *State) { s.Expenses.currency = currency }
}

// NewState returns an empty State. Expenses are in USD unless WithCurrency is
// used.
func NewState(opts ...Option) *State {
	s := &State{now: time.Now}
	s.Journal = &Journal{state: s}
	s.Tasks = &Tasks{state: s}
	s.Notes = &Notes{state: s}
	s.Expenses = &Expenses{state: s, currency: "USD"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers f to be called after every change to a domain.
func (s *State) OnChange(f func(Domain) error) {
	s.listeners = append(s.listeners, f)
}

func (s *State) changed(d Domain) error {
	var errs error
	for _, f := range s.listeners {
		errs = errors.Join(errs, f(d))
	}
	return errs
}

// module is what the State and the Bridge need to know about a domain.
type module interface {
	Len() int
	Delete(id ID) error
	encode() ([]byte, error)
	// hydrate replaces all records with the ones decoded from raw, and returns
	// the values that could not be decoded.
	hydrate(raw []byte) []quarantined
}

func (s *State) module(d Domain) (module, error) {
	switch d {
	case JournalDomain:
		return s.Journal, nil
	case TasksDomain:
		return s.Tasks, nil
	case NotesDomain:
		return s.Notes, nil
	case ExpensesDomain:
		return s.Expenses, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, d)
	}
}

// Len returns the number of records in a domain.
func (s *State) Len(d Domain) int {
	m, err := s.module(d)
	if err != nil {
		return 0
	}
	return m.Len()
}

// Delete removes the record id from the domain d. Deleting an absent record
// does nothing.
func (s *State) Delete(d Domain, id ID) error {
	m, err := s.module(d)
	if err != nil {
		return err
	}
	return m.Delete(id)
}

// MarshalJSON encodes all domains as a single object, one array per domain.
func (s *State) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append(string(JournalDomain), nonNil(s.Journal.List()))
	w.Append(string(TasksDomain), nonNil(s.Tasks.List()))
	w.Append(string(NotesDomain), nonNil(s.Notes.List()))
	w.Append(string(ExpensesDomain), nonNil(s.Expenses.List()))
	return w.MarshalJSON()
}

var _ json.Marshaler = (*State)(nil)

// sequence is an ordered list of records, newest first.
type sequence[T interface{ key() ID }] struct {
	records []T
}

func (q *sequence[T]) prepend(r T) { q.records = slices.Insert(q.records, 0, r) }

// remove deletes all records with this id and reports whether any was found.
func (q *sequence[T]) remove(id ID) bool {
	n := len(q.records)
	q.records = slices.DeleteFunc(q.records, func(r T) bool { return r.key() == id })
	return len(q.records) != n
}

func (q *sequence[T]) get(id ID) (r T, ok bool) {
	i := slices.IndexFunc(q.records, func(r T) bool { return r.key() == id })
	if i < 0 {
		return r, false
	}
	return q.records[i], true
}

func (q *sequence[T]) list() []T { return slices.Clone(q.records) }

func (q *sequence[T]) len() int { return len(q.records) }

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
