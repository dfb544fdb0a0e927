package founder

import (
	"testing"
	"time"

	"github.com/etnz/founder/date"
)

func TestExpenses_Total(t *testing.T) {
	s := newTestState()

	if _, err := s.Expenses.Add(&ExpenseDraft{Description: "Coffee", Amount: "4.5", Category: "Food"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if got, want := s.Expenses.Total().String(), "$4.50"; got != want {
		t.Errorf("Total() = %s, want %s", got, want)
	}

	id, err := s.Expenses.Add(&ExpenseDraft{Description: "Bad", Amount: "xyz"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if id == 0 {
		t.Fatal("an expense with an invalid amount must still be added")
	}
	if got, want := s.Expenses.Total().String(), "$4.50"; got != want {
		t.Errorf("Total() = %s, want %s", got, want)
	}
	if e, _ := s.Expenses.Get(id); e.Amount != "xyz" {
		t.Errorf("Amount = %q, want the typed text %q", e.Amount, "xyz")
	}
}

func TestExpenses_Add(t *testing.T) {
	testCases := []struct {
		name  string
		draft ExpenseDraft
		added bool
	}{
		{name: "complete", draft: ExpenseDraft{Description: "Train", Amount: "12", Category: "Transport"}, added: true},
		{name: "no category", draft: ExpenseDraft{Description: "Train", Amount: "12"}, added: true},
		{name: "missing amount", draft: ExpenseDraft{Description: "Train"}},
		{name: "missing description", draft: ExpenseDraft{Amount: "12"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestState()
			d := tc.draft
			id, err := s.Expenses.Add(&d)
			if err != nil {
				t.Fatalf("Add() error = %v", err)
			}
			if got := id != 0; got != tc.added {
				t.Fatalf("added = %v, want %v", got, tc.added)
			}
			if !tc.added {
				return
			}
			e, _ := s.Expenses.Get(id)
			if e.Description != tc.draft.Description || e.Amount != tc.draft.Amount || e.Category != tc.draft.Category {
				t.Errorf("Get() = %+v, want fields of %+v", e, tc.draft)
			}
			if e.Date.IsZero() {
				t.Error("Date is not set")
			}
			if d != (ExpenseDraft{}) {
				t.Errorf("draft not cleared: %+v", d)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	testCases := []struct {
		name     string
		amounts  []string
		currency string
		want     string
	}{
		{name: "empty", currency: "USD", want: "$0.00"},
		{name: "sum", amounts: []string{"1.25", "2.5", "10"}, currency: "USD", want: "$13.75"},
		{name: "invalid count as zero", amounts: []string{"3", "abc", "", "4.5.6"}, currency: "USD", want: "$3.00"},
		{name: "rounded", amounts: []string{"0.005", "0.001"}, currency: "USD", want: "$0.01"},
		{name: "spaces", amounts: []string{" 2 "}, currency: "USD", want: "$2.00"},
		{name: "beyond int64 cents", amounts: []string{"100000000000000000", "4.5"}, currency: "USD", want: "$100,000,000,000,000,004.50"},
		{name: "leading number is not enough", amounts: []string{"4.5abc", "1"}, currency: "USD", want: "$1.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var list []Expense
			for i, a := range tc.amounts {
				list = append(list, Expense{ID: ID(i + 1), Description: "x", Amount: a})
			}
			if got := Total(list, tc.currency).String(); got != tc.want {
				t.Errorf("Total() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExpenses_Within(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.Local)
	s := NewState(WithClock(func() time.Time { return now }))
	s.Expenses.Add(&ExpenseDraft{Description: "june", Amount: "3"})
	now = now.AddDate(0, 1, 0)
	s.Expenses.Add(&ExpenseDraft{Description: "july", Amount: "5"})

	june := s.Expenses.Within(date.NewRange(date.New(2025, time.June, 1), date.Monthly))
	if len(june) != 1 || june[0].Description != "june" {
		t.Fatalf("Within(june) = %v", june)
	}
	if got := Total(june, "USD").String(); got != "$3.00" {
		t.Errorf("Total(june) = %s, want $3.00", got)
	}
}

func TestParseCategory(t *testing.T) {
	testCases := []struct {
		in, want string
		err      bool
	}{
		{in: "", want: ""},
		{in: "Food", want: "Food"},
		{in: " transport ", want: "Transport"},
		{in: "rockets", err: true},
	}
	for _, tc := range testCases {
		got, err := ParseCategory(tc.in)
		if (err != nil) != tc.err || got != tc.want {
			t.Errorf("ParseCategory(%q) = %q, %v, want %q, error %v", tc.in, got, err, tc.want, tc.err)
		}
	}
}
