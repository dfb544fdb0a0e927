package founder

import (
	"github.com/etnz/founder/date"
	"github.com/shopspring/decimal"
)

// ExpenseDraft is an expense being written.
type ExpenseDraft struct {
	Description string
	Amount      string
	Category    string
}

// Expenses holds the expenses, newest first.
type Expenses struct {
	// Draft is the expense being written in this session.
	Draft ExpenseDraft

	seq      sequence[Expense]
	currency string
	state    *State
}

// Add creates an expense from the draft, dated now, and clears the draft.
//
// A draft without a description or an amount is ignored: Add returns a zero
// ID and no error. The amount is not required to be a number.
func (x *Expenses) Add(d *ExpenseDraft) (ID, error) {
	if d.Description == "" || d.Amount == "" {
		return 0, nil
	}
	now := x.state.now()
	e := Expense{
		ID:          newID(now),
		Description: d.Description,
		Amount:      d.Amount,
		Category:    d.Category,
		Date:        timestamp(now),
	}
	x.seq.prepend(e)
	*d = ExpenseDraft{}
	return e.ID, x.state.changed(ExpensesDomain)
}

// Delete removes the expense id, if any.
func (x *Expenses) Delete(id ID) error {
	if !x.seq.remove(id) {
		return nil
	}
	return x.state.changed(ExpensesDomain)
}

// Get returns the expense id.
func (x *Expenses) Get(id ID) (Expense, bool) { return x.seq.get(id) }

// List returns all expenses, newest first.
func (x *Expenses) List() []Expense { return x.seq.list() }

// Within returns the expenses dated in r, newest first.
func (x *Expenses) Within(r date.Range) []Expense {
	var list []Expense
	for _, e := range x.seq.records {
		if r.ContainsTime(e.Date) {
			list = append(list, e)
		}
	}
	return list
}

// Len returns the number of expenses.
func (x *Expenses) Len() int { return x.seq.len() }

// Currency returns the currency expenses are totaled in.
func (x *Expenses) Currency() string { return x.currency }

// Total returns the sum of all expenses. It is computed on every call.
func (x *Expenses) Total() Money { return Total(x.seq.records, x.currency) }

// Total sums the amounts of expenses in currency. Amounts that are not
// numbers count as zero.
func Total(expenses []Expense, currency string) Money {
	total := M(decimal.Zero, currency)
	for _, e := range expenses {
		if v, ok := e.Value(); ok {
			total = total.Add(M(v, currency))
		}
	}
	return total
}

func (x *Expenses) encode() ([]byte, error) { return encodeSequence(x.seq.records) }

func (x *Expenses) hydrate(raw []byte) []quarantined {
	var bad []quarantined
	x.seq.records, bad = decodeSequence(raw, decodeExpense)
	return bad
}
