package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/founder"
	"github.com/google/subcommands"
)

type addExpenseCmd struct {
	description string
	amount      string
	category    string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record an expense" }
func (*addExpenseCmd) Usage() string {
	return `ff add-expense -description <text> -amount <amount> [-category <category>]

  Records an expense, dated now. The description and the amount are required.
  The amount is kept as typed: when it is not a number it counts as zero in totals.
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "description", "", "What the money was spent on.")
	f.StringVar(&c.amount, "amount", "", "Amount spent, e.g. 4.50.")
	f.StringVar(&c.category, "category", "", "One of "+strings.Join(founder.Categories, ", ")+".")
}

func (c *addExpenseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	category, err := founder.ParseCategory(c.category)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	id, err := s.Expenses.Add(&founder.ExpenseDraft{Description: c.description, Amount: c.amount, Category: category})
	return added("expense", id, err)
}
