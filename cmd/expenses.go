package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/founder/renderer"
	"github.com/google/subcommands"
)

type expensesCmd struct {
	period string
	date   string
}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "list expenses and their total" }
func (*expensesCmd) Usage() string {
	return `ff expenses [-p <period>] [-d <date>]

  Lists the expenses, newest first, and their total. With -p or -d, only the
  expenses of that period are listed and totaled. See 'ff topic dates'.
`
}

func (c *expensesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Period to list (day, week, month, quarter, year).")
	f.StringVar(&c.date, "d", "", "A day in the period, today by default.")
}

func (c *expensesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rng, err := parseRange(c.period, c.date)
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

	view := renderer.NewExpenses("", s.Expenses.List(), s.Expenses.Currency())
	if rng != nil {
		view = renderer.NewExpenses(rng.Identifier(), s.Expenses.Within(*rng), s.Expenses.Currency())
	}
	printMarkdown(renderer.RenderExpenses(view))
	return subcommands.ExitSuccess
}
