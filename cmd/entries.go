package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/founder/renderer"
	"github.com/google/subcommands"
)

type entriesCmd struct {
	period string
	date   string
}

func (*entriesCmd) Name() string     { return "entries" }
func (*entriesCmd) Synopsis() string { return "list journal entries" }
func (*entriesCmd) Usage() string {
	return `ff entries [-p <period>] [-d <date>]

  Lists the journal entries, newest first. With -p or -d, only the entries of
  that period are listed. See 'ff topic dates'.
`
}

func (c *entriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Period to list (day, week, month, quarter, year).")
	f.StringVar(&c.date, "d", "", "A day in the period, today by default.")
}

func (c *entriesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	view := &renderer.Journal{Entries: s.Journal.List()}
	if rng != nil {
		view = &renderer.Journal{Period: rng.Identifier(), Entries: s.Journal.Within(*rng)}
	}
	printMarkdown(renderer.RenderJournal(view))
	return subcommands.ExitSuccess
}
