package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/founder"
	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a record" }
func (*rmCmd) Usage() string {
	return `ff rm <domain> <id>

  Removes the record <id> from <domain>: journal, tasks, notes or expenses.
  Removing a record that does not exist does nothing.
`
}

func (*rmCmd) SetFlags(*flag.FlagSet) {}

func (*rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(stderr, "Error: rm takes a domain and a record id")
		return subcommands.ExitUsageError
	}
	domain, err := founder.ParseDomain(f.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	id, err := founder.ParseID(f.Arg(1))
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

	n := s.Len(domain)
	if err := s.Delete(domain, id); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if s.Len(domain) == n {
		fmt.Fprintf(stderr, "no %s record %s\n", domain, id)
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(stdout, "%s %s removed\n", domain, id)
	return subcommands.ExitSuccess
}
