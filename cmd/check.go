package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/founder/renderer"
	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "report what is loaded from the store" }
func (*checkCmd) Usage() string {
	return `ff check

  Loads every domain and reports how many records were loaded, and how many
  could not be read and were moved to the domain's quarantine key.
`
}

func (*checkCmd) SetFlags(*flag.FlagSet) {}

func (*checkCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	printMarkdown(renderer.RenderCheck(&renderer.Check{Store: config.Store, Report: s.report}))
	return subcommands.ExitSuccess
}
