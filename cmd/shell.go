package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/founder/shell"
	"github.com/google/subcommands"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "start an interactive session" }
func (*shellCmd) Usage() string {
	return `ff shell

  Starts an interactive session to write and browse records. See 'ff topic shell'.
`
}

func (*shellCmd) SetFlags(*flag.FlagSet) {}

func (*shellCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	sh := shell.New(stdout, stdin, s.State)
	sh.Render = renderMarkdown
	if err := sh.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
