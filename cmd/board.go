package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/founder/renderer"
	"github.com/google/subcommands"
)

type boardCmd struct{}

func (*boardCmd) Name() string     { return "board" }
func (*boardCmd) Synopsis() string { return "show the task board" }
func (*boardCmd) Usage() string {
	return `ff board

  Shows the tasks in three columns: To Do, In Progress and Done.
`
}

func (*boardCmd) SetFlags(*flag.FlagSet) {}

func (*boardCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	printMarkdown(renderer.RenderBoard(renderer.NewBoard(s.Tasks)))
	return subcommands.ExitSuccess
}
