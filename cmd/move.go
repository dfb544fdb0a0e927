package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/founder"
	"github.com/google/subcommands"
)

type moveCmd struct{}

func (*moveCmd) Name() string     { return "move" }
func (*moveCmd) Synopsis() string { return "move a task to another column" }
func (*moveCmd) Usage() string {
	return `ff move <id> <status>

  Moves the task <id> to the column <status>: todo, inProgress or done.
  Moving a task that does not exist does nothing.
`
}

func (*moveCmd) SetFlags(*flag.FlagSet) {}

func (*moveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(stderr, "Error: move takes a task id and a status")
		return subcommands.ExitUsageError
	}
	id, err := founder.ParseID(f.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	status, err := founder.ParseStatus(f.Arg(1))
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

	task, ok := s.Tasks.Get(id)
	if !ok {
		fmt.Fprintf(stderr, "no task %s\n", id)
		return subcommands.ExitSuccess
	}
	if err := s.Tasks.Transition(id, status); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "%q moved to %s\n", task.Title, status.Title())
	return subcommands.ExitSuccess
}
