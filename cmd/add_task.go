package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/founder"
	"github.com/google/subcommands"
)

type addTaskCmd struct {
	title string
}

func (*addTaskCmd) Name() string     { return "add-task" }
func (*addTaskCmd) Synopsis() string { return "add a task to the board" }
func (*addTaskCmd) Usage() string {
	return `ff add-task -title <title>
ff add-task <title words...>

  Adds a task in the To Do column.
`
}

func (c *addTaskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Title of the task. The remaining arguments are used when missing.")
}

func (c *addTaskCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	title := c.title
	if title == "" {
		title = strings.Join(f.Args(), " ")
	}
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	id, err := s.Tasks.Add(&founder.TaskDraft{Title: title})
	return added("task", id, err)
}
