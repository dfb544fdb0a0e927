package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/founder/renderer"
	"github.com/google/subcommands"
)

type notesCmd struct{}

func (*notesCmd) Name() string     { return "notes" }
func (*notesCmd) Synopsis() string { return "list notes" }
func (*notesCmd) Usage() string {
	return `ff notes

  Lists the notes, newest first.
`
}

func (*notesCmd) SetFlags(*flag.FlagSet) {}

func (*notesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	printMarkdown(renderer.RenderNotes(&renderer.Notes{Notes: s.Notes.List()}))
	return subcommands.ExitSuccess
}
