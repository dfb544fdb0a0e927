package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/founder"
	"github.com/google/subcommands"
)

type addNoteCmd struct {
	title   string
	content string
}

func (*addNoteCmd) Name() string     { return "add-note" }
func (*addNoteCmd) Synopsis() string { return "write a note" }
func (*addNoteCmd) Usage() string {
	return `ff add-note -title <title> -content <content>

  Adds a note. Both the title and the content are required.
`
}

func (c *addNoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Title of the note.")
	f.StringVar(&c.content, "content", "", "Content of the note.")
}

func (c *addNoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	id, err := s.Notes.Add(&founder.NoteDraft{Title: c.title, Content: c.content})
	return added("note", id, err)
}
