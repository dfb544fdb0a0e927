package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/founder"
	"github.com/google/subcommands"
)

type addEntryCmd struct {
	title   string
	content string
}

func (*addEntryCmd) Name() string     { return "add-entry" }
func (*addEntryCmd) Synopsis() string { return "write a journal entry" }
func (*addEntryCmd) Usage() string {
	return `ff add-entry -title <title> -content <content>

  Adds an entry to the journal, dated now. Both the title and the content are required.
`
}

func (c *addEntryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Title of the entry.")
	f.StringVar(&c.content, "content", "", "Content of the entry.")
}

func (c *addEntryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	id, err := s.Journal.Add(&founder.JournalDraft{Title: c.title, Content: c.content})
	return added("entry", id, err)
}
