// Command ff keeps a founder's journal, task board, notes and expenses.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/founder/cmd"
	"github.com/google/subcommands"
)

func main() {
	if err := cmd.LoadConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	cmd.RegisterFlags(flag.CommandLine)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Handles shell completion requests, and COMP_INSTALL=1 ff.
	cmd.Completion(commander).Complete("ff")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
