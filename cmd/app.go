// Package cmd implements the ff command line: one subcommand per file.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/glamour"
	"github.com/etnz/founder"
	"github.com/etnz/founder/date"
	"github.com/etnz/founder/store"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addEntryCmd{}, "journal")
	c.Register(&entriesCmd{}, "journal")

	c.Register(&addTaskCmd{}, "tasks")
	c.Register(&boardCmd{}, "tasks")
	c.Register(&moveCmd{}, "tasks")

	c.Register(&addNoteCmd{}, "notes")
	c.Register(&notesCmd{}, "notes")

	c.Register(&addExpenseCmd{}, "expenses")
	c.Register(&expensesCmd{}, "expenses")

	c.Register(&rmCmd{}, "records")
	c.Register(&checkCmd{}, "records")
	c.Register(&queryCmd{}, "records")
	c.Register(&exportCmd{}, "records")

	c.Register(&shellCmd{}, "interactive")
	c.Register(&assistCmd{}, "interactive")

	c.Register(&topicCmd{}, "documentation")
}

// Config is the configuration shared by all subcommands. It is read from the
// environment, then overridden by the global flags.
type Config struct {
	Store    string `env:"FF_STORE" envDefault:"dir:.ff"`
	Currency string `env:"FF_CURRENCY" envDefault:"USD"`
	Verbose  bool   `env:"FF_VERBOSE"`
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
var (
	config Config
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	stdin  io.Reader = os.Stdin
)

// LoadConfig reads the configuration from the environment.
func LoadConfig() error {
	if err := env.Parse(&config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// RegisterFlags declares the global flags on f. Their defaults are the
// values read by LoadConfig, so it must be called first.
func RegisterFlags(f *flag.FlagSet) {
	f.StringVar(&config.Store, "store", config.Store, "Store of the records: dir:<folder>, sqlite:<file> or mem: (env FF_STORE)")
	f.StringVar(&config.Currency, "currency", config.Currency, "ISO 4217 currency of the expenses (env FF_CURRENCY)")
	f.BoolVar(&config.Verbose, "v", config.Verbose, "Log what is loaded and saved (env FF_VERBOSE)")
}

// newLogger returns the logger of the storage events, on stderr.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if config.Verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()
}

// session is an open store and the records hydrated from it. Every change
// made to the state is saved as it happens.
type session struct {
	*founder.State
	store  store.Store
	report founder.HydrateReport
}

// openSession opens the configured store and loads all records.
func openSession(ctx context.Context) (*session, error) {
	if !founder.KnownCurrency(config.Currency) {
		return nil, fmt.Errorf("unknown currency %q", config.Currency)
	}
	st, err := store.Open(config.Store)
	if err != nil {
		return nil, err
	}
	log := newLogger()
	s := founder.NewState(founder.WithCurrency(config.Currency))
	bridge := founder.NewBridge(st, log)
	report, err := bridge.Hydrate(ctx, s)
	if err != nil {
		st.Close()
		return nil, err
	}
	if !report.Clean() {
		log.Warn().Str("store", config.Store).Msg("some records could not be loaded and were quarantined, run 'ff check' for details")
	}
	bridge.Attach(ctx, s)
	return &session{State: s, store: st, report: report}, nil
}

func (s *session) Close() error { return s.store.Close() }

// renderMarkdown formats markdown for the terminal.
var renderMarkdown = func(md string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func printMarkdown(md string) { fmt.Fprint(stdout, renderMarkdown(md)) }

// added reports the outcome of an Add. A zero id means the record was missing
// a required field.
func added(what string, id founder.ID, err error) subcommands.ExitStatus {
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if id == 0 {
		fmt.Fprintln(stderr, "nothing added: a required field is empty")
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(stdout, "%s %s added\n", what, id)
	return subcommands.ExitSuccess
}

// parseRange returns the range selected by the -p and -d flags, or nil when
// neither is set. A lone -d selects a day, a lone -p the period of today.
func parseRange(period, day string) (*date.Range, error) {
	if period == "" && day == "" {
		return nil, nil
	}
	p := date.Daily
	if period != "" {
		var err error
		if p, err = date.ParsePeriod(period); err != nil {
			return nil, err
		}
	}
	d := date.Today()
	if day != "" {
		var err error
		if d, err = date.Parse(day); err != nil {
			return nil, err
		}
	}
	r := date.NewRange(d, p)
	return &r, nil
}
