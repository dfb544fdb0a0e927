// Package shell implements `ff shell`, an interactive session where records
// are written field by field in the draft of the active domain.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/founder"
	"github.com/etnz/founder/renderer"
)

// Shell is a session on a State. It keeps the active domain, the tab, while
// the drafts are kept by the State's modules.
type Shell struct {
	w      io.Writer
	r      *bufio.Reader
	state  *founder.State
	active founder.Domain
	// Render formats markdown before it is printed. It is printed as is when
	// nil.
	Render func(markdown string) string
}

// New returns a Shell on s, reading commands from r and writing to w. The
// journal is the active tab.
func New(w io.Writer, r io.Reader, s *founder.State) *Shell {
	return &Shell{
		w:      w,
		r:      bufio.NewReader(r),
		state:  s,
		active: founder.JournalDomain,
	}
}

// Active returns the active domain.
func (sh *Shell) Active() founder.Domain { return sh.active }

func (sh *Shell) prompt() string { return fmt.Sprintf("ff:%s> ", sh.active) }

// Run reads and executes commands until "bye" or the end of the input. Errors
// of a command are printed and the session goes on.
func (sh *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(sh.w, "Welcome to ff shell. Type 'help' for the commands, 'bye' to exit.")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(sh.w, sh.prompt())
		line, err := sh.r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := err != nil
		if strings.TrimSpace(line) == "" && eof {
			fmt.Fprintln(sh.w)
			return nil
		}

		quit, cmdErr := sh.Exec(line)
		if cmdErr != nil {
			fmt.Fprintf(sh.w, "error: %v\n", cmdErr)
		}
		if quit || eof {
			return nil
		}
	}
}

// Exec executes a single command line. It reports whether the session is
// over.
func (sh *Shell) Exec(line string) (quit bool, err error) {
	name, rest := cut(line)
	switch name {
	case "":
		return false, nil
	case "bye", "exit", "quit":
		return true, nil
	case "help", "?":
		sh.print(help)
		return false, nil
	case "tab":
		return false, sh.tab(rest)
	case "set":
		field, text := cut(rest)
		return false, sh.set(field, text)
	case "draft":
		sh.draft()
		return false, nil
	case "add":
		return false, sh.add()
	case "ls", "list":
		sh.list()
		return false, nil
	case "mv", "move":
		return false, sh.move(rest)
	case "rm", "delete":
		return false, sh.remove(rest)
	case "total":
		fmt.Fprintf(sh.w, "Total: %s\n", sh.state.Expenses.Total())
		return false, nil
	default:
		if d, err := founder.ParseDomain(name); err == nil && rest == "" {
			sh.active = d
			return false, nil
		}
		return false, fmt.Errorf("unknown command %q, type 'help' for the list of commands", name)
	}
}

const help = `# Commands

| Command | Does |
|:--|:--|
| tab <domain> | switch to journal, tasks, notes or expenses (or just type the domain) |
| set <field> <text> | set a field of the draft |
| draft | show the draft of the active tab |
| add | add the draft, then clear it |
| ls | list the records of the active tab |
| mv <id> <status> | move a task to todo, inProgress or done |
| rm <id> | remove a record of the active tab |
| total | total of the expenses |
| bye | leave |
`

// cut splits the command name from the rest of the line. The rest keeps its
// inner spaces.
func cut(line string) (name, rest string) {
	line = strings.TrimSpace(line)
	name, rest, _ = strings.Cut(line, " ")
	return name, strings.TrimSpace(rest)
}

func (sh *Shell) print(markdown string) {
	if sh.Render != nil {
		markdown = sh.Render(markdown)
	}
	fmt.Fprint(sh.w, markdown)
}

func (sh *Shell) tab(arg string) error {
	d, err := founder.ParseDomain(arg)
	if err != nil {
		return err
	}
	sh.active = d
	return nil
}

func (sh *Shell) set(field, text string) error {
	var target *string
	switch sh.active {
	case founder.JournalDomain:
		d := &sh.state.Journal.Draft
		target = pick(field, map[string]*string{"title": &d.Title, "content": &d.Content})
	case founder.TasksDomain:
		d := &sh.state.Tasks.Draft
		target = pick(field, map[string]*string{"title": &d.Title})
	case founder.NotesDomain:
		d := &sh.state.Notes.Draft
		target = pick(field, map[string]*string{"title": &d.Title, "content": &d.Content})
	case founder.ExpensesDomain:
		d := &sh.state.Expenses.Draft
		if strings.EqualFold(field, "category") {
			c, err := founder.ParseCategory(text)
			if err != nil {
				return err
			}
			text = c
		}
		target = pick(field, map[string]*string{"description": &d.Description, "amount": &d.Amount, "category": &d.Category})
	}
	if target == nil {
		return fmt.Errorf("%s drafts have no field %q", sh.active, field)
	}
	*target = text
	return nil
}

func pick(field string, fields map[string]*string) *string { return fields[strings.ToLower(field)] }

func (sh *Shell) draft() {
	switch sh.active {
	case founder.JournalDomain:
		d := sh.state.Journal.Draft
		fmt.Fprintf(sh.w, "title: %s\ncontent: %s\n", d.Title, d.Content)
	case founder.TasksDomain:
		fmt.Fprintf(sh.w, "title: %s\n", sh.state.Tasks.Draft.Title)
	case founder.NotesDomain:
		d := sh.state.Notes.Draft
		fmt.Fprintf(sh.w, "title: %s\ncontent: %s\n", d.Title, d.Content)
	case founder.ExpensesDomain:
		d := sh.state.Expenses.Draft
		fmt.Fprintf(sh.w, "description: %s\namount: %s\ncategory: %s\n", d.Description, d.Amount, d.Category)
	}
}

func (sh *Shell) add() error {
	var id founder.ID
	var err error
	switch sh.active {
	case founder.JournalDomain:
		id, err = sh.state.Journal.Add(&sh.state.Journal.Draft)
	case founder.TasksDomain:
		id, err = sh.state.Tasks.Add(&sh.state.Tasks.Draft)
	case founder.NotesDomain:
		id, err = sh.state.Notes.Add(&sh.state.Notes.Draft)
	case founder.ExpensesDomain:
		id, err = sh.state.Expenses.Add(&sh.state.Expenses.Draft)
	}
	if id == 0 && err == nil {
		fmt.Fprintln(sh.w, "nothing added: a required field is empty")
		return nil
	}
	if id != 0 {
		fmt.Fprintf(sh.w, "added %s\n", id)
	}
	return err
}

func (sh *Shell) list() {
	switch sh.active {
	case founder.JournalDomain:
		sh.print(renderer.RenderJournal(&renderer.Journal{Entries: sh.state.Journal.List()}))
	case founder.TasksDomain:
		sh.print(renderer.RenderBoard(renderer.NewBoard(sh.state.Tasks)))
	case founder.NotesDomain:
		sh.print(renderer.RenderNotes(&renderer.Notes{Notes: sh.state.Notes.List()}))
	case founder.ExpensesDomain:
		x := sh.state.Expenses
		sh.print(renderer.RenderExpenses(renderer.NewExpenses("", x.List(), x.Currency())))
	}
}

func (sh *Shell) move(args string) error {
	if sh.active != founder.TasksDomain {
		return errors.New("only tasks can be moved, switch to the tasks tab first")
	}
	sid, sstatus := cut(args)
	id, err := founder.ParseID(sid)
	if err != nil {
		return err
	}
	status, err := founder.ParseStatus(sstatus)
	if err != nil {
		return err
	}
	if _, ok := sh.state.Tasks.Get(id); !ok {
		fmt.Fprintf(sh.w, "no task %s\n", id)
		return nil
	}
	return sh.state.Tasks.Transition(id, status)
}

func (sh *Shell) remove(arg string) error {
	id, err := founder.ParseID(arg)
	if err != nil {
		return err
	}
	n := sh.state.Len(sh.active)
	if err := sh.state.Delete(sh.active, id); err != nil {
		return err
	}
	if sh.state.Len(sh.active) == n {
		fmt.Fprintf(sh.w, "no %s record %s\n", sh.active, id)
	}
	return nil
}
