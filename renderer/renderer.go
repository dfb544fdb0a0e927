// Package renderer turns the records of each domain into markdown, ready to be
// printed on a terminal.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
	"time"

	"github.com/etnz/founder"
)

//go:embed *.md
var templates embed.FS

// Journal is the view of a list of journal entries.
type Journal struct {
	Period  string // optional, a date.Range identifier
	Entries []founder.JournalEntry
}

// Column is one column of the kanban board.
type Column struct {
	Status founder.Status
	Tasks  []founder.Task
}

// Title returns the column heading.
func (c Column) Title() string { return c.Status.Title() }

// Board is the view of all tasks, one column per status.
type Board struct {
	Columns []Column
}

// NewBoard splits tasks in columns.
func NewBoard(tasks *founder.Tasks) *Board {
	b := &Board{}
	for _, s := range founder.Statuses {
		b.Columns = append(b.Columns, Column{Status: s, Tasks: tasks.Column(s)})
	}
	return b
}

// Notes is the view of all notes.
type Notes struct {
	Notes []founder.Note
}

// Expenses is the view of a list of expenses and their total.
type Expenses struct {
	Period   string // optional, a date.Range identifier
	Currency string
	Expenses []founder.Expense
	Total    founder.Money
}

// NewExpenses returns the view of list, totaled in currency.
func NewExpenses(period string, list []founder.Expense, currency string) *Expenses {
	return &Expenses{
		Period:   period,
		Currency: currency,
		Expenses: list,
		Total:    founder.Total(list, currency),
	}
}

// Check is the view of what was loaded from a store.
type Check struct {
	Store  string
	Report founder.HydrateReport
}

// Domains lists the domains in display order.
func (c *Check) Domains() []founder.Domain { return founder.Domains }

// QuarantineKey returns where records of d are quarantined.
func (c *Check) QuarantineKey(d founder.Domain) string { return founder.QuarantineKey(d) }

func RenderJournal(j *Journal) string {
	return renderTemplate("journal", "journal.md", map[string]string{"period": "period.md"}, j)
}

func RenderBoard(b *Board) string {
	return renderTemplate("board", "board.md", nil, b)
}

func RenderNotes(n *Notes) string {
	return renderTemplate("notes", "notes.md", nil, n)
}

func RenderExpenses(x *Expenses) string {
	return renderTemplate("expenses", "expenses.md", map[string]string{"period": "period.md"}, x)
}

func RenderCheck(c *Check) string {
	return renderTemplate("check", "check.md", nil, c)
}

var funcs = template.FuncMap{
	"day":    day,
	"amount": amount,
	"cell":   cell,
}

// day formats a record date in the local time zone.
func day(t time.Time) string { return t.Local().Format("2006-01-02 15:04") }

// amount formats the amount of e in currency, or returns it as typed if it is
// not a number.
func amount(e founder.Expense, currency string) string {
	v, ok := e.Value()
	if !ok {
		return cell(e.Amount)
	}
	return founder.M(v, currency).String()
}

// cell makes s fit in a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
