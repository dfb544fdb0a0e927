package founder

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownDomain is returned when a domain name is not one of Domains.
	ErrUnknownDomain = errors.New("unknown domain")
	// ErrUnknownStatus is returned when a task status is not one of Statuses.
	ErrUnknownStatus = errors.New("unknown task status")
)

// ID identifies a record within its domain.
//
// It is the creation time in milliseconds since the Unix epoch. Two records
// created within the same millisecond get the same ID.
type ID int64

func newID(now time.Time) ID { return ID(now.UnixMilli()) }

func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

// ParseID parses an ID as printed by ID.String.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return ID(v), nil
}

// timestamp returns the creation date as persisted: UTC, millisecond precision.
func timestamp(now time.Time) time.Time { return now.UTC().Truncate(time.Millisecond) }

// Domain names one of the four record kinds. It is also the key under which
// the domain is persisted.
type Domain string

const (
	JournalDomain  Domain = "journal"
	TasksDomain    Domain = "tasks"
	NotesDomain    Domain = "notes"
	ExpensesDomain Domain = "expenses"
)

// Domains lists all domains in display order.
var Domains = []Domain{JournalDomain, TasksDomain, NotesDomain, ExpensesDomain}

// ParseDomain parses a domain name, singular forms are accepted.
func ParseDomain(s string) (Domain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "journal", "entry", "entries":
		return JournalDomain, nil
	case "tasks", "task", "board":
		return TasksDomain, nil
	case "notes", "note":
		return NotesDomain, nil
	case "expenses", "expense":
		return ExpensesDomain, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDomain, s)
	}
}

// Status is the column of a task on the board.
type Status string

const (
	Todo       Status = "todo"
	InProgress Status = "inProgress"
	Done       Status = "done"
)

// Statuses lists the board columns from left to right.
var Statuses = []Status{Todo, InProgress, Done}

// Valid reports whether s is one of Statuses.
func (s Status) Valid() bool { return slices.Contains(Statuses, s) }

// Title returns the column title.
func (s Status) Title() string {
	switch s {
	case Todo:
		return "To Do"
	case InProgress:
		return "In Progress"
	case Done:
		return "Done"
	default:
		return string(s)
	}
}

// ParseStatus parses a status leniently: case is ignored and "in-progress",
// "in_progress" or "doing" stand for InProgress.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "todo", "to-do", "to_do":
		return Todo, nil
	case "inprogress", "in-progress", "in_progress", "doing":
		return InProgress, nil
	case "done":
		return Done, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

// Categories are the expense categories offered to the user. An expense may
// also have no category.
var Categories = []string{"Food", "Transport", "Entertainment", "Utilities", "Others"}

// ParseCategory returns the category named s, ignoring case. An empty s is no
// category.
func ParseCategory(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, c := range Categories {
		if strings.EqualFold(c, s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q, want one of %s", s, strings.Join(Categories, ", "))
}

// JournalEntry is a dated journal entry.
type JournalEntry struct {
	ID      ID
	Title   string
	Content string
	Date    time.Time
}

func (e JournalEntry) key() ID { return e.ID }

// Task is a card on the kanban board.
type Task struct {
	ID     ID
	Title  string
	Status Status
}

func (t Task) key() ID { return t.ID }

// Note is a freeform note.
type Note struct {
	ID      ID
	Title   string
	Content string
}

func (n Note) key() ID { return n.ID }

// Expense is a dated expense.
//
// Amount is kept as typed by the user, and may not be a number.
type Expense struct {
	ID          ID
	Description string
	Amount      string
	Category    string
	Date        time.Time
}

func (e Expense) key() ID { return e.ID }

// Value parses the amount. It returns false when the amount is not a decimal
// number.
func (e Expense) Value() (decimal.Decimal, bool) {
	v, err := decimal.NewFromString(strings.TrimSpace(e.Amount))
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}
