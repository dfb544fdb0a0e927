package agent

import (
	"context"
	"fmt"

	"github.com/etnz/founder"
	"github.com/etnz/founder/date"
	"github.com/etnz/founder/docs"
	"github.com/etnz/founder/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

func instruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: instruction(`
			As a facilitator you are in charge of the conversation and solving the user's request.
			The user is a startup founder who keeps a journal, a task board, notes and expenses.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.
			Answer in markdown.
		`),
		},
		Library: NewLibrary(experts),
	}
}

// NewCoach returns an expert in building companies, grounded with Google
// Search.
func NewCoach() *Expert {
	return &Expert{
		Name: "Coach",
		Description: `This is an experienced startup coach.
		Ask the Coach for advice on priorities, fundraising, hiring, or spending,
		and whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: instruction(`
			You are a coach for early stage founders. You Leverage Google Search to
			ground your assertions in a solid truth. Be concrete and brief.
		`),
		},
	}
}

// NewAssistant returns the expert in charge of the founder's records in s.
func NewAssistant(s *founder.State) *Expert {
	lib := Tools(s)
	return &Expert{
		Name: "Assistant",
		Description: `This is the Assistant. It reads and edits the founder's records:
		journal entries, the task board, notes and expenses.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
			You are the assistant of a startup founder, in charge of their records.
			Use the available Tools to read the journal, the task board, the notes and the expenses,
			and to add or move tasks when you are asked to.
			Records are identified by a numeric id, shown next to each of them.
		`),
		},
		Library: NewLibrary(lib),
	}
}

// Tools returns the functions that read and update s.
func Tools(s *founder.State) []*Func {
	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "list_journal",
				Description: "Lists the journal entries, newest first, optionally only those of a period.",
				Parameters:  periodParameters,
				Response:    markdownResponse,
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				r, err := parseRange(args)
				if err != nil {
					return "", err
				}
				view := &renderer.Journal{Entries: s.Journal.List()}
				if r != nil {
					view = &renderer.Journal{Period: r.Identifier(), Entries: s.Journal.Within(*r)}
				}
				return renderer.RenderJournal(view), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "board",
				Description: "Shows the task board: the To Do, In Progress and Done columns.",
				Response:    markdownResponse,
			},
			Func: func(context.Context, map[string]any) (string, error) {
				return renderer.RenderBoard(renderer.NewBoard(s.Tasks)), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "list_notes",
				Description: "Lists the notes, newest first.",
				Response:    markdownResponse,
			},
			Func: func(context.Context, map[string]any) (string, error) {
				return renderer.RenderNotes(&renderer.Notes{Notes: s.Notes.List()}), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "list_expenses",
				Description: "Lists the expenses and their total, optionally only those of a period.",
				Parameters:  periodParameters,
				Response:    markdownResponse,
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				r, err := parseRange(args)
				if err != nil {
					return "", err
				}
				if r == nil {
					return renderer.RenderExpenses(renderer.NewExpenses("", s.Expenses.List(), s.Expenses.Currency())), nil
				}
				return renderer.RenderExpenses(renderer.NewExpenses(r.Identifier(), s.Expenses.Within(*r), s.Expenses.Currency())), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "add_task",
				Description: "Adds a task in the To Do column.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title": {Type: genai.TypeString, Description: "The title of the task."},
					},
					Required: []string{"title"},
				},
				Response: &genai.Schema{Type: genai.TypeString, Description: "The id of the new task."},
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				title, err := stringArg(args, "title", true)
				if err != nil {
					return "", err
				}
				id, err := s.Tasks.Add(&founder.TaskDraft{Title: title})
				if err != nil {
					return "", err
				}
				if id == 0 {
					return "", fmt.Errorf("a task needs a title")
				}
				return id.String(), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "move_task",
				Description: "Moves a task to another column of the board.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"id": {Type: genai.TypeString, Description: "The id of the task."},
						"status": {
							Type:        genai.TypeString,
							Description: "The column to move the task to.",
							Enum:        []string{string(founder.Todo), string(founder.InProgress), string(founder.Done)},
						},
					},
					Required: []string{"id", "status"},
				},
				Response: &genai.Schema{Type: genai.TypeString, Description: "A confirmation."},
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				sid, err := stringArg(args, "id", true)
				if err != nil {
					return "", err
				}
				id, err := founder.ParseID(sid)
				if err != nil {
					return "", err
				}
				sstatus, err := stringArg(args, "status", true)
				if err != nil {
					return "", err
				}
				status, err := founder.ParseStatus(sstatus)
				if err != nil {
					return "", err
				}
				task, ok := s.Tasks.Get(id)
				if !ok {
					return "", fmt.Errorf("there is no task %s", id)
				}
				if err := s.Tasks.Transition(id, status); err != nil {
					return "", err
				}
				return fmt.Sprintf("%q moved to %s", task.Title, status.Title()), nil
			},
		},
	}
}

var markdownResponse = &genai.Schema{
	Type:        genai.TypeString,
	Description: "A markdown document.",
}

var periodParameters = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"period": {
			Type:        genai.TypeString,
			Description: "The period to list: day, week, month, quarter or year. Everything is listed when it is missing.",
			Enum:        date.Periods,
		},
		"date": {
			Type:        genai.TypeString,
			Description: "A day in the period, today by default.\n\n" + must(docs.GetTopic("dates")),
		},
	},
}

// parseRange reads the optional "period" and "date" arguments. It returns nil
// when there is no period.
func parseRange(args map[string]any) (*date.Range, error) {
	speriod, err := stringArg(args, "period", false)
	if err != nil || speriod == "" {
		return nil, err
	}
	period, err := date.ParsePeriod(speriod)
	if err != nil {
		return nil, err
	}
	day := date.Today()
	sdate, err := stringArg(args, "date", false)
	if err != nil {
		return nil, err
	}
	if sdate != "" {
		if day, err = date.Parse(sdate); err != nil {
			return nil, fmt.Errorf("argument 'date' must be a valid date got %q: %w", sdate, err)
		}
	}
	r := date.NewRange(day, period)
	return &r, nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
