package founder

import "fmt"

// TaskDraft is a task being written.
type TaskDraft struct {
	Title string
}

// Tasks holds the kanban board tasks, newest first.
type Tasks struct {
	// Draft is the task being written in this session.
	Draft TaskDraft

	seq   sequence[Task]
	state *State
}

// Add creates a "todo" task from the draft and clears the draft.
//
// A draft without a title is ignored: Add returns a zero ID and no error.
func (t *Tasks) Add(d *TaskDraft) (ID, error) {
	if d.Title == "" {
		return 0, nil
	}
	task := Task{
		ID:     newID(t.state.now()),
		Title:  d.Title,
		Status: Todo,
	}
	t.seq.prepend(task)
	*d = TaskDraft{}
	return task.ID, t.state.changed(TasksDomain)
}

// Transition moves the task id to the column s.
//
// The status is set even if the task is already in s. An absent task is
// ignored. A status that is not one of Statuses is an error.
func (t *Tasks) Transition(id ID, s Status) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	found := false
	for i := range t.seq.records {
		if t.seq.records[i].ID == id {
			t.seq.records[i].Status = s
			found = true
		}
	}
	if !found {
		return nil
	}
	return t.state.changed(TasksDomain)
}

// Delete removes the task id, if any.
func (t *Tasks) Delete(id ID) error {
	if !t.seq.remove(id) {
		return nil
	}
	return t.state.changed(TasksDomain)
}

// Get returns the task id.
func (t *Tasks) Get(id ID) (Task, bool) { return t.seq.get(id) }

// List returns all tasks, newest first.
func (t *Tasks) List() []Task { return t.seq.list() }

// Column returns the tasks with status s, newest first.
func (t *Tasks) Column(s Status) []Task {
	var column []Task
	for _, task := range t.seq.records {
		if task.Status == s {
			column = append(column, task)
		}
	}
	return column
}

// Len returns the number of tasks.
func (t *Tasks) Len() int { return t.seq.len() }

func (t *Tasks) encode() ([]byte, error) { return encodeSequence(t.seq.records) }

func (t *Tasks) hydrate(raw []byte) []quarantined {
	var bad []quarantined
	t.seq.records, bad = decodeSequence(raw, decodeTask)
	return bad
}
