package founder

// NoteDraft is a note being written.
type NoteDraft struct {
	Title   string
	Content string
}

// Notes holds the notes, newest first.
type Notes struct {
	// Draft is the note being written in this session.
	Draft NoteDraft

	seq   sequence[Note]
	state *State
}

// Add creates a note from the draft and clears the draft.
//
// A draft without a title or a content is ignored: Add returns a zero ID and
// no error.
func (n *Notes) Add(d *NoteDraft) (ID, error) {
	if d.Title == "" || d.Content == "" {
		return 0, nil
	}
	note := Note{
		ID:      newID(n.state.now()),
		Title:   d.Title,
		Content: d.Content,
	}
	n.seq.prepend(note)
	*d = NoteDraft{}
	return note.ID, n.state.changed(NotesDomain)
}

// Delete removes the note id, if any.
func (n *Notes) Delete(id ID) error {
	if !n.seq.remove(id) {
		return nil
	}
	return n.state.changed(NotesDomain)
}

// Get returns the note id.
func (n *Notes) Get(id ID) (Note, bool) { return n.seq.get(id) }

// List returns all notes, newest first.
func (n *Notes) List() []Note { return n.seq.list() }

// Len returns the number of notes.
func (n *Notes) Len() int { return n.seq.len() }

func (n *Notes) encode() ([]byte, error) { return encodeSequence(n.seq.records) }

func (n *Notes) hydrate(raw []byte) []quarantined {
	var bad []quarantined
	n.seq.records, bad = decodeSequence(raw, decodeNote)
	return bad
}
