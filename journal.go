package founder

import "github.com/etnz/founder/date"

// JournalDraft is a journal entry being written.
type JournalDraft struct {
	Title   string
	Content string
}

// Journal holds the journal entries, newest first.
type Journal struct {
	// Draft is the entry being written in this session.
	Draft JournalDraft

	seq   sequence[JournalEntry]
	state *State
}

// Add creates an entry from the draft, dated now, and clears the draft.
//
// A draft without a title or a content is ignored: Add returns a zero ID and
// no error.
func (j *Journal) Add(d *JournalDraft) (ID, error) {
	if d.Title == "" || d.Content == "" {
		return 0, nil
	}
	now := j.state.now()
	e := JournalEntry{
		ID:      newID(now),
		Title:   d.Title,
		Content: d.Content,
		Date:    timestamp(now),
	}
	j.seq.prepend(e)
	*d = JournalDraft{}
	return e.ID, j.state.changed(JournalDomain)
}

// Delete removes the entry id, if any.
func (j *Journal) Delete(id ID) error {
	if !j.seq.remove(id) {
		return nil
	}
	return j.state.changed(JournalDomain)
}

// Get returns the entry id.
func (j *Journal) Get(id ID) (JournalEntry, bool) { return j.seq.get(id) }

// List returns all entries, newest first.
func (j *Journal) List() []JournalEntry { return j.seq.list() }

// Within returns the entries dated in r, newest first.
func (j *Journal) Within(r date.Range) []JournalEntry {
	var list []JournalEntry
	for _, e := range j.seq.records {
		if r.ContainsTime(e.Date) {
			list = append(list, e)
		}
	}
	return list
}

// Len returns the number of entries.
func (j *Journal) Len() int { return j.seq.len() }

func (j *Journal) encode() ([]byte, error) { return encodeSequence(j.seq.records) }

func (j *Journal) hydrate(raw []byte) []quarantined {
	var bad []quarantined
	j.seq.records, bad = decodeSequence(raw, decodeJournalEntry)
	return bad
}
