package founder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// This file contains the codec of a domain's records as persisted in the store.
//
// A domain value is an envelope:
//
//	{"version":1,"records":[{"id":1718000000000,"title":"..."}, ...]}
//
// A bare array of records is also read, as version 0: it is how the records
// were stored before the envelope existed.
//
// Records are decoded one by one. A record with a missing or mistyped field is
// not loaded; it is returned as quarantined, with the reason, so that the
// caller can keep it aside. A value that cannot be read at all is quarantined
// as a whole and the domain starts empty.

// formatVersion is the version written in every envelope.
const formatVersion = 1

// timeFormat is ISO-8601 with milliseconds.
const timeFormat = "2006-01-02T15:04:05.000Z07:00"

// quarantined is a stored value that could not be loaded.
type quarantined struct {
	raw    json.RawMessage // always valid JSON
	reason error
}

func (e JournalEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("title", e.Title)
	w.Append("content", e.Content)
	w.Append("date", e.Date.UTC().Format(timeFormat))
	return w.MarshalJSON()
}

func (t Task) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("title", t.Title)
	w.Append("status", t.Status)
	return w.MarshalJSON()
}

func (n Note) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", n.ID)
	w.Append("title", n.Title)
	w.Append("content", n.Content)
	return w.MarshalJSON()
}

func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("description", e.Description)
	w.Append("amount", e.Amount)
	w.Optional("category", e.Category)
	w.Append("date", e.Date.UTC().Format(timeFormat))
	return w.MarshalJSON()
}

// encodeSequence encodes records in the current envelope.
func encodeSequence[T any](records []T) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("version", formatVersion)
	w.Append("records", nonNil(records))
	return w.MarshalJSON()
}

// decodeSequence reads a domain value. It returns the records that could be
// decoded, in stored order, and the values that could not.
func decodeSequence[T any](raw []byte, decode func(*fields) T) ([]T, []quarantined) {
	raw = bytes.TrimSpace(raw)
	if !json.Valid(raw) {
		// keep the text as a JSON string so that it can be stored again.
		text, _ := json.Marshal(string(raw))
		return nil, []quarantined{{raw: text, reason: errors.New("not valid JSON")}}
	}

	var items []json.RawMessage
	if len(raw) > 0 && raw[0] == '[' {
		// version 0: a bare array.
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, []quarantined{{raw: raw, reason: err}}
		}
	} else {
		var envelope struct {
			Version *int              `json:"version"`
			Records []json.RawMessage `json:"records"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return nil, []quarantined{{raw: raw, reason: fmt.Errorf("not an envelope: %w", err)}}
		}
		if envelope.Version == nil || *envelope.Version != formatVersion {
			return nil, []quarantined{{raw: raw, reason: errors.New("unsupported format version")}}
		}
		items = envelope.Records
	}

	records := make([]T, 0, len(items))
	var bad []quarantined
	for i, item := range items {
		f, err := newFields(item)
		if err != nil {
			bad = append(bad, quarantined{raw: item, reason: fmt.Errorf("record #%d: %w", i, err)})
			continue
		}
		r := decode(f)
		if err := f.err(); err != nil {
			bad = append(bad, quarantined{raw: item, reason: fmt.Errorf("record #%d: %w", i, err)})
			continue
		}
		records = append(records, r)
	}
	return records, bad
}

func decodeJournalEntry(f *fields) JournalEntry {
	return JournalEntry{
		ID:      f.id(),
		Title:   f.text("title", true),
		Content: f.text("content", true),
		Date:    f.time("date"),
	}
}

func decodeTask(f *fields) Task {
	t := Task{
		ID:    f.id(),
		Title: f.text("title", true),
	}
	status := Status(f.text("status", true))
	if status != "" && !status.Valid() {
		f.fail(fmt.Errorf("%w: %q", ErrUnknownStatus, status))
	}
	t.Status = status
	return t
}

func decodeNote(f *fields) Note {
	return Note{
		ID:      f.id(),
		Title:   f.text("title", true),
		Content: f.text("content", true),
	}
}

func decodeExpense(f *fields) Expense {
	return Expense{
		ID:          f.id(),
		Description: f.text("description", true),
		Amount:      f.amount("amount"),
		Category:    f.text("category", false),
		Date:        f.time("date"),
	}
}

// fields reads the properties of a stored record, collecting every problem
// met on the way.
type fields struct {
	m    map[string]any
	errs []error
}

func newFields(raw []byte) (*fields, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("not an object: %w", err)
	}
	if m == nil {
		return nil, errors.New("not an object")
	}
	return &fields{m: m}, nil
}

func (f *fields) fail(err error) { f.errs = append(f.errs, err) }

func (f *fields) err() error { return errors.Join(f.errs...) }

// id reads the mandatory "id" property, a positive integer.
func (f *fields) id() ID {
	v, ok := f.m["id"]
	if !ok {
		f.fail(errors.New(`missing property "id"`))
		return 0
	}
	n, ok := v.(json.Number)
	if !ok {
		f.fail(fmt.Errorf(`property "id" must be a number, got %T`, v))
		return 0
	}
	i, err := n.Int64()
	if err != nil || i <= 0 {
		f.fail(fmt.Errorf(`property "id" must be a positive integer, got %s`, n))
		return 0
	}
	return ID(i)
}

// text reads a string property. A required property must be present and not
// empty; an optional one may be missing.
func (f *fields) text(name string, required bool) string {
	v, ok := f.m[name]
	if !ok || v == nil {
		if required {
			f.fail(fmt.Errorf("missing property %q", name))
		}
		return ""
	}
	s, ok := v.(string)
	if !ok {
		f.fail(fmt.Errorf("property %q must be a string, got %T", name, v))
		return ""
	}
	if required && s == "" {
		f.fail(fmt.Errorf("property %q must not be empty", name))
	}
	return s
}

// amount reads a mandatory amount, either a string or a number. Numbers are
// kept as their text.
func (f *fields) amount(name string) string {
	if n, ok := f.m[name].(json.Number); ok {
		return n.String()
	}
	return f.text(name, true)
}

// time reads a mandatory ISO-8601 date.
func (f *fields) time(name string) time.Time {
	s := f.text(name, true)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		f.fail(fmt.Errorf("property %q must be an ISO-8601 date: %w", name, err))
		return time.Time{}
	}
	return t.UTC()
}
