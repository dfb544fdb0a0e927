package founder

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNotes(t *testing.T) {
	s := newTestState()

	for _, d := range []NoteDraft{{}, {Title: "only title"}, {Content: "only content"}} {
		if id, err := s.Notes.Add(&d); id != 0 || err != nil {
			t.Errorf("Add(%+v) = %v, %v: want a no-op", d, id, err)
		}
	}
	if s.Notes.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Notes.Len())
	}

	pitch, _ := s.Notes.Add(&NoteDraft{Title: "Pitch", Content: "Problem, solution, team."})
	hiring, _ := s.Notes.Add(&NoteDraft{Title: "Hiring", Content: "First engineer."})

	want := []Note{
		{ID: hiring, Title: "Hiring", Content: "First engineer."},
		{ID: pitch, Title: "Pitch", Content: "Problem, solution, team."},
	}
	if diff := cmp.Diff(want, s.Notes.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}

	if err := s.Delete(NotesDomain, pitch); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if diff := cmp.Diff(want[:1], s.Notes.List()); diff != "" {
		t.Errorf("List() after delete mismatch (-want +got):\n%s", diff)
	}
}
