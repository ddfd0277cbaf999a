package store

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/mingshu-dev/yaocast/internal/dataset"
	"github.com/mingshu-dev/yaocast/internal/fortune"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSeedAndLoad(t *testing.T) {
	s := newTestStore(t)

	if err := s.Seed(dataset.Lines()); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	lines, err := s.LoadLines()
	if err != nil {
		t.Fatalf("LoadLines: %v", err)
	}
	if len(lines) != 384 {
		t.Fatalf("loaded %d lines, want 384", len(lines))
	}

	l, err := s.GetLine(2, 5)
	if err != nil {
		t.Fatalf("GetLine: %v", err)
	}
	if l.Text != "六五：黃裳，元吉。" {
		t.Errorf("text = %q", l.Text)
	}
	if l.Label != fortune.Auspicious {
		t.Errorf("label = %q, want auspicious", l.Label)
	}

	// Re-seeding must be idempotent.
	if err := s.Seed(dataset.Lines()); err != nil {
		t.Fatalf("re-Seed: %v", err)
	}
	lines, err = s.LoadLines()
	if err != nil {
		t.Fatalf("LoadLines after re-seed: %v", err)
	}
	if len(lines) != 384 {
		t.Fatalf("loaded %d lines after re-seed, want 384", len(lines))
	}
}

func TestRunLog(t *testing.T) {
	s := newTestStore(t)

	runID := uuid.New().String()
	entries := []RunEntry{
		{RunID: runID, Hexagram: 1, Position: 5, Label: fortune.Auspicious, Rule: "structural", TextScore: 1, Blend: 2.3},
		{RunID: runID, Hexagram: 24, Position: 6, Label: fortune.Inauspicious, Rule: "strong_keyword", TextScore: -6},
		{RunID: runID, Hexagram: 27, Position: 6, Label: fortune.Auspicious, Rule: "conditional", RuleName: "danger-then-fortune", TextScore: 1},
	}
	for _, e := range entries {
		if err := s.LogClassification(e); err != nil {
			t.Fatalf("LogClassification: %v", err)
		}
	}

	got, err := s.ListRun(runID)
	if err != nil {
		t.Fatalf("ListRun: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(got), len(entries))
	}
	for i, e := range got {
		if e.Hexagram != entries[i].Hexagram || e.Position != entries[i].Position {
			t.Errorf("entry %d out of order: %d-%d", i, e.Hexagram, e.Position)
		}
		if e.CreatedAt.IsZero() {
			t.Errorf("entry %d has zero timestamp", i)
		}
	}
	if got[2].RuleName != "danger-then-fortune" {
		t.Errorf("rule name = %q", got[2].RuleName)
	}

	other, err := s.ListRun(uuid.New().String())
	if err != nil {
		t.Fatalf("ListRun other: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("unrelated run returned %d entries", len(other))
	}
}
