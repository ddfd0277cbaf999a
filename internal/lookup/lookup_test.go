package lookup

import (
	"errors"
	"testing"

	"github.com/mingshu-dev/yaocast/internal/fortune"
	"github.com/mingshu-dev/yaocast/internal/hexagram"
)

func TestBuildPartialAndLookup(t *testing.T) {
	records := []Record{
		{Hexagram: 1, Position: 2, Text: "見龍在田，利見大人。", Label: fortune.Auspicious},
		{Hexagram: 1, Position: 6, Text: "亢龍有悔。", Label: fortune.Inauspicious},
		{Hexagram: 2, Position: 5, Text: "黃裳，元吉。", Label: fortune.Auspicious},
	}
	table, err := Build(records, BuildConfig{AllowPartial: true})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if table.Size() != 3 {
		t.Errorf("size = %d, want 3", table.Size())
	}

	got, err := table.Lookup(hexagram.Qian, hexagram.Qian, 2)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != fortune.Auspicious {
		t.Errorf("label = %q, want auspicious", got)
	}

	if _, err := table.Lookup(hexagram.Qian, hexagram.Qian, 4); !errors.Is(err, ErrMissingEntry) {
		t.Errorf("missing cell error = %v, want ErrMissingEntry", err)
	}
	if _, err := table.Lookup(hexagram.Qian, hexagram.Qian, 7); !errors.Is(err, hexagram.ErrInvalidPosition) {
		t.Errorf("position error = %v, want ErrInvalidPosition", err)
	}
	if err := table.Validate(); !errors.Is(err, ErrIncomplete) {
		t.Errorf("Validate = %v, want ErrIncomplete", err)
	}
}

func TestBuildRejectsBadRecords(t *testing.T) {
	cases := []struct {
		name   string
		record Record
	}{
		{"bad label", Record{Hexagram: 1, Position: 1, Label: fortune.Label("great")}},
		{"bad hexagram", Record{Hexagram: 65, Position: 1, Label: fortune.Neutral}},
		{"bad position", Record{Hexagram: 1, Position: 0, Label: fortune.Neutral}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Build([]Record{tc.record}, BuildConfig{AllowPartial: true}); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestBuildConflictingCell(t *testing.T) {
	records := []Record{
		{Hexagram: 1, Position: 1, Label: fortune.Neutral},
		{Hexagram: 1, Position: 1, Label: fortune.Auspicious},
	}
	if _, err := Build(records, BuildConfig{AllowPartial: true}); err == nil {
		t.Fatal("expected conflict error")
	}
}

func TestExceptionPinsCell(t *testing.T) {
	records := []Record{
		{Hexagram: 15, Position: 5, Text: "不富以其鄰，利用侵伐，无不利。", Label: fortune.Auspicious},
	}
	cfg := BuildConfig{
		AllowPartial: true,
		Exceptions: []ExceptionRule{
			{Name: "modesty-fifth-line", Hexagram: 15, Position: 5, Label: fortune.Neutral},
		},
	}
	table, err := Build(records, cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	h, err := hexagram.ByNumber(15)
	if err != nil {
		t.Fatal(err)
	}
	got, err := table.ForLine(h, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got != fortune.Neutral {
		t.Errorf("label = %q, want neutral after exception", got)
	}
}

func TestExceptionRequiresPopulatedCell(t *testing.T) {
	cfg := BuildConfig{
		Exceptions: []ExceptionRule{
			{Name: "dangling", Hexagram: 15, Position: 5, Label: fortune.Neutral},
		},
	}
	if _, err := Build(nil, cfg); err == nil {
		t.Fatal("expected error for exception on empty table")
	}
}

func TestReconcileRecordsOverrides(t *testing.T) {
	records := []Record{
		{Hexagram: 1, Position: 2, Label: fortune.Auspicious},
		{Hexagram: 1, Position: 6, Label: fortune.Inauspicious},
	}
	table, err := Build(records, BuildConfig{AllowPartial: true})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Classifier gets the second line wrong; reconciliation must pin it.
	classify := func(r Record) (fortune.Label, error) {
		if r.Position == 6 {
			return fortune.Neutral, nil
		}
		return r.Label, nil
	}
	added, err := table.Reconcile(records, classify)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if added != 1 {
		t.Errorf("added = %d, want 1", added)
	}
	if l, ok := table.OverrideFor(1, 6); !ok || l != fortune.Inauspicious {
		t.Errorf("override = %q,%v, want inauspicious,true", l, ok)
	}
	if _, ok := table.OverrideFor(1, 2); ok {
		t.Error("unexpected override for a line the classifier got right")
	}
}
