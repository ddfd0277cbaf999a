package dataset

import (
	"errors"
	"testing"

	"github.com/mingshu-dev/yaocast/internal/fortune"
	"github.com/mingshu-dev/yaocast/internal/hexagram"
)

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLinesComplete(t *testing.T) {
	lines := Lines()
	if len(lines) != 384 {
		t.Fatalf("corpus holds %d lines, want 384", len(lines))
	}
	counts := make(map[fortune.Label]int)
	for _, l := range lines {
		counts[l.Label]++
	}
	for _, label := range fortune.Labels() {
		if counts[label] == 0 {
			t.Errorf("no lines labeled %q", label)
		}
	}
}

func TestGet(t *testing.T) {
	l, err := Get(1, 5)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if l.Text != "九五：飛龍在天，利見大人。" {
		t.Errorf("text = %q", l.Text)
	}
	if l.Label != fortune.Auspicious {
		t.Errorf("label = %q, want auspicious", l.Label)
	}

	if _, err := Get(0, 1); !errors.Is(err, hexagram.ErrInvalidNumber) {
		t.Errorf("hexagram error = %v, want ErrInvalidNumber", err)
	}
	if _, err := Get(1, 7); !errors.Is(err, hexagram.ErrInvalidPosition) {
		t.Errorf("position error = %v, want ErrInvalidPosition", err)
	}
}

func TestForHexagram(t *testing.T) {
	lines, err := ForHexagram(24)
	if err != nil {
		t.Fatalf("ForHexagram: %v", err)
	}
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6", len(lines))
	}
	for i, l := range lines {
		if l.Position != i+1 {
			t.Errorf("line %d out of order: position %d", i, l.Position)
		}
	}
}
