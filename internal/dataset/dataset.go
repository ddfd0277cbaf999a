// Package dataset carries the reference corpus: all 384 hexagram lines
// with their classical texts and curated fortune labels.
package dataset

// #region imports
import (
	"fmt"
	"strings"

	"github.com/mingshu-dev/yaocast/internal/fortune"
	"github.com/mingshu-dev/yaocast/internal/hexagram"
	"github.com/mingshu-dev/yaocast/internal/lookup"
)

// #endregion

// #region line

// Line is one corpus record: a hexagram line text and its label.
type Line struct {
	Hexagram int
	Position int
	Text     string
	Label    fortune.Label
}

// Lines returns the full 384-line corpus in hexagram order.
func Lines() []Line {
	out := make([]Line, len(canonLines))
	copy(out, canonLines)
	return out
}

// ForHexagram returns the six lines of one hexagram.
func ForHexagram(number int) ([]Line, error) {
	if _, err := hexagram.ByNumber(number); err != nil {
		return nil, err
	}
	out := make([]Line, 0, 6)
	for _, l := range canonLines {
		if l.Hexagram == number {
			out = append(out, l)
		}
	}
	return out, nil
}

// Get returns a single line.
func Get(number, position int) (Line, error) {
	if _, err := hexagram.ByNumber(number); err != nil {
		return Line{}, err
	}
	if position < 1 || position > 6 {
		return Line{}, fmt.Errorf("line %d-%d: %w", number, position, hexagram.ErrInvalidPosition)
	}
	for _, l := range canonLines {
		if l.Hexagram == number && l.Position == position {
			return l, nil
		}
	}
	return Line{}, fmt.Errorf("line %d-%d not in corpus", number, position)
}

// Records converts the corpus into training records for table builds.
func Records() []lookup.Record {
	return RecordsFrom(canonLines)
}

// RecordsFrom converts an arbitrary line set into training records.
func RecordsFrom(lines []Line) []lookup.Record {
	out := make([]lookup.Record, 0, len(lines))
	for _, l := range lines {
		out = append(out, lookup.Record{
			Hexagram: l.Hexagram,
			Position: l.Position,
			Text:     l.Text,
			Label:    l.Label,
		})
	}
	return out
}

// #endregion line

// #region validate

// prefix returns the classical line designation for a position and
// polarity: 初九 for a yang bottom line, 上六 for a yin top line, and
// the 九二..六五 forms in between.
func prefix(position int, yang bool) string {
	polarity := "六"
	if yang {
		polarity = "九"
	}
	switch position {
	case 1:
		return "初" + polarity
	case 6:
		return "上" + polarity
	default:
		ordinals := []string{"", "", "二", "三", "四", "五"}
		return polarity + ordinals[position]
	}
}

// Validate checks the corpus invariants: exactly 384 lines, every
// hexagram/position pair present once, labels valid, and each text
// opening with the designation that matches the line's polarity in the
// canonical hexagram. A failure is a corpus defect.
func Validate() error {
	seen := make(map[[2]int]bool, 384)
	for _, l := range canonLines {
		h, err := hexagram.ByNumber(l.Hexagram)
		if err != nil {
			return err
		}
		if l.Position < 1 || l.Position > 6 {
			return fmt.Errorf("line %d-%d: %w", l.Hexagram, l.Position, hexagram.ErrInvalidPosition)
		}
		k := [2]int{l.Hexagram, l.Position}
		if seen[k] {
			return fmt.Errorf("line %d-%d: duplicate entry", l.Hexagram, l.Position)
		}
		seen[k] = true
		if !l.Label.Valid() {
			return fmt.Errorf("line %d-%d: invalid label %q", l.Hexagram, l.Position, l.Label)
		}
		if l.Text == "" {
			return fmt.Errorf("line %d-%d: empty text", l.Hexagram, l.Position)
		}
		want := prefix(l.Position, h.Yang(l.Position))
		if !strings.HasPrefix(l.Text, want) {
			return fmt.Errorf("line %d-%d: text opens %q, want designation %q",
				l.Hexagram, l.Position, firstRunes(l.Text, 2), want)
		}
	}
	if len(seen) != 384 {
		return fmt.Errorf("corpus holds %d lines, want 384", len(seen))
	}
	return nil
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

// #endregion validate
