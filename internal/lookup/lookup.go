// Package lookup holds the structural baseline table: one fortune label
// per (inner trigram, outer trigram, line position) cell, memorized from
// a training corpus, plus per-line overrides recorded when the text
// rules disagree with the corpus label.
package lookup

// #region imports
import (
	"errors"
	"fmt"

	"github.com/mingshu-dev/yaocast/internal/fortune"
	"github.com/mingshu-dev/yaocast/internal/hexagram"
)

// #endregion

// #region errors

// ErrMissingEntry is returned when a cell was never populated. With
// AllowPartial builds (cross-validation folds) callers treat this as a
// neutral fallback and count it.
var ErrMissingEntry = errors.New("no lookup entry for cell")

// ErrIncomplete is returned by Validate when the table does not cover
// all 384 cells.
var ErrIncomplete = errors.New("lookup table incomplete")

// #endregion errors

// #region types

// Key addresses one cell of the 8×8×6 table.
type Key struct {
	Inner    hexagram.Trigram
	Outer    hexagram.Trigram
	Position int
}

// lineKey addresses one of the 384 concrete lines for overrides.
type lineKey struct {
	Hexagram int
	Position int
}

// Record is one training observation: a line and its reference label.
// The text rides along so reconciliation can replay the classifier.
type Record struct {
	Hexagram int
	Position int
	Text     string
	Label    fortune.Label
}

// ExceptionRule is a curated, named deviation applied after the cells
// are populated. It pins one hexagram line to a label regardless of
// what the text rules conclude.
type ExceptionRule struct {
	Name      string
	Hexagram  int
	Position  int
	Label     fortune.Label
	Rationale string
}

// BuildConfig controls table construction.
type BuildConfig struct {
	// Exceptions are applied after the cells are populated.
	Exceptions []ExceptionRule
	// AllowPartial accepts a training set that does not cover all 384
	// cells. Lookups on missing cells then return ErrMissingEntry.
	AllowPartial bool
}

// DefaultBuildConfig returns the curated exception set over the full
// corpus.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{Exceptions: DefaultExceptions()}
}

// Table is the built baseline. It is immutable after reconciliation and
// safe for concurrent reads.
type Table struct {
	cells     map[Key]fortune.Label
	overrides map[lineKey]fortune.Label
}

// #endregion types

// #region build

// Build populates the table from training records. Every record claims
// the cell of its hexagram's trigram pair and its position; because each
// pair occurs in exactly one hexagram the mapping is direct. A second
// record for the same cell with a different label is a corpus defect.
func Build(records []Record, cfg BuildConfig) (*Table, error) {
	t := &Table{
		cells:     make(map[Key]fortune.Label, 384),
		overrides: make(map[lineKey]fortune.Label),
	}
	for _, r := range records {
		if !r.Label.Valid() {
			return nil, fmt.Errorf("line %d-%d: invalid label %q", r.Hexagram, r.Position, r.Label)
		}
		h, err := hexagram.ByNumber(r.Hexagram)
		if err != nil {
			return nil, err
		}
		if r.Position < 1 || r.Position > 6 {
			return nil, fmt.Errorf("line %d-%d: %w", r.Hexagram, r.Position, hexagram.ErrInvalidPosition)
		}
		k := Key{Inner: h.Lower(), Outer: h.Upper(), Position: r.Position}
		if prev, ok := t.cells[k]; ok && prev != r.Label {
			return nil, fmt.Errorf("cell %v: conflicting labels %q and %q", k, prev, r.Label)
		}
		t.cells[k] = r.Label
	}

	for _, ex := range cfg.Exceptions {
		if !ex.Label.Valid() {
			return nil, fmt.Errorf("exception %q: invalid label %q", ex.Name, ex.Label)
		}
		h, err := hexagram.ByNumber(ex.Hexagram)
		if err != nil {
			return nil, fmt.Errorf("exception %q: %w", ex.Name, err)
		}
		if ex.Position < 1 || ex.Position > 6 {
			return nil, fmt.Errorf("exception %q: %w", ex.Name, hexagram.ErrInvalidPosition)
		}
		k := Key{Inner: h.Lower(), Outer: h.Upper(), Position: ex.Position}
		if _, ok := t.cells[k]; !ok && !cfg.AllowPartial {
			return nil, fmt.Errorf("exception %q: cell for hexagram %d position %d never populated",
				ex.Name, ex.Hexagram, ex.Position)
		}
		t.cells[k] = ex.Label
	}

	if !cfg.AllowPartial {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// #endregion build

// #region access

// Lookup returns the label for one cell.
func (t *Table) Lookup(inner, outer hexagram.Trigram, position int) (fortune.Label, error) {
	if position < 1 || position > 6 {
		return "", fmt.Errorf("position %d: %w", position, hexagram.ErrInvalidPosition)
	}
	l, ok := t.cells[Key{Inner: inner, Outer: outer, Position: position}]
	if !ok {
		return "", fmt.Errorf("%s over %s position %d: %w",
			outer.Name(), inner.Name(), position, ErrMissingEntry)
	}
	return l, nil
}

// ForLine resolves a hexagram line through its trigram pair.
func (t *Table) ForLine(h hexagram.Hexagram, position int) (fortune.Label, error) {
	return t.Lookup(h.Lower(), h.Upper(), position)
}

// Validate checks totality: all 64 trigram pairs × 6 positions present.
func (t *Table) Validate() error {
	missing := 0
	for _, h := range hexagram.All() {
		for pos := 1; pos <= 6; pos++ {
			k := Key{Inner: h.Lower(), Outer: h.Upper(), Position: pos}
			if _, ok := t.cells[k]; !ok {
				missing++
			}
		}
	}
	if missing > 0 {
		return fmt.Errorf("%w: %d of 384 cells missing", ErrIncomplete, missing)
	}
	return nil
}

// Size reports how many cells are populated.
func (t *Table) Size() int { return len(t.cells) }

// #endregion access

// #region overrides

// AddOverride pins one concrete line to a label, trumping both the cell
// and the text rules.
func (t *Table) AddOverride(hexNum, position int, label fortune.Label) {
	t.overrides[lineKey{Hexagram: hexNum, Position: position}] = label
}

// OverrideFor reports the override for a line, if any.
func (t *Table) OverrideFor(hexNum, position int) (fortune.Label, bool) {
	l, ok := t.overrides[lineKey{Hexagram: hexNum, Position: position}]
	return l, ok
}

// OverrideCount reports how many line overrides were recorded.
func (t *Table) OverrideCount() int { return len(t.overrides) }

// Reconcile replays classify over the training records and records an
// override wherever the outcome disagrees with the reference label.
// After reconciliation every training record resolves to its reference
// label. classify must run the full cascade except the override step.
func (t *Table) Reconcile(records []Record, classify func(Record) (fortune.Label, error)) (int, error) {
	added := 0
	for _, r := range records {
		got, err := classify(r)
		if err != nil {
			return added, fmt.Errorf("reconcile line %d-%d: %w", r.Hexagram, r.Position, err)
		}
		if got != r.Label {
			t.AddOverride(r.Hexagram, r.Position, r.Label)
			added++
		}
	}
	return added, nil
}

// #endregion overrides
