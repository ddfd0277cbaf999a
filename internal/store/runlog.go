package store

import (
	"fmt"
	"time"

	"github.com/mingshu-dev/yaocast/internal/fortune"
)

// #region run-entry
// RunEntry is one logged classification within a run.
type RunEntry struct {
	RunID     string
	Hexagram  int
	Position  int
	Label     fortune.Label
	Rule      string
	RuleName  string
	TextScore int
	Blend     float64
	CreatedAt time.Time
}
// #endregion run-entry

// #region log-classification
// LogClassification writes one entry to the classification log.
func (s *Store) LogClassification(entry RunEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO classification_log (run_id, hexagram, position, label, rule, rule_name, text_score, blend, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.RunID,
		entry.Hexagram,
		entry.Position,
		string(entry.Label),
		entry.Rule,
		nullIfEmpty(entry.RuleName),
		entry.TextScore,
		entry.Blend,
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log classification: %w", err)
	}
	return nil
}
// #endregion log-classification

// #region list-run
// ListRun reads the entries of one run in insertion order.
func (s *Store) ListRun(runID string) ([]RunEntry, error) {
	rows, err := s.db.Query(
		`SELECT run_id, hexagram, position, label, rule, rule_name, text_score, blend, created_at
		 FROM classification_log WHERE run_id = ? ORDER BY id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list run: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var label string
		var ruleName *string
		var createdStr string
		if err := rows.Scan(&e.RunID, &e.Hexagram, &e.Position, &label, &e.Rule, &ruleName, &e.TextScore, &e.Blend, &createdStr); err != nil {
			return nil, fmt.Errorf("scan run entry: %w", err)
		}
		e.Label, err = fortune.Parse(label)
		if err != nil {
			return nil, err
		}
		if ruleName != nil {
			e.RuleName = *ruleName
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
// #endregion list-run

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
// #endregion helpers
