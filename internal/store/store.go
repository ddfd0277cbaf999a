// Package store persists the corpus and classification runs in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"sort"

	_ "modernc.org/sqlite"

	"github.com/mingshu-dev/yaocast/internal/dataset"
	"github.com/mingshu-dev/yaocast/internal/fortune"
	"github.com/mingshu-dev/yaocast/internal/hexagram"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS hexagrams (
	number   INTEGER PRIMARY KEY CHECK (number BETWEEN 1 AND 64),
	value    INTEGER NOT NULL UNIQUE CHECK (value BETWEEN 0 AND 63),
	name     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS lines (
	hexagram INTEGER NOT NULL,
	position INTEGER NOT NULL CHECK (position BETWEEN 1 AND 6),
	text     TEXT NOT NULL,
	label    TEXT NOT NULL,
	PRIMARY KEY (hexagram, position),
	FOREIGN KEY (hexagram) REFERENCES hexagrams(number)
);

CREATE TABLE IF NOT EXISTS classification_log (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id     TEXT NOT NULL,
	hexagram   INTEGER NOT NULL,
	position   INTEGER NOT NULL,
	label      TEXT NOT NULL,
	rule       TEXT NOT NULL,
	rule_name  TEXT,
	text_score INTEGER NOT NULL,
	blend      REAL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_classification_log_run
	ON classification_log(run_id);
`
// #endregion schema

// #region store-struct
// Store manages the corpus and run log in SQLite.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion db-accessor

// #region seed
// Seed writes the canonical hexagrams and the corpus lines atomically.
// Existing rows are replaced, so re-seeding is idempotent.
func (s *Store) Seed(lines []dataset.Line) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, h := range hexagram.All() {
		_, err = tx.Exec(
			`INSERT INTO hexagrams (number, value, name) VALUES (?, ?, ?)
			 ON CONFLICT(number) DO UPDATE SET value = excluded.value, name = excluded.name`,
			h.Number, h.Value, h.Name,
		)
		if err != nil {
			return fmt.Errorf("insert hexagram %d: %w", h.Number, err)
		}
	}

	for _, l := range lines {
		if !l.Label.Valid() {
			return fmt.Errorf("line %d-%d: invalid label %q", l.Hexagram, l.Position, l.Label)
		}
		_, err = tx.Exec(
			`INSERT INTO lines (hexagram, position, text, label) VALUES (?, ?, ?, ?)
			 ON CONFLICT(hexagram, position) DO UPDATE SET text = excluded.text, label = excluded.label`,
			l.Hexagram, l.Position, l.Text, string(l.Label),
		)
		if err != nil {
			return fmt.Errorf("insert line %d-%d: %w", l.Hexagram, l.Position, err)
		}
	}

	return tx.Commit()
}
// #endregion seed

// #region load-lines
// LoadLines reads the full corpus in hexagram order.
func (s *Store) LoadLines() ([]dataset.Line, error) {
	rows, err := s.db.Query(
		`SELECT hexagram, position, text, label FROM lines ORDER BY hexagram, position`,
	)
	if err != nil {
		return nil, fmt.Errorf("load lines: %w", err)
	}
	defer rows.Close()

	var lines []dataset.Line
	for rows.Next() {
		var l dataset.Line
		var label string
		if err := rows.Scan(&l.Hexagram, &l.Position, &l.Text, &label); err != nil {
			return nil, fmt.Errorf("scan line: %w", err)
		}
		l.Label, err = fortune.Parse(label)
		if err != nil {
			return nil, fmt.Errorf("line %d-%d: %w", l.Hexagram, l.Position, err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Hexagram != lines[j].Hexagram {
			return lines[i].Hexagram < lines[j].Hexagram
		}
		return lines[i].Position < lines[j].Position
	})
	return lines, nil
}
// #endregion load-lines

// #region get-line
// GetLine reads one corpus line.
func (s *Store) GetLine(hexNum, position int) (dataset.Line, error) {
	var l dataset.Line
	var label string
	err := s.db.QueryRow(
		`SELECT hexagram, position, text, label FROM lines WHERE hexagram = ? AND position = ?`,
		hexNum, position,
	).Scan(&l.Hexagram, &l.Position, &l.Text, &label)
	if err != nil {
		return dataset.Line{}, fmt.Errorf("get line %d-%d: %w", hexNum, position, err)
	}
	l.Label, err = fortune.Parse(label)
	if err != nil {
		return dataset.Line{}, fmt.Errorf("line %d-%d: %w", hexNum, position, err)
	}
	return l, nil
}
// #endregion get-line
