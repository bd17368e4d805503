package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite persists each collection as a single JSON document row, mirroring
// the wholesale load/save contract. WAL mode keeps readers off the write
// lock.
type SQLite struct {
	db *sql.DB
	mu sync.Mutex
}

func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS collections (
			name TEXT PRIMARY KEY,
			doc TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS audit_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT,
			action TEXT,
			metadata TEXT,
			created_at INTEGER
		);`,
	}
	for _, q := range stmts {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// DB exposes the underlying handle for side tables such as audit_logs.
func (s *SQLite) DB() *sql.DB {
	return s.db
}

func (s *SQLite) Load(ctx context.Context, name string, v any) error {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM collections WHERE name = ?`, name).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(doc), v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (s *SQLite) Save(ctx context.Context, name string, v any) error {
	return s.Update(ctx, func(tx Tx) error {
		return tx.Save(name, v)
	})
}

func (s *SQLite) Update(ctx context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update: %w", err)
	}

	if err := fn(&sqliteTx{tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

type sqliteTx struct {
	tx *sql.Tx
}

func (t *sqliteTx) Load(name string, v any) error {
	var doc string
	err := t.tx.QueryRow(
		`SELECT doc FROM collections WHERE name = ?`, name).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(doc), v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (t *sqliteTx) Save(name string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	_, err = t.tx.Exec(`
	INSERT INTO collections(name, doc, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(name) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at
	`, name, string(doc), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}
