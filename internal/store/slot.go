// Package store provides durable and in-memory key-value slots that hold the
// serialized expense collection.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DefaultKey is the slot key the expense collection is stored under.
const DefaultKey = "expenses"

// SQLiteSlot is a single key in an SQLite-backed key-value table.
type SQLiteSlot struct {
	db  *sql.DB
	key string
}

// Open opens or creates the database at dbPath and returns the slot for key.
func Open(dbPath, key string) (*SQLiteSlot, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	if key == "" {
		key = DefaultKey
	}
	return &SQLiteSlot{db: db, key: key}, nil
}

// Close closes the database.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}

// Load returns the stored value. The boolean is false when nothing has been
// saved under the key yet.
func (s *SQLiteSlot) Load() ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM slots WHERE key = ?", s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading slot %s: %w", s.key, err)
	}
	return value, true, nil
}

// Save replaces the stored value.
func (s *SQLiteSlot) Save(data []byte) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO slots (key, value, updated_at)
		VALUES (?, ?, ?)`, s.key, data, now)
	if err != nil {
		return fmt.Errorf("writing slot %s: %w", s.key, err)
	}
	return tx.Commit()
}

// UpdatedAt returns when the slot was last saved, or the zero time if it
// never was.
func (s *SQLiteSlot) UpdatedAt() (time.Time, error) {
	var ts string
	err := s.db.QueryRow("SELECT updated_at FROM slots WHERE key = ?", s.key).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, ts)
}

// MemorySlot keeps the value in process memory. It backs tests and
// ephemeral sessions.
type MemorySlot struct {
	mu    sync.Mutex
	value []byte
	set   bool
}

// NewMemorySlot returns a slot optionally pre-filled with data.
func NewMemorySlot(data []byte) *MemorySlot {
	m := &MemorySlot{}
	if data != nil {
		m.value = append([]byte(nil), data...)
		m.set = true
	}
	return m
}

// Load returns a copy of the stored value.
func (m *MemorySlot) Load() ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return nil, false, nil
	}
	return append([]byte(nil), m.value...), true, nil
}

// Save replaces the stored value.
func (m *MemorySlot) Save(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = append([]byte(nil), data...)
	m.set = true
	return nil
}
