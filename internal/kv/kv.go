// Package kv is the persistence layer of the mock backend: a flat namespace
// of JSON-serialized collections keyed by namespaced strings, the server-side
// stand-in for browser localStorage. Concurrent writers to the same key are
// not coordinated; the last write wins.
package kv

import (
	"database/sql"
	"sort"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

type Store interface {
	// Get returns the raw value for key, reporting whether the key exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	// Keys lists every stored key with the given prefix.
	Keys(prefix string) ([]string, error)
}

// SQLite persists the namespace in a single kv table. A file DSN survives
// restarts; ":memory:" gives a throwaway store.
type SQLite struct{ db *sqlx.DB }

func Open(dsn string) (*SQLite, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if _, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv(
	  key   TEXT PRIMARY KEY,
	  value TEXT NOT NULL
	)`); err != nil {
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(key string) (string, bool, error) {
	var v string
	err := s.db.Get(&v, `SELECT value FROM kv WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *SQLite) Set(key, value string) error {
	_, err := s.db.Exec(`
	  INSERT INTO kv(key, value) VALUES(?, ?)
	  ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

func (s *SQLite) Keys(prefix string) ([]string, error) {
	keys := []string{}
	err := s.db.Select(&keys, `SELECT key FROM kv WHERE key LIKE ? || '%' ORDER BY key`, prefix)
	return keys, err
}

func (s *SQLite) Close() error { return s.db.Close() }

// Mem is a map-backed Store for tests.
type Mem struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMem() *Mem { return &Mem{data: map[string]string{}} }

func (m *Mem) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Mem) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Mem) Keys(prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := []string{}
	for k := range m.data {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
