package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mbowen/daybook/internal/models"
)

const createDocumentTable = `
CREATE TABLE IF NOT EXISTS document (
	key        TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// SQLiteStore keeps the document as one row in a SQLite table.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}
	return s.SaveDocument(models.Default())
}

func (s *SQLiteStore) LoadDocument() (models.Document, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return models.Default(), nil
	}
	if err := s.ensureOpen(); err != nil {
		return models.Default(), err
	}

	var payload string
	err := s.db.QueryRow(`SELECT payload FROM document WHERE key = ?`, documentKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Default(), nil
	}
	if err != nil {
		return models.Default(), fmt.Errorf("failed to read document: %w", err)
	}
	return decodeDocument([]byte(payload)), nil
}

func (s *SQLiteStore) SaveDocument(doc models.Document) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	payload, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO document (key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		documentKey, string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Reset() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}
	if err := s.ensureOpen(); err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM document WHERE key = ?`, documentKey); err != nil {
		return fmt.Errorf("failed to clear document: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) ensureOpen() error {
	if s.db != nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(createDocumentTable); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	s.db = db
	return nil
}
