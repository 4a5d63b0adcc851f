package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mbowen/daybook/internal/models"
)

// JSONStore keeps the document as a pretty-printed JSON file. Handy for
// inspecting state by hand.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}
	return s.SaveDocument(models.Default())
}

func (s *JSONStore) LoadDocument() (models.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Default(), nil
		}
		return models.Default(), fmt.Errorf("failed to read storage: %w", err)
	}
	return decodeDocument(data), nil
}

func (s *JSONStore) SaveDocument(doc models.Document) error {
	payload, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Reset() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Path() string {
	return s.path
}
