package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/mbowen/daybook/internal/models"
)

var boltBucket = []byte("daybook")

// BoltStore keeps the document as a single JSON blob in a bbolt bucket.
// It is the default backend.
type BoltStore struct {
	path string
	db   *bolt.DB
}

func NewBoltStore(path string) *BoltStore {
	return &BoltStore{path: path}
}

func (s *BoltStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}
	return s.SaveDocument(models.Default())
}

func (s *BoltStore) LoadDocument() (models.Document, error) {
	// Opening bbolt creates the file, so a missing store short-circuits to
	// defaults without touching the filesystem.
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return models.Default(), nil
	}
	if err := s.ensureOpen(); err != nil {
		return models.Default(), err
	}

	var payload []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(boltBucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(documentKey)); v != nil {
			payload = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return models.Default(), fmt.Errorf("failed to read document: %w", err)
	}
	if payload == nil {
		return models.Default(), nil
	}
	return decodeDocument(payload), nil
}

func (s *BoltStore) SaveDocument(doc models.Document) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	payload, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(documentKey), payload)
	})
}

func (s *BoltStore) Reset() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}
	if err := s.ensureOpen(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Delete([]byte(documentKey))
	})
}

func (s *BoltStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *BoltStore) Path() string {
	return s.path
}

func (s *BoltStore) ensureOpen() error {
	if s.db != nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	db, err := bolt.Open(s.path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	}); err != nil {
		db.Close()
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	s.db = db
	return nil
}
