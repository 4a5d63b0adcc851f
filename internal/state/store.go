// Package state owns the single mutable "current document". All writes
// funnel through Store.Apply, which produces the next snapshot atomically,
// mirrors it to persistent storage and fans it out to subscribers.
package state

import (
	"sync"

	"go.uber.org/zap"

	"github.com/mbowen/daybook/internal/models"
	"github.com/mbowen/daybook/internal/storage"
)

// Listener receives a snapshot of every committed document. Listeners may
// call Apply themselves; notification happens outside the store lock.
type Listener func(models.Document)

// Mutation transforms a document snapshot into the next document. Returning
// an error aborts the change with nothing committed.
type Mutation func(models.Document) (models.Document, error)

// Store holds the current document and is its sole owner.
type Store struct {
	mu        sync.Mutex
	doc       models.Document
	provider  storage.Provider
	logger    *zap.Logger
	listeners []Listener
}

// NewStore loads the persisted document (falling back to defaults) and wraps
// it. The provider stays attached for save-on-every-mutation mirroring.
func NewStore(provider storage.Provider, logger *zap.Logger) (*Store, error) {
	doc, err := provider.LoadDocument()
	if err != nil {
		return nil, err
	}
	s := &Store{
		doc:      doc,
		provider: provider,
		logger:   logger,
	}
	return s, nil
}

// Document returns a deep clone of the current document.
func (s *Store) Document() models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Subscribe registers a listener for every committed change.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// Apply runs the mutation against a snapshot and commits the result. The
// persisted mirror is best-effort: a storage failure is logged but the
// in-memory commit stands, since the session document is the source of truth.
func (s *Store) Apply(mut Mutation) error {
	s.mu.Lock()
	next, err := mut(s.doc.Clone())
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.doc = next
	snapshot := next.Clone()
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	if err := s.provider.SaveDocument(snapshot); err != nil {
		s.logger.Warn("failed to persist document", zap.String("path", s.provider.Path()), zap.Error(err))
	}
	for _, l := range listeners {
		l(snapshot)
	}
	return nil
}

// Replace swaps in a whole new document. Import and reset go through here so
// they trigger the same persistence and fan-out as any other mutation.
func (s *Store) Replace(doc models.Document) error {
	return s.Apply(func(models.Document) (models.Document, error) {
		return doc, nil
	})
}
