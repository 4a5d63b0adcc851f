package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mbowen/daybook/internal/models"
)

// documentKey is the well-known key the full document lives under.
const documentKey = "document"

// Provider persists the document as one structured blob. Persistence is a
// best-effort mirror of in-memory state, not the source of truth for the
// current session.
type Provider interface {
	// Init creates a fresh store seeded with the default document. It fails
	// if the store already exists.
	Init() error
	// LoadDocument reads the persisted document. Missing or unparsable data
	// falls back to the default document, shallow-merged with whatever
	// partial data decodes.
	LoadDocument() (models.Document, error)
	// SaveDocument writes the full document.
	SaveDocument(models.Document) error
	// Reset clears the persisted document.
	Reset() error
	Close() error
	Path() string
}

// Open picks a backend. An empty backend selects by file extension:
// .json for the JSON file store, .db/.sqlite/.sqlite3 for SQLite,
// anything else for bbolt.
func Open(backend, path string) (Provider, error) {
	if backend == "" {
		switch {
		case strings.HasSuffix(path, ".json"):
			backend = "json"
		case strings.HasSuffix(path, ".db"), strings.HasSuffix(path, ".sqlite"), strings.HasSuffix(path, ".sqlite3"):
			backend = "sqlite"
		default:
			backend = "bolt"
		}
	}
	switch backend {
	case "bolt":
		return NewBoltStore(path), nil
	case "json":
		return NewJSONStore(path), nil
	case "sqlite":
		return NewSQLiteStore(path), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// decodeDocument unmarshals a payload over a default-initialized document:
// top-level keys present in the payload win, everything else keeps its
// default. An unparsable payload falls back to pure defaults.
func decodeDocument(payload []byte) models.Document {
	doc := models.Default()
	if err := json.Unmarshal(payload, &doc); err != nil {
		return models.Default()
	}
	doc.EnsureMaps()
	return doc
}

func encodeDocument(doc models.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return data, nil
}
