// Package backup handles export/import of the full document and rotated
// snapshot files kept next to the store.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mbowen/daybook/internal/models"
)

const (
	// MaxSnapshots is the maximum number of snapshot files to keep.
	MaxSnapshots = 14
	// SnapshotDirName is the name of the snapshot directory.
	SnapshotDirName = "backups"
	// SnapshotFilePrefix is the prefix for snapshot files.
	SnapshotFilePrefix = "daybook-"
	// SnapshotFileSuffix is the suffix for snapshot files.
	SnapshotFileSuffix = ".json"
)

// ParseError reports a malformed import payload. The live document is left
// untouched when it is returned.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SnapshotInfo describes one snapshot file.
type SnapshotInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles export, import and snapshot rotation.
type Manager struct {
	snapshotDir string
}

// NewManager builds a manager keeping snapshots beside the given store path.
func NewManager(storePath string) *Manager {
	return &Manager{snapshotDir: filepath.Join(filepath.Dir(storePath), SnapshotDirName)}
}

// SnapshotDir returns the snapshot directory path.
func (m *Manager) SnapshotDir() string {
	return m.snapshotDir
}

// Export writes the full document as indented JSON to path.
func Export(doc models.Document, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// Import parses an exported file and returns defaults merged with its
// content. A malformed payload yields ParseError and no document.
func Import(path string) (models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to read import: %w", err)
	}
	doc := models.Default()
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Document{}, &ParseError{Path: path, Err: err}
	}
	doc.EnsureMaps()
	return doc, nil
}

// CreateSnapshot writes a timestamped snapshot of the document and prunes
// old ones past MaxSnapshots.
func (m *Manager) CreateSnapshot(doc models.Document) (string, error) {
	if err := os.MkdirAll(m.snapshotDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	// Minute precision first; fall back to seconds, then a counter, when a
	// snapshot with the same name already exists.
	timestamp := time.Now().Format("20060102-1504")
	path := filepath.Join(m.snapshotDir, SnapshotFilePrefix+timestamp+SnapshotFileSuffix)
	if _, err := os.Stat(path); err == nil {
		timestamp = time.Now().Format("20060102-150405")
		path = filepath.Join(m.snapshotDir, SnapshotFilePrefix+timestamp+SnapshotFileSuffix)
		counter := 1
		for {
			if _, err := os.Stat(path); os.IsNotExist(err) {
				break
			}
			path = filepath.Join(m.snapshotDir, fmt.Sprintf("%s%s-%d%s", SnapshotFilePrefix, timestamp, counter, SnapshotFileSuffix))
			counter++
			if counter > 100 {
				return "", fmt.Errorf("failed to generate unique snapshot filename")
			}
		}
	}

	if err := Export(doc, path); err != nil {
		return "", err
	}
	if err := m.prune(); err != nil {
		return "", err
	}
	return path, nil
}

// ListSnapshots returns all snapshots, newest first.
func (m *Manager) ListSnapshots() ([]SnapshotInfo, error) {
	entries, err := os.ReadDir(m.snapshotDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	var snapshots []SnapshotInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, SnapshotFilePrefix) || !strings.HasSuffix(name, SnapshotFileSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		snapshots = append(snapshots, SnapshotInfo{
			Path:      filepath.Join(m.snapshotDir, name),
			Timestamp: info.ModTime(),
			Size:      info.Size(),
		})
	}
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Timestamp.After(snapshots[j].Timestamp)
	})
	return snapshots, nil
}

func (m *Manager) prune() error {
	snapshots, err := m.ListSnapshots()
	if err != nil {
		return err
	}
	for _, old := range snapshots[min(len(snapshots), MaxSnapshots):] {
		if err := os.Remove(old.Path); err != nil {
			return fmt.Errorf("failed to remove old snapshot: %w", err)
		}
	}
	return nil
}
