package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/danieljhkim/deconflict/internal/codec"
	"github.com/danieljhkim/deconflict/internal/fsops"
)

// Store provides an interface for persisting report entries.
type Store interface {
	// Save stores the entry atomically, replacing any entry with the same ID.
	Save(entry *Entry) error

	// Load loads the entry with the given ID.
	// Returns os.ErrNotExist if the entry doesn't exist.
	Load(id string) (*Entry, error)

	// List returns all entries ordered by ID (oldest first).
	List() ([]*Entry, error)

	// Delete removes the entry with the given ID.
	// Returns os.ErrNotExist if the entry doesn't exist.
	Delete(id string) error
}

// UniqueID returns base, or base with the first numeric suffix not yet taken
// in store. Saves of identical inputs within the same millisecond would
// otherwise share an ID.
func UniqueID(store Store, base string) (string, error) {
	id := base
	for n := 2; ; n++ {
		_, err := store.Load(id)
		if errors.Is(err, os.ErrNotExist) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
}

// FileStore implements Store with one file per entry in a directory.
type FileStore struct {
	fs     fsops.FS
	dir    string
	format codec.Format
}

// NewFileStore creates a FileStore writing entries in the given format.
// Entries in either format are readable regardless of the write format.
func NewFileStore(fs fsops.FS, dir string, format codec.Format) *FileStore {
	return &FileStore{
		fs:     fs,
		dir:    dir,
		format: format,
	}
}

// Save stores the entry atomically.
func (s *FileStore) Save(entry *Entry) error {
	if err := s.fs.ValidateIdentifier(entry.ID); err != nil {
		return fmt.Errorf("invalid report ID: %w", err)
	}

	data, err := codec.Marshal(entry, s.format)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	// Drop a copy in the other format so an ID maps to one file.
	if err := s.removeExisting(entry.ID); err != nil {
		return err
	}

	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create reports directory: %w", err)
	}

	path := filepath.Join(s.dir, entry.ID+s.format.Ext())
	if err := s.fs.AtomicWrite(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Load loads the entry with the given ID.
func (s *FileStore) Load(id string) (*Entry, error) {
	if err := s.fs.ValidateIdentifier(id); err != nil {
		return nil, fmt.Errorf("invalid report ID: %w", err)
	}

	path, format, err := s.find(id)
	if err != nil {
		return nil, err
	}
	return s.read(path, format)
}

// List returns all entries ordered by ID.
func (s *FileStore) List() ([]*Entry, error) {
	names, err := s.fs.ListFiles(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	entries := []*Entry{}
	for _, name := range names {
		format, err := codec.FormatFromPath(name)
		if err != nil {
			continue
		}
		entry, err := s.read(filepath.Join(s.dir, name), format)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

// Delete removes the entry with the given ID.
func (s *FileStore) Delete(id string) error {
	if err := s.fs.ValidateIdentifier(id); err != nil {
		return fmt.Errorf("invalid report ID: %w", err)
	}

	path, _, err := s.find(id)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(path); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}

// find locates the file holding id in any supported format.
func (s *FileStore) find(id string) (string, codec.Format, error) {
	for _, format := range []codec.Format{s.format, otherFormat(s.format)} {
		path := filepath.Join(s.dir, id+format.Ext())
		exists, err := s.fs.Exists(path)
		if err != nil {
			return "", "", fmt.Errorf("failed to check report: %w", err)
		}
		if exists {
			return path, format, nil
		}
	}
	return "", "", os.ErrNotExist
}

func (s *FileStore) removeExisting(id string) error {
	path := filepath.Join(s.dir, id+otherFormat(s.format).Ext())
	exists, err := s.fs.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check report: %w", err)
	}
	if !exists {
		return nil
	}
	if err := s.fs.Remove(path); err != nil {
		return fmt.Errorf("failed to replace report: %w", err)
	}
	return nil
}

func (s *FileStore) read(path string, format codec.Format) (*Entry, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	var entry Entry
	if err := codec.Unmarshal(data, format, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report %s: %w", strings.TrimSuffix(filepath.Base(path), format.Ext()), err)
	}
	entry.GeneratedAt = entry.GeneratedAt.UTC()
	return &entry, nil
}

func otherFormat(f codec.Format) codec.Format {
	if f == codec.FormatMsgpack {
		return codec.FormatJSON
	}
	return codec.FormatMsgpack
}
