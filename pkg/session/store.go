package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/fractalite/fractalite/pkg/errors"
)

// Store is a file-backed bookmark collection. All bookmarks live in a
// single JSON file that is rewritten on every mutation.
type Store struct {
	mu   sync.RWMutex
	path string
}

// NewStore opens a bookmark store at path. If path is empty it defaults
// to bookmarks.json in the user's fractalite config directory. The
// parent directory is created if needed.
func NewStore(path string) (*Store, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot determine config directory")
		}
		path = filepath.Join(dir, "fractalite", "bookmarks.json")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot create bookmark directory")
	}
	return &Store{path: path}, nil
}

// Path returns the bookmark file location.
func (s *Store) Path() string {
	return s.path
}

// List returns all bookmarks, newest first.
func (s *Store) List() ([]Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookmarks, err := s.read()
	if err != nil {
		return nil, err
	}
	sortBookmarks(bookmarks)
	return bookmarks, nil
}

// Get looks a bookmark up by ID or name. IDs win when a name shadows one.
func (s *Store) Get(ref string) (Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookmarks, err := s.read()
	if err != nil {
		return Bookmark{}, err
	}
	for _, b := range bookmarks {
		if b.ID == ref {
			return b, nil
		}
	}
	for _, b := range bookmarks {
		if b.Name == ref {
			return b, nil
		}
	}
	return Bookmark{}, errors.New(errors.ErrCodeBookmarkNotFound, "no bookmark %q", ref)
}

// Add appends a bookmark and persists the collection.
func (s *Store) Add(b Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks, err := s.read()
	if err != nil {
		return err
	}
	for _, existing := range bookmarks {
		if existing.Name == b.Name {
			return errors.New(errors.ErrCodeInvalidInput, "bookmark %q already exists", b.Name)
		}
	}
	return s.write(append(bookmarks, b))
}

// Remove deletes a bookmark by ID or name.
func (s *Store) Remove(ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks, err := s.read()
	if err != nil {
		return err
	}
	kept := bookmarks[:0]
	for _, b := range bookmarks {
		if b.ID != ref && b.Name != ref {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(bookmarks) {
		return errors.New(errors.ErrCodeBookmarkNotFound, "no bookmark %q", ref)
	}
	return s.write(kept)
}

func (s *Store) read() ([]Bookmark, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "cannot read bookmark file")
	}
	var bookmarks []Bookmark
	if err := json.Unmarshal(data, &bookmarks); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "cannot parse bookmark file")
	}
	return bookmarks, nil
}

func (s *Store) write(bookmarks []Bookmark) error {
	data, err := json.MarshalIndent(bookmarks, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "cannot encode bookmarks")
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "cannot write bookmark file")
	}
	return nil
}
