package ffile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Store is a tiny JSON-file document store. Each collection is one
// file under the data directory, reread on access and rewritten on
// every mutation. It backs the zero-dependency deployment mode; the
// mutex makes it safe for concurrent handlers but it is not meant for
// multi-process use.
type Store struct {
	mu  sync.Mutex
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// read decodes a collection into out. A missing file leaves out
// untouched so callers start from their zero value.
func (s *Store) read(collection string, out interface{}) error {
	payload, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(payload, out)
}

// write persists a collection atomically via a temp-file rename.
func (s *Store) write(collection string, in interface{}) error {
	payload, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(collection))
}

// Update runs fn while holding the store lock. fn receives read/write
// helpers bound to the locked store.
func (s *Store) Update(fn func(read func(string, interface{}) error, write func(string, interface{}) error) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.read, s.write)
}

// View runs fn with read access while holding the store lock.
func (s *Store) View(fn func(read func(string, interface{}) error) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.read)
}
