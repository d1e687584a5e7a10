package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps run history in a single JSON file. Suited to one user on
// one machine; writes rewrite the whole file, which is fine at history
// scale (hundreds of runs, not millions).
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store writing to path. Parent directories are
// created as needed; a missing file means empty history.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Record appends a run to the history file.
func (s *FileStore) Record(ctx context.Context, run Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs, err := s.load()
	if err != nil {
		return err
	}
	runs = append(runs, run)

	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// List returns recorded runs, newest first.
func (s *FileStore) List(ctx context.Context, limit int) ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs, err := s.load()
	if err != nil {
		return nil, err
	}
	// Records are appended in order; reverse for newest-first.
	out := make([]Run, 0, len(runs))
	for i := len(runs) - 1; i >= 0; i-- {
		out = append(out, runs[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Get returns the run with the given id.
func (s *FileStore) Get(ctx context.Context, id string) (Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs, err := s.load()
	if err != nil {
		return Run{}, err
	}
	for _, r := range runs {
		if r.ID == id {
			return r, nil
		}
	}
	return Run{}, errRunNotFound(id)
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

// load reads the history file. Callers hold s.mu.
func (s *FileStore) load() ([]Run, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var runs []Run
	if err := json.Unmarshal(data, &runs); err != nil {
		// A corrupt history file should not block new runs.
		return nil, nil
	}
	return runs, nil
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
