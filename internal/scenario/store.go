package scenario

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/natefinch/atomic"
)

// MemoryStore keeps custom scenarios for the life of the process.
type MemoryStore struct {
	mu        sync.RWMutex
	scenarios []Scenario
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) List(_ context.Context) ([]Scenario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.scenarios), nil
}

func (m *MemoryStore) Append(_ context.Context, s Scenario) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scenarios = append(m.scenarios, s)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scenarios = slices.DeleteFunc(m.scenarios, func(s Scenario) bool { return s.ID == id })
	return nil
}

// FileStore keeps custom scenarios as a JSON array on disk. Every write
// replaces the file atomically.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create scenario dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (f *FileStore) List(_ context.Context) ([]Scenario, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

func (f *FileStore) Append(_ context.Context, s Scenario) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.load()
	if err != nil {
		return err
	}
	return f.write(append(all, s))
}

func (f *FileStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.load()
	if err != nil {
		return err
	}
	kept := slices.DeleteFunc(all, func(s Scenario) bool { return s.ID == id })
	if len(kept) == len(all) {
		return nil
	}
	return f.write(kept)
}

func (f *FileStore) load() ([]Scenario, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var out []Scenario
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode scenarios: %w", err)
	}
	return out, nil
}

func (f *FileStore) write(all []Scenario) error {
	if all == nil {
		all = []Scenario{}
	}
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scenarios: %w", err)
	}
	return atomic.WriteFile(f.path, bytes.NewReader(data))
}
