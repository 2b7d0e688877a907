package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// State holds the identifiers that survive restarts: the user-designated
// Drive folder, the organized/ photo subfolder and the backing spreadsheet.
// They are cached purely to avoid redundant discovery calls.
type State struct {
	FolderID          string `json:"folder_id,omitempty"`
	OrganizedFolderID string `json:"organized_folder_id,omitempty"`
	SpreadsheetID     string `json:"spreadsheet_id,omitempty"`
}

// Cache persists workspace state between runs.
type Cache interface {
	Load() (State, error)
	Save(State) error
}

// FileCache stores the workspace state as a small JSON document on disk.
type FileCache struct {
	path string
}

// NewFileCache builds a file-backed cache at the given path.
func NewFileCache(path string) *FileCache {
	return &FileCache{path: path}
}

// Load reads the cached state. A missing file is an empty state, not an
// error.
func (c *FileCache) Load() (State, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("read workspace cache: %w", err)
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return State{}, fmt.Errorf("parse workspace cache: %w", err)
	}
	return state, nil
}

// Save writes the state back to disk, creating parent directories as needed.
func (c *FileCache) Save(state State) error {
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create workspace cache dir: %w", err)
		}
	}

	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode workspace cache: %w", err)
	}

	if err := os.WriteFile(c.path, raw, 0o600); err != nil {
		return fmt.Errorf("write workspace cache: %w", err)
	}
	return nil
}

// MemoryCache keeps state in memory only. Used in tests and when no cache
// path is configured.
type MemoryCache struct {
	mu    sync.Mutex
	state State
}

// Load implements Cache.
func (c *MemoryCache) Load() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, nil
}

// Save implements Cache.
func (c *MemoryCache) Save(state State) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
	return nil
}

// Context is the explicit home of the workspace identifiers. It replaces
// ambient client-side storage: every component that needs the spreadsheet id
// reads it from here, and every change is pushed through the cache.
type Context struct {
	mu    sync.RWMutex
	state State
	cache Cache
}

// NewContext builds a workspace context seeded from the cache.
func NewContext(cache Cache) (*Context, error) {
	state, err := cache.Load()
	if err != nil {
		return nil, err
	}
	return &Context{state: state, cache: cache}, nil
}

// State returns a copy of the current workspace state.
func (c *Context) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// SpreadsheetID implements sheetdb.SpreadsheetRef.
func (c *Context) SpreadsheetID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.SpreadsheetID
}

// FolderID returns the configured workspace folder id.
func (c *Context) FolderID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.FolderID
}

// Update applies a mutation to the state and persists the result.
func (c *Context) Update(mutate func(*State)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	mutate(&c.state)
	return c.cache.Save(c.state)
}

// Reset clears all workspace identifiers, e.g. when switching folders.
func (c *Context) Reset() error {
	return c.Update(func(s *State) {
		*s = State{}
	})
}
