package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/forgeui/backend/internal/blueprint"
)

// safeName constrains archive names to filesystem-safe identifiers.
var safeName = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Store is a flat-file blueprint archive. Safe for concurrent use.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// New creates the archive directory if needed and returns the store.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes a blueprint under the given name, overwriting any previous
// entry.
func (s *Store) Save(name string, bp *blueprint.Blueprint) error {
	if !safeName.MatchString(name) {
		return fmt.Errorf("invalid archive name: %q", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := sonic.MarshalIndent(bp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize blueprint: %w", err)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write blueprint %s: %w", name, err)
	}
	return nil
}

// Load reads a blueprint by name. An absent entry is reported by message
// text only; callers treat it like any other read failure. Entries are
// re-validated on the way out so a hand-edited file cannot smuggle an
// invalid blueprint past the parser.
func (s *Store) Load(name string) (*blueprint.Blueprint, error) {
	if !safeName.MatchString(name) {
		return nil, fmt.Errorf("invalid archive name: %q", name)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("blueprint not found: %s", name)
		}
		return nil, fmt.Errorf("failed to read blueprint %s: %w", name, err)
	}

	bp, err := blueprint.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize blueprint %s: %w", name, err)
	}
	return bp, nil
}

// List enumerates archived blueprint names in sorted order.
func (s *Store) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list archive: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes an archived blueprint. An absent entry is reported by
// message text, matching Load.
func (s *Store) Delete(name string) error {
	if !safeName.MatchString(name) {
		return fmt.Errorf("invalid archive name: %q", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("blueprint not found: %s", name)
		}
		return fmt.Errorf("failed to delete blueprint %s: %w", name, err)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
