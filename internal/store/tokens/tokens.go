package tokens

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
)

// Document is the design-token document: category -> token name -> value.
type Document map[string]map[string]string

// Store manages the token document on disk. Safe for concurrent use.
type Store struct {
	path string
	mu   sync.RWMutex
}

// New creates the store; the document itself is created lazily on first
// write.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create token directory: %w", err)
	}
	return &Store{path: filepath.Join(dir, "tokens.json")}, nil
}

// Load reads the token document, falling back to the built-in defaults
// when no document exists yet.
func (s *Store) Load() (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

// load reads the document; the caller holds the lock.
func (s *Store) load() (Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("failed to read token document: %w", err)
	}

	var doc Document
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to deserialize token document: %w", err)
	}
	return doc, nil
}

// Category returns one token category. Unknown categories resolve to an
// empty set rather than an error.
func (s *Store) Category(name string) (map[string]string, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	if category, ok := doc[name]; ok {
		return category, nil
	}
	return map[string]string{}, nil
}

// Merge applies a shallow merge: incoming top-level categories overwrite,
// all other categories are carried forward unchanged. The write lock is
// held across the whole read-modify-write so concurrent merges cannot
// drop each other's categories.
func (s *Store) Merge(incoming Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for category, values := range incoming {
		doc[category] = values
	}

	if err := s.write(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Reset restores the built-in default document.
func (s *Store) Reset() (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := Defaults()
	if err := s.write(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// write persists the document; the caller holds the write lock.
func (s *Store) write(doc Document) error {
	data, err := sonic.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize token document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write token document: %w", err)
	}
	return nil
}

// Defaults is the built-in token set returned before any document exists.
func Defaults() Document {
	return Document{
		"colors": {
			"background": "#ffffff",
			"surface":    "#f5f5f5",
			"primary":    "#3b82f6",
			"secondary":  "#8b5cf6",
			"accent":     "#10b981",
			"danger":     "#ef4444",
			"text":       "#1a1a1a",
			"textMuted":  "#666666",
			"border":     "#e0e0e0",
		},
		"spacing": {
			"xs": "0.25rem",
			"sm": "0.5rem",
			"md": "1rem",
			"lg": "1.5rem",
			"xl": "2rem",
		},
		"typography": {
			"sans":     "Inter, system-ui, sans-serif",
			"mono":     "JetBrains Mono, monospace",
			"baseSize": "16px",
		},
		"radii": {
			"sm":   "0.125rem",
			"md":   "0.375rem",
			"lg":   "0.5rem",
			"full": "9999px",
		},
		"shadows": {
			"sm": "0 1px 2px 0 rgb(0 0 0 / 0.05)",
			"md": "0 4px 6px -1px rgb(0 0 0 / 0.1)",
			"lg": "0 10px 15px -3px rgb(0 0 0 / 0.1)",
		},
		"motion": {
			"fast":   "150ms ease",
			"normal": "250ms ease",
			"slow":   "400ms ease",
		},
	}
}
