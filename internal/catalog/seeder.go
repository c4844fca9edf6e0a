package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/forgeui/backend/internal/blueprint"
)

// Seeder loads extra catalogue patterns from a directory of YAML files.
// The file name (minus extension) becomes the pattern key.
type Seeder struct {
	catalog *Catalog
	dir     string
}

// NewSeeder creates a pattern seeder.
func NewSeeder(catalog *Catalog, dir string) *Seeder {
	return &Seeder{catalog: catalog, dir: dir}
}

// Seed loads every .yaml/.yml pattern in the directory. A missing directory
// is not an error; individual bad files are counted and skipped.
func (s *Seeder) Seed() (loaded, failed int, err error) {
	if _, statErr := os.Stat(s.dir); os.IsNotExist(statErr) {
		return 0, 0, nil
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read patterns directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		if err := s.loadPattern(filepath.Join(s.dir, name), strings.TrimSuffix(name, ext)); err != nil {
			failed++
			continue
		}
		loaded++
	}

	return loaded, failed, nil
}

// loadPattern reads one YAML pattern file and registers it.
func (s *Seeder) loadPattern(path, key string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Patterns share the blueprint wire shape; convert and reuse the
	// validating JSON parser.
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("failed to convert pattern %s: %w", key, err)
	}

	bp, err := blueprint.Parse(jsonData)
	if err != nil {
		return fmt.Errorf("failed to parse pattern %s: %w", key, err)
	}

	s.catalog.add(key, bp)
	return nil
}
