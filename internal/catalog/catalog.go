// Package catalog persists named sudoku puzzle definitions as YAML files,
// one file per puzzle, grouped into per-difficulty subdirectories.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/bvssvni/quickbacktrack/pkg/puzzles/sudoku"
)

// ErrNotFound is returned when no stored puzzle matches an ID.
var ErrNotFound = errors.New("catalog: puzzle not found")

// Entry is one stored puzzle. Grid holds the compact 81-character form.
type Entry struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name,omitempty"`
	Difficulty string `yaml:"difficulty"`
	Grid       string `yaml:"grid"`
	CreatedAt  int64  `yaml:"createdAt"`
}

// Parse decodes the entry's grid.
func (e *Entry) Parse() (*sudoku.Grid, error) {
	return sudoku.Parse(e.Grid)
}

// Store reads and writes entries under a base directory.
type Store struct{ dir string }

// NewStore returns a store rooted at dir. The directory is created lazily
// on the first Save.
func NewStore(dir string) *Store { return &Store{dir: dir} }

var difficulties = []string{"easy", "medium", "hard", "expert"}

func (s *Store) pathFor(id, difficulty string) string {
	return filepath.Join(s.dir, difficulty, strings.TrimSpace(id)+".yaml")
}

// Save writes the entry, assigning a fresh ID and normalizing the
// difficulty label if needed. Re-saving an existing ID under a new
// difficulty moves the file to the new subdirectory. It returns the ID
// used.
func (s *Store) Save(ctx context.Context, e *Entry) (string, error) {
	if e == nil || e.Grid == "" {
		return "", errors.New("catalog: entry has no grid")
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.Difficulty = sudoku.ParseDifficulty(e.Difficulty).String()

	target := s.pathFor(e.ID, e.Difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("catalog: %w", err)
	}
	data, err := yaml.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("catalog: %w", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("catalog: %w", err)
	}
	for _, d := range difficulties {
		if d == e.Difficulty {
			continue
		}
		if err := os.Remove(s.pathFor(e.ID, d)); err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("catalog: %w", err)
		}
	}
	return e.ID, nil
}

// Load finds an entry by ID, scanning the difficulty subdirectories.
func (s *Store) Load(ctx context.Context, id string) (*Entry, error) {
	for _, d := range difficulties {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(s.pathFor(id, d))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("catalog: %w", err)
		}
		var e Entry
		if err := yaml.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if e.Difficulty == "" {
			e.Difficulty = d // infer from folder if absent
		}
		return &e, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// List returns every stored entry, easy first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	var out []Entry
	for _, d := range difficulties {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ents, err := os.ReadDir(filepath.Join(s.dir, d))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("catalog: %w", err)
		}
		for _, ent := range ents {
			if ent.IsDir() || !strings.HasSuffix(ent.Name(), ".yaml") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, d, ent.Name()))
			if err != nil {
				continue
			}
			var e Entry
			if err := yaml.Unmarshal(data, &e); err != nil || e.ID == "" {
				continue
			}
			if e.Difficulty == "" {
				e.Difficulty = d
			}
			out = append(out, e)
		}
	}
	return out, nil
}
