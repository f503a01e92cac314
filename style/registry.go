package style

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/typefx/wordart"
)

// ErrStyleNotFound is returned when a registry has no style under the
// requested name.
var ErrStyleNotFound = errors.New("style: style not found")

// Registry holds the styles found in a directory, keyed by the style's
// declared name or, when the file declares none, its file-name stem.
//
// A Registry is immutable after construction and safe for concurrent use.
type Registry struct {
	styles map[string]*wordart.Style
	names  []string // sorted
}

// NewRegistry loads every .json file in dir. Files that fail to parse are
// logged and skipped; an empty directory yields an empty registry.
func NewRegistry(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("style: scan styles dir: %w", err)
	}

	r := &Registry{styles: make(map[string]*wordart.Style)}
	log := wordart.Logger()

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		s, err := LoadFile(path)
		if err != nil {
			log.Warn("skipping unreadable style",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}

		name := s.Name
		if name == "" {
			name = strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
			s.Name = name
		}
		if _, taken := r.styles[name]; taken {
			log.Warn("duplicate style name", slog.String("name", name), slog.String("path", path))
			continue
		}
		r.styles[name] = s
		r.names = append(r.names, name)
	}

	sort.Strings(r.names)
	return r, nil
}

// Names returns the style names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of loaded styles.
func (r *Registry) Len() int {
	return len(r.names)
}

// Get returns the style with the given name.
func (r *Registry) Get(name string) (*wordart.Style, error) {
	if s, ok := r.styles[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, name)
}

// Random picks a style using the caller's random source, so callers that
// need reproducible picks pass a seeded source.
func (r *Registry) Random(rng *rand.Rand) (*wordart.Style, error) {
	if len(r.names) == 0 {
		return nil, fmt.Errorf("%w: registry is empty", ErrStyleNotFound)
	}
	return r.styles[r.names[rng.Intn(len(r.names))]], nil
}
