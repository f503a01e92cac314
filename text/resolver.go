package text

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-text/typesetting/font"

	"github.com/typefx/wordart"
	"github.com/typefx/wordart/internal/cache"
)

// Resolver maps font family names to font files found in a directory.
// Families are discovered once at construction from the fonts' own name
// tables, so a file can be addressed by what the font calls itself rather
// than by its file name. File-name stems (without extension) work as a
// fallback key.
//
// A Resolver is immutable after construction and safe for concurrent use.
type Resolver struct {
	dir     string
	byName  map[string]string // lowercased family or stem -> path
	familys []string          // sorted family names for listing
	sources *cache.Cache[string, *Source]
}

// NewResolver scans dir for .ttf and .otf files. Files that fail to parse
// are logged and skipped; an empty directory yields an empty resolver, not
// an error.
func NewResolver(dir string) (*Resolver, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("text: scan fonts dir: %w", err)
	}

	r := &Resolver{
		dir:     dir,
		byName:  make(map[string]string),
		sources: cache.New[string, *Source](8),
	}
	log := wordart.Logger()

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".ttf" && ext != ".otf" {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		family, err := readFamily(path)
		if err != nil {
			log.Warn("skipping unreadable font",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}

		if family != "" {
			if _, taken := r.byName[strings.ToLower(family)]; !taken {
				r.byName[strings.ToLower(family)] = path
				r.familys = append(r.familys, family)
			}
		}

		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if _, taken := r.byName[strings.ToLower(stem)]; !taken {
			r.byName[strings.ToLower(stem)] = path
		}
	}

	sort.Strings(r.familys)
	return r, nil
}

// readFamily parses the font just far enough to read its family name.
func readFamily(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the scanned dir
	if err != nil {
		return "", err
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return face.Describe().Family, nil
}

// Families returns the discovered family names in sorted order.
func (r *Resolver) Families() []string {
	out := make([]string, len(r.familys))
	copy(out, r.familys)
	return out
}

// Path returns the file path for a family name or file-name stem.
// Lookup is case-insensitive.
func (r *Resolver) Path(name string) (string, error) {
	if p, ok := r.byName[strings.ToLower(name)]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFontNotFound, name)
}

// Load resolves a name and loads the font as a Source. Loaded sources are
// cached per path, so repeated lookups share one parsed font.
func (r *Resolver) Load(name string) (*Source, error) {
	path, err := r.Path(name)
	if err != nil {
		return nil, err
	}
	if src, ok := r.sources.Get(path); ok {
		return src, nil
	}
	src, err := LoadSource(path)
	if err != nil {
		return nil, err
	}
	r.sources.Set(path, src)
	return src, nil
}
