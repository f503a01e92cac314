package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source represents a loaded font file. One Source creates faces at any
// number of sizes; the parsed font itself is shared.
//
// Source is safe for concurrent use.
type Source struct {
	font *opentype.Font
	name string

	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewSource creates a Source from TTF or OTF data. The data slice is
// retained; callers must not mutate it afterwards.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}

	s := &Source{
		font:  f,
		faces: make(map[float64]font.Face),
	}
	if buf, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = buf
	}
	return s, nil
}

// LoadSource reads and parses a font file.
func LoadSource(path string) (*Source, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return NewSource(data)
}

// Name returns the font's family name, or "" if the font does not carry one.
func (s *Source) Name() string {
	return s.name
}

// Face returns a face at the given size in pixels. Faces are cached per
// size; the sizing search hits the same handful of sizes repeatedly.
func (s *Source) Face(size float64) (font.Face, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.faces[size]; ok {
		return f, nil
	}

	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: create face: %w", err)
	}
	s.faces[size] = f
	return f, nil
}
