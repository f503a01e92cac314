package text

import (
	"image"
	"log/slog"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/typefx/wordart"
)

// RenderOptions configures a render call.
type RenderOptions struct {
	// Face is a fixed face drawn as-is. When set, Size and size
	// fitting are ignored and the source may be nil.
	Face font.Face

	// Size is the font size in pixels when no fitting happens.
	// Zero means DefaultFontSize.
	Size float64

	// SafeArea is the region the text block is fitted and centered in.
	// The zero rectangle means the full canvas.
	SafeArea image.Rectangle

	// FitText searches for the largest size whose line block fits the
	// safe area.
	FitText bool
}

// DefaultFontSize is used when no size is given and fitting is off.
const DefaultFontSize = 100

// Render lays the text out as centered lines and rasterizes it into a
// coverage mask of the canvas size. The second return value is the tight
// pixel bounding box of the rendered glyphs, empty when nothing inked.
//
// Effects may extend past the returned bounds; callers compositing glow or
// wide outlines should reserve margin with ExpandForEffects.
func Render(src *Source, s string, width, height int, opts RenderOptions) (*wordart.Mask, image.Rectangle, error) {
	if width <= 0 || height <= 0 {
		return nil, image.Rectangle{}, ErrEmptyCanvas
	}

	lines := BreakLines(s)
	if len(lines) == 0 {
		return nil, image.Rectangle{}, ErrNoText
	}

	safe := opts.SafeArea
	if safe.Empty() {
		safe = image.Rect(0, 0, width, height)
	}

	face := opts.Face
	size := opts.Size
	if size <= 0 {
		size = DefaultFontSize
	}
	if face == nil {
		if opts.FitText {
			fitted, err := FitSize(src, lines, safe.Dx(), safe.Dy())
			if err != nil {
				return nil, image.Rectangle{}, err
			}
			size = fitted
			wordart.Logger().Debug("fitted font size",
				slog.Float64("size", size),
				slog.Int("lines", len(lines)))
		}
		f, err := src.Face(size)
		if err != nil {
			return nil, image.Rectangle{}, err
		}
		face = f
	}

	blockW, blockH := measureBlock(face, lines, size)
	blockX := safe.Min.X + (safe.Dx()-blockW)/2
	blockY := safe.Min.Y + (safe.Dy()-blockH)/2

	img := image.NewAlpha(image.Rect(0, 0, width, height))
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
	}

	spacing := int(size * lineSpacingFactor)
	yCursor := blockY
	for _, line := range lines {
		ext := measureLine(face, line)
		lineX := blockX + (blockW-ext.width)/2

		drawer.Dot = fixed.P(lineX-ext.minX, yCursor-ext.minY)
		drawer.DrawString(line)

		yCursor += ext.height + spacing
	}

	mask := wordart.NewMaskFromAlpha(img)
	return mask, inkBounds(mask), nil
}

// inkBounds returns the tight bounding box of nonzero coverage, or the
// empty rectangle for a blank mask.
func inkBounds(m *wordart.Mask) image.Rectangle {
	minX, minY := m.Width(), m.Height()
	maxX, maxY := -1, -1

	data := m.Data()
	for y := 0; y < m.Height(); y++ {
		row := y * m.Width()
		for x := 0; x < m.Width(); x++ {
			if data[row+x] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}
