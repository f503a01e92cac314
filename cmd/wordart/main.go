// Command wordart renders styled text to a PNG image.
//
// A style comes from a single JSON file or from a named style in a style
// directory; a font comes from a TTF/OTF file or from a family name looked
// up in a font directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/typefx/wordart"
	"github.com/typefx/wordart/style"
	"github.com/typefx/wordart/svg"
	"github.com/typefx/wordart/text"
)

func main() {
	var (
		textArg   = flag.String("text", "Hello World", "text to render")
		fontPath  = flag.String("font", "", "TTF/OTF font file")
		fontDir   = flag.String("fonts", "", "font directory for family lookup")
		family    = flag.String("family", "", "font family name (with -fonts)")
		stylePath = flag.String("style", "", "style JSON file")
		styleDir  = flag.String("styles", "", "style directory for name lookup")
		styleName = flag.String("name", "", "style name (with -styles)")
		random    = flag.Bool("random", false, "pick a random style (with -styles)")
		list      = flag.Bool("list", false, "list styles and fonts, then exit")
		width     = flag.Int("width", 1024, "image width")
		height    = flag.Int("height", 512, "image height")
		output    = flag.String("output", "wordart.png", "output PNG file")
		svgOut    = flag.String("svg", "", "also export the style as SVG to this file")
		layerDir  = flag.String("layers", "", "dump each effect layer as PNG into this directory")
		verbose   = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		wordart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *list {
		listAssets(*styleDir, *fontDir)
		return
	}

	st, err := loadStyle(*stylePath, *styleDir, *styleName, *random)
	if err != nil {
		log.Fatalf("Failed to load style: %v", err)
	}

	src, err := loadFont(*fontPath, *fontDir, *family)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	margins := text.DefaultMargins.ExpandForEffects(hasGlow(st))
	mask, bounds, err := text.Render(src, *textArg, *width, *height, text.RenderOptions{
		SafeArea: margins.Area(*width, *height),
		FitText:  true,
	})
	if err != nil {
		log.Fatalf("Failed to render text: %v", err)
	}

	comp := wordart.NewCompositor()
	comp.CaptureLayers = *layerDir != ""

	result, err := comp.Compose(mask, st)
	if err != nil {
		log.Fatalf("Failed to compose: %v", err)
	}

	if *layerDir != "" {
		if err := dumpLayers(*layerDir, result); err != nil {
			log.Fatalf("Failed to dump layers: %v", err)
		}
	}

	if *svgOut != "" {
		data, err := svg.Export(st, *width, *height)
		if err != nil {
			log.Fatalf("Failed to export SVG: %v", err)
		}
		if err := os.WriteFile(*svgOut, data, 0o644); err != nil {
			log.Fatalf("Failed to write SVG: %v", err)
		}
	}

	if err := result.Image.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Rendered %q to %s (%dx%d, text bounds %v)\n",
		*textArg, *output, *width, *height, bounds)
}

// loadStyle resolves the style flags: an explicit file wins, then a named
// or random pick from a directory, then the zero style.
func loadStyle(path, dir, name string, random bool) (*wordart.Style, error) {
	if path != "" {
		return style.LoadFile(path)
	}
	if dir == "" {
		return &wordart.Style{}, nil
	}

	reg, err := style.NewRegistry(dir)
	if err != nil {
		return nil, err
	}
	if random {
		return reg.Random(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	if name != "" {
		return reg.Get(name)
	}
	return nil, fmt.Errorf("need -name or -random with -styles")
}

// loadFont resolves the font flags the same way: explicit file, then a
// family lookup in a directory.
func loadFont(path, dir, family string) (*text.Source, error) {
	if path != "" {
		return text.LoadSource(path)
	}
	if dir == "" {
		return nil, fmt.Errorf("need -font or -fonts")
	}

	res, err := text.NewResolver(dir)
	if err != nil {
		return nil, err
	}
	if family == "" {
		families := res.Families()
		if len(families) == 0 {
			return nil, fmt.Errorf("no fonts in %s", dir)
		}
		family = families[0]
	}
	return res.Load(family)
}

func hasGlow(st *wordart.Style) bool {
	return st.Glow != nil && st.Glow.Radius > 0 && st.Glow.Intensity > 0
}

func listAssets(styleDir, fontDir string) {
	if styleDir != "" {
		reg, err := style.NewRegistry(styleDir)
		if err != nil {
			log.Fatalf("Failed to scan styles: %v", err)
		}
		fmt.Println("Styles:")
		for _, name := range reg.Names() {
			fmt.Printf("  %s\n", name)
		}
	}
	if fontDir != "" {
		res, err := text.NewResolver(fontDir)
		if err != nil {
			log.Fatalf("Failed to scan fonts: %v", err)
		}
		fmt.Println("Fonts:")
		for _, name := range res.Families() {
			fmt.Printf("  %s\n", name)
		}
	}
}

// dumpLayers writes every captured effect layer as its own PNG.
func dumpLayers(dir string, result *wordart.CompositeResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, layer := range result.Layers {
		path := filepath.Join(dir, name+".png")
		if err := layer.SavePNG(path); err != nil {
			return err
		}
	}
	return nil
}
