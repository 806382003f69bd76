// Package fonts resolves the typeface used for diagram text.
//
// A font is requested by file name (for example "Orbitron-Regular.ttf").
// The file is looked up in the given directories first, then among the
// system fonts. When nothing is found, or the file does not parse, the Go
// fonts bundled with golang.org/x/image take its place, so rendering never
// fails for want of a font.
//
// The same [Font] serves both sinks: the PNG sink draws with [Font.Face],
// the SVG sink embeds [Font.Base64] in an @font-face rule.
package fonts

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/probemap/pkg/observability"
)

// DefaultFont is the font the built-in dataset asks for.
const DefaultFont = "Orbitron-Regular.ttf"

// GenericFamily ends every CSS font-family list.
const GenericFamily = "sans-serif"

// Font is a parsed TrueType font.
type Font struct {
	// Requested is the name the font was asked for.
	Requested string
	// Path is where the font was found; empty for the bundled fallback.
	Path string
	// Family is the family name recorded in the font file.
	Family string
	// Fallback reports whether the bundled Go font is in use.
	Fallback bool

	data []byte
	ttf  *truetype.Font
	bold *truetype.Font

	b64Once sync.Once
	b64     string
}

// Resolve finds and parses the named font. It never fails: any problem is
// reported through [observability.AssetHooks] and the fallback is returned.
func Resolve(ctx context.Context, name string, dirs ...string) *Font {
	if name == "" {
		return Fallback("")
	}

	path, err := locate(name, dirs)
	if err != nil {
		observability.Asset().OnFontFallback(ctx, name, err)
		return Fallback(name)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		observability.Asset().OnFontFallback(ctx, name, err)
		return Fallback(name)
	}
	f, err := Parse(data)
	if err != nil {
		observability.Asset().OnFontFallback(ctx, name, fmt.Errorf("parse %s: %w", path, err))
		return Fallback(name)
	}
	f.Requested = name
	f.Path = path
	observability.Asset().OnAssetLoaded(ctx, "font", path)
	return f
}

// Parse builds a Font from TrueType bytes.
func Parse(data []byte) (*Font, error) {
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	family := ttf.Name(truetype.NameIDFontFamily)
	if family == "" {
		family = "Custom"
	}
	return &Font{Family: family, data: data, ttf: ttf}, nil
}

var (
	fallbackOnce sync.Once
	goRegular    *truetype.Font
	goBold       *truetype.Font
)

// Fallback returns the bundled Go font, recording requested as the name
// that could not be served.
func Fallback(requested string) *Font {
	fallbackOnce.Do(func() {
		goRegular, _ = truetype.Parse(goregular.TTF)
		goBold, _ = truetype.Parse(gobold.TTF)
	})
	return &Font{
		Requested: requested,
		Family:    "Go",
		Fallback:  true,
		data:      goregular.TTF,
		ttf:       goRegular,
		bold:      goBold,
	}
}

func locate(name string, dirs []string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", err
		}
		return name, nil
	}
	for _, dir := range append(dirs, ".") {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return findfont.Find(name)
}

// Face returns a drawing face at the given point size (72 dpi, so points
// equal pixels).
func (f *Font) Face(size float64) font.Face {
	return truetype.NewFace(f.ttf, &truetype.Options{Size: size, Hinting: font.HintingFull})
}

// BoldFace returns a bold face when the font has one, and the regular face
// otherwise.
func (f *Font) BoldFace(size float64) font.Face {
	if f.bold != nil {
		return truetype.NewFace(f.bold, &truetype.Options{Size: size, Hinting: font.HintingFull})
	}
	return f.Face(size)
}

// Base64 returns the font file base64-encoded, computed once.
func (f *Font) Base64() string {
	f.b64Once.Do(func() {
		f.b64 = base64.StdEncoding.EncodeToString(f.data)
	})
	return f.b64
}

// CSSFamily returns a font-family value for SVG text.
func (f *Font) CSSFamily() string {
	return fmt.Sprintf("'%s', %s", f.Family, GenericFamily)
}
