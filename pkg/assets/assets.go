// Package assets loads the seal and logo images drawn on a diagram.
//
// Images are looked up relative to an asset directory. A missing file is not
// an error: the node is drawn without its image, the same as a node that
// declares no image at all. Files that exist but cannot be decoded are
// skipped the same way and reported through [observability.AssetHooks].
//
// Every image is resampled to the pixel size the layout asks for and kept as
// PNG bytes, which the SVG sink embeds as a data URI and the PNG sink decodes
// once more for drawing. Resampled images are cached by source path,
// modification time, size and target size.
package assets

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/probemap/pkg/cache"
	"github.com/matzehuels/probemap/pkg/layout"
	"github.com/matzehuels/probemap/pkg/observability"
)

const kindImage = "image"

// Image is a resampled image ready to draw.
type Image struct {
	Path  string      // path as declared in the dataset
	Image image.Image // resampled pixels
	PNG   []byte      // Image encoded as PNG
}

// DataURI returns the image as a base64 PNG data URI.
func (i *Image) DataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(i.PNG)
}

// Loader resolves and resamples images from a directory.
type Loader struct {
	dir   string
	cache cache.Cache
	keyer cache.Keyer
}

// NewLoader creates a loader rooted at dir. An empty dir means the working
// directory; a nil cache disables caching.
func NewLoader(dir string, c cache.Cache) *Loader {
	if dir == "" {
		dir = "."
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Loader{dir: dir, cache: c, keyer: cache.NewDefaultKeyer()}
}

// Dir returns the asset directory.
func (l *Loader) Dir() string { return l.dir }

// Load returns the image at rel resampled to size. The boolean is false when
// rel is empty, missing or undecodable; the error is reserved for failures
// other than those (such as permission errors or cancellation).
func (l *Loader) Load(ctx context.Context, rel string, size layout.Size) (*Image, bool, error) {
	if rel == "" {
		return nil, false, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	path := filepath.Join(l.dir, rel)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		observability.Asset().OnAssetSkipped(ctx, kindImage, rel, err)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("stat %s: %w", path, err)
	}

	key := l.keyer.AssetKey(path, cache.AssetKeyOpts{
		ModTime: info.ModTime(),
		Size:    info.Size(),
		Width:   size.W,
		Height:  size.H,
	})
	if data, hit, err := l.cache.Get(ctx, key); err == nil && hit {
		if img, err := imaging.Decode(bytes.NewReader(data)); err == nil {
			observability.Cache().OnCacheHit(ctx, "asset")
			return &Image{Path: rel, Image: img, PNG: data}, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "asset")

	src, err := imaging.Open(path)
	if err != nil {
		observability.Asset().OnAssetSkipped(ctx, kindImage, rel, err)
		return nil, false, nil
	}

	img := image.Image(imaging.Resize(src, size.W, size.H, imaging.Lanczos))
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, false, fmt.Errorf("encode %s: %w", rel, err)
	}

	if err := l.cache.Set(ctx, key, buf.Bytes(), cache.TTLAsset); err == nil {
		observability.Cache().OnCacheSet(ctx, "asset", buf.Len())
	}
	observability.Asset().OnAssetLoaded(ctx, kindImage, rel)
	return &Image{Path: rel, Image: img, PNG: buf.Bytes()}, true, nil
}

// Set holds the images found for a layout, keyed by node name.
type Set map[string]*Image

// Get returns the image for a node, or nil.
func (s Set) Get(name string) *Image { return s[name] }

// Fingerprint summarises which images are present and their content, for
// use in artifact cache keys.
func (s Set) Fingerprint() string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	slices.Sort(names)

	var b strings.Builder
	for _, n := range names {
		b.WriteString(n)
		b.WriteByte('=')
		b.WriteString(cache.Hash(s[n].PNG))
		b.WriteByte(';')
	}
	return cache.Hash([]byte(b.String()))
}

// LoadLayout loads the image of every node in l. Missing images are left out
// of the set.
func (l *Loader) LoadLayout(ctx context.Context, lay layout.Layout) (Set, error) {
	set := make(Set)
	nodes := append(slices.Clone(lay.Agencies), lay.Companies...)
	for _, n := range nodes {
		img, ok, err := l.Load(ctx, n.Image, n.Pixels)
		if err != nil {
			return nil, err
		}
		if ok {
			set[n.Name] = img
		}
	}
	return set, nil
}
