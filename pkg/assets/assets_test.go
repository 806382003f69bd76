package assets

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/probemap/pkg/aggregate"
	"github.com/matzehuels/probemap/pkg/cache"
	"github.com/matzehuels/probemap/pkg/dataset"
	"github.com/matzehuels/probemap/pkg/layout"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 30, G: 144, B: 255, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadResamples(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "seal.png"), 40, 40)

	l := NewLoader(dir, nil)
	img, ok, err := l.Load(context.Background(), "seal.png", layout.Size{W: 150, H: 562})
	if err != nil || !ok {
		t.Fatalf("Load = %v, %v", ok, err)
	}
	b := img.Image.Bounds()
	if b.Dx() != 150 || b.Dy() != 562 {
		t.Errorf("size = %dx%d, want 150x562", b.Dx(), b.Dy())
	}
	if !strings.HasPrefix(img.DataURI(), "data:image/png;base64,") {
		t.Errorf("DataURI prefix: %.30s", img.DataURI())
	}
}

func TestLoadSkipsMissingAndEmpty(t *testing.T) {
	l := NewLoader(t.TempDir(), nil)
	ctx := context.Background()

	for _, rel := range []string{"", "missing.jpeg"} {
		img, ok, err := l.Load(ctx, rel, layout.Size{W: 10, H: 10})
		if err != nil || ok || img != nil {
			t.Errorf("Load(%q) = %v, %v, %v; want skip", rel, img, ok, err)
		}
	}
}

func TestLoadSkipsUndecodable(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.jpeg"), []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	_, ok, err := NewLoader(dir, nil).Load(context.Background(), "broken.jpeg", layout.Size{W: 10, H: 10})
	if err != nil || ok {
		t.Errorf("Load(broken) = %v, %v; want skip", ok, err)
	}
}

func TestLoadUsesCache(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "logo.png"), 8, 8)
	fc, err := cache.NewFileCache(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	l := NewLoader(dir, fc)
	size := layout.Size{W: 20, H: 30}
	first, _, err := l.Load(ctx, "logo.png", size)
	if err != nil {
		t.Fatal(err)
	}

	key := l.keyer.AssetKey(filepath.Join(dir, "logo.png"), statOpts(t, filepath.Join(dir, "logo.png"), size))
	data, hit, _ := fc.Get(ctx, key)
	if !hit {
		t.Fatal("resampled image should be cached")
	}
	if string(data) != string(first.PNG) {
		t.Error("cached bytes differ from loaded image")
	}

	second, ok, err := l.Load(ctx, "logo.png", size)
	if err != nil || !ok {
		t.Fatalf("second Load = %v, %v", ok, err)
	}
	if second.Image.Bounds() != first.Image.Bounds() {
		t.Error("cached image has different bounds")
	}
}

func statOpts(t *testing.T, path string, size layout.Size) cache.AssetKeyOpts {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	return cache.AssetKeyOpts{ModTime: info.ModTime(), Size: info.Size(), Width: size.W, Height: size.H}
}

func TestLoadLayout(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "Tesla_logo.jpeg.png"), 4, 4)

	ds := dataset.Default()
	ds.Companies[0].Image = "Tesla_logo.jpeg.png"
	lay, err := layout.Build(ds, aggregate.Count(ds))
	if err != nil {
		t.Fatal(err)
	}

	set, err := NewLoader(dir, nil).LoadLayout(context.Background(), lay)
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	if len(set) != 1 || set.Get("Tesla") == nil {
		t.Errorf("set = %v, want only Tesla", set)
	}
	if set.Get("SpaceX") != nil {
		t.Error("missing logo should not be in set")
	}

	if set.Fingerprint() == (Set{}).Fingerprint() {
		t.Error("fingerprint should depend on contents")
	}
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := NewLoader(t.TempDir(), nil).Load(ctx, "x.png", layout.Size{W: 1, H: 1}); err == nil {
		t.Error("cancelled context should fail")
	}
}
