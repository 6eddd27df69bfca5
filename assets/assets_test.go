package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writePNG(t *testing.T, path string, c color.Color) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}
	// one black pixel that must be keyed out
	img.Set(0, 0, color.Black)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	red := color.NRGBA{R: 0xff, A: 0xff}
	writePNG(t, filepath.Join(root, "images", "grass", "b.png"), red)
	writePNG(t, filepath.Join(root, "images", "grass", "a.png"), red)
	writePNG(t, filepath.Join(root, "images", "decoration", "bush.png"), red)
	if err := os.WriteFile(filepath.Join(root, "images", "README"), []byte("not a category"), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]string{"decoration", "grass"}, table.Categories()); diff != "" {
		t.Errorf("Categories mismatch (-want+got):\n%s", diff)
	}

	var names []string
	for _, img := range table.Images("grass") {
		names = append(names, img.Name)
	}
	if diff := cmp.Diff([]string{"a.png", "b.png"}, names); diff != "" {
		t.Errorf("grass images mismatch (-want+got):\n%s", diff)
	}

	img, ok := table.Lookup("grass", 1)
	if !ok || img.Name != "b.png" || img.Index != 1 || img.Category != "grass" {
		t.Fatalf("Lookup(grass, 1) = %v, %v", img, ok)
	}
	if _, ok := table.Lookup("grass", 2); ok {
		t.Errorf("Lookup past the end should fail")
	}
	if _, ok := table.Lookup("water", 0); ok {
		t.Errorf("Lookup of unknown category should fail")
	}

	_, _, _, a := img.Src.At(0, 0).RGBA()
	if a != 0 {
		t.Errorf("black pixel alpha = %d, want 0", a)
	}
	r, _, _, a := img.Src.At(1, 1).RGBA()
	if a != 0xffff || r != 0xffff {
		t.Errorf("red pixel = r%d a%d, want opaque red", r, a)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing_root", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("expected not-exist error, got %v", err)
		}
	})
	t.Run("bad_image", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "images", "grass", "broken.png")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(root)
		if err == nil {
			t.Fatalf("expected decode error")
		}
	})
}

func TestColorKey(t *testing.T) {
	src := image.NewRGBA(image.Rect(2, 2, 4, 3))
	src.Set(2, 2, color.Black)
	src.Set(3, 2, color.RGBA{R: 1, A: 0xff})

	got := ColorKey(src, Black)
	if got.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	if a := got.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("keyed alpha = %d, want 0", a)
	}
	if c := got.NRGBAAt(1, 0); c.A != 0xff || c.R != 1 {
		t.Errorf("near-black pixel changed: %v", c)
	}
}

func TestLoadFont(t *testing.T) {
	root := t.TempDir()
	if _, _, err := LoadFont(root); !errors.Is(err, ErrNoFont) {
		t.Fatalf("expected ErrNoFont, got %v", err)
	}
	path := filepath.Join(root, "font", "Minecraft.ttf")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("ttf"), 0o644); err != nil {
		t.Fatal(err)
	}
	b, got, err := LoadFont(root)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if string(b) != "ttf" || got != path {
		t.Errorf("LoadFont = %q, %q", b, got)
	}
}
