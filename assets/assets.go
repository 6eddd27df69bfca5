// Package assets loads the categorised tile images offered by the palette.
//
// The on-disk layout is <root>/images/<category>/<file>. Every category
// directory becomes one entry of the Table, in directory-listing order.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const imagesDir = "images"

// Image is one loadable bitmap of a category. It is the opaque handle that
// gets stamped onto placed tiles.
type Image struct {
	Category string
	Index    int
	Name     string
	Src      image.Image
}

// Size returns the pixel dimensions of the bitmap.
func (i *Image) Size() image.Point {
	if i == nil || i.Src == nil {
		return image.Point{}
	}
	return i.Src.Bounds().Size()
}

func (i *Image) String() string {
	if i == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s[%d]", i.Category, i.Index)
}

// Table maps category names to ordered image lists. It is populated once
// and read-only afterwards.
type Table struct {
	categories []string
	images     map[string][]*Image
}

// NewTable returns an empty table. Load is the usual constructor; NewTable
// with Add is used to build tables from in-memory images.
func NewTable() *Table {
	return &Table{images: make(map[string][]*Image)}
}

// Load reads every category directory under <root>/images.
func Load(root string) (*Table, error) {
	dir := filepath.Join(root, imagesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: read dir %s: %w", dir, err)
	}

	t := NewTable()
	for _, e := range entries {
		if !e.IsDir() || hidden(e.Name()) {
			continue
		}
		if err := t.loadCategory(filepath.Join(dir, e.Name()), e.Name()); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) loadCategory(dir, category string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("assets: read dir %s: %w", dir, err)
	}
	t.ensure(category)
	for _, e := range entries {
		if e.IsDir() || hidden(e.Name()) {
			continue
		}
		src, err := LoadImage(filepath.Join(dir, e.Name()))
		if err != nil {
			return err
		}
		t.Add(category, e.Name(), src)
	}
	return nil
}

// LoadImage decodes the image file at path.
func LoadImage(path string) (image.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// Add appends src to category (creating it if needed) after keying out
// black, and returns the new handle.
func (t *Table) Add(category, name string, src image.Image) *Image {
	t.ensure(category)
	img := &Image{
		Category: category,
		Index:    len(t.images[category]),
		Name:     name,
		Src:      ColorKey(src, Black),
	}
	t.images[category] = append(t.images[category], img)
	return img
}

func (t *Table) ensure(category string) {
	if _, ok := t.images[category]; ok {
		return
	}
	t.categories = append(t.categories, category)
	t.images[category] = nil
}

// Categories returns the category names in load order.
func (t *Table) Categories() []string {
	out := make([]string, len(t.categories))
	copy(out, t.categories)
	return out
}

// Images returns the ordered images of category, nil when unknown.
func (t *Table) Images(category string) []*Image {
	return t.images[category]
}

// Lookup resolves a (category, index) pair.
func (t *Table) Lookup(category string, index int) (*Image, bool) {
	imgs, ok := t.images[category]
	if !ok || index < 0 || index >= len(imgs) {
		return nil, false
	}
	return imgs[index], true
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
