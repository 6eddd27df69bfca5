package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const fontDir = "font"

// ErrNoFont is returned by LoadFont when <root>/font holds no file.
var ErrNoFont = errors.New("assets: no font file")

// LoadFont returns the contents and path of the first file in <root>/font.
func LoadFont(root string) ([]byte, string, error) {
	dir := filepath.Join(root, fontDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", ErrNoFont
		}
		return nil, "", fmt.Errorf("assets: read dir %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || hidden(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("assets: read %s: %w", path, err)
		}
		return b, path, nil
	}
	return nil, "", ErrNoFont
}
