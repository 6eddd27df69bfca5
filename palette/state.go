package palette

import "github.com/milk9111/tilepaint/assets"

// Selection is a chosen tile: the category it came from, its position in
// that category and its bitmap.
type Selection struct {
	Category string
	Index    int
	Image    *assets.Image
}

// State is the palette's selection. The zero value selects nothing.
type State struct {
	category    string
	hasCategory bool
	tile        *Selection
}

// Category returns the category whose tiles are shown.
func (s *State) Category() (string, bool) {
	return s.category, s.hasCategory
}

// Tile returns the selected tile, or nil.
func (s *State) Tile() *Selection {
	return s.tile
}

// SelectCategory shows the tiles of name. The tile selection is kept.
func (s *State) SelectCategory(name string) {
	s.category = name
	s.hasCategory = true
}

func (s *State) SelectTile(img *assets.Image) {
	s.tile = &Selection{Category: img.Category, Index: img.Index, Image: img}
}
