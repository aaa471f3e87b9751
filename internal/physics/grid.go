package physics

import "fmt"

// Grid is the static tile map a World collides against.
// Cells are stored in row-major order: index = y*w + x.
// A Grid is never modified after construction.
type Grid struct {
	w     int
	h     int
	tiles []TileKind
}

// NewGrid creates a w×h grid. kind is called once per cell to classify it;
// a nil kind yields an all-empty grid.
func NewGrid(w, h int, kind func(x, y int) TileKind) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("physics: invalid grid size %dx%d", w, h))
	}

	g := &Grid{
		w:     w,
		h:     h,
		tiles: make([]TileKind, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			k := TileEmpty
			if kind != nil {
				k = kind(x, y)
			}
			g.tiles[y*w+x] = k
		}
	}
	return g
}

// ParseGrid builds a grid from text rows where '#' is a solid block and any
// other rune is empty. All rows must have the same length.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("physics: empty tile layout")
	}

	w := len(rows[0])
	if w == 0 {
		return nil, fmt.Errorf("physics: empty first row")
	}
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("physics: row %d has width %d, expected %d", i, len(row), w)
		}
	}

	return NewGrid(w, len(rows), func(x, y int) TileKind {
		if rows[y][x] == '#' {
			return TileBlock
		}
		return TileEmpty
	}), nil
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the grid height in tiles.
func (g *Grid) Height() int {
	return g.h
}

// PixelWidth returns the world width in pixels.
func (g *Grid) PixelWidth() int {
	return g.w * TileSize
}

// PixelHeight returns the world height in pixels.
func (g *Grid) PixelHeight() int {
	return g.h * TileSize
}

// InBounds returns true if the tile coordinate lies inside the grid.
func (g *Grid) InBounds(tx, ty int) bool {
	return tx >= 0 && tx < g.w && ty >= 0 && ty < g.h
}

// TileAt returns the tile at the given tile coordinate.
// Coordinates outside the grid are empty.
func (g *Grid) TileAt(tx, ty int) TileKind {
	if !g.InBounds(tx, ty) {
		return TileEmpty
	}
	return g.tiles[ty*g.w+tx]
}

// TileAtPixel returns the tile containing the given world pixel.
func (g *Grid) TileAtPixel(px, py int) TileKind {
	return g.TileAt(ToTile(px), ToTile(py))
}

// SolidAtPixel reports whether the tile containing the pixel is solid.
func (g *Grid) SolidAtPixel(px, py int) bool {
	return g.TileAtPixel(px, py).Solid()
}

// HasBorder reports whether every tile of the outer ring is solid.
// Playable levels require it; the world clamp alone does not stop bodies.
func (g *Grid) HasBorder() bool {
	for x := 0; x < g.w; x++ {
		if !g.TileAt(x, 0).Solid() || !g.TileAt(x, g.h-1).Solid() {
			return false
		}
	}
	for y := 0; y < g.h; y++ {
		if !g.TileAt(0, y).Solid() || !g.TileAt(g.w-1, y).Solid() {
			return false
		}
	}
	return true
}
