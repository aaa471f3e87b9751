// Package levels loads platformer levels: a tile layout, a spawn point and
// coin positions. Levels are YAML files; one level is built in.
package levels

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tile-arcade/internal/physics"
)

//go:embed default.yaml
var defaultLevelYAML []byte

// Point is a position in pixels or tiles, depending on the field.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Level is a parsed, validated level.
type Level struct {
	Name  string
	Grid  *physics.Grid
	Spawn physics.Vec2 // feet position in pixels
	Coins []Point      // tile coordinates
	Path  string       // source file, empty for the built-in level
}

// yamlLevel is the on-disk shape of a level file.
type yamlLevel struct {
	Name  string   `yaml:"name"`
	Tiles []string `yaml:"tiles"`
	Spawn Point    `yaml:"spawn"`
	Coins [][2]int `yaml:"coins"`
}

// Default returns the built-in level.
func Default() *Level {
	l, err := Parse(defaultLevelYAML)
	if err != nil {
		panic(fmt.Sprintf("levels: built-in level is invalid: %v", err))
	}
	return l
}

// LoadFile reads and parses a level file.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: reading %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", path, err)
	}
	l.Path = path
	return l, nil
}

// Parse decodes and validates a level. The layout must be rectangular with
// a solid outer ring, the spawn must lie inside the world in an empty tile,
// and every coin must sit in an empty tile.
func Parse(data []byte) (*Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	grid, err := physics.ParseGrid(yl.Tiles)
	if err != nil {
		return nil, err
	}
	if !grid.HasBorder() {
		return nil, errors.New("outer ring of tiles must be solid")
	}

	sx, sy := yl.Spawn.X, yl.Spawn.Y
	if sx <= 0 || sx >= grid.PixelWidth() || sy <= 0 || sy >= grid.PixelHeight() {
		return nil, fmt.Errorf("spawn (%d, %d) outside the %dx%d pixel world",
			sx, sy, grid.PixelWidth(), grid.PixelHeight())
	}
	if grid.SolidAtPixel(sx, sy) {
		return nil, fmt.Errorf("spawn (%d, %d) is inside a solid tile", sx, sy)
	}

	coins := make([]Point, 0, len(yl.Coins))
	for i, c := range yl.Coins {
		p := Point{X: c[0], Y: c[1]}
		if !grid.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("coin %d at tile (%d, %d) is outside the grid", i, p.X, p.Y)
		}
		if grid.TileAt(p.X, p.Y).Solid() {
			return nil, fmt.Errorf("coin %d at tile (%d, %d) is inside a solid tile", i, p.X, p.Y)
		}
		coins = append(coins, p)
	}

	name := yl.Name
	if name == "" {
		name = "Untitled"
	}

	return &Level{
		Name:  name,
		Grid:  grid,
		Spawn: physics.Vec2{X: float64(sx), Y: float64(sy)},
		Coins: coins,
	}, nil
}
