package assets

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// TileRect is one non-empty cell of a tile layer in world coordinates.
type TileRect struct {
	X, Y, W, H float64
	Col, Row   int
	ID         uint32
	Tile       string // the tile's "tile" property, used to pick a group
}

// TileMap is the collision-relevant content of a TMX map.
type TileMap struct {
	Width, Height int // pixels
	Tiles         []TileRect
}

// LoadTiles parses a TMX file and returns every filled cell of the named
// layer. An empty layer name takes the first tile layer.
func LoadTiles(fsys fs.FS, tmxPath, layerName string) (*TileMap, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tm := &TileMap{
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layerName != "" && layer.Name != layerName {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				var name string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					name = tilesetTile.Properties.GetString("tile")
				}

				tm.Tiles = append(tm.Tiles, TileRect{
					X:    float64(x) * tileW,
					Y:    float64(y) * tileH,
					W:    tileW,
					H:    tileH,
					Col:  x,
					Row:  y,
					ID:   tile.ID,
					Tile: name,
				})
			}
		}
		return tm, nil
	}

	return nil, fmt.Errorf("load TMX %s: no tile layer %q", tmxPath, layerName)
}
