package play

import (
	"fmt"
	"io/fs"
	"strconv"

	"github.com/automoto/spriteplay/assets"
)

// tileGroups maps tile characters to the groups that make them. Without
// explicit groups every group with a tile set is used.
func (p *P) tileGroups(groups []*Group) map[string]*Group {
	if len(groups) == 0 {
		var walk func(*Group)
		walk = func(g *Group) {
			groups = append(groups, g)
			for _, sub := range g.subgroups {
				walk(sub)
			}
		}
		walk(p.allSprites)
	}
	out := make(map[string]*Group)
	for _, g := range groups {
		if tile, ok := g.Tile(); ok {
			out[tile] = g
		}
	}
	return out
}

// NewTiles creates one sprite per map character. Row r, column c becomes
// a w x h sprite centered at x + c*w, y + r*h, created by the group whose
// tile is that character. Unknown characters are empty cells.
func (p *P) NewTiles(rows []string, x, y, w, h float64, groups ...*Group) ([]*Sprite, error) {
	if err := p.requireWorld(); err != nil {
		return nil, err
	}
	byTile := p.tileGroups(groups)

	var out []*Sprite
	for r, row := range rows {
		for c, ch := range []rune(row) {
			g, ok := byTile[string(ch)]
			if !ok {
				continue
			}
			s, err := g.NewSprite(x+float64(c)*w, y+float64(r)*h, w, h)
			if err != nil {
				return out, fmt.Errorf("tile %q at %d,%d: %w", ch, c, r, err)
			}
			out = append(out, s)
		}
	}
	return out, nil
}

// NewTilesFromTMX creates sprites from a tile layer of a TMX map. A tile
// picks its group by its "tile" property, or by its id when it has none.
func (p *P) NewTilesFromTMX(fsys fs.FS, tmxPath, layer string, groups ...*Group) ([]*Sprite, error) {
	if err := p.requireWorld(); err != nil {
		return nil, err
	}
	tm, err := assets.LoadTiles(fsys, tmxPath, layer)
	if err != nil {
		return nil, err
	}
	byTile := p.tileGroups(groups)

	var out []*Sprite
	for _, t := range tm.Tiles {
		name := t.Tile
		if name == "" {
			name = strconv.Itoa(int(t.ID))
		}
		g, ok := byTile[name]
		if !ok {
			continue
		}
		s, err := g.NewSprite(t.X+t.W/2, t.Y+t.H/2, t.W, t.H)
		if err != nil {
			return out, fmt.Errorf("tile %q at %d,%d: %w", name, t.Col, t.Row, err)
		}
		out = append(out, s)
	}
	return out, nil
}
