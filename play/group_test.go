package play

import (
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/automoto/spriteplay/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func TestGroupDefaultsResolveThroughParents(t *testing.T) {
	p, _, _ := newTestP(t)

	g := p.NewGroup()
	g.SetWidth(10)
	g.SetColor(red)
	g.SetCollider(physics.Static)
	sub := g.NewGroup()
	sub.SetHeight(5)

	s, err := sub.NewSprite(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 10.0, s.W())
	assert.Equal(t, 5.0, s.H())
	assert.Equal(t, red, s.Color())
	assert.Equal(t, physics.Static, s.Collider())

	// explicit arguments win over defaults
	big, err := sub.NewSprite(0, 0, 70, 80, physics.Kinematic)
	require.NoError(t, err)
	assert.Equal(t, 70.0, big.W())
	assert.Equal(t, physics.Kinematic, big.Collider())

	// a sprite outside a group is not touched by its defaults
	other := g.NewGroup()
	other.SetWidth(99)
	assert.Equal(t, 10.0, s.W())

	// setting a default updates current members
	g.SetColor(blue)
	assert.Equal(t, blue, s.Color())
}

func TestGroupLayerDefault(t *testing.T) {
	p, _, _ := newTestP(t)
	g := p.NewGroup()
	g.SetLayer(7)

	a, _ := g.NewSprite()
	b, _ := g.NewSprite()
	assert.Equal(t, 7, a.Layer())
	assert.Equal(t, 7, b.Layer())

	c, _ := p.NewSprite()
	assert.Equal(t, 8, c.Layer())
}

func TestGroupMembership(t *testing.T) {
	p, _, _ := newTestP(t)
	g := p.NewGroup()
	sub := g.NewGroup()

	s, _ := sub.NewSprite()
	assert.True(t, sub.Contains(s))
	assert.True(t, g.Contains(s))
	assert.True(t, p.AllSprites().Contains(s))
	assert.Len(t, s.Groups(), 3)

	loose, _ := p.NewSprite()
	sub.Add(loose)
	assert.True(t, g.Contains(loose))
	assert.Equal(t, 2, sub.Size())
	assert.Same(t, s, sub.Get(0))
	assert.Nil(t, sub.Get(5))

	g.Remove(s)
	assert.False(t, g.Contains(s))
	assert.False(t, sub.Contains(s), "removing from a group removes from its subgroups")
	assert.True(t, p.AllSprites().Contains(s))
	assert.False(t, s.Removed())

	p.AllSprites().Remove(s)
	assert.True(t, s.Removed())
	assert.Equal(t, 1, p.AllSprites().Size())
}

func TestGroupRemoveAll(t *testing.T) {
	p, _, _ := newTestP(t)
	g := p.NewGroup()
	a, _ := g.NewSprite()
	b, _ := g.NewSprite()
	keep, _ := p.NewSprite()

	g.RemoveAll()
	assert.True(t, a.Removed())
	assert.True(t, b.Removed())
	assert.Zero(t, g.Size())
	assert.Equal(t, []*Sprite{keep}, p.AllSprites().Sprites())
}

func TestGroupCentroidAndCull(t *testing.T) {
	p, _, _ := newTestP(t)
	g := p.NewGroup()
	g.NewSprite(0, 0, physics.None)
	g.NewSprite(100, 50, physics.None)

	x, y := g.Centroid()
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 25.0, y)

	var seen []*Sprite
	far, _ := g.NewSprite(-200, 250, physics.None)
	n := g.Cull(10, 10, 10, 10, func(s *Sprite) { seen = append(seen, s) })
	assert.Equal(t, 1, n)
	assert.Equal(t, []*Sprite{far}, seen)
	assert.False(t, far.Removed())

	assert.Equal(t, 1, g.Cull(10, 10, 10, 10))
	assert.True(t, far.Removed())
	assert.Equal(t, 2, g.Size())
}

func TestGroupMoveTo(t *testing.T) {
	p, _, _ := newTestP(t)
	g := p.NewGroup()
	g.SetCollider(physics.None)
	a, _ := g.NewSprite(0, 0)
	b, _ := g.NewSprite(0, 10)

	done := g.MoveTo(20, 5, 5)
	frame(p, 6)

	assert.True(t, <-done)
	ax, ay := a.Position()
	bx, by := b.Position()
	assert.Equal(t, [2]float64{20, 5}, [2]float64{ax, ay})
	assert.Equal(t, [2]float64{20, 5}, [2]float64{bx, by})
}

func TestGroupOrbit(t *testing.T) {
	p, _, _ := newTestP(t)
	g := p.NewGroup()
	a, _ := g.NewSprite(100, 100, physics.None)
	b, _ := g.NewSprite(200, 100, physics.None)

	g.Orbit(90)
	assert.InDelta(t, 150.0, a.X(), 1e-9)
	assert.InDelta(t, 50.0, a.Y(), 1e-9)
	assert.InDelta(t, 150.0, b.X(), 1e-9)
	assert.InDelta(t, 150.0, b.Y(), 1e-9)

	x, y := g.Centroid()
	assert.InDelta(t, 150.0, x, 1e-9)
	assert.InDelta(t, 100.0, y, 1e-9)
}

func TestSnap(t *testing.T) {
	p, _, _ := newTestP(t)
	g := p.NewGroup()
	g.SetCollider(physics.None)
	floor, _ := p.NewSprite(0, 0, physics.None)
	still, _ := g.NewSprite(10.4, 20.6)
	moving, _ := g.NewSprite(5.5, 5.5)
	moving.SetVelocity(1, 0)

	g.Snap(floor)
	x, y := still.Position()
	assert.Equal(t, [2]float64{10, 21}, [2]float64{x, y})
	x, y = moving.Position()
	assert.Equal(t, [2]float64{5.5, 5.5}, [2]float64{x, y})

	far, _ := p.NewSprite(3.3, 4, physics.None)
	far.Snap(nil, 0.2)
	x, _ = far.Position()
	assert.Equal(t, 3.3, x)

	floor.SetVelocity(0, 2)
	far.Snap(floor)
	x, _ = far.Position()
	assert.Equal(t, 3.3, x, "o is moving")
}

func TestNewTiles(t *testing.T) {
	p, _, _ := newTestP(t)
	bricks := p.NewGroup()
	bricks.SetTile("#")
	bricks.SetCollider(physics.Static)
	coins := p.NewGroup()
	coins.SetTile("o")
	coins.SetCollider(physics.None)

	sprites, err := p.NewTiles([]string{
		"#.#",
		".o.",
	}, 10, 10, 20, 20)
	require.NoError(t, err)
	require.Len(t, sprites, 3)

	assert.Equal(t, 3, len(sprites))
	assert.Equal(t, 2, bricks.Size())
	assert.Equal(t, 1, coins.Size())
	assert.Equal(t, 50.0, bricks.Get(1).X())
	assert.Equal(t, 10.0, bricks.Get(1).Y())
	assert.Equal(t, 30.0, coins.Get(0).X())
	assert.Equal(t, 30.0, coins.Get(0).Y())
	assert.Equal(t, "#", bricks.Get(0).Tile())
	assert.Equal(t, physics.Static, bricks.Get(0).Collider())
	assert.Equal(t, 20.0, coins.Get(0).W())

	// only the groups given are used
	only, err := p.NewTiles([]string{"#o"}, 0, 0, 10, 10, coins)
	require.NoError(t, err)
	assert.Len(t, only, 1)
}

const tilesTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" name="blocks" tilewidth="16" tileheight="16" tilecount="2" columns="2">
  <image source="blocks.png" width="32" height="16"/>
  <tile id="0">
   <properties>
    <property name="tile" value="="/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="ground" width="3" height="2">
  <data encoding="csv">
0,0,2,
1,1,0
</data>
 </layer>
</map>
`

func TestNewTilesFromTMX(t *testing.T) {
	p, _, _ := newTestP(t)
	ground := p.NewGroup()
	ground.SetTile("=")
	ground.SetCollider(physics.Static)
	spikes := p.NewGroup()
	spikes.SetTile("1")

	fsys := fstest.MapFS{"level.tmx": {Data: []byte(tilesTMX)}}
	sprites, err := p.NewTilesFromTMX(fsys, "level.tmx", "ground")
	require.NoError(t, err)
	require.Len(t, sprites, 3)

	assert.Equal(t, 2, ground.Size())
	assert.Equal(t, 1, spikes.Size())
	assert.Equal(t, 40.0, spikes.Get(0).X())
	assert.Equal(t, 8.0, spikes.Get(0).Y())
	assert.Equal(t, 16.0, ground.Get(0).W())

	_, err = p.NewTilesFromTMX(fsys, "missing.tmx", "ground")
	assert.Error(t, err)
}
