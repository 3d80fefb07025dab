package play

import (
	"testing"

	"github.com/automoto/spriteplay/assets/animations"
	"github.com/automoto/spriteplay/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAnimation(n, w, h int) *animations.SpriteAnimation {
	frames := make([]*ebiten.Image, n)
	for i := range frames {
		frames[i] = ebiten.NewImage(w, h)
	}
	a := animations.New(frames...)
	a.FrameDelay = 1
	return a
}

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestSpriteSizedByAnimation(t *testing.T) {
	p, _, _ := newTestP(t)
	ani := testAnimation(2, 16, 8)

	s, err := p.NewSprite(ani, 10, 10, physics.None)
	require.NoError(t, err)
	assert.Equal(t, 16.0, s.W())
	assert.Equal(t, 8.0, s.H())
	assert.Same(t, ani, s.Ani())
	assert.Equal(t, "default", s.AniLabel())

	img, err := p.NewSprite(ebiten.NewImage(4, 6))
	require.NoError(t, err)
	assert.Equal(t, 6.0, img.H())

	_, err = p.NewSprite(10, 10, ani)
	assert.ErrorIs(t, err, ErrBadArgs)
}

func TestAnimationAdvancesWithFrames(t *testing.T) {
	p, _, _ := newTestP(t)
	s, _ := p.NewSprite(testAnimation(3, 4, 4), 0, 0, physics.None)

	frame(p)
	assert.Equal(t, 1, s.Ani().Frame())

	s.SetAutoUpdate(false)
	frame(p)
	assert.Equal(t, 1, s.Ani().Frame(), "the animation follows the sprite's AutoUpdate")

	s.Update()
	assert.Equal(t, 2, s.Ani().Frame())
}

func TestChangeAnimation(t *testing.T) {
	p, _, _ := newTestP(t)
	s, _ := p.NewSprite(0, 0, physics.None)
	assert.Nil(t, s.Ani())

	walk := testAnimation(3, 4, 4)
	jump := testAnimation(2, 4, 4)
	s.AddAnimation("walk", walk)
	s.AddAnimation("jump", jump)
	assert.Equal(t, "walk", s.AniLabel())
	assert.Len(t, s.Animations(), 2)

	_, err := s.ChangeAnimation("fly")
	assert.ErrorIs(t, err, ErrNoAnimation)
	_, err = s.ChangeAnimation()
	assert.ErrorIs(t, err, ErrNoAnimation)

	done, err := s.ChangeAnimation("jump", "walk")
	require.NoError(t, err)
	assert.Equal(t, "jump", s.AniLabel())

	frame(p, 2)
	assert.Equal(t, "walk", s.AniLabel())
	assert.False(t, isClosed(done), "walk loops, so the sequence keeps going")

	single, err := s.ChangeAnimation("walk")
	require.NoError(t, err)
	assert.True(t, isClosed(done), "a new sequence ends the old one")
	assert.True(t, isClosed(single))
}

func TestChangeAnimationLoopsSequence(t *testing.T) {
	p, _, _ := newTestP(t)
	s, _ := p.NewSprite(0, 0, physics.None)
	s.AddAnimation("a", testAnimation(2, 4, 4))
	s.AddAnimation("b", testAnimation(2, 4, 4))

	done, err := s.ChangeAnimation("a", "b", "**")
	require.NoError(t, err)

	var labels []string
	for i := 0; i < 6; i++ {
		frame(p)
		labels = append(labels, s.AniLabel())
	}
	assert.Equal(t, []string{"a", "b", "b", "a", "a", "b"}, labels)
	assert.False(t, isClosed(done))
}

func TestGroupAnimationsAreShared(t *testing.T) {
	p, _, _ := newTestP(t)
	g := p.NewGroup()
	g.AddAnimation("idle", testAnimation(2, 12, 12))

	a, _ := g.NewSprite(0, 0, physics.None)
	b, _ := g.NewSprite(0, 0, physics.None)
	assert.Equal(t, "idle", a.AniLabel())
	assert.NotSame(t, a.Ani(), b.Ani(), "members get their own copy to play")
}
