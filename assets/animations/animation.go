package animations

import (
	"github.com/automoto/spriteplay/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteAnimation is an ordered sequence of images with playback state.
type SpriteAnimation struct {
	Name       string
	FrameDelay int // how many updates each image stays on screen
	Looping    bool
	Playing    bool
	Visible    bool

	// EndOnFirstFrame rewinds a non-looping animation when it finishes.
	EndOnFirstFrame bool

	// FrameChanged is true for the update that moved to a new image.
	FrameChanged bool

	OffsetX, OffsetY float64
	ScaleX, ScaleY   float64
	Rotation         float64 // degrees, added to the sprite's rotation

	OnComplete func()
	OnChange   func(frame int)

	frames      []*ebiten.Image
	frame       int
	targetFrame int
	cycles      int
	done        chan struct{}
}

// New creates a looping, playing animation from an explicit image list.
func New(frames ...*ebiten.Image) *SpriteAnimation {
	return &SpriteAnimation{
		FrameDelay:  config.Animation.FrameDelay,
		Looping:     true,
		Playing:     true,
		Visible:     true,
		ScaleX:      1,
		ScaleY:      1,
		frames:      frames,
		targetFrame: -1,
	}
}

// Update advances playback by one frame of the draw loop.
func (a *SpriteAnimation) Update() {
	a.FrameChanged = false
	if !a.Playing || len(a.frames) == 0 {
		return
	}

	a.cycles++
	delay := a.FrameDelay
	if delay < 1 {
		delay = 1
	}
	if a.cycles%delay != 0 {
		return
	}

	prev := a.frame
	last := len(a.frames) - 1

	switch {
	case a.targetFrame >= 0:
		if a.frame < a.targetFrame {
			a.frame++
		} else if a.frame > a.targetFrame {
			a.frame--
		}
		if a.frame == a.targetFrame {
			a.targetFrame = -1
			a.Playing = false
			a.finish()
		}
	case a.frame < last:
		a.frame++
	case a.Looping:
		a.frame = 0
	default:
		a.Playing = false
		if a.EndOnFirstFrame {
			a.frame = 0
		}
		a.finish()
	}

	if a.frame != prev {
		a.FrameChanged = true
		if a.OnChange != nil {
			a.OnChange(a.frame)
		}
	}
}

func (a *SpriteAnimation) finish() {
	if a.OnComplete != nil {
		a.OnComplete()
	}
	if a.done != nil {
		close(a.done)
		a.done = nil
	}
}

// Play resumes playback. The returned channel closes when a non-looping
// run reaches its end.
func (a *SpriteAnimation) Play() <-chan struct{} {
	a.Playing = true
	return a.Done()
}

// PlayFrom jumps to frame and resumes playback.
func (a *SpriteAnimation) PlayFrom(frame int) <-chan struct{} {
	a.SetFrame(frame)
	return a.Play()
}

// Done returns a channel that closes the next time playback completes.
func (a *SpriteAnimation) Done() <-chan struct{} {
	if a.done == nil {
		a.done = make(chan struct{})
	}
	return a.done
}

// Pause stops playback on the current frame.
func (a *SpriteAnimation) Pause() {
	a.Playing = false
}

// Stop pauses playback and rewinds to the first frame.
func (a *SpriteAnimation) Stop() {
	a.Playing = false
	a.targetFrame = -1
	a.frame = 0
}

// Rewind goes back to the first frame without changing Playing.
func (a *SpriteAnimation) Rewind() {
	a.frame = 0
	a.cycles = 0
}

func (a *SpriteAnimation) Loop() {
	a.Looping = true
}

func (a *SpriteAnimation) NoLoop() {
	a.Looping = false
}

// NextFrame moves one image forward, wrapping only when looping.
func (a *SpriteAnimation) NextFrame() {
	switch {
	case a.frame < len(a.frames)-1:
		a.frame++
	case a.Looping:
		a.frame = 0
	}
}

// PreviousFrame moves one image back, wrapping only when looping.
func (a *SpriteAnimation) PreviousFrame() {
	switch {
	case a.frame > 0:
		a.frame--
	case a.Looping && len(a.frames) > 0:
		a.frame = len(a.frames) - 1
	}
}

// GoToFrame plays forward or backward until frame is shown, then pauses.
// The returned channel closes when the frame is reached.
func (a *SpriteAnimation) GoToFrame(frame int) <-chan struct{} {
	done := a.Done()
	frame = a.clamp(frame)
	if frame == a.frame {
		a.Playing = false
		a.finish()
		return done
	}
	a.targetFrame = frame
	a.Playing = true
	return done
}

// SetFrame shows frame immediately.
func (a *SpriteAnimation) SetFrame(frame int) {
	a.frame = a.clamp(frame)
	a.cycles = 0
}

func (a *SpriteAnimation) clamp(frame int) int {
	if frame < 0 {
		return 0
	}
	if n := len(a.frames); frame >= n {
		return max(n-1, 0)
	}
	return frame
}

func (a *SpriteAnimation) Frame() int {
	return a.frame
}

func (a *SpriteAnimation) TargetFrame() int {
	return a.targetFrame
}

func (a *SpriteAnimation) LastFrame() int {
	return len(a.frames) - 1
}

func (a *SpriteAnimation) Len() int {
	return len(a.frames)
}

// Image returns the image for the current frame, or nil for an empty
// animation.
func (a *SpriteAnimation) Image() *ebiten.Image {
	if len(a.frames) == 0 {
		return nil
	}
	return a.frames[a.frame]
}

// Size returns the size of the current image.
func (a *SpriteAnimation) Size() (int, int) {
	img := a.Image()
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// Clone copies playback settings and shares the images. The copy starts on
// the same frame with its own completion channel.
func (a *SpriteAnimation) Clone() *SpriteAnimation {
	c := *a
	c.frames = append([]*ebiten.Image(nil), a.frames...)
	c.done = nil
	return &c
}

// Animations is a label-keyed collection of animations.
type Animations map[string]*SpriteAnimation

// Clone deep-copies every animation so playback state is not shared.
func (as Animations) Clone() Animations {
	out := make(Animations, len(as))
	for label, a := range as {
		out[label] = a.Clone()
	}
	return out
}
