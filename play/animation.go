package play

import (
	"errors"
	"fmt"

	"github.com/automoto/spriteplay/assets/animations"
	"github.com/automoto/spriteplay/components"
)

var ErrNoAnimation = errors.New("play: no such animation")

// loopMarker as the last label of ChangeAnimation repeats the sequence.
const loopMarker = "**"

// AddAnimation stores ani under label. The first animation added becomes
// the current one.
func (s *Sprite) AddAnimation(label string, ani *animations.SpriteAnimation) {
	if s.removed {
		return
	}
	ad := components.Animation.Get(s.entry)
	if ad.Animations == nil {
		ad.Animations = animations.Animations{}
	}
	ad.Animations[label] = ani
	if ad.Current == nil {
		ad.SetAnimation(label)
	}
}

// Animations returns the label-keyed animations of the sprite.
func (s *Sprite) Animations() animations.Animations {
	if s.removed {
		return nil
	}
	return components.Animation.Get(s.entry).Animations
}

// Ani is the animation currently shown, nil if the sprite has none.
func (s *Sprite) Ani() *animations.SpriteAnimation {
	if s.removed {
		return nil
	}
	return components.Animation.Get(s.entry).Current
}

// AniLabel is the label of the current animation.
func (s *Sprite) AniLabel() string {
	if s.removed {
		return ""
	}
	return components.Animation.Get(s.entry).Label
}

// ChangeAnimation plays the labelled animations one after another. A
// final "**" loops the whole sequence. The channel closes when the
// sequence ends; a single looping animation ends at once.
func (s *Sprite) ChangeAnimation(labels ...string) (<-chan struct{}, error) {
	if s.removed {
		return nil, fmt.Errorf("%w: sprite %d removed", ErrNoAnimation, s.id)
	}
	loop := false
	if n := len(labels); n > 0 && labels[n-1] == loopMarker {
		labels, loop = labels[:n-1], true
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: no labels", ErrNoAnimation)
	}

	ad := components.Animation.Get(s.entry)
	for _, label := range labels {
		if _, ok := ad.Animations[label]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoAnimation, label)
		}
	}
	return ad.StartSequence(labels, loop), nil
}
