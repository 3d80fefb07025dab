package components

import (
	"github.com/automoto/spriteplay/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Animations animations.Animations
	Label      string
	Current    *animations.SpriteAnimation

	// Queue holds labels still to play after Current completes.
	Queue        []string
	LoopSequence bool
	sequence     []string
	done         chan struct{}
}

// SetAnimation switches to the animation stored under label. Switching to
// the label already playing is a no-op.
func (a *AnimationData) SetAnimation(label string) bool {
	anim, ok := a.Animations[label]
	if !ok {
		return false
	}
	if a.Current == anim {
		return true
	}
	a.Current = anim
	a.Label = label
	anim.Rewind()
	anim.Playing = true
	return true
}

// StartSequence plays labels in order. Every label but the last plays
// once; the last keeps its own looping setting unless loop is set, in
// which case the whole sequence repeats. The returned channel closes when
// the sequence ends.
func (a *AnimationData) StartSequence(labels []string, loop bool) <-chan struct{} {
	a.finishSequence()
	a.done = make(chan struct{})
	done := a.done

	a.sequence = append(a.sequence[:0], labels...)
	a.LoopSequence = loop
	a.Queue = append([]string(nil), labels[1:]...)
	a.SetAnimation(labels[0])
	if a.Current != nil && (len(a.Queue) > 0 || loop) {
		a.Current.Looping = false
	}
	if len(labels) == 1 && !loop && a.Current != nil && a.Current.Looping {
		a.finishSequence()
	}
	return done
}

// Advance moves to the next queued label when Current has finished.
func (a *AnimationData) Advance() {
	if a.Current == nil || a.Current.Playing {
		return
	}
	if len(a.Queue) == 0 {
		if !a.LoopSequence || len(a.sequence) == 0 {
			a.finishSequence()
			return
		}
		a.Queue = append(a.Queue, a.sequence...)
	}

	next := a.Queue[0]
	a.Queue = a.Queue[1:]
	if !a.SetAnimation(next) {
		a.finishSequence()
		return
	}
	a.Current.Rewind()
	a.Current.Playing = true
	if len(a.Queue) > 0 || a.LoopSequence {
		a.Current.Looping = false
	}
}

func (a *AnimationData) finishSequence() {
	a.Queue = nil
	if a.done != nil {
		close(a.done)
		a.done = nil
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
