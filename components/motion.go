package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MotionData tracks multi-frame move and rotate commands. A new command
// resolves the one it replaces with false.
type MotionData struct {
	Moving           bool
	TargetX, TargetY float64
	Speed            float64 // pixels per frame
	moveDone         chan bool

	Rotation *gween.Tween // degrees over frames
	rotDone  chan bool
}

// StartMove replaces any move in progress.
func (m *MotionData) StartMove(x, y, speed float64) <-chan bool {
	m.EndMove(false)
	m.Moving = true
	m.TargetX, m.TargetY = x, y
	m.Speed = speed
	m.moveDone = make(chan bool, 1)
	return m.moveDone
}

// EndMove stops the move in progress and resolves it with arrived.
func (m *MotionData) EndMove(arrived bool) {
	m.Moving = false
	if m.moveDone != nil {
		m.moveDone <- arrived
		close(m.moveDone)
		m.moveDone = nil
	}
}

// StartRotation replaces any rotation in progress.
func (m *MotionData) StartRotation(tween *gween.Tween) <-chan bool {
	m.EndRotation(false)
	m.Rotation = tween
	m.rotDone = make(chan bool, 1)
	return m.rotDone
}

// EndRotation stops the rotation in progress and resolves it with arrived.
func (m *MotionData) EndRotation(arrived bool) {
	m.Rotation = nil
	if m.rotDone != nil {
		m.rotDone <- arrived
		close(m.rotDone)
		m.rotDone = nil
	}
}

var Motion = donburi.NewComponentType[MotionData]()
