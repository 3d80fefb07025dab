package components

import (
	"github.com/automoto/spriteplay/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// WorldData is the singleton holding the simulation shared by every
// sprite in a sketch.
type WorldData struct {
	Physics  *physics.World
	Overlap  *resolv.Space
	Overlaps *physics.ContactTable

	// OverlapOffset shifts world coordinates into the overlap space so
	// sprites a little outside the canvas still get a cell.
	OverlapOffset float64

	// Steps records Physics.Steps() at the start of the frame so the host
	// can tell whether the sketch stepped by itself.
	StepsAtFrameStart int
	FrameCount        int
	NextID            int
}

var World = donburi.NewComponentType[WorldData]()
