package physics

import "fmt"

// ColliderType selects how a sprite's body takes part in the simulation.
type ColliderType int

const (
	Dynamic ColliderType = iota
	Static
	Kinematic
	None
)

func (c ColliderType) String() string {
	switch c {
	case Dynamic:
		return "dynamic"
	case Static:
		return "static"
	case Kinematic:
		return "kinematic"
	case None:
		return "none"
	}
	return fmt.Sprintf("ColliderType(%d)", int(c))
}

// ParseColliderType accepts the full names and their first letters.
func ParseColliderType(s string) (ColliderType, error) {
	switch s {
	case "dynamic", "d":
		return Dynamic, nil
	case "static", "s":
		return Static, nil
	case "kinematic", "k":
		return Kinematic, nil
	case "none", "n":
		return None, nil
	}
	return None, fmt.Errorf("unknown collider type %q", s)
}

// ShapeKind is the geometry of a single collider or sensor.
type ShapeKind int

const (
	Box ShapeKind = iota
	Circle
	Line
)

func (k ShapeKind) String() string {
	switch k {
	case Box:
		return "box"
	case Circle:
		return "circle"
	case Line:
		return "line"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// ShapeInfo keeps the geometry a shape was built from, relative to its
// body's center. Angle is in degrees.
type ShapeInfo struct {
	Kind    ShapeKind
	OffsetX float64
	OffsetY float64
	W, H    float64 // box size, or circle diameter in W
	Length  float64
	Angle   float64
	Sensor  bool
}
