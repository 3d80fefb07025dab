// Package overlap decides whether two sprite outlines intersect.
//
// The overlap space only finds candidates sharing a cell; these tests
// settle the pair using the real geometry.
package overlap

import "math"

type Kind int

const (
	Box Kind = iota
	Circle
	Line
)

// Shape is an outline in world coordinates. Boxes are centered on X, Y
// and turned by Angle degrees. Circles use W as the diameter. Lines run
// from X1, Y1 to X2, Y2.
type Shape struct {
	Kind           Kind
	X, Y           float64
	W, H           float64
	Angle          float64
	X1, Y1, X2, Y2 float64
}

// NewBox creates an axis aligned w x h box centered on x, y.
func NewBox(x, y, w, h float64) Shape {
	return Shape{Kind: Box, X: x, Y: y, W: w, H: h}
}

// NewRotatedBox creates a w x h box centered on x, y and turned by angle
// degrees.
func NewRotatedBox(x, y, w, h, angle float64) Shape {
	return Shape{Kind: Box, X: x, Y: y, W: w, H: h, Angle: angle}
}

// NewCircle creates a circle of diameter d centered on x, y.
func NewCircle(x, y, d float64) Shape {
	return Shape{Kind: Circle, X: x, Y: y, W: d, H: d}
}

// NewLine creates a segment of the given length centered on x, y and
// pointing along angle degrees.
func NewLine(x, y, length, angle float64) Shape {
	rad := angle * math.Pi / 180
	hx, hy := math.Cos(rad)*length/2, math.Sin(rad)*length/2
	return Shape{Kind: Line, X: x, Y: y, X1: x - hx, Y1: y - hy, X2: x + hx, Y2: y + hy}
}

// Contains reports whether the point px, py lies inside the shape. Lines
// contain points within half a pixel of them.
func (s Shape) Contains(px, py float64) bool {
	switch s.Kind {
	case Circle:
		return math.Hypot(px-s.X, py-s.Y) <= s.W/2
	case Line:
		return segmentPointDist(s.X1, s.Y1, s.X2, s.Y2, px, py) <= 0.5
	}
	lx, ly := s.toLocal(px, py)
	return math.Abs(lx) <= s.W/2 && math.Abs(ly) <= s.H/2
}

// Intersects reports whether a and b overlap. Shapes that only touch along
// an edge do not overlap.
func Intersects(a, b Shape) bool {
	if a.Kind > b.Kind {
		a, b = b, a
	}
	switch {
	case a.Kind == Box && b.Kind == Box:
		return boxesOverlap(a, b)
	case a.Kind == Box && b.Kind == Circle:
		lx, ly := a.toLocal(b.X, b.Y)
		cx := clamp(lx, -a.W/2, a.W/2)
		cy := clamp(ly, -a.H/2, a.H/2)
		return math.Hypot(lx-cx, ly-cy) < b.W/2
	case a.Kind == Box && b.Kind == Line:
		x1, y1 := a.toLocal(b.X1, b.Y1)
		x2, y2 := a.toLocal(b.X2, b.Y2)
		return segmentHitsBox(Shape{Kind: Line, X1: x1, Y1: y1, X2: x2, Y2: y2}, Shape{Kind: Box, W: a.W, H: a.H})
	case a.Kind == Circle && b.Kind == Circle:
		return math.Hypot(a.X-b.X, a.Y-b.Y) < (a.W+b.W)/2
	case a.Kind == Circle && b.Kind == Line:
		return segmentPointDist(b.X1, b.Y1, b.X2, b.Y2, a.X, a.Y) < a.W/2
	}
	return segmentsCross(a, b)
}

// toLocal maps a world point into the box's frame, where the box is axis
// aligned and centered on the origin.
func (s Shape) toLocal(px, py float64) (float64, float64) {
	dx, dy := px-s.X, py-s.Y
	if s.Angle == 0 {
		return dx, dy
	}
	sin, cos := math.Sincos(s.Angle * math.Pi / 180)
	return dx*cos + dy*sin, -dx*sin + dy*cos
}

// corners returns the box's corners in world coordinates.
func (s Shape) corners() [4][2]float64 {
	sin, cos := math.Sincos(s.Angle * math.Pi / 180)
	hw, hh := s.W/2, s.H/2
	var c [4][2]float64
	for i, p := range [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}} {
		c[i] = [2]float64{s.X + p[0]*cos - p[1]*sin, s.Y + p[0]*sin + p[1]*cos}
	}
	return c
}

// boxesOverlap runs a separating axis test over both boxes' edge normals.
func boxesOverlap(a, b Shape) bool {
	ca, cb := a.corners(), b.corners()
	for _, angle := range [2]float64{a.Angle, b.Angle} {
		sin, cos := math.Sincos(angle * math.Pi / 180)
		for _, axis := range [2][2]float64{{cos, sin}, {-sin, cos}} {
			minA, maxA := project(ca, axis)
			minB, maxB := project(cb, axis)
			if maxA <= minB || maxB <= minA {
				return false
			}
		}
	}
	return true
}

func project(corners [4][2]float64, axis [2]float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, c := range corners {
		d := c[0]*axis[0] + c[1]*axis[1]
		lo, hi = math.Min(lo, d), math.Max(hi, d)
	}
	return lo, hi
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func segmentPointDist(x1, y1, x2, y2, px, py float64) float64 {
	dx, dy := x2-x1, y2-y1
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(px-x1, py-y1)
	}
	t := clamp(((px-x1)*dx+(py-y1)*dy)/l2, 0, 1)
	return math.Hypot(px-(x1+t*dx), py-(y1+t*dy))
}

// segmentHitsBox clips the segment against the box (Liang-Barsky).
func segmentHitsBox(l, box Shape) bool {
	minX, maxX := box.X-box.W/2, box.X+box.W/2
	minY, maxY := box.Y-box.H/2, box.Y+box.H/2
	dx, dy := l.X2-l.X1, l.Y2-l.Y1

	t0, t1 := 0.0, 1.0
	for _, edge := range [4][2]float64{
		{-dx, l.X1 - minX},
		{dx, maxX - l.X1},
		{-dy, l.Y1 - minY},
		{dy, maxY - l.Y1},
	} {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q <= 0 {
				return false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
		if t0 > t1 {
			return false
		}
	}
	return true
}

func segmentsCross(a, b Shape) bool {
	d1 := cross(b.X1, b.Y1, b.X2, b.Y2, a.X1, a.Y1)
	d2 := cross(b.X1, b.Y1, b.X2, b.Y2, a.X2, a.Y2)
	d3 := cross(a.X1, a.Y1, a.X2, a.Y2, b.X1, b.Y1)
	d4 := cross(a.X1, a.Y1, a.X2, a.Y2, b.X2, b.Y2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func cross(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}
