package geometry

import "math"

// Line is a parametric segment defined by an origin and a direction
// vector whose length is the segment length.
//
// The right hand side of the segment is given by Cross, the cross
// product of V with ZAxis:
//
//	p1
//	|--x
//	p0
type Line struct {
	P     Vector3 // origin
	V     Vector3 // direction and length
	ZAxis Vector3 // orientation axis, world up when zero
}

// NewLine creates a line from an origin and a direction vector
func NewLine(p, v Vector3) Line {
	return Line{P: p, V: v, ZAxis: WorldUp}
}

// LineBetween creates a line going from p0 to p1
func LineBetween(p0, p1 Vector3) Line {
	return Line{P: p0, V: p1.Sub(p0), ZAxis: WorldUp}
}

func (l Line) axis() Vector3 {
	if l.ZAxis == (Vector3{}) {
		return WorldUp
	}
	return l.ZAxis
}

// P0 returns the start point
func (l Line) P0() Vector3 {
	return l.P
}

// P1 returns the end point
func (l Line) P1() Vector3 {
	return l.P.Add(l.V)
}

// SetP0 moves the start point, keeping the end point in place
func (l *Line) SetP0(p0 Vector3) {
	p1 := l.P1()
	l.P = p0
	l.V = p1.Sub(p0)
}

// SetP1 moves the end point, keeping the start point in place
func (l *Line) SetP1(p1 Vector3) {
	l.V = p1.Sub(l.P)
}

// Length returns the segment length
func (l Line) Length() float64 {
	return l.V.Length()
}

// Angle returns the heading of the segment in the XY plane
func (l Line) Angle() float64 {
	return math.Atan2(l.V.Y, l.V.X)
}

// Cross returns the unnormalized perpendicular on the right side,
// in the plane defined by ZAxis. It is zero for a zero length line.
func (l Line) Cross() Vector3 {
	return l.V.Cross(l.axis())
}

// Lerp interpolates along the segment, t=0 at P0 and t=1 at P1
func (l Line) Lerp(t float64) Vector3 {
	return l.P.Add(l.V.Mul(t))
}

// Normal returns the perpendicular at t, on the right side
func (l Line) Normal(t float64) Line {
	return Line{P: l.Lerp(t), V: l.Cross(), ZAxis: l.ZAxis}
}

// SizedNormal returns the perpendicular at t scaled to size
func (l Line) SizedNormal(t, size float64) Line {
	return Line{P: l.Lerp(t), V: l.Cross().Normalize().Mul(size), ZAxis: l.ZAxis}
}

// Offset shifts the line in place, positive distances to the right
func (l *Line) Offset(distance float64) {
	l.P = l.P.Add(l.Cross().Normalize().Mul(distance))
}

// Points returns the segment end points
func (l Line) Points() []Vector3 {
	return []Vector3{l.P0(), l.P1()}
}
