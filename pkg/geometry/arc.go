package geometry

import "math"

// segmentsPerHalfTurn controls arc tessellation density
const segmentsPerHalfTurn = 30

// Arc is a circular arc.
// A0 and Da are radians; A0 = 0 lies on the local x axis, Da > 0 sweeps
// counter clockwise around ZAxis and Da < 0 clockwise.
type Arc struct {
	Circle
	A0    float64
	Da    float64
	ZAxis Vector3
	Basis Basis
}

// NewArc creates an arc around zAxis
func NewArc(c Vector3, r, a0, da float64, zAxis Vector3) Arc {
	return Arc{
		Circle: Circle{C: c, R: r},
		A0:     a0,
		Da:     da,
		ZAxis:  zAxis,
		Basis:  NewBasis(zAxis),
	}
}

// SetAxis changes the orientation axis and rebuilds the frame
func (a *Arc) SetAxis(zAxis Vector3) {
	a.ZAxis = zAxis
	a.Basis = NewBasis(zAxis)
}

// Length returns the arc length
func (a Arc) Length() float64 {
	return a.R * math.Abs(a.Da)
}

func (a Arc) at(angle float64) Vector3 {
	return a.C.Add(a.Basis.Apply(Vector3{X: a.R * math.Cos(angle), Y: a.R * math.Sin(angle)}))
}

// Lerp interpolates along the arc, t=0 at A0 and t=1 at A0+Da
func (a Arc) Lerp(t float64) Vector3 {
	return a.at(a.A0 + t*a.Da)
}

// Normal returns the radial line at t, pointing to the right side of the
// direction of travel: outward for counter clockwise arcs, inward otherwise
func (a Arc) Normal(t float64) Line {
	p := a.Lerp(t)
	v := p.Sub(a.C)
	if a.Da < 0 {
		v = v.Neg()
	}
	return Line{P: p, V: v, ZAxis: a.ZAxis}
}

// SizedNormal returns Normal(t) scaled to size
func (a Arc) SizedNormal(t, size float64) Line {
	n := a.Normal(t)
	n.V = n.V.Normalize().Mul(size)
	return n
}

// Tangent returns the tangent line at t, oriented along the direction of
// travel and scaled to length
func (a Arc) Tangent(t, length float64) Line {
	angle := a.A0 + t*a.Da
	ca, sa := math.Cos(angle), math.Sin(angle)
	v := a.Basis.Apply(Vector3{X: length * sa, Y: -length * ca})
	if a.Da > 0 {
		v = v.Neg()
	}
	return Line{P: a.at(angle), V: v, ZAxis: a.ZAxis}
}

// Offset returns a concentric arc, positive distances to the right
func (a Arc) Offset(distance float64) Arc {
	radius := a.R - distance
	if a.Da > 0 {
		radius = a.R + distance
	}
	return NewArc(a.C, radius, a.A0, a.Da, a.ZAxis)
}

// Segments returns the number of tessellation segments,
// about 30 per half turn and never less than one
func (a Arc) Segments() int {
	n := int(math.Round(math.Abs(a.Da) / math.Pi * segmentsPerHalfTurn))
	if n < 1 {
		return 1
	}
	return n
}

// Points tessellates the arc into Segments()+1 points evenly spaced in t
func (a Arc) Points() []Vector3 {
	n := a.Segments()
	step := 1.0 / float64(n)
	pts := make([]Vector3, n+1)
	for i := range pts {
		pts[i] = a.Lerp(float64(i) * step)
	}
	return pts
}
