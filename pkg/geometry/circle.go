package geometry

import (
	"fmt"
	"math"
)

// Circle is a center and a radius
type Circle struct {
	C Vector3
	R float64
}

// NewArcThrough returns the arc starting at a, passing through b and
// ending at c. The arc plane normal is (b-a) × (c-a), so the sweep is
// always positive in the returned frame.
//
// The center is the circumcenter of the triangle:
//
//	u = b-a, w = c-a, n = u × w
//	center = a + (|w|²(n × u) + |u|²(w × n)) / 2|n|²
func NewArcThrough(a, b, c Vector3) (Arc, error) {
	u := b.Sub(a)
	w := c.Sub(a)
	n := u.Cross(w)
	n2 := n.Dot(n)
	if n2 < Epsilon*Epsilon {
		return Arc{}, fmt.Errorf("points are collinear")
	}

	offset := n.Cross(u).Mul(w.Dot(w)).Add(w.Cross(n).Mul(u.Dot(u))).Mul(1 / (2 * n2))
	center := a.Add(offset)
	radius := offset.Length()

	basis := NewBasis(n)
	start := basis.Local(a.Sub(center))
	end := basis.Local(c.Sub(center))
	a0 := math.Atan2(start.Y, start.X)
	da := math.Mod(math.Atan2(end.Y, end.X)-a0, 2*math.Pi)
	if da <= 0 {
		da += 2 * math.Pi
	}

	return NewArc(center, radius, a0, da, n.Normalize()), nil
}
