package geometry

import "math"

// Epsilon is the tolerance used for degenerate length checks
const Epsilon = 1e-9

// WorldUp is the default orientation axis
var WorldUp = Vector3{X: 0, Y: 0, Z: 1}

// Vector3 is a world point or direction
type Vector3 struct {
	X, Y, Z float64
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vector3) Mul(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

func (v Vector3) Neg() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

func (v Vector3) Dot(o Vector3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross follows the right hand rule: X × Y = Z
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3) Length() float64 { return math.Sqrt(v.Dot(v)) }

func (v Vector3) Distance(o Vector3) float64 { return v.Sub(o).Length() }

// Normalize returns the unit vector along v, or zero for a zero vector
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{}
	}
	return v.Mul(1 / l)
}

// IsZero reports whether v is shorter than Epsilon
func (v Vector3) IsZero() bool {
	return v.Length() < Epsilon
}

// Near reports whether two points are closer than Epsilon
func (v Vector3) Near(o Vector3) bool {
	return v.Sub(o).IsZero()
}

// Lerp interpolates from v, t=0, to o, t=1
func (v Vector3) Lerp(o Vector3, t float64) Vector3 {
	return v.Add(o.Sub(v).Mul(t))
}

// XY drops Z, giving pixel coordinates for Dim2 points
func (v Vector3) XY() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

// Min and Max are component wise
func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z)}
}

func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z)}
}

// Centroid returns the mean of points, the zero vector for none
func Centroid(points []Vector3) Vector3 {
	if len(points) == 0 {
		return Vector3{}
	}
	var sum Vector3
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}
