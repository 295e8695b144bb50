package geometry

import (
	"math"
	"testing"
)

func TestArcLerpEnds(t *testing.T) {
	a := NewArc(NewVector3(1, 1, 0), 2, math.Pi/2, math.Pi/2, WorldUp)

	if !near(a.Lerp(0), NewVector3(1, 3, 0)) {
		t.Errorf("Lerp(0) failed: got %v", a.Lerp(0))
	}
	if !near(a.Lerp(1), NewVector3(-1, 1, 0)) {
		t.Errorf("Lerp(1) failed: got %v", a.Lerp(1))
	}
}

func TestArcPointCount(t *testing.T) {
	tests := []struct {
		da       float64
		expected int
	}{
		{math.Pi, 31},
		{2 * math.Pi, 61},
		{-math.Pi, 31},
		{0, 2},
		{0.01, 2},
	}

	for _, tt := range tests {
		a := NewArc(Vector3{}, 1, 0, tt.da, WorldUp)
		if got := len(a.Points()); got != tt.expected {
			t.Errorf("Points(da=%v) failed: expected %d points, got %d", tt.da, tt.expected, got)
		}
	}
}

func TestArcPointsFollowLerp(t *testing.T) {
	a := NewArc(Vector3{}, 1, 0, math.Pi, WorldUp)
	pts := a.Points()

	if !near(pts[0], a.Lerp(0)) || !near(pts[len(pts)-1], a.Lerp(1)) {
		t.Errorf("Points do not span the arc: first %v last %v", pts[0], pts[len(pts)-1])
	}
	for _, p := range pts {
		if math.Abs(p.Length()-1) > tolerance {
			t.Errorf("Point %v is off the circle", p)
		}
	}
}

func TestArcNormalSide(t *testing.T) {
	ccw := NewArc(Vector3{}, 2, 0, math.Pi/2, WorldUp)
	n := ccw.Normal(0)
	if !near(n.V, NewVector3(2, 0, 0)) {
		t.Errorf("CCW normal should point outward, got %v", n.V)
	}

	cw := NewArc(Vector3{}, 2, 0, -math.Pi/2, WorldUp)
	n = cw.Normal(0)
	if !near(n.V, NewVector3(-2, 0, 0)) {
		t.Errorf("CW normal should point inward, got %v", n.V)
	}

	s := cw.SizedNormal(0, 0.5)
	if !near(s.V, NewVector3(-0.5, 0, 0)) {
		t.Errorf("SizedNormal failed: got %v", s.V)
	}
}

func TestArcNormalMatchesLineConvention(t *testing.T) {
	// The right side of a CCW arc is the right side of its tangent
	a := NewArc(Vector3{}, 1, 0.3, 1.2, WorldUp)
	tangent := a.Tangent(0.5, 1)
	normal := a.Normal(0.5)

	if tangent.Cross().Normalize().Dot(normal.V.Normalize()) < 1-1e-9 {
		t.Errorf("Normal %v is not on the right of tangent %v", normal.V, tangent.V)
	}
}

func TestArcTangent(t *testing.T) {
	ccw := NewArc(Vector3{}, 1, 0, math.Pi/2, WorldUp)
	tg := ccw.Tangent(0, 3)
	if !near(tg.P, NewVector3(1, 0, 0)) {
		t.Errorf("Tangent origin failed: got %v", tg.P)
	}
	if !near(tg.V, NewVector3(0, 3, 0)) {
		t.Errorf("CCW tangent should follow travel, got %v", tg.V)
	}

	cw := NewArc(Vector3{}, 1, 0, -math.Pi/2, WorldUp)
	tg = cw.Tangent(0, 3)
	if !near(tg.V, NewVector3(0, -3, 0)) {
		t.Errorf("CW tangent should follow travel, got %v", tg.V)
	}
}

func TestArcOffset(t *testing.T) {
	ccw := NewArc(NewVector3(1, 2, 3), 5, 0.1, 1, WorldUp)
	o := ccw.Offset(1)
	if o.R != 6 || o.C != ccw.C || o.A0 != ccw.A0 || o.Da != ccw.Da {
		t.Errorf("CCW offset failed: got %+v", o)
	}

	cw := NewArc(NewVector3(1, 2, 3), 5, 0.1, -1, WorldUp)
	o = cw.Offset(1)
	if o.R != 4 {
		t.Errorf("CW offset failed: expected radius 4, got %v", o.R)
	}
}

func TestArcLength(t *testing.T) {
	a := NewArc(Vector3{}, 2, 0, -math.Pi, WorldUp)
	if math.Abs(a.Length()-2*math.Pi) > tolerance {
		t.Errorf("Length failed: got %v", a.Length())
	}
}

func TestArcTiltedAxis(t *testing.T) {
	// Arc in the XZ plane
	a := NewArc(Vector3{}, 1, 0, math.Pi, NewVector3(0, -1, 0))
	for _, p := range a.Points() {
		if math.Abs(p.Y) > tolerance {
			t.Errorf("Point %v left the XZ plane", p)
		}
	}
	if !near(a.Lerp(0), a.Basis.X) {
		t.Errorf("A0 should lie on the local x axis: got %v, basis x %v", a.Lerp(0), a.Basis.X)
	}
}

func TestNewBasisIsOrthonormal(t *testing.T) {
	axes := []Vector3{
		WorldUp,
		NewVector3(0, 0, -1),
		NewVector3(1, 0, 0),
		NewVector3(1, 2, 3),
	}
	for _, z := range axes {
		b := NewBasis(z)
		if math.Abs(b.X.Length()-1) > tolerance || math.Abs(b.Y.Length()-1) > tolerance {
			t.Errorf("Basis for %v is not unit length: %+v", z, b)
		}
		if math.Abs(b.X.Dot(b.Y)) > tolerance || math.Abs(b.X.Dot(b.Z)) > tolerance {
			t.Errorf("Basis for %v is not orthogonal: %+v", z, b)
		}
		if !near(b.X.Cross(b.Y), b.Z) {
			t.Errorf("Basis for %v is not right handed: %+v", z, b)
		}
	}
}

func TestNewArcThrough(t *testing.T) {
	a, err := NewArcThrough(NewVector3(1, 0, 0), NewVector3(0, 1, 0), NewVector3(-1, 0, 0))
	if err != nil {
		t.Fatalf("NewArcThrough failed: %v", err)
	}

	if !near(a.C, Vector3{}) {
		t.Errorf("Center failed: expected origin, got %v", a.C)
	}
	if math.Abs(a.R-1) > tolerance {
		t.Errorf("Radius failed: expected 1, got %v", a.R)
	}
	if math.Abs(a.Da-math.Pi) > 1e-9 {
		t.Errorf("Sweep failed: expected pi, got %v", a.Da)
	}
	if !near(a.Lerp(0), NewVector3(1, 0, 0)) || !near(a.Lerp(0.5), NewVector3(0, 1, 0)) || !near(a.Lerp(1), NewVector3(-1, 0, 0)) {
		t.Errorf("Arc does not pass through the points: %v %v %v", a.Lerp(0), a.Lerp(0.5), a.Lerp(1))
	}
}

func TestNewArcThroughCollinear(t *testing.T) {
	_, err := NewArcThrough(NewVector3(0, 0, 0), NewVector3(1, 1, 1), NewVector3(2, 2, 2))
	if err == nil {
		t.Error("expected an error for collinear points")
	}
}
