package geometry

import "math"

// BoundingBox is an axis aligned box, used to frame cameras on a scene
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox returns an empty box; extending it with a point gives
// that point's box
func NewBoundingBox() BoundingBox {
	inf := math.Inf(1)
	return BoundingBox{
		Min: Vector3{inf, inf, inf},
		Max: Vector3{-inf, -inf, -inf},
	}
}

// BoundsOf returns the box enclosing points
func BoundsOf(points ...Vector3) BoundingBox {
	b := NewBoundingBox()
	for _, p := range points {
		b.Extend(p)
	}
	return b
}

func (b *BoundingBox) Extend(p Vector3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Empty reports whether nothing was added yet
func (b BoundingBox) Empty() bool {
	return b.Min.X > b.Max.X
}

// Grow pads the box by margin on every side
func (b BoundingBox) Grow(margin float64) BoundingBox {
	if b.Empty() {
		return b
	}
	m := Vector3{margin, margin, margin}
	return BoundingBox{Min: b.Min.Sub(m), Max: b.Max.Add(m)}
}

// Size and Center are zero for an empty box
func (b BoundingBox) Size() Vector3 {
	if b.Empty() {
		return Vector3{}
	}
	return b.Max.Sub(b.Min)
}

func (b BoundingBox) Center() Vector3 {
	if b.Empty() {
		return Vector3{}
	}
	return b.Min.Lerp(b.Max, 0.5)
}

func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}
