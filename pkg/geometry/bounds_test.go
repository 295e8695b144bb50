package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsOf(t *testing.T) {
	b := BoundsOf(NewVector3(1, 2, 3), NewVector3(4, 5, 6), NewVector3(-1, 0, 2))

	assert.Equal(t, NewVector3(-1, 0, 2), b.Min)
	assert.Equal(t, NewVector3(4, 5, 6), b.Max)
	assert.False(t, b.Empty())
}

func TestBoundingBoxCenterAndSize(t *testing.T) {
	b := BoundsOf(NewVector3(0, 0, 0), NewVector3(10, 20, 30))

	assert.Equal(t, NewVector3(5, 10, 15), b.Center())
	assert.Equal(t, NewVector3(10, 20, 30), b.Size())
}

func TestBoundingBoxSinglePoint(t *testing.T) {
	p := NewVector3(1, -2, 3)
	b := BoundsOf(p)
	assert.Equal(t, p, b.Center())
	assert.Equal(t, 0.0, b.Diagonal())
}

func TestBoundingBoxEmpty(t *testing.T) {
	b := NewBoundingBox()

	assert.True(t, b.Empty())
	assert.Equal(t, Vector3{}, b.Size())
	assert.Equal(t, Vector3{}, b.Center())
	assert.Zero(t, b.Diagonal())
	assert.True(t, b.Grow(1).Empty())
}

func TestBoundingBoxGrow(t *testing.T) {
	b := BoundsOf(NewVector3(0, 0, 0), NewVector3(2, 2, 0)).Grow(0.5)

	assert.Equal(t, NewVector3(-0.5, -0.5, -0.5), b.Min)
	assert.Equal(t, NewVector3(2.5, 2.5, 0.5), b.Max)
}
