package overlay

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Benjirez/archipack/pkg/geometry"
)

func TestTextString(t *testing.T) {
	txt := NewText(Dim3, "R:", 16, color.NRGBA{A: 255})
	assert.Equal(t, "R:", txt.String())

	txt.SetValue(2.5)
	txt.Precision = 1
	txt.Unit = "m"
	assert.Equal(t, "R:2.5m", txt.String())

	txt.ClearValue()
	assert.Equal(t, "R:", txt.String())
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value     float64
		precision int
		want      string
	}{
		{2.5, 1, "2.5"},
		{3, 2, "3"},
		{0.25, 2, "0.25"},
		{1.23456, 2, "1.23"},
		{1.005, 0, "1"},
		{-0.001, 2, "0"},
		{12.5, 0, "13"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatValue(tt.value, tt.precision), "%v @ %d", tt.value, tt.precision)
	}
}

func TestTextSetPos(t *testing.T) {
	txt := NewText(Dim3, "", 16, color.NRGBA{A: 255})
	txt.SetPos(4, geometry.NewVector3(1, 2, 3), geometry.NewVector3(0, 1, 0), 0.25, geometry.WorldUp)

	assert.Equal(t, geometry.NewVector3(1, 2, 3), txt.Pos3D)
	assert.Equal(t, geometry.NewVector3(0, 1, 0), txt.UpAxis)
	assert.Equal(t, geometry.NewVector3(1, 0, 0), txt.CAxis)
	assert.Equal(t, 0.25, txt.Angle)
	assert.Equal(t, "4", txt.String())
	assert.Equal(t, []geometry.Vector3{txt.Pos3D}, txt.Points())
}

func TestTextSize(t *testing.T) {
	ctx, _ := newTestContext()
	txt := NewText(Dim2, "abcd", 10, color.NRGBA{A: 255})
	assert.Equal(t, geometry.NewVector2(20, 10), txt.Size(ctx))
	assert.Equal(t, geometry.Vector2{}, txt.Size(nil))
}
