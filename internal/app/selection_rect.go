package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Benjirez/archipack/pkg/geometry"
)

// SelectionRect represents a rectangular drag area in raylib coordinates
type SelectionRect struct {
	Start rl.Vector2
	End   rl.Vector2
}

// NewSelectionRect creates a new selection rectangle
func NewSelectionRect(start, end rl.Vector2) SelectionRect {
	return SelectionRect{
		Start: start,
		End:   end,
	}
}

// Corners returns the drag corners in region coordinates, origin bottom
// left, for a screen of the given height
func (s SelectionRect) Corners(height float32) (p0, p1 geometry.Vector2) {
	return toRegion(s.Start, height), toRegion(s.End, height)
}

// Empty reports a click without drag
func (s SelectionRect) Empty() bool {
	return s.Start.X == s.End.X || s.Start.Y == s.End.Y
}

func toRegion(p rl.Vector2, height float32) geometry.Vector2 {
	return geometry.NewVector2(float64(p.X), float64(height-p.Y))
}
