package scene

import (
	"fmt"

	"github.com/Benjirez/archipack/pkg/geometry"
	"github.com/Benjirez/archipack/pkg/overlay"
)

// right is the unit vector pointing to the dimension side of the wall
func (s *Scene) right() geometry.Vector3 {
	return s.wall.Cross().Normalize()
}

// Layout recomputes every drawable from the scene geometry. Handles cache
// their projected sensors, so call it whenever the view changes.
func (s *Scene) Layout(ctx *overlay.Context) {
	z := geometry.WorldUp
	n := s.right()
	depth := n.Mul(-roomDepth)

	s.Room.SetPos([]geometry.Vector3{
		s.wall.P0(),
		s.wall.P1(),
		s.wall.P1().Add(depth),
		s.wall.P0().Add(depth),
	})
	s.Wall.Line = s.wall

	dim := s.wall
	dim.Offset(s.offset)
	s.Dimension.Line = dim

	reach := s.offset + s.cfg.ArrowSize
	if s.offset < 0 {
		reach = s.offset - s.cfg.ArrowSize
	}
	s.Extension0.Line = s.wall.SizedNormal(0, reach)
	s.Extension1.Line = s.wall.SizedNormal(1, reach)

	s.Start.SetPos(ctx, dim.P0(), dim.V.Neg(), z)
	s.End.SetPos(ctx, dim.P1(), dim.V, z)
	s.Move.SetPos(ctx, s.wall.P0(), s.wall.V, z)
	s.Length.SetText(ctx, s.wall.Length(), dim.Lerp(0.5), dim.V, z)

	s.door = s.doorArc()
	s.Swing.Arc = s.door
	s.Tangent.Line = s.door.Tangent(1, s.door.R)
	mid := s.door.Lerp(0.5)
	s.Radius.Line = geometry.LineBetween(s.door.C, mid)
	s.RadiusLabel.SetPos(s.door.R, mid, mid.Sub(s.door.C), 0, z)

	s.Panel.Instructions(ctx, "Wall",
		fmt.Sprintf("length %.2f m, offset %.2f m", s.wall.Length(), s.offset),
		Shortcuts)
}

// Draw draws the annotations
func (s *Scene) Draw(ctx *overlay.Context, render bool) {
	for _, d := range s.drawables() {
		d.Draw(ctx, render)
	}
}

func (s *Scene) drawables() []overlay.Drawable {
	return []overlay.Drawable{
		s.Room,
		s.Wall,
		s.Extension0,
		s.Extension1,
		s.Dimension,
		s.Swing,
		s.Tangent,
		s.Radius,
		s.RadiusLabel,
		s.Move,
		s.Start,
		s.End,
		s.Length,
	}
}

// DrawGuides draws the screen space guides over the annotations
func (s *Scene) DrawGuides(ctx *overlay.Context) {
	s.Area.Draw(ctx)
	s.Fence.Draw(ctx)
	s.Panel.Draw(ctx)
}

// PointerMoved moves the crosshair to the pointer
func (s *Scene) PointerMoved(ctx *overlay.Context, pointer geometry.Vector2) {
	s.Fence.SetLocation(ctx, pointer)
}

// HandleAt returns the topmost selectable handle under pointer, or nil
func (s *Scene) HandleAt(pointer geometry.Vector2) *overlay.Handle {
	for _, h := range s.Handles() {
		if h.Selectable && h.Contains(pointer) {
			return h
		}
	}
	return nil
}

// Hover updates the hover state of every handle and reports whether one
// is under the pointer
func (s *Scene) Hover(pointer geometry.Vector2) bool {
	hovered := false
	for _, h := range s.Handles() {
		h.CheckHover(pointer)
		hovered = hovered || h.Hover
	}
	return hovered
}

// Drag applies a handle moved to the world point p on the wall plane
func (s *Scene) Drag(h *overlay.Handle, p geometry.Vector3) {
	n := s.right()
	switch h {
	case s.Move:
		s.wall.P = p
	case s.Start:
		p0 := p.Sub(n.Mul(s.offset))
		if !p0.Near(s.wall.P1()) {
			s.wall.SetP0(p0)
		}
	case s.End:
		p1 := p.Sub(n.Mul(s.offset))
		if !p1.Near(s.wall.P0()) {
			s.wall.SetP1(p1)
		}
	case s.Length:
		if !n.IsZero() {
			s.offset = p.Sub(s.wall.P0()).Dot(n)
		}
	}
}

// Bounds returns the box around every annotated point
func (s *Scene) Bounds() geometry.BoundingBox {
	door := s.doorArc()
	points := append([]geometry.Vector3{}, s.wall.Points()...)
	dim := s.wall
	dim.Offset(s.offset)
	points = append(points, dim.Points()...)
	points = append(points, s.wall.P0().Add(s.right().Mul(-roomDepth)))
	points = append(points, door.Points()...)
	return geometry.BoundsOf(points...)
}

// Frame is the box cameras are fitted on, Bounds with room for labels
func (s *Scene) Frame() geometry.BoundingBox {
	return s.Bounds().Grow(frameMargin)
}
