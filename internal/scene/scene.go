// Package scene holds the demo annotation set: a wall with its dimension,
// a door swing arc and the interaction guides.
package scene

import (
	"math"

	"github.com/Benjirez/archipack/pkg/geometry"
	"github.com/Benjirez/archipack/pkg/overlay"
)

const (
	defaultOffset = 0.6
	roomDepth     = 3.0
	labelFontSize = 14
	frameMargin   = 0.5
)

// Shortcuts are the key bindings listed in the feedback panel
var Shortcuts = []overlay.Shortcut{
	{Key: "LMB", Label: "orbit"},
	{Key: "Drag handle", Label: "edit"},
	{Key: "RMB", Label: "select area"},
	{Key: "Wheel", Label: "zoom"},
	{Key: "F1", Label: "panel"},
	{Key: "G", Label: "crosshair"},
	{Key: "Home", Label: "reset view"},
	{Key: "ESC", Label: "quit"},
}

// Scene is a wall annotated with a dimension line and a door swing
type Scene struct {
	cfg overlay.Config

	wall   geometry.Line
	door   geometry.Arc
	offset float64

	Room        *overlay.Polygon
	Wall        *overlay.Line
	Dimension   *overlay.Line
	Extension0  *overlay.Line
	Extension1  *overlay.Line
	Start       *overlay.Handle
	End         *overlay.Handle
	Length      *overlay.Handle
	Move        *overlay.Handle
	Swing       *overlay.Arc
	Tangent     *overlay.Line
	Radius      *overlay.Line
	RadiusLabel *overlay.Text

	Fence *overlay.CursorFence
	Area  *overlay.CursorArea
	Panel *overlay.FeedbackPanel
}

// New builds the demo scene styled from cfg
func New(cfg overlay.Config) *Scene {
	s := &Scene{
		wall:   geometry.LineBetween(geometry.NewVector3(0, 0, 0), geometry.NewVector3(4, 0, 0)),
		offset: defaultOffset,
	}
	s.door = s.doorArc()
	s.build(cfg)
	return s
}

// Apply restyles the scene, keeping its geometry and guide state
func (s *Scene) Apply(cfg overlay.Config) {
	fence, area, panel := s.Fence.Enabled(), s.Area.Enabled(), s.Panel.Enabled()
	s.build(cfg)
	setEnabled(s.Fence, fence)
	setEnabled(s.Area, area)
	setEnabled(s.Panel, panel)
}

type toggler interface {
	Enable()
	Disable()
}

func setEnabled(t toggler, on bool) {
	if on {
		t.Enable()
	} else {
		t.Disable()
	}
}

// Config returns the active configuration
func (s *Scene) Config() overlay.Config {
	return s.cfg
}

func (s *Scene) build(cfg overlay.Config) {
	s.cfg = cfg
	style := cfg.Style()
	guide := style
	guide.LineStyle = overlay.LineStipple

	s.Room = overlay.NewPolygon(overlay.Dim3, cfg.Feedback.ShortcutArea.NRGBA())
	s.Wall = overlay.NewLine(overlay.Dim3, geometry.Vector3{}, geometry.Vector3{})
	s.Wall.Style = style
	s.Wall.Width = 2 * style.Width
	s.Wall.ColourInactive = style.ColourNormal

	s.Dimension = overlay.NewLine(overlay.Dim3, geometry.Vector3{}, geometry.Vector3{})
	s.Dimension.Style = style
	s.Extension0 = overlay.NewLine(overlay.Dim3, geometry.Vector3{}, geometry.Vector3{})
	s.Extension0.Style = guide
	s.Extension1 = overlay.NewLine(overlay.Dim3, geometry.Vector3{}, geometry.Vector3{})
	s.Extension1.Style = guide

	s.Start = overlay.NewTriHandle(cfg.HandleSize, cfg.ArrowSize, true)
	s.End = overlay.NewTriHandle(cfg.HandleSize, cfg.ArrowSize, true)
	s.Move = overlay.NewSquareHandle(cfg.HandleSize, cfg.ArrowSize, true)
	s.Length = overlay.NewEditableText(cfg.HandleSize, cfg.ArrowSize, true, labelFontSize)
	s.Length.Body.Unit = " m"
	for _, h := range s.Handles() {
		h.Style = style
	}

	s.Swing = overlay.NewArc(overlay.Dim3, geometry.Vector3{}, 1, 0, 0, geometry.WorldUp)
	s.Swing.Style = guide
	s.Tangent = overlay.NewLine(overlay.Dim3, geometry.Vector3{}, geometry.Vector3{})
	s.Tangent.Style = guide
	s.Radius = overlay.NewLine(overlay.Dim3, geometry.Vector3{}, geometry.Vector3{})
	s.Radius.Style = style
	s.RadiusLabel = overlay.NewText(overlay.Dim3, "R:", labelFontSize, style.ColourNormal)
	s.RadiusLabel.Unit = " m"

	s.Fence = overlay.NewCursorFence(cfg.Cursor)
	s.Area = overlay.NewCursorArea(cfg.Cursor)
	s.Panel = overlay.NewFeedbackPanel("Archipack", cfg.Feedback)
}

// doorArc is a quarter swing hinged at the wall end, opening to the left
// of the wall
func (s *Scene) doorArc() geometry.Arc {
	r := math.Min(1, s.wall.Length()/2)
	a0 := s.wall.Angle() + math.Pi/2
	return geometry.NewArc(s.wall.P1(), r, a0, math.Pi/2, geometry.WorldUp)
}

// Handles returns the interactive handles, topmost first
func (s *Scene) Handles() []*overlay.Handle {
	return []*overlay.Handle{s.Length, s.Start, s.End, s.Move}
}

// WallLine returns the annotated wall
func (s *Scene) WallLine() geometry.Line {
	return s.wall
}

// Offset returns the distance of the dimension line to the wall
func (s *Scene) Offset() float64 {
	return s.offset
}

// Door returns the door swing
func (s *Scene) Door() geometry.Arc {
	return s.door
}
