package overlay

import (
	"image/color"

	"github.com/Benjirez/archipack/pkg/geometry"
)

// Mode selects how the vertices between Begin and End are connected
type Mode int

const (
	ModePolygon Mode = iota
	ModeLineStrip
	ModeLineLoop
)

func (m Mode) String() string {
	switch m {
	case ModePolygon:
		return "polygon"
	case ModeLineStrip:
		return "line-strip"
	case ModeLineLoop:
		return "line-loop"
	}
	return "unknown"
}

// LineStyle selects solid or stippled lines
type LineStyle int

const (
	LineSolid LineStyle = iota
	LineStipple
)

// StipplePattern is the 16 bit dash pattern of stippled lines,
// one bit per pixel, least significant bit first
const StipplePattern uint16 = 0x9999

// DrawState is the host global state a drawable may change
type DrawState struct {
	Colour         color.NRGBA
	LineWidth      float64
	Blend          bool
	LineSmooth     bool
	PolygonSmooth  bool
	Stipple        bool
	StippleFactor  int
	StipplePattern uint16
}

// DefaultDrawState is the state a fresh host starts with
func DefaultDrawState() DrawState {
	return DrawState{
		Colour:    color.NRGBA{A: 255},
		LineWidth: 1,
	}
}

// Host is an immediate mode drawing surface.
// Vertex and text positions are region pixels, origin bottom left.
type Host interface {
	DrawState() DrawState
	SetDrawState(DrawState)

	Begin(mode Mode)
	Vertex(p geometry.Vector2)
	End()

	// DrawText draws text with its baseline origin at p, rotated by
	// angle radians counter clockwise
	DrawText(p geometry.Vector2, fontSize, angle float64, text string)
	// TextSize returns the pixel extent of the text once rotated
	TextSize(fontSize, angle float64, text string) geometry.Vector2
}

// View maps world coordinates to region pixels, origin bottom left.
// ok is false when the point cannot be projected, e.g. behind the viewer.
type View interface {
	WorldToRegion(p geometry.Vector3) (loc geometry.Vector2, ok bool)
}

// CameraView maps world coordinates to normalized camera frame
// coordinates: 0..1 inside the frame, Y up.
type CameraView interface {
	WorldToCameraView(p geometry.Vector3, aspect float64) geometry.Vector3
}

// Region is the viewport area drawables are projected into
type Region struct {
	Width  float64
	Height float64
	View   View
}

// RenderSettings describes the final image resolution and camera used
// when drawing over a rendered image
type RenderSettings struct {
	Camera               CameraView
	ResolutionX          int
	ResolutionY          int
	ResolutionPercentage float64
}

// Size returns the output size once the resolution percentage is applied
func (r RenderSettings) Size() (int, int) {
	pct := r.ResolutionPercentage
	if pct == 0 {
		pct = 100
	}
	scale := pct / 100
	return int(float64(r.ResolutionX) * scale), int(float64(r.ResolutionY) * scale)
}

// Context bundles everything a drawable needs from the host for one frame
type Context struct {
	Host   Host
	Region Region
	Render RenderSettings
}
