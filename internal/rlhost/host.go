// Package rlhost implements the overlay host interface with raylib's
// immediate 2D drawing calls. It must be used between rl.BeginDrawing and
// rl.EndDrawing on the window thread.
package rlhost

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Benjirez/archipack/pkg/geometry"
	"github.com/Benjirez/archipack/pkg/overlay"
)

// textSpacing is the extra advance between glyphs, in pixels
const textSpacing = 1

// Host draws overlay primitives on the current raylib frame
type Host struct {
	font   rl.Font
	width  float32
	height float32
	state  overlay.DrawState

	mode     overlay.Mode
	vertices []rl.Vector2
	drawing  bool
}

// New creates a host drawing text with font
func New(font rl.Font) *Host {
	return &Host{
		font:  font,
		state: overlay.DefaultDrawState(),
	}
}

// Resize sets the screen size used to flip and clip region coordinates,
// call it once per frame
func (h *Host) Resize(width, height int) {
	h.width = float32(width)
	h.height = float32(height)
}

func (h *Host) DrawState() overlay.DrawState {
	return h.state
}

// SetDrawState applies blending immediately. Smoothing is left to the
// window MSAA setting.
func (h *Host) SetDrawState(st overlay.DrawState) {
	if st.Blend != h.state.Blend {
		if st.Blend {
			rl.BeginBlendMode(rl.BlendAlpha)
		} else {
			rl.EndBlendMode()
		}
	}
	h.state = st
}

func (h *Host) Begin(mode overlay.Mode) {
	h.mode = mode
	h.vertices = h.vertices[:0]
	h.drawing = true
}

func (h *Host) Vertex(p geometry.Vector2) {
	if !h.drawing {
		return
	}
	h.vertices = append(h.vertices, h.toScreen(p))
}

func (h *Host) End() {
	if !h.drawing {
		return
	}
	h.drawing = false
	col := toColor(h.state.Colour)

	switch h.mode {
	case overlay.ModePolygon:
		if len(h.vertices) < 3 {
			return
		}
		rl.DrawTriangleFan(fanOrder(h.vertices), col)
	case overlay.ModeLineStrip, overlay.ModeLineLoop:
		if len(h.vertices) < 2 {
			return
		}
		counter := 0
		for i := 0; i < len(h.vertices)-1; i++ {
			h.segment(h.vertices[i], h.vertices[i+1], col, &counter)
		}
		if h.mode == overlay.ModeLineLoop && len(h.vertices) > 2 {
			h.segment(h.vertices[len(h.vertices)-1], h.vertices[0], col, &counter)
		}
	}
}

func (h *Host) segment(a, b rl.Vector2, col color.RGBA, counter *int) {
	thick := float32(math.Max(1, h.state.LineWidth))
	if !h.state.Stipple {
		rl.DrawLineEx(a, b, thick, col)
		return
	}
	// dashes are computed in screen space, the pattern only needs lengths
	clip := overlay.RectOf(float64(h.width), float64(h.height)).Grow(float64(thick) + 1)
	for _, d := range overlay.Dashes(fromRl(a), fromRl(b), clip, h.state.StippleFactor, h.state.StipplePattern, counter) {
		rl.DrawLineEx(toRl(d[0]), toRl(d[1]), thick, col)
	}
}

// DrawText draws text with its baseline origin at p, rotated counter
// clockwise by angle radians
func (h *Host) DrawText(p geometry.Vector2, fontSize, angle float64, text string) {
	if text == "" {
		return
	}
	size := float32(fontSize)
	rl.DrawTextPro(h.font, text,
		h.toScreen(p),
		rl.Vector2{X: 0, Y: size},
		float32(-angle*180/math.Pi),
		size, textSpacing,
		toColor(h.state.Colour))
}

// TextSize returns the pixel extent of text once rotated by angle
func (h *Host) TextSize(fontSize, angle float64, text string) geometry.Vector2 {
	if text == "" {
		return geometry.Vector2{}
	}
	m := rl.MeasureTextEx(h.font, text, float32(fontSize), textSpacing)
	return rotatedExtent(float64(m.X), float64(m.Y), angle)
}

// toScreen flips a region point to raylib's top left origin
func (h *Host) toScreen(p geometry.Vector2) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: h.height - float32(p.Y)}
}

func toRl(p geometry.Vector2) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}

func fromRl(p rl.Vector2) geometry.Vector2 {
	return geometry.NewVector2(float64(p.X), float64(p.Y))
}

func toColor(c color.NRGBA) color.RGBA {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// fanOrder returns the points in the winding raylib expects for triangle
// fans in screen space (negative shoelace area with Y down)
func fanOrder(pts []rl.Vector2) []rl.Vector2 {
	if signedArea(pts) <= 0 {
		return pts
	}
	out := make([]rl.Vector2, len(pts))
	out[0] = pts[0]
	for i := 1; i < len(pts); i++ {
		out[i] = pts[len(pts)-i]
	}
	return out
}

func signedArea(pts []rl.Vector2) float32 {
	var area float32
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return area / 2
}

func rotatedExtent(w, h, angle float64) geometry.Vector2 {
	if angle == 0 {
		return geometry.NewVector2(w, h)
	}
	sin, cos := math.Sincos(angle)
	return geometry.NewVector2(
		math.Abs(w*cos)+math.Abs(h*sin),
		math.Abs(w*sin)+math.Abs(h*cos),
	)
}
