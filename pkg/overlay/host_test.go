package overlay

import (
	"github.com/Benjirez/archipack/pkg/geometry"
)

type primitive struct {
	mode     Mode
	state    DrawState
	vertices []geometry.Vector2
}

type textCall struct {
	p        geometry.Vector2
	fontSize float64
	angle    float64
	text     string
	state    DrawState
}

// recordingHost records every call instead of drawing
type recordingHost struct {
	state      DrawState
	primitives []primitive
	texts      []textCall
	current    *primitive
	panicOnEnd bool
}

func newRecordingHost() *recordingHost {
	return &recordingHost{state: DefaultDrawState()}
}

func (h *recordingHost) DrawState() DrawState     { return h.state }
func (h *recordingHost) SetDrawState(s DrawState) { h.state = s }

func (h *recordingHost) Begin(mode Mode) {
	h.current = &primitive{mode: mode, state: h.state}
}

func (h *recordingHost) Vertex(p geometry.Vector2) {
	h.current.vertices = append(h.current.vertices, p)
}

func (h *recordingHost) End() {
	if h.panicOnEnd {
		panic("host failure")
	}
	h.primitives = append(h.primitives, *h.current)
	h.current = nil
}

func (h *recordingHost) DrawText(p geometry.Vector2, fontSize, angle float64, text string) {
	h.texts = append(h.texts, textCall{p: p, fontSize: fontSize, angle: angle, text: text, state: h.state})
}

// TextSize uses a fixed advance of half the font size per rune
func (h *recordingHost) TextSize(fontSize, angle float64, text string) geometry.Vector2 {
	return geometry.NewVector2(float64(len([]rune(text)))*fontSize/2, fontSize)
}

// shiftView maps world X/Y to pixels with an offset, points below z=0
// are behind the viewer
type shiftView struct {
	offset geometry.Vector2
}

func (v shiftView) WorldToRegion(p geometry.Vector3) (geometry.Vector2, bool) {
	if p.Z < 0 {
		return geometry.Vector2{}, false
	}
	return p.XY().Add(v.offset), true
}

// identityCamera returns world coordinates as normalized frame ones
type identityCamera struct{}

func (identityCamera) WorldToCameraView(p geometry.Vector3, aspect float64) geometry.Vector3 {
	return p
}

func newTestContext() (*Context, *recordingHost) {
	host := newRecordingHost()
	return &Context{
		Host: host,
		Region: Region{
			Width:  800,
			Height: 600,
			View:   shiftView{},
		},
		Render: RenderSettings{
			Camera:               identityCamera{},
			ResolutionX:          1920,
			ResolutionY:          1080,
			ResolutionPercentage: 50,
		},
	}, host
}
