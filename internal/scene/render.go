package scene

import (
	"fmt"
	"image/color"

	"github.com/Benjirez/archipack/internal/raster"
	"github.com/Benjirez/archipack/pkg/overlay"
	"github.com/Benjirez/archipack/pkg/viewer"
)

// RenderOptions describes a headless rendering
type RenderOptions struct {
	Width      int
	Height     int
	Percentage float64
	Background color.Color
	// Guides also draws the feedback panel
	Guides bool
}

// Render draws the scene over a transparent, or Background filled, image
// seen from a camera framing the scene
func Render(s *Scene, opts RenderOptions) (*raster.Canvas, error) {
	settings := overlay.RenderSettings{
		ResolutionX:          opts.Width,
		ResolutionY:          opts.Height,
		ResolutionPercentage: opts.Percentage,
	}
	w, h := settings.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid output size %dx%d", w, h)
	}

	canvas, err := raster.New(w, h)
	if err != nil {
		return nil, fmt.Errorf("create canvas: %w", err)
	}
	if opts.Background != nil {
		canvas.Clear(opts.Background)
	}

	cam := viewer.NewCamera(s.Frame())
	settings.Camera = cam
	ctx := &overlay.Context{
		Host: canvas,
		Region: overlay.Region{
			Width:  float64(w),
			Height: float64(h),
			View:   viewer.RegionView{Camera: cam, Width: float64(w), Height: float64(h)},
		},
		Render: settings,
	}

	s.Layout(ctx)
	s.Draw(ctx, true)
	if opts.Guides {
		s.Panel.Draw(ctx)
	}
	return canvas, nil
}
