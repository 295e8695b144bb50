package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Benjirez/archipack/internal/raster"
	"github.com/Benjirez/archipack/internal/scene"
)

var (
	renderOut     string
	renderWidth   int
	renderHeight  int
	renderPercent float64
	renderOpaque  bool
	renderPanel   bool
)

// background matches the viewer window
var background = color.NRGBA{R: 15, G: 18, B: 25, A: 255}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the annotations into an image",
	Long:  "Render the annotated scene headless into a PNG or WebP image, the format follows the output extension.",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output file (.png or .webp)")
	renderCmd.Flags().IntVar(&renderWidth, "width", 1920, "resolution X")
	renderCmd.Flags().IntVar(&renderHeight, "height", 1080, "resolution Y")
	renderCmd.Flags().Float64Var(&renderPercent, "percent", 100, "resolution percentage")
	renderCmd.Flags().BoolVar(&renderOpaque, "opaque", false, "fill the background instead of leaving it transparent")
	renderCmd.Flags().BoolVar(&renderPanel, "panel", false, "include the feedback panel")
	_ = renderCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(renderCmd)
}

func renderOptions() scene.RenderOptions {
	opts := scene.RenderOptions{
		Width:      renderWidth,
		Height:     renderHeight,
		Percentage: renderPercent,
		Guides:     renderPanel,
	}
	if renderOpaque {
		opts.Background = background
	}
	return opts
}

func runRender(cmd *cobra.Command, args []string) error {
	format, err := raster.FormatFromPath(renderOut)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s := scene.New(cfg)
	if renderPanel {
		s.Panel.Enable()
	}
	canvas, err := scene.Render(s, renderOptions())
	if err != nil {
		return err
	}

	f, err := os.Create(renderOut)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	if err := canvas.Encode(f, format); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", renderOut, err)
	}

	b := canvas.Bounds()
	slog.Info("rendered", "out", renderOut, "format", format, "width", b.Dx(), "height", b.Dy())
	return nil
}
