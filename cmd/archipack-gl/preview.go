package main

import (
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/cobra"

	"github.com/Benjirez/archipack/internal/scene"
	"github.com/Benjirez/archipack/pkg/overlay"
	"github.com/Benjirez/archipack/pkg/watcher"
)

var (
	previewWidth   int
	previewHeight  int
	previewPercent float64
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the software rendering in a window",
	Long:  "Render the annotated scene with the software host and show it in a native window. The style file, when given, is reloaded on every change.",
	Args:  cobra.NoArgs,
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&previewWidth, "width", 1280, "resolution X")
	previewCmd.Flags().IntVar(&previewHeight, "height", 720, "resolution Y")
	previewCmd.Flags().Float64Var(&previewPercent, "percent", 100, "resolution percentage")
	rootCmd.AddCommand(previewCmd)
}

type preview struct {
	scene  *scene.Scene
	opts   scene.RenderOptions
	image  *canvas.Image
	status *widget.Label
}

func (p *preview) render() {
	start := time.Now()
	c, err := scene.Render(p.scene, p.opts)
	if err != nil {
		p.status.SetText(fmt.Sprintf("Render failed: %v", err))
		return
	}
	b := c.Bounds()
	p.image.Image = c.Image()
	p.image.Refresh()
	p.status.SetText(fmt.Sprintf("%dx%d rendered in %s", b.Dx(), b.Dy(), time.Since(start).Round(time.Millisecond)))
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a := fyneapp.New()
	w := a.NewWindow("archipack-gl preview")

	p := &preview{
		scene: scene.New(cfg),
		opts: scene.RenderOptions{
			Width:      previewWidth,
			Height:     previewHeight,
			Percentage: previewPercent,
			Background: background,
		},
		image:  &canvas.Image{FillMode: canvas.ImageFillContain},
		status: widget.NewLabel(""),
	}
	p.scene.Panel.Enable()

	panel := widget.NewCheck("Feedback panel", func(on bool) {
		p.opts.Guides = on
		p.render()
	})
	refresh := widget.NewButton("Render", p.render)

	toolbar := container.NewHBox(panel, refresh, p.status)
	w.SetContent(container.NewBorder(nil, toolbar, nil, nil, p.image))

	if configPath != "" {
		r, err := watcher.NewReloader(configPath, 300*time.Millisecond, overlay.LoadConfig)
		if err != nil {
			slog.Warn("failed to set up style file watching, hot reload disabled", "error", err)
		} else {
			defer r.Close()
			go func() {
				for cfg := range r.Updates() {
					fyne.Do(func() {
						p.scene.Apply(cfg)
						p.render()
					})
				}
			}()
		}
	}

	p.render()
	w.Resize(fyne.NewSize(float32(previewWidth)/2+40, float32(previewHeight)/2+80))
	w.ShowAndRun()
	return nil
}
