package app

import (
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Benjirez/archipack/internal/rlhost"
	"github.com/Benjirez/archipack/internal/scene"
	"github.com/Benjirez/archipack/pkg/overlay"
	"github.com/Benjirez/archipack/pkg/viewer"
	"github.com/Benjirez/archipack/pkg/watcher"
)

// Options configures the viewer window
type Options struct {
	Width      int32
	Height     int32
	Config     overlay.Config
	ConfigPath string // Style file to hot reload, optional
}

type App struct {
	Scene       *scene.Scene
	Camera      CameraState
	Interaction InteractionState
	View        ViewSettings
	FileWatch   FileWatchState
	UI          UIState
}

// Run opens the window and runs the main loop until it is closed
func Run(opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", opts.Width, opts.Height)
	}

	app := &App{
		Scene: scene.New(opts.Config),
		View: ViewSettings{
			showPanel:     true,
			showCrosshair: true,
			showHelp:      true,
		},
		FileWatch: FileWatchState{configPath: opts.ConfigPath},
	}
	app.Scene.Panel.Enable()

	if err := app.setupFileWatcher(); err != nil {
		slog.Warn("failed to set up style file watching, hot reload disabled", "error", err)
	}
	if app.FileWatch.reloader != nil {
		defer app.FileWatch.reloader.Close()
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(opts.Width, opts.Height, "archipack-gl")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyEscape)

	app.UI.font = rl.GetFontDefault()
	app.UI.host = rlhost.New(app.UI.font)
	app.setupCamera()

	for !rl.WindowShouldClose() {
		app.applyReloadedConfig()

		ctx := app.context()
		app.Scene.Layout(ctx)
		app.handleInput(ctx)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(rlhost.Camera3D(app.Camera.camera))
		app.drawGrid()
		rl.EndMode3D()

		app.Scene.Draw(ctx, false)
		app.Scene.DrawGuides(ctx)
		app.drawUI()

		rl.EndDrawing()
	}

	return nil
}

// context builds the overlay context of the current frame
func (app *App) context() *overlay.Context {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	app.UI.host.Resize(w, h)
	return &overlay.Context{
		Host: app.UI.host,
		Region: overlay.Region{
			Width:  float64(w),
			Height: float64(h),
			View: rlhost.View{
				Camera: rlhost.Camera3D(app.Camera.camera),
				Width:  int32(w),
				Height: int32(h),
			},
		},
		Render: overlay.RenderSettings{
			Camera:               app.Camera.camera,
			ResolutionX:          w,
			ResolutionY:          h,
			ResolutionPercentage: 100,
		},
	}
}

// regionView is the pure Go twin of the raylib view, used for picking
func (app *App) regionView() viewer.RegionView {
	return viewer.RegionView{
		Camera: app.Camera.camera,
		Width:  float64(rl.GetScreenWidth()),
		Height: float64(rl.GetScreenHeight()),
	}
}

// setupFileWatcher hot reloads the style file, when one was given
func (app *App) setupFileWatcher() error {
	if app.FileWatch.configPath == "" {
		return nil
	}
	r, err := watcher.NewReloader(app.FileWatch.configPath, 300*time.Millisecond, overlay.LoadConfig)
	if err != nil {
		return err
	}
	app.FileWatch.reloader = r
	slog.Info("watching style file for changes", "path", app.FileWatch.configPath)
	return nil
}

// applyReloadedConfig restyles the scene with a reloaded style file.
// Values only cross over from the watcher goroutine here.
func (app *App) applyReloadedConfig() {
	if app.FileWatch.reloader == nil {
		return
	}
	if cfg, ok := app.FileWatch.reloader.Poll(); ok {
		app.Interaction.dragging = nil
		app.Scene.Apply(cfg)
	}
}

// drawGrid draws the floor grid the annotations lie on
func (app *App) drawGrid() {
	rl.PushMatrix()
	rl.Rotatef(90, 1, 0, 0) // raylib grids lie on XZ, the floor is XY
	rl.DrawGrid(20, 1)
	rl.PopMatrix()
}
