package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Benjirez/archipack/pkg/geometry"
	"github.com/Benjirez/archipack/pkg/overlay"
	"github.com/Benjirez/archipack/pkg/viewer"
)

// handleInput processes user input
func (app *App) handleInput(ctx *overlay.Context) {
	app.Interaction.pointer = rl.GetMousePosition()
	height := float32(rl.GetScreenHeight())
	pointer := toRegion(app.Interaction.pointer, height)

	app.handleKeys()

	app.Scene.PointerMoved(ctx, pointer)
	if app.Interaction.dragging == nil {
		app.Scene.Hover(pointer)
	}

	// Left button: drag the hovered handle, orbit otherwise
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if h := app.Scene.HandleAt(pointer); h != nil {
			app.Interaction.dragging = h
			h.Active = true
		} else {
			app.Interaction.orbiting = true
		}
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		if h := app.Interaction.dragging; h != nil {
			app.dragHandle(h, pointer)
		} else if app.Interaction.orbiting {
			delta := rl.GetMouseDelta()
			if delta.X != 0 || delta.Y != 0 {
				app.orbit(delta.X, delta.Y)
			}
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		if h := app.Interaction.dragging; h != nil {
			h.Active = false
		}
		app.Interaction.dragging = nil
		app.Interaction.orbiting = false
	}

	// Right button: drag area
	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		app.Interaction.selecting = true
		app.Interaction.selection = NewSelectionRect(app.Interaction.pointer, app.Interaction.pointer)
	}
	if app.Interaction.selecting {
		app.Interaction.selection.End = app.Interaction.pointer
		p0, p1 := app.Interaction.selection.Corners(height)
		app.Scene.Area.SetLocation(ctx, p0, p1)
		if app.Interaction.selection.Empty() {
			app.Scene.Area.Disable()
		} else {
			app.Scene.Area.Enable()
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseRightButton) {
		app.Interaction.selecting = false
		app.Scene.Area.Disable()
	}

	// Zoom
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.Camera.camera.Zoom(-float64(wheel) * 0.1)
	}
}

func (app *App) handleKeys() {
	// Camera view preset shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraFrontView()
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		app.setCameraLeftView()
	}
	if rl.IsKeyPressed(rl.KeyFour) {
		app.setCameraRightView()
	}

	if rl.IsKeyPressed(rl.KeyF1) {
		app.View.showPanel = !app.View.showPanel
		if app.View.showPanel {
			app.Scene.Panel.Enable()
		} else {
			app.Scene.Panel.Disable()
		}
	}
	if rl.IsKeyPressed(rl.KeyG) {
		app.View.showCrosshair = !app.View.showCrosshair
		if app.View.showCrosshair {
			app.Scene.Fence.Enable()
		} else {
			app.Scene.Fence.Disable()
		}
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}
}

// dragHandle moves h to where the pointer ray meets the floor plane
// through the handle
func (app *App) dragHandle(h *overlay.Handle, pointer geometry.Vector2) {
	origin, dir := app.regionView().RegionToRay(pointer)
	p, ok := viewer.IntersectPlane(origin, dir, h.Pos3D, geometry.WorldUp)
	if !ok {
		return
	}
	app.Scene.Drag(h, p)
}
