package app

import (
	"math"

	"github.com/Benjirez/archipack/pkg/viewer"
)

// setupCamera frames the scene and remembers the framing for resets
func (app *App) setupCamera() {
	app.Camera.camera = viewer.NewCamera(app.Scene.Frame())
	app.Camera.defaultDist = app.Camera.camera.Distance
	app.Camera.defaultAngleX = app.Camera.camera.RotationX
	app.Camera.defaultAngleY = app.Camera.camera.RotationY
}

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	cam := app.Camera.camera
	cam.Distance = app.Camera.defaultDist
	cam.RotationX = app.Camera.defaultAngleX
	cam.RotationY = app.Camera.defaultAngleY
	cam.Target = app.Scene.Bounds().Center()
	cam.UpdatePosition()
}

// setCameraTopView sets the camera to look down on the floor
func (app *App) setCameraTopView() {
	app.setCameraAngles(math.Pi/2, 0)
}

// setCameraFrontView sets the camera to look from the front (along +Y axis)
func (app *App) setCameraFrontView() {
	app.setCameraAngles(0, 0)
}

// setCameraLeftView sets the camera to look from the left (along +X axis)
func (app *App) setCameraLeftView() {
	app.setCameraAngles(0, -math.Pi/2)
}

// setCameraRightView sets the camera to look from the right (along -X axis)
func (app *App) setCameraRightView() {
	app.setCameraAngles(0, math.Pi/2)
}

// setCameraAngles orients the camera; Rotate clamps the elevation
func (app *App) setCameraAngles(elevation, heading float64) {
	cam := app.Camera.camera
	cam.RotationX = 0
	cam.RotationY = heading
	cam.Target = app.Scene.Bounds().Center()
	cam.Rotate(elevation, 0)
}

// orbit rotates the camera from a mouse delta in pixels
func (app *App) orbit(dx, dy float32) {
	app.Camera.camera.Rotate(float64(dy)*0.01, -float64(dx)*0.01)
}
