package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Benjirez/archipack/version"
)

// drawUI draws the status text over the overlay
func (app *App) drawUI() {
	y := float32(10)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	fontSize12 := float32(12)

	wall := app.Scene.WallLine()

	// === WALL ===
	rl.DrawTextEx(app.UI.font, "Wall:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("  Length: %.2f m", wall.Length()), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.White)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("  Dimension offset: %.2f m", app.Scene.Offset()), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.White)
	y += lineHeight
	door := app.Scene.Door()
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("  Door swing: R %.2f m, %.2f m arc", door.R, door.Length()), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.White)
	y += lineHeight * 2

	if app.View.showHelp {
		// === VIEW ===
		rl.DrawTextEx(app.UI.font, "View:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
		y += lineHeight
		rl.DrawTextEx(app.UI.font, "  Home: Reset | T: Top", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
		y += lineHeight
		rl.DrawTextEx(app.UI.font, "  1: Front | 3: Left | 4: Right", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
		y += lineHeight
		rl.DrawTextEx(app.UI.font, "  H: Toggle this help", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
		y += lineHeight
	}

	if h := app.Interaction.dragging; h != nil {
		rl.DrawTextEx(app.UI.font, fmt.Sprintf("Dragging: (%.2f, %.2f, %.2f)", h.Pos3D.X, h.Pos3D.Y, h.Pos3D.Z),
			rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.NewColor(255, 200, 100, 255))
	}

	// Version and FPS in the top right corner, the feedback panel owns the bottom
	screenWidth := float32(rl.GetScreenWidth())
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	versionWidth := rl.MeasureTextEx(app.UI.font, versionText, fontSize12, 1).X
	fpsWidth := rl.MeasureTextEx(app.UI.font, fpsText, fontSize12, 1).X
	x := screenWidth - versionWidth - fpsWidth - 25
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: x, Y: 10}, fontSize12, 1, rl.Gray)
	rl.DrawTextEx(app.UI.font, fpsText, rl.Vector2{X: x + versionWidth + 15, Y: 10}, fontSize12, 1, rl.Lime)
}
