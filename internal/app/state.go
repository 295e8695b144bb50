package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Benjirez/archipack/internal/rlhost"
	"github.com/Benjirez/archipack/pkg/overlay"
	"github.com/Benjirez/archipack/pkg/viewer"
	"github.com/Benjirez/archipack/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        *viewer.Camera
	defaultDist   float64 // Default camera distance (for reset)
	defaultAngleX float64 // Default camera elevation (for reset)
	defaultAngleY float64 // Default camera heading (for reset)
}

// InteractionState holds mouse and interaction state
type InteractionState struct {
	pointer   rl.Vector2      // Mouse position, raylib coordinates
	dragging  *overlay.Handle // Handle being dragged
	orbiting  bool
	selecting bool
	selection SelectionRect
}

// ViewSettings holds display settings
type ViewSettings struct {
	showPanel     bool
	showCrosshair bool
	showHelp      bool
}

// FileWatchState holds style file watching state
type FileWatchState struct {
	configPath string
	reloader   *watcher.Reloader[overlay.Config]
}

// UIState holds UI-related state
type UIState struct {
	font rl.Font
	host *rlhost.Host
}
