// Package window shows plot3d scenes in an interactive ebiten window.
package window

import (
	"errors"
	"os"
	"runtime"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/smasonuk/plot3d"
)

// ErrDisplayUsed is returned by Show once a window has already been run.
// ebiten allows a single RunGame per process.
var ErrDisplayUsed = errors.New("window: a plot window was already shown in this process")

// set once RunGame has been entered, by any Display
var started atomic.Bool

// Display opens the process's one plot window. Drag with the left mouse
// button to orbit, Escape or the close button to return.
type Display struct {
	Width     int
	Height    int
	Elevation float64
	Azimuth   float64
}

func NewDisplay(width, height int) *Display {
	return &Display{
		Width:     width,
		Height:    height,
		Elevation: plot3d.DefaultElevation,
		Azimuth:   plot3d.DefaultAzimuth,
	}
}

// Show blocks until the window is closed. Only the first successful call in
// a process opens a window; later calls return ErrDisplayUsed.
func (d *Display) Show(scene *plot3d.Scene) error {
	if started.Load() {
		return ErrDisplayUsed
	}
	if !displayAvailable() {
		return plot3d.ErrNoDisplay
	}
	if !started.CompareAndSwap(false, true) {
		return ErrDisplayUsed
	}
	ebiten.SetWindowSize(d.Width, d.Height)
	ebiten.SetWindowTitle(scene.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	cam := plot3d.NewCamera(d.Elevation, d.Azimuth)
	return ebiten.RunGame(NewGame(scene, cam, d.Width, d.Height))
}

func displayAvailable() bool {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	}
	return true
}
