package plot3d

import (
	"errors"
	"fmt"
	"log"
)

// ErrNoDisplay is returned by a Display that has no screen to open a window on.
var ErrNoDisplay = errors.New("no graphical display available")

// Display shows a scene and returns once the viewer is done with it.
type Display interface {
	Show(scene *Scene) error
}

type Plotter struct {
	display Display
	title   string
}

func NewPlotter(d Display) *Plotter {
	return &Plotter{display: d, title: DefaultTitle}
}

// SetTitle sets the window title used by later Render calls.
func (p *Plotter) SetTitle(title string) {
	p.title = title
}

// Render draws the trajectory as one connected line in the given color with
// the axes fixed to bounds, and blocks until the display returns. Invalid
// input fails with *InvalidInputError before anything is shown.
func (p *Plotter) Render(t Trajectory, b AxisBounds, colorName string) error {
	scene, err := NewScene(t, b, colorName)
	if err != nil {
		return err
	}
	scene.Title = p.title

	log.Printf("Plotting %d points in %s...", t.Len(), colorName)
	if err := p.display.Show(scene); err != nil {
		return fmt.Errorf("show plot: %w", err)
	}
	log.Println("Plot window closed.")
	return nil
}
