package plot3d

import (
	"fmt"
	"io"
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
)

const (
	lineWidth = 2.0
	boxWidth  = 1.0
)

func drawFrame(dc *gg.Context, scene *Scene, f Frame) {
	dc.SetColor(colornames.White)
	dc.Clear()

	dc.SetColor(colornames.Gray)
	dc.SetLineWidth(boxWidth)
	for _, e := range f.Box {
		dc.DrawLine(e.From.X, e.From.Y, e.To.X, e.To.Y)
		dc.Stroke()
	}

	if len(f.Line) > 0 {
		dc.SetColor(scene.Color())
		dc.SetLineWidth(lineWidth)
		dc.MoveTo(f.Line[0].X, f.Line[0].Y)
		for _, p := range f.Line[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.Stroke()
	}

	dc.SetColor(colornames.Black)
	for _, l := range f.Labels {
		dc.DrawString(l.Text, l.At.X+4, l.At.Y-4)
	}
	if scene.Title != "" {
		dc.DrawStringAnchored(scene.Title, float64(f.Width)/2, 16, 0.5, 0.5)
	}
}

// WritePNG renders the scene offscreen and encodes it as PNG. It needs no
// display.
func WritePNG(w io.Writer, scene *Scene, cam *Camera, width, height int) error {
	if width <= 0 || height <= 0 {
		return invalidf("image size must be positive: %dx%d", width, height)
	}
	dc := gg.NewContext(width, height)
	drawFrame(dc, scene, scene.Project(cam, width, height))
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func SavePNG(path string, scene *Scene, cam *Camera, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, scene, cam, width, height); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
