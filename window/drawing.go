package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/smasonuk/plot3d"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

var (
	backgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	boxColor        = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

const (
	lineWidth = 2
	boxWidth  = 1
)

// drawPolyline strokes an open path through the points in order.
func drawPolyline(screen *ebiten.Image, pts []plot3d.ScreenPoint, strokeWidth float32, clr color.RGBA) {
	if len(pts) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}

	strokeOp := &vector.StrokeOptions{
		Width:    strokeWidth,
		LineJoin: vector.LineJoinRound,
	}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)

	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0
	// SrcX/SrcY pick the solid pixel of whiteSub
	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}

	screen.DrawTriangles(vertices, indices, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func drawFrame(screen *ebiten.Image, frame plot3d.Frame, title string, clr color.RGBA) {
	screen.Fill(backgroundColor)
	for _, e := range frame.Box {
		vector.StrokeLine(screen, float32(e.From.X), float32(e.From.Y), float32(e.To.X), float32(e.To.Y), boxWidth, boxColor, true)
	}
	drawPolyline(screen, frame.Line, lineWidth, clr)
	for _, l := range frame.Labels {
		ebitenutil.DebugPrintAt(screen, l.Text, int(l.At.X)+4, int(l.At.Y)-16)
	}
	ebitenutil.DebugPrintAt(screen, title, 4, 4)
}
