package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/smasonuk/plot3d"
)

// degrees of rotation per pixel dragged
const dragSensitivity = 0.5

type Game struct {
	scene         *plot3d.Scene
	camera        *plot3d.Camera
	width, height int
	lastX, lastY  int
	dragged       bool
}

func NewGame(scene *plot3d.Scene, cam *plot3d.Camera, width, height int) *Game {
	return &Game{
		scene:  scene,
		camera: cam,
		width:  width,
		height: height,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragged = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.dragged {
		x, y := ebiten.CursorPosition()
		g.camera.AddAngle(float64(y-g.lastY)*dragSensitivity, -float64(x-g.lastX)*dragSensitivity)
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragged = false
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.scene.Project(g.camera, g.width, g.height)
	drawFrame(screen, frame, g.scene.Title, g.scene.Color())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
