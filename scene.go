package plot3d

import (
	"image/color"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
)

// Scene is everything needed to draw one plot. It owns copies of its
// trajectory, so nothing the caller does later changes what is drawn.
type Scene struct {
	Title      string
	trajectory Trajectory
	bounds     AxisBounds
	color      color.RGBA
	colorName  string
}

func NewScene(t Trajectory, b AxisBounds, colorName string) (*Scene, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	clr, err := ParseColor(colorName)
	if err != nil {
		return nil, err
	}
	return &Scene{
		Title:      DefaultTitle,
		trajectory: t.Clone(),
		bounds:     b,
		color:      clr,
		colorName:  colorName,
	}, nil
}

func (s *Scene) Trajectory() Trajectory { return s.trajectory.Clone() }
func (s *Scene) Bounds() AxisBounds     { return s.bounds }
func (s *Scene) Color() color.RGBA      { return s.color }
func (s *Scene) ColorName() string      { return s.colorName }

func (s *Scene) XLim() AxisRange { return s.bounds.X }
func (s *Scene) YLim() AxisRange { return s.bounds.Y }
func (s *Scene) ZLim() AxisRange { return s.bounds.Z }

type ScreenPoint struct {
	X float64
	Y float64
}

type Segment struct {
	From ScreenPoint
	To   ScreenPoint
}

type Label struct {
	Text string
	At   ScreenPoint
}

// Frame is a scene projected onto a width x height screen.
type Frame struct {
	Width  int
	Height int
	Line   []ScreenPoint
	Box    []Segment
	Labels []Label
}

var cubeCorners = [8]mgl64.Vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// The box is the bounds, never the data extent.
func (s *Scene) Project(cam *Camera, width, height int) Frame {
	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix(width, height)
	toScreen := func(v mgl64.Vec3) ScreenPoint {
		win := mgl64.Project(v, view, proj, 0, 0, width, height)
		return ScreenPoint{X: win.X(), Y: float64(height) - win.Y()}
	}

	f := Frame{Width: width, Height: height}
	for _, p := range s.trajectory.Points() {
		f.Line = append(f.Line, toScreen(s.bounds.Normalize(p)))
	}

	var corners [8]ScreenPoint
	for i, c := range cubeCorners {
		corners[i] = toScreen(c)
	}
	for _, e := range cubeEdges {
		f.Box = append(f.Box, Segment{From: corners[e[0]], To: corners[e[1]]})
	}

	// x runs 0->1, y runs 1->2, z runs 3->7
	f.Labels = append(f.Labels,
		axisLabel("x", s.bounds.X.Min, corners[0]),
		axisLabel("x", s.bounds.X.Max, corners[1]),
		axisLabel("y", s.bounds.Y.Min, corners[1]),
		axisLabel("y", s.bounds.Y.Max, corners[2]),
		axisLabel("z", s.bounds.Z.Min, corners[3]),
		axisLabel("z", s.bounds.Z.Max, corners[7]),
	)
	return f
}

func axisLabel(axis string, v float64, at ScreenPoint) Label {
	return Label{Text: axis + "=" + strconv.FormatFloat(v, 'g', -1, 64), At: at}
}
