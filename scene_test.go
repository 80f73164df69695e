package plot3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const screenEpsilon = 1e-6

func mustScene(t *testing.T, traj Trajectory) *Scene {
	t.Helper()
	s, err := NewScene(traj, DefaultBounds(), DefaultColor)
	require.NoError(t, err)
	return s
}

func TestSceneLimitsPassThrough(t *testing.T) {
	s := mustScene(t, DefaultTrajectory())

	assert.Equal(t, AxisRange{Min: 50, Max: 350}, s.XLim())
	assert.Equal(t, AxisRange{Min: 250, Max: 600}, s.YLim())
	assert.Equal(t, AxisRange{Min: -25, Max: 400}, s.ZLim())
}

func TestSceneOwnsItsData(t *testing.T) {
	traj := DefaultTrajectory()
	s := mustScene(t, traj)

	traj.X[0] = 0
	assert.Equal(t, 278.0, s.Trajectory().X[0])

	got := s.Trajectory()
	got.Y[0] = 0
	assert.Equal(t, 278.0, s.Trajectory().Y[0])
}

func TestProjectCentre(t *testing.T) {
	// the bounds centre is where the camera looks
	traj := TrajectoryFromPoints([]Point3D{NewPoint3D(200, 425, 187.5)})
	s := mustScene(t, traj)

	for _, cam := range []*Camera{DefaultCamera(), NewCamera(0, 0), NewCamera(-45, 120), NewCamera(90, 10)} {
		f := s.Project(cam, 640, 480)
		require.Len(t, f.Line, 1)
		assert.InDelta(t, 320, f.Line[0].X, screenEpsilon)
		assert.InDelta(t, 240, f.Line[0].Y, screenEpsilon)
	}
}

func TestProjectZIsUp(t *testing.T) {
	traj := TrajectoryFromPoints([]Point3D{
		NewPoint3D(200, 425, -25),
		NewPoint3D(200, 425, 400),
	})
	f := mustScene(t, traj).Project(DefaultCamera(), 640, 480)

	assert.Greater(t, f.Line[0].Y, f.Line[1].Y)
}

func TestProjectFarOutsideBoundsKeepsDirection(t *testing.T) {
	// further from the centre than the eye is
	traj := TrajectoryFromPoints([]Point3D{
		NewPoint3D(200, 425, 187.5),
		NewPoint3D(200, 425, 4437.5),
		NewPoint3D(200, 425, -4062.5),
	})
	s := mustScene(t, traj)

	for _, cam := range []*Camera{DefaultCamera(), NewCamera(60, 45), NewCamera(-30, 200)} {
		f := s.Project(cam, 640, 480)
		require.Len(t, f.Line, 3)
		assert.InDelta(t, 240, f.Line[0].Y, screenEpsilon)
		assert.Less(t, f.Line[1].Y, 240.0, "point above centre drawn below it")
		assert.Greater(t, f.Line[2].Y, 240.0, "point below centre drawn above it")
	}
}

func TestProjectBoxIgnoresData(t *testing.T) {
	small := mustScene(t, Trajectory{X: []float64{0, 1}, Y: []float64{0, 1}, Z: []float64{0, 1}})
	full := mustScene(t, DefaultTrajectory())

	a := small.Project(DefaultCamera(), 640, 480)
	b := full.Project(DefaultCamera(), 640, 480)

	assert.Len(t, a.Box, 12)
	assert.Equal(t, a.Box, b.Box)
	assert.Equal(t, a.Labels, b.Labels)
	assert.Len(t, a.Line, 2)
	assert.Len(t, b.Line, 5)
}

func TestProjectLabels(t *testing.T) {
	f := mustScene(t, DefaultTrajectory()).Project(DefaultCamera(), 640, 480)

	var texts []string
	for _, l := range f.Labels {
		texts = append(texts, l.Text)
	}
	assert.ElementsMatch(t, []string{"x=50", "x=350", "y=250", "y=600", "z=-25", "z=400"}, texts)
}

func TestProjectFinite(t *testing.T) {
	f := mustScene(t, DefaultTrajectory()).Project(NewCamera(90, 0), 640, 480)
	for _, p := range f.Line {
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "point %+v", p)
	}
}

func TestCameraAddAngle(t *testing.T) {
	c := DefaultCamera()
	c.AddAngle(100, 30)
	assert.Equal(t, 90.0, c.Elevation)
	assert.Equal(t, -30.0, c.Azimuth)

	c.AddAngle(-500, 0)
	assert.Equal(t, -90.0, c.Elevation)
}
