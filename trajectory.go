// Package plot3d draws a 3D trajectory as a connected line inside fixed
// axis bounds.
package plot3d

import (
	"fmt"
	"math"
)

// InvalidInputError is returned when a trajectory, bounds or color cannot be
// plotted. Nothing is drawn when it is returned.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

func invalidf(format string, args ...any) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// Point i is (X[i], Y[i], Z[i]).
type Trajectory struct {
	X []float64 `yaml:"x"`
	Y []float64 `yaml:"y"`
	Z []float64 `yaml:"z"`
}

func NewTrajectory(x, y, z []float64) (Trajectory, error) {
	t := Trajectory{
		X: append([]float64(nil), x...),
		Y: append([]float64(nil), y...),
		Z: append([]float64(nil), z...),
	}
	if err := t.Validate(); err != nil {
		return Trajectory{}, err
	}
	return t, nil
}

func TrajectoryFromPoints(points []Point3D) Trajectory {
	t := Trajectory{
		X: make([]float64, len(points)),
		Y: make([]float64, len(points)),
		Z: make([]float64, len(points)),
	}
	for i, p := range points {
		t.X[i], t.Y[i], t.Z[i] = p.X, p.Y, p.Z
	}
	return t
}

// Validate checks that all three sequences are non-empty, of equal length and
// hold only finite values.
func (t Trajectory) Validate() error {
	if len(t.X) != len(t.Y) || len(t.X) != len(t.Z) {
		return invalidf("trajectory lengths differ: x=%d y=%d z=%d", len(t.X), len(t.Y), len(t.Z))
	}
	if len(t.X) == 0 {
		return invalidf("trajectory is empty")
	}
	for i := range t.X {
		if !finite(t.X[i]) || !finite(t.Y[i]) || !finite(t.Z[i]) {
			return invalidf("trajectory point %d is not finite", i)
		}
	}
	return nil
}

func (t Trajectory) Len() int {
	return len(t.X)
}

// assumes a valid trajectory
func (t Trajectory) Points() []Point3D {
	pts := make([]Point3D, len(t.X))
	for i := range pts {
		pts[i] = NewPoint3D(t.X[i], t.Y[i], t.Z[i])
	}
	return pts
}

func (t Trajectory) Clone() Trajectory {
	return Trajectory{
		X: append([]float64(nil), t.X...),
		Y: append([]float64(nil), t.Y...),
		Z: append([]float64(nil), t.Z...),
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
