package plot3d

const (
	DefaultColor = "green"
	DefaultTitle = "plot3d"
)

// DefaultTrajectory returns the five plotted points.
func DefaultTrajectory() Trajectory {
	return Trajectory{
		X: []float64{278.0, 109.52371029579483, 86.02917665210413, 259.19427381701706, 258.51717102013936},
		Y: []float64{278.0, 3.539112905926004, 122.41913483762059, 555.0, 557.2045141256829},
		Z: []float64{-10.0, 128.01953972506342, 224.20428043400497, 350.07328907967315, 354.50968956566686},
	}
}

func DefaultBounds() AxisBounds {
	return NewAxisBounds(50, 350, 250, 600, -25, 400)
}
