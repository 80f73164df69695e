package plot3d

type Point3D struct {
	X float64
	Y float64
	Z float64
}

func NewPoint3D(x, y, z float64) Point3D {
	return Point3D{
		X: x,
		Y: y,
		Z: z,
	}
}
