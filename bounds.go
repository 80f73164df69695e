package plot3d

import "github.com/go-gl/mathgl/mgl64"

type AxisRange struct {
	Min float64
	Max float64
}

func (r AxisRange) Span() float64 {
	return r.Max - r.Min
}

// normalize maps v from [Min, Max] to [-1, 1]. Values outside the range land
// outside [-1, 1].
func (r AxisRange) normalize(v float64) float64 {
	return 2*(v-r.Min)/r.Span() - 1
}

func (r AxisRange) validate(axis string) error {
	if !finite(r.Min) || !finite(r.Max) {
		return invalidf("%s bounds are not finite: [%v, %v]", axis, r.Min, r.Max)
	}
	if r.Min >= r.Max {
		return invalidf("%s bounds must satisfy min < max: [%v, %v]", axis, r.Min, r.Max)
	}
	return nil
}

// AxisBounds fixes the visible range of every axis, independent of the data.
type AxisBounds struct {
	X AxisRange `yaml:"x"`
	Y AxisRange `yaml:"y"`
	Z AxisRange `yaml:"z"`
}

func NewAxisBounds(xmin, xmax, ymin, ymax, zmin, zmax float64) AxisBounds {
	return AxisBounds{
		X: AxisRange{Min: xmin, Max: xmax},
		Y: AxisRange{Min: ymin, Max: ymax},
		Z: AxisRange{Min: zmin, Max: zmax},
	}
}

func (b AxisBounds) Validate() error {
	if err := b.X.validate("x"); err != nil {
		return err
	}
	if err := b.Y.validate("y"); err != nil {
		return err
	}
	return b.Z.validate("z")
}

// Normalize maps a data point into the view cube [-1,1]^3.
func (b AxisBounds) Normalize(p Point3D) mgl64.Vec3 {
	return mgl64.Vec3{
		b.X.normalize(p.X),
		b.Y.normalize(p.Y),
		b.Z.normalize(p.Z),
	}
}
