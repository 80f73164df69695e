package plot3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultElevation = 30.0
	DefaultAzimuth   = -60.0
	defaultDistance  = 9.0
	defaultHalfSpan  = 2.4
	nearPlane        = 0.1
	farPlane         = 100.0
)

// Angles in degrees, z up.
type Camera struct {
	Elevation float64
	Azimuth   float64
	Distance  float64
	// half the visible height, in view-cube units
	HalfSpan float64
}

func NewCamera(elevation, azimuth float64) *Camera {
	c := &Camera{
		Azimuth:  azimuth,
		Distance: defaultDistance,
		HalfSpan: defaultHalfSpan,
	}
	c.setElevation(elevation)
	return c
}

func DefaultCamera() *Camera {
	return NewCamera(DefaultElevation, DefaultAzimuth)
}

func (c *Camera) setElevation(e float64) {
	c.Elevation = math.Max(-90, math.Min(90, e))
}

func (c *Camera) AddAngle(elevation, azimuth float64) {
	c.setElevation(c.Elevation + elevation)
	c.Azimuth = math.Mod(c.Azimuth+azimuth, 360)
}

// Position is the eye position in view-cube space.
func (c *Camera) Position() mgl64.Vec3 {
	elev := mgl64.DegToRad(c.Elevation)
	azim := mgl64.DegToRad(c.Azimuth)
	return mgl64.Vec3{
		c.Distance * math.Cos(elev) * math.Cos(azim),
		c.Distance * math.Cos(elev) * math.Sin(azim),
		c.Distance * math.Sin(elev),
	}
}

func (c *Camera) ViewMatrix() mgl64.Mat4 {
	up := mgl64.Vec3{0, 0, 1}
	// looking straight down the z axis, z can't be up
	if math.Abs(c.Elevation) >= 89.999 {
		azim := mgl64.DegToRad(c.Azimuth)
		up = mgl64.Vec3{-math.Cos(azim), -math.Sin(azim), 0}
	}
	return mgl64.LookAtV(c.Position(), mgl64.Vec3{}, up)
}

// ProjectionMatrix is orthographic. w stays 1, so data far outside the bounds
// (even behind the eye) keeps its direction on screen.
func (c *Camera) ProjectionMatrix(width, height int) mgl64.Mat4 {
	halfW := c.HalfSpan * float64(width) / float64(height)
	return mgl64.Ortho(-halfW, halfW, -c.HalfSpan, c.HalfSpan, nearPlane, farPlane)
}
