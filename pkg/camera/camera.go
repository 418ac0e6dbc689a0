// Package camera implements a sensor-based pinhole and thin-lens camera.
package camera

import (
	"math"

	"github.com/df07/go-mc-renderer/pkg/core"
)

// Config describes the camera placement, optics and image size
type Config struct {
	Position core.Vec3
	LookAt   core.Vec3
	Up       core.Vec3

	VerticalFOV    float64 // degrees
	ApertureRadius float64 // 0 for a pinhole
	FocusDistance  float64 // along the view axis; 0 means |LookAt - Position|
	Sensitivity    float64 // 0 means 1

	Width  int
	Height int
}

// Camera maps pixels to rays. The sensor sits at distance 1 behind the lens
// and is mirrored so that pixel row 0 is the top of the image.
// Camera holds no mutable state; all randomness comes from the caller's sampler.
type Camera struct {
	position       core.Vec3
	u, v, w        core.Vec3 // right, up, backward
	halfWidth      float64   // sensor half extents at distance 1
	halfHeight     float64
	width, height  int
	apertureRadius float64
	focusDistance  float64
	sensitivity    float64
}

// New creates a camera from the configuration
func New(cfg Config) *Camera {
	up := cfg.Up
	if up.IsZero() {
		up = core.NewVec3(0, 1, 0)
	}
	w := cfg.Position.Subtract(cfg.LookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	aspect := float64(cfg.Width) / float64(cfg.Height)
	halfHeight := math.Tan(cfg.VerticalFOV * math.Pi / 360)

	focusDistance := cfg.FocusDistance
	if focusDistance <= 0 {
		focusDistance = cfg.LookAt.Subtract(cfg.Position).Length()
	}
	sensitivity := cfg.Sensitivity
	if sensitivity == 0 {
		sensitivity = 1
	}

	return &Camera{
		position:       cfg.Position,
		u:              u,
		v:              v,
		w:              w,
		halfWidth:      halfHeight * aspect,
		halfHeight:     halfHeight,
		width:          cfg.Width,
		height:         cfg.Height,
		apertureRadius: cfg.ApertureRadius,
		focusDistance:  focusDistance,
		sensitivity:    sensitivity,
	}
}

// IsPinhole reports whether the camera has no aperture
func (c *Camera) IsPinhole() bool {
	return c.apertureRadius <= 0
}

// Sample returns a ray leaving the lens for a jittered point in pixel (x, y),
// the area density of the lens sample, and the geometric term between the
// sensor point and the lens point.
func (c *Camera) Sample(x, y int, sampler core.Sampler) (core.Ray, float64, float64) {
	jitter := sampler.Get2D()
	s := (float64(x) + jitter.X) / float64(c.width)
	t := (float64(y) + jitter.Y) / float64(c.height)

	// Direction from the sensor point through the lens centre
	through := c.w.Negate().
		Add(c.u.Multiply((2*s - 1) * c.halfWidth)).
		Add(c.v.Multiply((1 - 2*t) * c.halfHeight))

	if c.IsPinhole() {
		return core.NewRay(c.position, through.Normalize()), 1, 1
	}

	disk := core.SamplePointInUnitDisk(sampler.Get2D())
	lensPoint := c.position.
		Add(c.u.Multiply(disk.X * c.apertureRadius)).
		Add(c.v.Multiply(disk.Y * c.apertureRadius))

	// through has unit length along the axis, so scaling by the focus
	// distance lands on the plane of focus
	focusPoint := c.position.Add(through.Multiply(c.focusDistance))

	sensorPoint := c.position.Subtract(through)
	toLens := lensPoint.Subtract(sensorPoint)
	r2 := toLens.LengthSquared()
	cosTheta := toLens.Dot(c.w.Negate()) / math.Sqrt(r2)

	pdf := 1.0 / (math.Pi * c.apertureRadius * c.apertureRadius)
	gTerm := cosTheta * cosTheta / r2

	return core.NewRay(lensPoint, focusPoint.Subtract(lensPoint).Normalize()), pdf, gTerm
}

// SensorSensitivity returns the factor that turns sensor irradiance into pixel value
func (c *Camera) SensorSensitivity() float64 {
	if c.IsPinhole() {
		return c.sensitivity
	}
	// Sensor distance is 1
	return c.sensitivity / (math.Pi * c.apertureRadius * c.apertureRadius)
}
