package camera

import (
	"math"
	"testing"

	"github.com/df07/go-mc-renderer/pkg/core"
)

// fixedSampler returns the queued 2D samples in order, then repeats the last one
type fixedSampler struct {
	samples []core.Vec2
	next    int
}

func (f *fixedSampler) Get1D() float64 { return f.Get2D().X }

func (f *fixedSampler) Get2D() core.Vec2 {
	s := f.samples[f.next]
	if f.next < len(f.samples)-1 {
		f.next++
	}
	return s
}

func testConfig() Config {
	return Config{
		Position:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VerticalFOV: 90,
		Width:       4,
		Height:      2,
	}
}

func TestCamera_PinholeCenterRay(t *testing.T) {
	cam := New(testConfig())

	// Pixel (2, 1) with jitter (0, 0) sits exactly at the image centre
	ray, pdf, gTerm := cam.Sample(2, 1, &fixedSampler{samples: []core.Vec2{{X: 0, Y: 0}}})

	if ray.Origin != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected ray from the pinhole, got %v", ray.Origin)
	}
	if ray.Direction.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-12 {
		t.Errorf("Expected forward direction, got %v", ray.Direction)
	}
	if pdf != 1 || gTerm != 1 {
		t.Errorf("Expected pdf=1 gTerm=1 for a pinhole, got %f %f", pdf, gTerm)
	}
	if cam.SensorSensitivity() != 1 {
		t.Errorf("Expected default sensitivity 1, got %f", cam.SensorSensitivity())
	}
}

func TestCamera_RowZeroIsTop(t *testing.T) {
	cam := New(testConfig())
	center := []core.Vec2{{X: 0.5, Y: 0.5}}

	top, _, _ := cam.Sample(1, 0, &fixedSampler{samples: center})
	bottom, _, _ := cam.Sample(1, 1, &fixedSampler{samples: center})
	left, _, _ := cam.Sample(0, 0, &fixedSampler{samples: center})
	right, _, _ := cam.Sample(3, 0, &fixedSampler{samples: center})

	if top.Direction.Y <= 0 || bottom.Direction.Y >= 0 {
		t.Errorf("Expected row 0 above the axis: top=%v bottom=%v", top.Direction, bottom.Direction)
	}
	if left.Direction.X >= 0 || right.Direction.X <= 0 {
		t.Errorf("Expected column 0 on the left: left=%v right=%v", left.Direction, right.Direction)
	}
}

func TestCamera_FieldOfView(t *testing.T) {
	cam := New(testConfig())

	// Top edge of the image at 90° vertical FOV is 45° above the axis
	ray, _, _ := cam.Sample(2, 0, &fixedSampler{samples: []core.Vec2{{X: 0, Y: 0}}})
	angle := math.Acos(ray.Direction.Dot(core.NewVec3(0, 0, -1)))
	if math.Abs(angle-math.Pi/4) > 1e-9 {
		t.Errorf("Expected 45° to the top edge, got %f°", angle*180/math.Pi)
	}
}

func TestCamera_ThinLensFocus(t *testing.T) {
	cfg := testConfig()
	cfg.ApertureRadius = 0.1
	cfg.FocusDistance = 5
	cam := New(cfg)

	// Two different lens samples for the same sensor point meet on the plane of focus
	lensSamples := []core.Vec2{{X: 0.1, Y: 0.9}, {X: 0.8, Y: 0.3}}
	var focus []core.Vec3
	for _, lens := range lensSamples {
		ray, pdf, gTerm := cam.Sample(1, 0, &fixedSampler{samples: []core.Vec2{{X: 0.3, Y: 0.6}, lens}})

		expectedPDF := 1 / (math.Pi * 0.01)
		if math.Abs(pdf-expectedPDF) > 1e-9 {
			t.Errorf("Expected pdf %f, got %f", expectedPDF, pdf)
		}
		if gTerm <= 0 || gTerm > 1 {
			t.Errorf("Expected gTerm in (0, 1], got %f", gTerm)
		}

		// Intersect with the plane z = -5
		tPlane := (-5 - ray.Origin.Z) / ray.Direction.Z
		focus = append(focus, ray.At(tPlane))
	}

	if focus[0].Subtract(focus[1]).Length() > 1e-9 {
		t.Errorf("Rays do not converge on the focus plane: %v vs %v", focus[0], focus[1])
	}
}

// A uniform radiance field should map to roughly the same value at the image centre
func TestCamera_ThinLensUniformResponse(t *testing.T) {
	cfg := testConfig()
	cfg.ApertureRadius = 0.05
	cfg.FocusDistance = 3
	cam := New(cfg)

	sampler := core.NewSeededSampler(11)
	const n = 2000
	sum := 0.0
	for i := 0; i < n; i++ {
		_, pdf, gTerm := cam.Sample(2, 1, &fixedSampler{samples: []core.Vec2{{X: 0, Y: 0}, sampler.Get2D()}})
		sum += gTerm * cam.SensorSensitivity() / pdf
	}
	mean := sum / n
	if math.Abs(mean-1) > 0.01 {
		t.Errorf("Expected response close to 1, got %f", mean)
	}
}
