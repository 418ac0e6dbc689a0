package integrator

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-mc-renderer/pkg/core"
)

// MockCamera returns a fixed ray with configurable pdf, geometric term and sensitivity
type MockCamera struct {
	pdf         float64
	gTerm       float64
	sensitivity float64
	calls       int
}

func (m *MockCamera) Sample(x, y int, sampler core.Sampler) (core.Ray, float64, float64) {
	m.calls++
	return core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), m.pdf, m.gTerm
}

func (m *MockCamera) SensorSensitivity() float64 { return m.sensitivity }

// MockScene returns queued radiance values in order, cycling when exhausted
type MockScene struct {
	values      []core.Vec3
	next        int
	radiance    int
	radianceNEE int
}

func (m *MockScene) pop() core.Vec3 {
	v := m.values[m.next%len(m.values)]
	m.next++
	return v
}

func (m *MockScene) Radiance(ray core.Ray, sampler core.Sampler) core.Vec3 {
	m.radiance++
	return m.pop()
}

func (m *MockScene) RadianceDirect(ray core.Ray, sampler core.Sampler) core.Vec3 {
	m.radianceNEE++
	return m.pop()
}

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance && math.Abs(a.Y-b.Y) <= tolerance && math.Abs(a.Z-b.Z) <= tolerance
}

func TestEstimate_SingleSample(t *testing.T) {
	cam := &MockCamera{pdf: 0.5, gTerm: 0.8, sensitivity: 2}
	sc := &MockScene{values: []core.Vec3{core.NewVec3(1, 2, 3)}}

	got := NewPathTracingIntegrator().Estimate(0, 0, cam, sc, 1, core.NewSeededSampler(1))

	// L·g·(s/pdf) = L·0.8·4
	expected := core.NewVec3(3.2, 6.4, 9.6)
	if !vecClose(got, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestEstimate_MeanOfSamples(t *testing.T) {
	tests := []struct {
		name   string
		values []core.Vec3
		spp    int
	}{
		{"constant", []core.Vec3{core.NewVec3(1, 0, 0)}, 16},
		{"two values", []core.Vec3{core.NewVec3(1, 1, 1), core.NewVec3(3, 0, 5)}, 4},
		{"three values", []core.Vec3{core.NewVec3(0.1, 0, 0), core.NewVec3(0, 0.2, 0), core.NewVec3(0, 0, 0.3)}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := &MockCamera{pdf: 1, gTerm: 1, sensitivity: 1}
			sc := &MockScene{values: tt.values}

			got := NewDirectLightingIntegrator().Estimate(0, 0, cam, sc, tt.spp, core.NewSeededSampler(1))

			var expected core.Vec3
			for i := 0; i < tt.spp; i++ {
				expected = expected.Add(tt.values[i%len(tt.values)])
			}
			expected = expected.Multiply(1.0 / float64(tt.spp))

			if !vecClose(got, expected, 1e-12) {
				t.Errorf("Expected mean %v, got %v", expected, got)
			}
			if cam.calls != tt.spp {
				t.Errorf("Expected %d camera samples, got %d", tt.spp, cam.calls)
			}
		})
	}
}

func TestEstimate_Dispatch(t *testing.T) {
	cam := &MockCamera{pdf: 1, gTerm: 1, sensitivity: 1}

	pt := &MockScene{values: []core.Vec3{{}}}
	New(PathTracingType).Estimate(0, 0, cam, pt, 3, core.NewSeededSampler(1))
	if pt.radiance != 3 || pt.radianceNEE != 0 {
		t.Errorf("pt: expected 3 Radiance calls, got %d Radiance / %d RadianceDirect", pt.radiance, pt.radianceNEE)
	}

	direct := &MockScene{values: []core.Vec3{{}}}
	New(DirectLightingType).Estimate(0, 0, cam, direct, 3, core.NewSeededSampler(1))
	if direct.radianceNEE != 3 || direct.radiance != 0 {
		t.Errorf("pt-direct: expected 3 RadianceDirect calls, got %d Radiance / %d RadianceDirect", direct.radiance, direct.radianceNEE)
	}
}

func TestEstimate_ZeroSamples(t *testing.T) {
	cam := &MockCamera{pdf: 1, gTerm: 1, sensitivity: 1}
	sc := &MockScene{values: []core.Vec3{core.NewVec3(1, 1, 1)}}

	if got := New(PathTracingType).Estimate(0, 0, cam, sc, 0, core.NewSeededSampler(1)); !got.IsZero() {
		t.Errorf("Expected zero for spp=0, got %v", got)
	}
	if cam.calls != 0 {
		t.Errorf("Expected no camera samples, got %d", cam.calls)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		expected Type
		wantErr  bool
	}{
		{"pt", PathTracingType, false},
		{"pt-direct", DirectLightingType, false},
		{"bogus", 0, true},
		{"", 0, true},
		{"PT", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownIntegrator) {
					t.Errorf("Expected ErrUnknownIntegrator, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if got.String() != tt.name {
				t.Errorf("String() round trip: expected %q, got %q", tt.name, got.String())
			}
		})
	}
}
