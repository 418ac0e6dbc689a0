package loaders

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/df07/go-mc-renderer/pkg/film"
	"github.com/df07/go-mc-renderer/pkg/integrator"
)

// Description is a complete render setup read from a TOML scene file
type Description struct {
	Film      FilmSection                `toml:"film"`
	Renderer  RendererSection            `toml:"renderer"`
	Camera    CameraSection              `toml:"camera"`
	Sky       SkySection                 `toml:"sky"`
	Materials map[string]MaterialSection `toml:"materials"`
	Objects   []ObjectSection            `toml:"objects"`

	// Undecoded lists keys present in the file that no field consumed
	Undecoded []string `toml:"-"`
}

// FilmSection configures the output image
type FilmSection struct {
	Resolution [2]int  `toml:"resolution"`
	Output     string  `toml:"output"`
	Gamma      float64 `toml:"gamma"`
}

// RendererSection configures sampling and scheduling
type RendererSection struct {
	Samples              int    `toml:"samples"`
	Threads              int    `toml:"threads"`
	Integrator           string `toml:"integrator"`
	MaxDepth             int    `toml:"max_depth"`
	RussianRouletteDepth int    `toml:"russian_roulette_depth"`
}

// CameraSection places the camera
type CameraSection struct {
	Position       [3]float64 `toml:"position"`
	LookAt         [3]float64 `toml:"look_at"`
	Up             [3]float64 `toml:"up"`
	FOV            float64    `toml:"fov"`
	ApertureRadius float64    `toml:"aperture_radius"`
	FocusDistance  float64    `toml:"focus_distance"`
	Sensitivity    float64    `toml:"sensitivity"`
}

// SkySection selects and parameterises the sky
type SkySection struct {
	Type            string     `toml:"type"` // uniform, simple or ibl
	Emission        [3]float64 `toml:"emission"`
	Meridian        [3]float64 `toml:"meridian"`
	Horizon         [3]float64 `toml:"horizon"`
	Path            string     `toml:"path"`
	LongitudeOffset float64    `toml:"longitude_offset"` // radians
}

// MaterialSection describes one named material
type MaterialSection struct {
	Type     string     `toml:"type"` // lambertian, metal, dielectric or emissive
	Albedo   [3]float64 `toml:"albedo"`
	Fuzz     float64    `toml:"fuzz"`
	IOR      float64    `toml:"ior"`
	Emission [3]float64 `toml:"emission"`
}

// ObjectSection describes one shape
type ObjectSection struct {
	Type     string        `toml:"type"` // sphere, triangle or quad
	Material string        `toml:"material"`
	Center   [3]float64    `toml:"center"`
	Radius   float64       `toml:"radius"`
	Vertices [3][3]float64 `toml:"vertices"`
	Corner   [3]float64    `toml:"corner"`
	U        [3]float64    `toml:"u"`
	V        [3]float64    `toml:"v"`
}

// Defaults applied to keys the file leaves out
const (
	DefaultIntegrator           = "pt-direct"
	DefaultOutput               = "png"
	DefaultMaxDepth             = 64
	DefaultRussianRouletteDepth = 5
	DefaultFOV                  = 40.0
	DefaultSensitivity          = 1.0
)

// LoadDescription reads, defaults and validates a scene description
func LoadDescription(path string) (*Description, error) {
	var desc Description
	md, err := toml.DecodeFile(path, &desc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene description %s: %w", path, err)
	}

	for _, key := range md.Undecoded() {
		desc.Undecoded = append(desc.Undecoded, key.String())
	}

	desc.applyDefaults(md)
	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene description %s: %w", path, err)
	}
	return &desc, nil
}

func (d *Description) applyDefaults(md toml.MetaData) {
	if d.Renderer.Integrator == "" {
		d.Renderer.Integrator = DefaultIntegrator
	}
	if d.Film.Output == "" {
		d.Film.Output = DefaultOutput
	}
	if !md.IsDefined("film", "gamma") {
		d.Film.Gamma = film.DefaultGamma
	}
	if !md.IsDefined("renderer", "max_depth") {
		d.Renderer.MaxDepth = DefaultMaxDepth
	}
	if !md.IsDefined("renderer", "russian_roulette_depth") {
		d.Renderer.RussianRouletteDepth = DefaultRussianRouletteDepth
	}
	if !md.IsDefined("camera", "up") {
		d.Camera.Up = [3]float64{0, 1, 0}
	}
	if !md.IsDefined("camera", "fov") {
		d.Camera.FOV = DefaultFOV
	}
	if !md.IsDefined("camera", "sensitivity") {
		d.Camera.Sensitivity = DefaultSensitivity
	}
	if d.Sky.Type == "" {
		d.Sky.Type = "uniform"
	}
}

// Validate checks the values that can be checked without building the scene
func (d *Description) Validate() error {
	if d.Film.Resolution[0] < 1 || d.Film.Resolution[1] < 1 {
		return fmt.Errorf("film resolution must be at least 1x1, got %dx%d", d.Film.Resolution[0], d.Film.Resolution[1])
	}
	if _, err := film.ParseFormat(d.Film.Output); err != nil {
		return err
	}
	if d.Film.Gamma <= 0 {
		return fmt.Errorf("film gamma must be positive, got %v", d.Film.Gamma)
	}
	if d.Renderer.Samples < 1 {
		return fmt.Errorf("renderer samples must be at least 1, got %d", d.Renderer.Samples)
	}
	if d.Renderer.Threads < 0 {
		return fmt.Errorf("renderer threads must not be negative, got %d", d.Renderer.Threads)
	}
	if _, err := integrator.Parse(d.Renderer.Integrator); err != nil {
		return err
	}
	if d.Renderer.MaxDepth < 1 {
		return fmt.Errorf("renderer max_depth must be at least 1, got %d", d.Renderer.MaxDepth)
	}
	if d.Renderer.RussianRouletteDepth < 0 {
		return fmt.Errorf("renderer russian_roulette_depth must not be negative, got %d", d.Renderer.RussianRouletteDepth)
	}
	if d.Camera.Position == d.Camera.LookAt {
		return fmt.Errorf("camera position and look_at must differ")
	}
	if d.Camera.FOV <= 0 || d.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180), got %v", d.Camera.FOV)
	}
	if d.Camera.ApertureRadius < 0 {
		return fmt.Errorf("camera aperture_radius must not be negative, got %v", d.Camera.ApertureRadius)
	}
	if d.Sky.Type == "ibl" && d.Sky.Path == "" {
		return fmt.Errorf("sky type ibl requires a path")
	}
	return nil
}
