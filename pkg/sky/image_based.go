package sky

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/df07/go-mc-renderer/pkg/core"
	"github.com/df07/go-mc-renderer/pkg/loaders"
)

// ImageBased looks up radiance in an equirectangular environment map.
// The map is assumed to be twice as wide as it is tall.
type ImageBased struct {
	texels          []loaders.RGB32
	width           int
	height          int
	longitudeOffset float32
}

// NewImageBased decodes the whole environment map at path
func NewImageBased(path string, longitudeOffset float64) (*ImageBased, error) {
	img, err := loaders.LoadEnvironment(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment map: %w", err)
	}
	return NewImageBasedFromData(img, longitudeOffset)
}

// NewImageBasedFromData builds a sky from already decoded texels
func NewImageBasedFromData(img *loaders.ImageData, longitudeOffset float64) (*ImageBased, error) {
	if img.Height < 1 || len(img.Pixels) == 0 {
		return nil, fmt.Errorf("environment map is empty")
	}
	return &ImageBased{
		texels:          img.Pixels,
		width:           2 * img.Height,
		height:          img.Height,
		longitudeOffset: float32(longitudeOffset),
	}, nil
}

// HasExpectedAspect reports whether the source image was exactly 2:1
func (s *ImageBased) HasExpectedAspect() bool {
	return len(s.texels) == s.width*s.height
}

// Radiance returns the nearest texel for the direction, unfiltered
func (s *ImageBased) Radiance(direction core.Vec3) core.Vec3 {
	y32 := math32.Max(-1, math32.Min(1, float32(direction.Y)))

	// theta in [0, π], phi in (-π, π]
	theta := math32.Acos(y32)
	phi := math32.Atan2(float32(direction.Z), float32(direction.X))

	u := frac((phi + math32.Pi + s.longitudeOffset) / (2 * math32.Pi))
	v := frac(theta / math32.Pi)

	x := int(math32.Floor(u * float32(s.width)))
	y := int(math32.Floor(v * float32(s.height)))

	index := (y*s.width + x) % (s.width * s.height)
	texel := s.texels[index%len(s.texels)]
	return core.NewVec3(float64(texel.R), float64(texel.G), float64(texel.B))
}

// frac returns the fractional part in [0, 1), also for negative input
func frac(x float32) float32 {
	f := x - math32.Floor(x)
	if f >= 1 {
		return 0
	}
	return f
}
