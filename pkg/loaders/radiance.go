package loaders

import (
	"fmt"
	"os"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
)

// LoadRadianceImage loads a Radiance RGBE (.hdr) image with its linear values intact
func LoadRadianceImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open radiance file: %w", err)
	}
	defer file.Close()

	img, err := rgbe.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode radiance file %s: %w", filename, err)
	}

	hdrImg, ok := img.(hdr.Image)
	if !ok {
		return nil, fmt.Errorf("radiance file %s decoded to unexpected type %T", filename, img)
	}

	bounds := hdrImg.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]RGB32, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := hdrImg.HDRAt(x+bounds.Min.X, y+bounds.Min.Y).HDRRGBA()
			pixels[y*width+x] = RGB32{R: float32(r), G: float32(g), B: float32(b)}
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}
