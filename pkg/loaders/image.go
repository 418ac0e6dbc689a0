package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

// RGB32 is a linear float32 RGB texel
type RGB32 struct {
	R, G, B float32
}

// ImageData contains a decoded image as row-major float32 texels, top row first
type ImageData struct {
	Width  int
	Height int
	Pixels []RGB32
}

// LoadEnvironment loads an environment map, choosing the decoder by extension.
// Radiance files (.hdr, .pic) keep their linear values; anything else is read
// as a low dynamic range image scaled to [0, 1].
func LoadEnvironment(filename string) (*ImageData, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".hdr", ".pic":
		return LoadRadianceImage(filename)
	default:
		return LoadImage(filename)
	}
}

// LoadImage loads a PNG, JPEG, BMP, TIFF or WebP image and converts it to float texels
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Format is detected from the file header
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]RGB32, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels[y*width+x] = RGB32{
				R: float32(r) / 65535.0,
				G: float32(g) / 65535.0,
				B: float32(b) / 65535.0,
			}
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}
