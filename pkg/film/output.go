package film

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/hdrcolor"
)

// ErrUnsupportedFormat is returned for output formats other than hdr and png
var ErrUnsupportedFormat = errors.New("unsupported output format")

// DefaultGamma is the encoding gamma for 8-bit output
const DefaultGamma = 2.2

// Format selects the output encoding
type Format int

const (
	FormatHDR Format = iota // Radiance RGBE, linear
	FormatPNG               // 8-bit, gamma encoded
)

// ParseFormat maps a configuration name to an output format
func ParseFormat(name string) (Format, error) {
	switch name {
	case "hdr":
		return FormatHDR, nil
	case "png":
		return FormatPNG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// String returns the configuration name of the format
func (f Format) String() string {
	switch f {
	case FormatHDR:
		return "hdr"
	case FormatPNG:
		return "png"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Extension returns the file extension for the format, without the dot
func (f Format) Extension() string {
	return f.String()
}

// ToByte maps a linear value to 8 bits: clamp to [0, 1], apply 1/gamma, scale
// by 255 and truncate.
func ToByte(value, gamma float64) uint8 {
	clamped := math.Max(0, math.Min(1, value))
	return uint8(math.Pow(clamped, 1/gamma) * 255)
}

// OutputPath returns dir/image_<YYYYmmddHHMMSS>_<spp>.<ext>
func OutputPath(dir string, t time.Time, spp int, format Format) string {
	name := fmt.Sprintf("image_%s_%d.%s", t.Format("20060102150405"), spp, format.Extension())
	return filepath.Join(dir, name)
}

// Save writes the film to path. The format and gamma are checked before the
// file is created.
func Save(f *Film, path string, format Format, gamma float64) error {
	if format != FormatHDR && format != FormatPNG {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if format == FormatPNG && gamma <= 0 {
		return fmt.Errorf("invalid gamma %v: must be positive", gamma)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Encode(file, f, format, gamma); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// Encode writes the film to w in the given format
func Encode(w io.Writer, f *Film, format Format, gamma float64) error {
	switch format {
	case FormatHDR:
		if err := rgbe.Encode(w, ToHDR(f)); err != nil {
			return fmt.Errorf("failed to encode hdr: %w", err)
		}
	case FormatPNG:
		if err := png.Encode(w, ToRGBA(f, gamma)); err != nil {
			return fmt.Errorf("failed to encode png: %w", err)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	return nil
}

// ToRGBA converts the film to an 8-bit image with gamma encoding
func ToRGBA(f *Film, gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: ToByte(c.X, gamma),
				G: ToByte(c.Y, gamma),
				B: ToByte(c.Z, gamma),
				A: 255,
			})
		}
	}
	return img
}

// ToHDR converts the film to a linear float image
func ToHDR(f *Film) *hdr.RGB {
	img := hdr.NewRGB(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.At(x, y)
			img.SetRGB(x, y, hdrcolor.RGB{R: c.X, G: c.Y, B: c.Z})
		}
	}
	return img
}
