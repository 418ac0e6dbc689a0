// Package film holds the float RGB image a render writes into and its file output.
package film

import (
	"github.com/df07/go-mc-renderer/pkg/core"
)

// Film is a dense width × height buffer of linear RGB values, row 0 at the top.
// It is not safe for concurrent writes; the renderer writes from one goroutine.
type Film struct {
	width  int
	height int
	pixels []core.Vec3
}

// New creates a zero-filled film
func New(width, height int) *Film {
	return &Film{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the film width in pixels
func (f *Film) Width() int { return f.width }

// Height returns the film height in pixels
func (f *Film) Height() int { return f.height }

// Set stores the value of pixel (x, y)
func (f *Film) Set(x, y int, color core.Vec3) {
	f.pixels[y*f.width+x] = color
}

// At returns the value of pixel (x, y)
func (f *Film) At(x, y int) core.Vec3 {
	return f.pixels[y*f.width+x]
}
