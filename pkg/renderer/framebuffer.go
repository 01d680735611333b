package renderer

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Framebuffer is the shared output image. Writers hold the lock only for the
// single pixel store.
type Framebuffer struct {
	mu  sync.Mutex
	img *image.RGBA
}

// NewFramebuffer creates a black framebuffer of the given size
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Set writes one pixel; (0,0) is the top-left corner
func (fb *Framebuffer) Set(x, y int, c color.RGBA) {
	fb.mu.Lock()
	fb.img.SetRGBA(x, y, c)
	fb.mu.Unlock()
}

// At reads one pixel
func (fb *Framebuffer) At(x, y int) color.RGBA {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.img.RGBAAt(x, y)
}

// Image returns the underlying image. It must not be called while workers
// are still writing.
func (fb *Framebuffer) Image() *image.RGBA {
	return fb.img
}

// ToneMap converts a linear color to 8-bit: each channel is clamped to
// [0,1], gamma corrected with a square root and scaled to [0,255].
func ToneMap(c core.Vec3) color.RGBA {
	c = sanitize(c).Clamp(0.0, 1.0).GammaCorrect(2.0)

	return color.RGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	}
}

// sanitize maps NaN channels to zero so they clamp to black
func sanitize(c core.Vec3) core.Vec3 {
	if math.IsNaN(c.X) {
		c.X = 0
	}
	if math.IsNaN(c.Y) {
		c.Y = 0
	}
	if math.IsNaN(c.Z) {
		c.Z = 0
	}
	return c
}
