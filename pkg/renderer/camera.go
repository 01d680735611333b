package renderer

import (
	"fmt"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// CameraConfig describes a pinhole camera looking down -Z
type CameraConfig struct {
	Width          int       // Image width in pixels
	Height         int       // Image height in pixels
	ViewportHeight float64   // Viewport height in world units
	FocalLength    float64   // Distance from origin to the viewport plane
	Origin         core.Vec3 // Camera position
}

// Camera generates rays for rendering. Its derived geometry is fixed at
// construction and it is safe to share between goroutines.
type Camera struct {
	config          CameraConfig
	aspectRatio     float64
	viewportWidth   float64
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera from the image size, viewport height, focal length and origin
func NewCamera(config CameraConfig) *Camera {
	aspectRatio := float64(config.Width) / float64(config.Height)
	viewportWidth := config.ViewportHeight * aspectRatio

	origin := config.Origin
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, config.ViewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, config.FocalLength))

	return &Camera{
		config:          config,
		aspectRatio:     aspectRatio,
		viewportWidth:   viewportWidth,
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay returns the ray through viewport coordinates (u, v), where (0,0) is
// the lower-left corner and (1,1) the upper-right. Coordinates outside [0,1]
// are not rejected; they produce rays outside the viewport.
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.config.Width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.config.Height }

// AspectRatio returns width / height
func (c *Camera) AspectRatio() float64 { return c.aspectRatio }

// ViewportWidth returns the viewport width in world units
func (c *Camera) ViewportWidth() float64 { return c.viewportWidth }

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig { return c.config }

// Validate reports whether the camera can be sampled by the renderer
func (c *Camera) Validate() error {
	if c.config.Width < 2 || c.config.Height < 2 {
		return fmt.Errorf("image must be at least 2x2 pixels, got %dx%d", c.config.Width, c.config.Height)
	}
	if c.config.ViewportHeight <= 0 {
		return fmt.Errorf("viewport height must be positive, got %g", c.config.ViewportHeight)
	}
	if c.config.FocalLength <= 0 {
		return fmt.Errorf("focal length must be positive, got %g", c.config.FocalLength)
	}
	return nil
}
