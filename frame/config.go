// Package frame turns the current control values into something drawable:
// it runs a shape through the model transform, projects it and shifts it
// onto the drawing surface.
package frame

import (
	"errors"
	"fmt"
	"math"
)

const (
	// CanvasSize is the side of the square drawing surface in pixels.
	CanvasSize = 500
	// MarkerSize is the side of the square drawn at each vertex.
	MarkerSize = 4
)

// Config holds the values that stay fixed for a session.
type Config struct {
	CameraZ float64 // depth of the viewer
	ScreenZ float64 // depth of the projection plane
	Center  float64 // offset added to projected coordinates
}

// DefaultConfig returns the reference viewing setup: camera at z=650 looking
// at the plane z=300 on a 500px canvas.
func DefaultConfig() Config {
	return Config{
		CameraZ: 650,
		ScreenZ: 300,
		Center:  CanvasSize/2 - MarkerSize,
	}
}

var errConfig = errors.New("invalid frame config")

// Validate reports configurations that can never produce a picture.
func (c Config) Validate() error {
	for _, f := range []float64{c.CameraZ, c.ScreenZ, c.Center} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: non-finite value in %+v", errConfig, c)
		}
	}
	if c.CameraZ == c.ScreenZ {
		return fmt.Errorf("%w: camera and screen share depth %g", errConfig, c.CameraZ)
	}
	return nil
}
