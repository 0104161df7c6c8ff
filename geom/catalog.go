package geom

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	CubeName    = "cube"
	PyramidName = "pyramid"
)

var (
	Cube = mustShape(CubeName,
		[]r3.Vec{
			// Front face
			{X: 127, Y: 127, Z: 127},
			{X: 127, Y: -127, Z: 127},
			{X: -127, Y: -127, Z: 127},
			{X: -127, Y: 127, Z: 127},
			// Back face
			{X: 127, Y: 127, Z: -127},
			{X: 127, Y: -127, Z: -127},
			{X: -127, Y: -127, Z: -127},
			{X: -127, Y: 127, Z: -127},
		},
		[]Edge{
			{0, 1}, {1, 2}, {2, 3}, {3, 0}, // Front face
			{4, 5}, {5, 6}, {6, 7}, {7, 4}, // Back face
			{0, 4}, {1, 5}, {2, 6}, {3, 7}, // Connecting lines
		},
	)

	// Pyramid has its base at y=110 and apex at y=-110; screen y grows downward
	// so the apex points up.
	Pyramid = mustShape(PyramidName,
		[]r3.Vec{
			{X: 127, Y: 110, Z: 127},
			{X: 127, Y: 110, Z: -127},
			{X: -127, Y: 110, Z: -127},
			{X: -127, Y: 110, Z: 127},
			{X: 0, Y: -110, Z: 0},
		},
		[]Edge{
			{0, 1}, {1, 2}, {2, 3}, {3, 0}, // Base
			{0, 4}, {1, 4}, {2, 4}, {3, 4}, // Sides
		},
	)
)

var catalog = map[string]*Shape{
	CubeName:    Cube,
	PyramidName: Pyramid,
}

// Names lists the selectable shapes in menu order.
func Names() []string {
	return []string{CubeName, PyramidName}
}

// Lookup returns the selectable shape with the given name.
func Lookup(name string) (*Shape, error) {
	s, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return s, nil
}

// Axis is a single-edge reference line drawn independently of the
// selected shape.
type Axis struct {
	Shape *Shape
	Color color.RGBA
}

var axes = []Axis{
	{
		Shape: mustShape("axisX",
			[]r3.Vec{{X: -250, Y: 250, Z: -250}, {X: 250, Y: 250, Z: -250}},
			[]Edge{{0, 1}}),
		Color: color.RGBA{R: 255, A: 255},
	},
	{
		Shape: mustShape("axisY",
			[]r3.Vec{{X: 250, Y: -250, Z: -250}, {X: 250, Y: 250, Z: -250}},
			[]Edge{{0, 1}}),
		Color: color.RGBA{G: 128, A: 255},
	},
	{
		Shape: mustShape("axisZ",
			[]r3.Vec{{X: 200, Y: 200, Z: 200}, {X: 250, Y: 250, Z: -250}},
			[]Edge{{0, 1}}),
		Color: color.RGBA{B: 255, A: 255},
	},
}

// Axes returns the X, Y and Z reference axes, coloured red, green and blue.
func Axes() []Axis {
	return append([]Axis(nil), axes...)
}
