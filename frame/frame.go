package frame

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"craftwire/geom"
	"craftwire/math3d"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Params are the live control values for one frame.
type Params struct {
	RotateX, RotateY, RotateZ float64 // degrees
	MoveX, MoveY, MoveZ       float64 // MoveY is positive upwards
	CameraX, CameraY          float64
	ShowAxes                  bool
}

// Pipeline returns the model transform for p. Screen y grows downward, so
// the upward MoveY is negated here.
func (p Params) Pipeline() math3d.Pipeline {
	return math3d.Pipeline{
		RotateX:    p.RotateX,
		RotateY:    p.RotateY,
		RotateZ:    p.RotateZ,
		TranslateX: p.MoveX,
		TranslateY: -p.MoveY,
		TranslateZ: p.MoveZ,
	}
}

// Frame is one computed picture of a shape.
type Frame struct {
	Shape string
	// World holds the transformed vertices before projection.
	World []r3.Vec
	// Screen holds the drawable vertex positions, one per vertex of World.
	Screen []r2.Vec
	// Hidden marks vertices that could not be projected.
	Hidden []bool
	Edges  []geom.Edge
	Axes   []AxisLine
}

// AxisLine is a projected reference axis.
type AxisLine struct {
	Name   string
	Color  color.RGBA
	Screen [2]r2.Vec
	// Hidden is set when either end could not be projected.
	Hidden bool
}

// Coord is a vertex position as shown to the user: rounded, y up.
type Coord struct {
	X, Y, Z int
}

func (c Coord) String() string {
	return fmt.Sprintf("[ %d %d %d ]", c.X, c.Y, c.Z)
}

// Display returns the pre-projection coordinates of every vertex for
// textual display.
func (f Frame) Display() []Coord {
	out := make([]Coord, len(f.World))
	for i, v := range f.World {
		out[i] = Coord{X: round(v.X), Y: -round(v.Y), Z: round(v.Z)}
	}
	return out
}

// DrawableEdges returns the edges whose two ends were both projected.
func (f Frame) DrawableEdges() []geom.Edge {
	out := make([]geom.Edge, 0, len(f.Edges))
	for _, e := range f.Edges {
		if f.IsHidden(e[0]) || f.IsHidden(e[1]) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// IsHidden reports whether vertex i could not be projected. A frame built
// without a Hidden table has every vertex visible.
func (f Frame) IsHidden(i int) bool {
	return i >= 0 && i < len(f.Hidden) && f.Hidden[i]
}

// NumHidden counts the vertices that could not be projected.
func (f Frame) NumHidden() int {
	n := 0
	for _, h := range f.Hidden {
		if h {
			n++
		}
	}
	return n
}

var errNoShape = errors.New("no shape to assemble")

// Assemble computes the frame for shape under p. The model is rotated
// about its own origin, translated, projected from the camera at
// (p.CameraX, p.CameraY, cfg.CameraZ) onto cfg.ScreenZ and shifted by
// cfg.Center. Vertices sharing the camera depth are marked Hidden rather
// than failing the frame.
func Assemble(shape *geom.Shape, p Params, cfg Config) (Frame, error) {
	if shape == nil {
		return Frame{}, errNoShape
	}
	if err := cfg.Validate(); err != nil {
		return Frame{}, err
	}
	cam := r3.Vec{X: p.CameraX, Y: p.CameraY, Z: cfg.CameraZ}

	world := p.Pipeline().Apply(shape.Vertices())
	screen, hidden, err := projectShifted(world, cam, cfg)
	if err != nil {
		return Frame{}, err
	}
	f := Frame{
		Shape:  shape.Name(),
		World:  world,
		Screen: screen,
		Hidden: hidden,
		Edges:  shape.Edges(),
	}
	if !p.ShowAxes {
		return f, nil
	}
	for _, a := range geom.Axes() {
		pts, hid, err := projectShifted(a.Shape.Vertices(), cam, cfg)
		if err != nil {
			return Frame{}, err
		}
		f.Axes = append(f.Axes, AxisLine{
			Name:   a.Shape.Name(),
			Color:  a.Color,
			Screen: [2]r2.Vec{pts[0], pts[1]},
			Hidden: hid[0] || hid[1],
		})
	}
	return f, nil
}

func projectShifted(points []r3.Vec, cam r3.Vec, cfg Config) ([]r2.Vec, []bool, error) {
	hidden := make([]bool, len(points))
	screen, err := math3d.Project(points, cam, cfg.ScreenZ)
	var de *math3d.DegenerateError
	switch {
	case errors.As(err, &de):
		for _, i := range de.Indices {
			hidden[i] = true
		}
	case err != nil:
		return nil, nil, err
	}
	return math3d.ShiftToScreen(screen, cfg.Center), hidden, nil
}

// round matches the half-up rounding of the coordinate readout.
func round(f float64) int {
	return int(math.Floor(f + 0.5))
}
