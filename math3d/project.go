package math3d

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrDegenerate is reported for a point lying in the camera's depth plane,
// where the perspective divide is undefined.
var ErrDegenerate = errors.New("degenerate projection")

// DegenerateError lists the indices of the points Project could not map.
type DegenerateError struct {
	Indices []int
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("%v: points %v share the camera depth", ErrDegenerate, e.Indices)
}

func (e *DegenerateError) Unwrap() error { return ErrDegenerate }

// ProjectPoint projects p onto the plane z=screenZ as seen from camera,
// by similar triangles.
func ProjectPoint(p, camera r3.Vec, screenZ float64) (r2.Vec, error) {
	div := camera.Z - p.Z
	if div == 0 {
		return r2.Vec{}, ErrDegenerate
	}
	k := (camera.Z - screenZ) / div
	s := r2.Vec{
		X: camera.X - k*(camera.X-p.X),
		Y: camera.Y - k*(camera.Y-p.Y),
	}
	if !finite(s.X) || !finite(s.Y) {
		return r2.Vec{}, ErrDegenerate
	}
	return s, nil
}

// Project projects every point. The result always has len(points) entries;
// points that cannot be projected are placed at the camera's (x, y) and
// reported through a *DegenerateError.
func Project(points []r3.Vec, camera r3.Vec, screenZ float64) ([]r2.Vec, error) {
	out := make([]r2.Vec, len(points))
	var bad []int
	for i, p := range points {
		s, err := ProjectPoint(p, camera, screenZ)
		if err != nil {
			bad = append(bad, i)
			s = r2.Vec{X: camera.X, Y: camera.Y}
		}
		out[i] = s
	}
	if bad != nil {
		return out, &DegenerateError{Indices: bad}
	}
	return out, nil
}

// ShiftToScreen moves projected points so the model origin lands on the
// drawing surface centre. No clipping is done.
func ShiftToScreen(points []r2.Vec, offset float64) []r2.Vec {
	d := r2.Vec{X: offset, Y: offset}
	out := make([]r2.Vec, len(points))
	for i, p := range points {
		out[i] = r2.Add(p, d)
	}
	return out
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
