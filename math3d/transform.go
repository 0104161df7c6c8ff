// Package math3d rotates, translates and perspective-projects point lists.
// Every function returns a new slice and leaves its input untouched.
package math3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// RotateX rotates the points around the X axis by angle degrees
func RotateX(points []r3.Vec, angle float64) []r3.Vec {
	sin, cos := math.Sincos(mgl64.DegToRad(angle))
	return mapPoints(points, func(v r3.Vec) r3.Vec {
		return r3.Vec{
			X: v.X,
			Y: v.Y*cos - v.Z*sin,
			Z: v.Y*sin + v.Z*cos,
		}
	})
}

// RotateY rotates the points around the Y axis by angle degrees
func RotateY(points []r3.Vec, angle float64) []r3.Vec {
	sin, cos := math.Sincos(mgl64.DegToRad(angle))
	return mapPoints(points, func(v r3.Vec) r3.Vec {
		return r3.Vec{
			X: v.Z*sin + v.X*cos,
			Y: v.Y,
			Z: v.Z*cos - v.X*sin,
		}
	})
}

// RotateZ rotates the points around the Z axis by angle degrees
func RotateZ(points []r3.Vec, angle float64) []r3.Vec {
	sin, cos := math.Sincos(mgl64.DegToRad(angle))
	return mapPoints(points, func(v r3.Vec) r3.Vec {
		return r3.Vec{
			X: v.X*cos - v.Y*sin,
			Y: v.X*sin + v.Y*cos,
			Z: v.Z,
		}
	})
}

// TranslateX shifts every point along X.
func TranslateX(points []r3.Vec, shift float64) []r3.Vec {
	return translate(points, r3.Vec{X: shift})
}

// TranslateY shifts every point along Y.
func TranslateY(points []r3.Vec, shift float64) []r3.Vec {
	return translate(points, r3.Vec{Y: shift})
}

// TranslateZ shifts every point along Z.
func TranslateZ(points []r3.Vec, shift float64) []r3.Vec {
	return translate(points, r3.Vec{Z: shift})
}

func translate(points []r3.Vec, d r3.Vec) []r3.Vec {
	return mapPoints(points, func(v r3.Vec) r3.Vec { return r3.Add(v, d) })
}

func mapPoints(points []r3.Vec, f func(r3.Vec) r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(points))
	for i, v := range points {
		out[i] = f(v)
	}
	return out
}

// Pipeline is a full model transform. Apply always rotates about the
// model origin first (X, then Y, then Z) and translates afterwards
// (X, then Y, then Z). Reordering these steps rotates the shape around
// a shifted centre and changes the picture.
type Pipeline struct {
	RotateX, RotateY, RotateZ          float64 // degrees
	TranslateX, TranslateY, TranslateZ float64
}

// Apply runs the pipeline over points and returns the transformed copy.
func (p Pipeline) Apply(points []r3.Vec) []r3.Vec {
	points = RotateX(points, p.RotateX)
	points = RotateY(points, p.RotateY)
	points = RotateZ(points, p.RotateZ)
	points = TranslateX(points, p.TranslateX)
	points = TranslateY(points, p.TranslateY)
	return TranslateZ(points, p.TranslateZ)
}
