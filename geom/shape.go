// Package geom holds the static wireframe shapes: vertex tables and the
// edges joining them.
package geom

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrUnknownShape is returned when a shape name is not in the catalog.
var ErrUnknownShape = errors.New("unknown shape")

// Edge is a pair of indices into a shape's vertex table.
type Edge [2]int

// Shape is an immutable wireframe: vertices plus the edges between them.
type Shape struct {
	name     string
	vertices []r3.Vec
	edges    []Edge
}

// NewShape copies the tables and checks that every edge references an
// existing vertex.
func NewShape(name string, vertices []r3.Vec, edges []Edge) (*Shape, error) {
	for i, e := range edges {
		for _, idx := range e {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("shape %q: edge %d references vertex %d, have %d vertices", name, i, idx, len(vertices))
			}
		}
	}
	return &Shape{
		name:     name,
		vertices: append([]r3.Vec(nil), vertices...),
		edges:    append([]Edge(nil), edges...),
	}, nil
}

func mustShape(name string, vertices []r3.Vec, edges []Edge) *Shape {
	s, err := NewShape(name, vertices, edges)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Shape) Name() string { return s.name }

// Vertices returns a copy of the vertex table.
func (s *Shape) Vertices() []r3.Vec { return append([]r3.Vec(nil), s.vertices...) }

// Edges returns a copy of the edge table.
func (s *Shape) Edges() []Edge { return append([]Edge(nil), s.edges...) }

func (s *Shape) NumVertices() int { return len(s.vertices) }

func (s *Shape) NumEdges() int { return len(s.edges) }
