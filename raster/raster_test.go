package raster

import (
	"image"
	"image/color"
	"testing"

	"craftwire/frame"
	"craftwire/geom"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestWalkEndpoints(t *testing.T) {
	for _, tc := range []struct{ x1, y1, x2, y2, n int }{
		{0, 0, 10, 0, 11},
		{0, 0, 0, -7, 8},
		{3, 3, 9, 6, 7},
		{5, 5, 5, 5, 1},
	} {
		var pts []image.Point
		Walk(tc.x1, tc.y1, tc.x2, tc.y2, func(x, y int) {
			pts = append(pts, image.Pt(x, y))
		})
		if len(pts) != tc.n {
			t.Errorf("%v: visited %d cells, want %d", tc, len(pts), tc.n)
			continue
		}
		if pts[0] != image.Pt(tc.x1, tc.y1) || pts[len(pts)-1] != image.Pt(tc.x2, tc.y2) {
			t.Errorf("%v: endpoints %v %v", tc, pts[0], pts[len(pts)-1])
		}
	}
}

func TestDrawLineClipsToImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	red := color.RGBA{R: 255, A: 255}
	DrawLine(img, -5, 5, 20, 5, red)
	for x := 0; x < 10; x++ {
		if img.RGBAAt(x, 5) != red {
			t.Errorf("pixel (%d,5) not drawn", x)
		}
	}
	if img.RGBAAt(0, 0) == red {
		t.Error("pixel off the line drawn")
	}
}

func TestRenderCube(t *testing.T) {
	f, err := frame.Assemble(geom.Cube, frame.Params{ShowAxes: true}, frame.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	img := NewCanvas()
	opt := DefaultOptions()
	opt.Labels = false
	Render(img, f, opt)
	for i, p := range f.Screen {
		x, y := int(p.X+0.5), int(p.Y+0.5)
		if img.RGBAAt(x+1, y+1) != Black {
			t.Errorf("vertex %d marker missing at (%d,%d)", i, x, y)
		}
	}
	red := f.Axes[0].Color
	p := f.Axes[0].Screen[0]
	if img.RGBAAt(int(p.X+0.5)+1, int(p.Y+0.5)+1) != red {
		t.Error("x axis marker missing")
	}
	if img.RGBAAt(0, frame.CanvasSize-1) != White {
		t.Error("background not cleared")
	}
}

func TestRenderLabels(t *testing.T) {
	f, _ := frame.Assemble(geom.Pyramid, frame.Params{}, frame.DefaultConfig())
	img := image.NewRGBA(image.Rect(0, 0, 200, 120))
	Render(img, f, DefaultOptions())
	dark := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 60; x++ {
			if img.RGBAAt(x, y) != White {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("no label pixels drawn")
	}
}

func TestRenderSkipsFarPoints(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	f := frame.Frame{
		Screen: []r2.Vec{{X: 1, Y: 1}, {X: 1e12, Y: 1e12}},
		Hidden: []bool{false, false},
		Edges:  []geom.Edge{{0, 1}},
	}
	opt := DefaultOptions()
	opt.Labels = false
	Render(img, f, opt)
	if img.RGBAAt(1, 1) != Black {
		t.Error("near vertex not drawn")
	}
	if img.RGBAAt(5, 5) == Black {
		t.Error("edge to a far point was drawn")
	}
}

func TestRenderWithoutHiddenTable(t *testing.T) {
	img := NewCanvas()
	f := frame.Frame{
		Screen: []r2.Vec{{X: 10, Y: 10}, {X: 40, Y: 10}},
		Edges:  []geom.Edge{{0, 1}},
	}
	opt := DefaultOptions()
	opt.Labels = false
	Render(img, f, opt)
	if img.RGBAAt(11, 11) != Black || img.RGBAAt(41, 11) != Black {
		t.Error("vertex markers missing")
	}
	if img.RGBAAt(25, 12) != Black {
		t.Error("edge missing")
	}
}
