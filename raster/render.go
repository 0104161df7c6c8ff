package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"craftwire/frame"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/spatial/r2"
)

// Coordinates beyond this magnitude come from near-degenerate projections
// and are not drawn.
const maxCoord = 1 << 16

var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{A: 255}
)

// Options controls Render.
type Options struct {
	Background color.RGBA
	Foreground color.RGBA
	MarkerSize int
	// Labels prints the shape name and the vertex coordinates in the
	// top-left corner.
	Labels bool
}

func DefaultOptions() Options {
	return Options{
		Background: White,
		Foreground: Black,
		MarkerSize: frame.MarkerSize,
		Labels:     true,
	}
}

// NewCanvas returns a square image of the reference canvas size.
func NewCanvas() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, frame.CanvasSize, frame.CanvasSize))
}

// Render clears img and draws f on it: axes first, then the shape's
// vertices and edges, then the optional labels.
func Render(img *image.RGBA, f frame.Frame, opt Options) {
	draw.Draw(img, img.Bounds(), image.NewUniform(opt.Background), image.Point{}, draw.Src)

	for _, a := range f.Axes {
		if a.Hidden {
			continue
		}
		drawMarker(img, a.Screen[0], opt.MarkerSize, a.Color)
		drawMarker(img, a.Screen[1], opt.MarkerSize, a.Color)
		drawSegment(img, a.Screen[0], a.Screen[1], opt.MarkerSize, a.Color)
	}

	for i, p := range f.Screen {
		if f.IsHidden(i) {
			continue
		}
		drawMarker(img, p, opt.MarkerSize, opt.Foreground)
	}
	for _, e := range f.DrawableEdges() {
		drawSegment(img, f.Screen[e[0]], f.Screen[e[1]], opt.MarkerSize, opt.Foreground)
	}

	if opt.Labels {
		lines := []string{f.Shape}
		for i, c := range f.Display() {
			lines = append(lines, fmt.Sprintf("%d %s", i, c))
		}
		DrawText(img, 4, 4, lines, opt.Foreground)
	}
}

// DrawText writes lines of text with their top-left corner at (x, y).
func DrawText(img *image.RGBA, x, y int, lines []string, col color.RGBA) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	lh := face.Metrics().Height
	dot := fixed.P(x, y).Add(fixed.Point26_6{Y: face.Metrics().Ascent})
	for _, l := range lines {
		d.Dot = dot
		d.DrawString(l)
		dot.Y += lh
	}
}

// Vertices are drawn as squares anchored at their projected point, so
// lines join the square centres.
func drawSegment(img *image.RGBA, a, b r2.Vec, marker int, col color.RGBA) {
	if !inRange(a) || !inRange(b) {
		return
	}
	half := float64(marker) / 2
	DrawLine(img,
		int(math.Round(a.X+half)), int(math.Round(a.Y+half)),
		int(math.Round(b.X+half)), int(math.Round(b.Y+half)),
		col)
}

func drawMarker(img *image.RGBA, p r2.Vec, size int, col color.RGBA) {
	if !inRange(p) {
		return
	}
	FillSquare(img, int(math.Round(p.X)), int(math.Round(p.Y)), size, col)
}

func inRange(p r2.Vec) bool {
	return math.Abs(p.X) <= maxCoord && math.Abs(p.Y) <= maxCoord
}
