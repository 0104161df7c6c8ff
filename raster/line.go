// Package raster draws computed frames onto images.
package raster

import (
	"image"
	"image/color"
	"math"
)

// Walk visits every cell on the line from (x1, y1) to (x2, y2) using a DDA
// walk, endpoints included.
func Walk(x1, y1, x2, y2 int, plot func(x, y int)) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		plot(x1, y1)
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := float64(x1)
	y := float64(y1)

	for i := 0; i <= int(steps); i++ {
		plot(int(math.Round(x)), int(math.Round(y)))
		x += xInc
		y += yInc
	}
}

// DrawLine draws a line on the image from (x1, y1) to (x2, y2). Pixels
// outside the image are skipped.
func DrawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	Walk(x1, y1, x2, y2, func(x, y int) {
		setPixel(img, x, y, col)
	})
}

// FillSquare fills a size x size square with its top-left corner at (x, y).
func FillSquare(img *image.RGBA, x, y, size int, col color.RGBA) {
	for j := y; j < y+size; j++ {
		for i := x; i < x+size; i++ {
			setPixel(img, i, j, col)
		}
	}
}

func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return
	}
	offset := img.PixOffset(x, y)
	img.Pix[offset] = col.R
	img.Pix[offset+1] = col.G
	img.Pix[offset+2] = col.B
	img.Pix[offset+3] = col.A
}
