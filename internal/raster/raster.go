package raster

import (
	"image"
	"image/color"
	"math"
)

// plot composites col over the pixel at x, y. Pixels outside the image
// are ignored.
func plot(img *image.RGBA, x, y int, col color.NRGBA, blend bool) {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return
	}
	if !blend || col.A == 255 {
		img.SetRGBA(x, y, premultiply(col))
		return
	}
	dst := img.RGBAAt(x, y)
	src := premultiply(col)
	inv := 255 - uint32(src.A)
	img.SetRGBA(x, y, color.RGBA{
		R: uint8(uint32(src.R) + uint32(dst.R)*inv/255),
		G: uint8(uint32(src.G) + uint32(dst.G)*inv/255),
		B: uint8(uint32(src.B) + uint32(dst.B)*inv/255),
		A: uint8(uint32(src.A) + uint32(dst.A)*inv/255),
	})
}

func premultiply(c color.NRGBA) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}

// fillTriangle fills a triangle using a scanline algorithm, coordinates
// in image pixels
func fillTriangle(img *image.RGBA, x1, y1, x2, y2, x3, y3 float64, col color.NRGBA, blend bool) {
	vertices := [][2]float64{
		{x1, y1},
		{x2, y2},
		{x3, y3},
	}

	// Sort vertices by Y coordinate (top to bottom)
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	if vertices[1][1] > vertices[2][1] {
		vertices[1], vertices[2] = vertices[2], vertices[1]
	}
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}

	x1, y1 = vertices[0][0], vertices[0][1]
	x2, y2 = vertices[1][0], vertices[1][1]
	x3, y3 = vertices[2][0], vertices[2][1]

	bounds := img.Bounds()

	// Sample at pixel centers so that shared edges are not painted twice
	yStart := int(math.Max(0, math.Ceil(y1-0.5)))
	yEnd := int(math.Min(float64(bounds.Max.Y-1), math.Ceil(y3-0.5)-1))
	for y := yStart; y <= yEnd; y++ {
		fy := float64(y) + 0.5

		intersections := make([]float64, 0, 3)
		if y1 != y2 && fy >= y1 && fy <= y2 {
			t := (fy - y1) / (y2 - y1)
			intersections = append(intersections, x1+t*(x2-x1))
		}
		if y2 != y3 && fy >= y2 && fy <= y3 {
			t := (fy - y2) / (y3 - y2)
			intersections = append(intersections, x2+t*(x3-x2))
		}
		if y1 != y3 && fy >= y1 && fy <= y3 {
			t := (fy - y1) / (y3 - y1)
			intersections = append(intersections, x1+t*(x3-x1))
		}
		if len(intersections) < 2 {
			continue
		}

		xStart, xEnd := intersections[0], intersections[0]
		for _, x := range intersections[1:] {
			xStart = math.Min(xStart, x)
			xEnd = math.Max(xEnd, x)
		}

		from := int(math.Max(0, math.Ceil(xStart-0.5)))
		to := int(math.Min(float64(bounds.Max.X-1), math.Ceil(xEnd-0.5)-1))
		for x := from; x <= to; x++ {
			plot(img, x, y, col, blend)
		}
	}
}

// drawLine draws a one pixel line using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.NRGBA, blend bool) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	var sx, sy int
	if x1 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	if y1 < y2 {
		sy = 1
	} else {
		sy = -1
	}

	err := dx - dy

	for {
		plot(img, x1, y1, col, blend)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
