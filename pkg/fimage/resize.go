package fimage

import "math"

// NNInterpolate picks the nearest pixel; .5 rounds up.
func NNInterpolate(im Image, x, y float64, c int) float64 {
	return im.Get(int(math.Floor(x + 0.5)), int(math.Floor(y + 0.5)), c)
}

// BilinearInterpolate blends the four pixels around (x,y). Neighbours
// off the edge of the image read as the edge pixel.
func BilinearInterpolate(im Image, x, y float64, c int) float64 {
	x0, y0 := math.Floor(x), math.Floor(y)
	dx, dy := x - x0, y - y0
	ix, iy := int(x0), int(y0)

	return (1-dx)*(1-dy)*im.Get(ix,   iy,   c) +
		dx*(1-dy)*im.Get(ix+1, iy,   c) +
		(1-dx)*dy*im.Get(ix,   iy+1, c) +
		dx*dy*im.Get(ix+1, iy+1, c)
}

// resize maps pixel centers of the new image back into the old one.
func resize(im Image, w, h int, sample func(Image, float64, float64, int) float64) Image {
	out := New(w, h, im.C)

	xScale := float64(im.W) / float64(w)
	yScale := float64(im.H) / float64(h)
	xShift := xScale/2 - 0.5
	yShift := yScale/2 - 0.5

	for c:=0; c<im.C; c++ {
		for y:=0; y<h; y++ {
			for x:=0; x<w; x++ {
				out.Set(x, y, c, sample(im, xScale*float64(x) + xShift, yScale*float64(y) + yShift, c))
			}
		}
	}
	return out
}

func NNResize(im Image, w, h int) Image       { return resize(im, w, h, NNInterpolate) }
func BilinearResize(im Image, w, h int) Image { return resize(im, w, h, BilinearInterpolate) }
