package stitch

import(
	"errors"
	"fmt"
	"math"

	"github.com/abworrall/panorama/pkg/emath"
	"github.com/abworrall/panorama/pkg/fimage"
	"github.com/abworrall/panorama/pkg/pool"
)

var ErrCanvasTooLarge = errors.New("canvas too large")

// MaxCanvasValues caps w*h*channels for any canvas, whatever maxDim says.
const MaxCanvasValues = 1 << 28

// Projected corners are snapped to the nearest integer if within this,
// so that solver noise doesn't grow the canvas by a pixel.
const snapEps = 1e-6

func floorSnap(v float64) int { return int(math.Floor(v + snapEps)) }
func ceilSnap(v float64) int  { return int(math.Ceil(v - snapEps)) }

// CombineImages stitches b onto a. The homography h maps points in a to
// points in b. The canvas is big enough to hold a, and b warped into a's
// frame; where they overlap, b wins.
func CombineImages(a, b fimage.Image, h emath.Mat3) (fimage.Image, error) {
	return CombineImagesMax(a, b, h, 0)
}

// CombineImagesMax is CombineImages, but refuses to build a canvas
// wider or taller than maxDim pixels (if maxDim > 0).
func CombineImagesMax(a, b fimage.Image, h emath.Mat3, maxDim int) (fimage.Image, error) {
	hinv, err := h.Invert()
	if err != nil {
		return fimage.Image{}, fmt.Errorf("combine: %w", err)
	}

	// Where b's corners land in a's frame
	min, max := emath.Bounds(
		hinv.Project(emath.Point{X:0,                  Y:0}),
		hinv.Project(emath.Point{X:float64(b.W-1),     Y:0}),
		hinv.Project(emath.Point{X:0,                  Y:float64(b.H-1)}),
		hinv.Project(emath.Point{X:float64(b.W-1),     Y:float64(b.H-1)}),
	)
	for _, v := range []float64{min.X, min.Y, max.X, max.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxInt32 {
			return fimage.Image{}, fmt.Errorf("%w: b projects to %s-%s", ErrCanvasTooLarge, min, max)
		}
	}
	x0, y0 := floorSnap(min.X), floorSnap(min.Y)
	x1, y1 := ceilSnap(max.X), ceilSnap(max.Y)

	dx, dy := 0, 0
	if x0 < 0 { dx = x0 }
	if y0 < 0 { dy = y0 }

	w, ht := a.W, a.H
	if x1+1 > w { w = x1+1 }
	if y1+1 > ht { ht = y1+1 }
	w -= dx
	ht -= dy

	if maxDim > 0 && (w > maxDim || ht > maxDim) {
		return fimage.Image{}, fmt.Errorf("%w: %dx%d (max %d)", ErrCanvasTooLarge, w, ht, maxDim)
	}
	if float64(w) * float64(ht) * float64(a.C) > MaxCanvasValues {
		return fimage.Image{}, fmt.Errorf("%w: %dx%dx%d", ErrCanvasTooLarge, w, ht, a.C)
	}

	c := fimage.New(w, ht, a.C)

	for k:=0; k<a.C; k++ {
		for j:=0; j<a.H; j++ {
			for i:=0; i<a.W; i++ {
				c.Set(i-dx, j-dy, k, a.Get(i, j, k))
			}
		}
	}

	// Pull b's pixels back through h; each row of the canvas is its own job
	pool.Run(y1-y0+1, func(row int) {
		j := y0 + row
		for i:=x0; i<=x1; i++ {
			p := h.Project(emath.Point{X:float64(i), Y:float64(j)})
			if !(p.X >= 0 && p.X < float64(b.W) && p.Y >= 0 && p.Y < float64(b.H)) {
				continue // includes NaNs
			}
			for k:=0; k<a.C; k++ {
				c.Set(i-dx, j-dy, k, fimage.BilinearInterpolate(b, p.X, p.Y, k))
			}
		}
	})

	return c, nil
}
