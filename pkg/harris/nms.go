package harris

import(
	"math"

	"github.com/abworrall/panorama/pkg/fimage"
)

// Suppressed is the response given to pixels that lose out in
// non-maximum suppression. Nothing compares greater than it.
var Suppressed = math.Inf(-1)

// NMS performs non-maximum suppression over (2w+1)^2 windows. Each pixel
// not yet suppressed looks at its window in the original response, and
// suppresses every pixel in it that is strictly below the window's max.
// Pixels that tie with the max all survive.
func NMS(r fimage.Image, w int) fimage.Image {
	out := r.Copy()
	suppressed := make([]bool, r.W * r.H)

	for y:=0; y<r.H; y++ {
		for x:=0; x<r.W; x++ {
			if suppressed[y*r.W + x] { continue }

			x0, x1 := clampRange(x-w, x+w, r.W)
			y0, y1 := clampRange(y-w, y+w, r.H)

			max := math.Inf(-1)
			for j:=y0; j<=y1; j++ {
				for i:=x0; i<=x1; i++ {
					if v := r.Get(i,j,0); v > max { max = v }
				}
			}

			for j:=y0; j<=y1; j++ {
				for i:=x0; i<=x1; i++ {
					if r.Get(i,j,0) < max {
						suppressed[j*r.W + i] = true
						out.Set(i, j, 0, Suppressed)
					}
				}
			}
		}
	}

	return out
}

func clampRange(lo, hi, n int) (int, int) {
	if lo < 0 { lo = 0 }
	if hi > n-1 { hi = n-1 }
	return lo, hi
}
