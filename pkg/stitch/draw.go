package stitch

import(
	"github.com/abworrall/panorama/pkg/emath"
	"github.com/abworrall/panorama/pkg/fimage"
	"github.com/abworrall/panorama/pkg/harris"
)

// BothImages places a and b side by side.
func BothImages(a, b fimage.Image) fimage.Image {
	h, c := a.H, a.C
	if b.H > h { h = b.H }
	if b.C > c { c = b.C }

	both := fimage.New(a.W + b.W, h, c)
	for k:=0; k<a.C; k++ {
		for j:=0; j<a.H; j++ {
			for i:=0; i<a.W; i++ {
				both.Set(i, j, k, a.Get(i, j, k))
			}
		}
	}
	for k:=0; k<b.C; k++ {
		for j:=0; j<b.H; j++ {
			for i:=0; i<b.W; i++ {
				both.Set(i + a.W, j, k, b.Get(i, j, k))
			}
		}
	}
	return both
}

func toRGB(im fimage.Image) fimage.Image {
	if im.C >= 3 { return im }
	out := fimage.New(im.W, im.H, 3)
	for k:=0; k<3; k++ {
		for j:=0; j<im.H; j++ {
			for i:=0; i<im.W; i++ {
				out.Set(i, j, k, im.Get(i, j, 0))
			}
		}
	}
	return out
}

// DrawMatches draws a line between each pair of matched points, with a
// and b side by side. The first `inliers` matches are drawn green, the
// rest red.
func DrawMatches(a, b fimage.Image, ms []Match, inliers int) fimage.Image {
	both := toRGB(BothImages(a, b))

	for n, m := range ms {
		bx, by := int(m.P.X), int(m.P.Y)
		ex, ey := int(m.Q.X) + a.W, int(m.Q.Y)

		col := [3]float64{1, 0, 0}
		if n < inliers { col = [3]float64{0, 1, 0} }

		for j:=bx; j<ex; j++ {
			r := int(float64(j-bx) / float64(ex-bx) * float64(ey-by)) + by
			for k:=0; k<3; k++ {
				both.Set(j, r, k, col[k])
			}
		}
	}
	return both
}

// DrawInliers partitions the matches by h, and draws them.
func DrawInliers(a, b fimage.Image, h emath.Mat3, ms []Match, thresh float64) fimage.Image {
	ms, n := ModelInliers(h, ms, thresh)
	return DrawMatches(a, b, ms, n)
}

// FindAndDrawMatches detects and matches corners, and draws the
// matches with the corners marked.
func FindAndDrawMatches(a, b fimage.Image, sigma, thresh float64, nms int) (fimage.Image, error) {
	ad := harris.Detect(a, sigma, thresh, nms)
	bd := harris.Detect(b, sigma, thresh, nms)

	ms, err := MatchDescriptors(ad, bd)
	if err != nil {
		return fimage.Image{}, err
	}

	a, b = toRGB(a).Copy(), toRGB(b).Copy()
	harris.MarkCorners(&a, ad)
	harris.MarkCorners(&b, bd)

	return DrawMatches(a, b, ms, 0), nil
}
