package stitch

import(
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/abworrall/panorama/pkg/emath"
	"github.com/abworrall/panorama/pkg/fimage"
)

// scene is a black 43x30 image with three bright rectangles of
// different intensities, well away from the edges.
func scene() fimage.Image {
	s := fimage.New(43, 30, 1)
	rects := []struct{ x0, x1, y0, y1 int; v float64 }{
		{8, 14, 5, 12, 1.0},
		{18, 25, 15, 24, 0.8},
		{28, 34, 6, 11, 0.6},
	}
	for _, r := range rects {
		for y:=r.y0; y<=r.y1; y++ {
			for x:=r.x0; x<=r.x1; x++ {
				s.Set(x, y, 0, r.v)
			}
		}
	}
	return s
}

func crop(im fimage.Image, x0, w int) fimage.Image {
	out := fimage.New(w, im.H, im.C)
	for c:=0; c<im.C; c++ {
		for y:=0; y<im.H; y++ {
			for x:=0; x<w; x++ {
				out.Set(x, y, c, im.Get(x0+x, y, c))
			}
		}
	}
	return out
}

func testParams() Params {
	return Params{Sigma:1, Thresh:1, NMS:2, InlierThresh:1, Iterations:200, Cutoff:1000, Seed:10}
}

// Two 10x10 frames are smaller than the gradient, gaussian and NMS support,
// and a periodic pattern that fits in them matches ambiguously; so the
// translation is checked on two 40x30 crops of scene instead.
func TestStitchTranslation(t *testing.T) {
	s := scene()
	a, b := crop(s, 3, 40), crop(s, 0, 40)

	res, err := Stitch(a, b, testParams())
	if err != nil {
		t.Fatal(err)
	}

	if len(res.ACorners) < 4 || len(res.BCorners) < 4 {
		t.Fatalf("too few corners: %d, %d", len(res.ACorners), len(res.BCorners))
	}
	if len(res.Matches) < 4 {
		t.Fatalf("too few matches: %d", len(res.Matches))
	}
	for _, m := range res.Matches {
		diff(t, 0.0, m.Distance)
		diff(t, m.P.X + 3, m.Q.X)
		diff(t, m.P.Y, m.Q.Y)
	}

	est := res.Estimate
	if !est.Found {
		t.Fatalf("no model found")
	}
	diff(t, len(res.Matches), est.Inliers)
	diff(t, emath.Translation(3, 0), est.H, cmpopts.EquateApprox(0, 1e-6))

	diff(t, []int{43, 30, 1}, []int{res.Image.W, res.Image.H, res.Image.C})
	diff(t, s.Data, res.Image.Data, cmpopts.EquateApprox(0, 1e-6))

	pano, err := Panorama(a, b, testParams())
	if err != nil {
		t.Fatal(err)
	}
	diff(t, res.Image, pano)
}

func TestStitchNoMatches(t *testing.T) {
	a, b := fimage.New(10, 10, 1), fimage.New(10, 10, 1)
	fimage.ShiftImage(a, 0, 1.0)
	fimage.ShiftImage(b, 0, 0.5)

	res, err := Stitch(a, b, testParams())
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0, len(res.Matches))
	diff(t, false, res.Estimate.Found)
	diff(t, Fallback(), res.Estimate.H)

	// b sits 256 pixels to the left of a
	im := res.Image
	diff(t, []int{266, 10}, []int{im.W, im.H})
	diff(t, 0.5, im.Get(0, 5, 0))
	diff(t, 0.0, im.Get(100, 5, 0))
	diff(t, 1.0, im.Get(260, 5, 0))
}

func TestStitchCanvasLimit(t *testing.T) {
	a, b := fimage.New(10, 10, 1), fimage.New(10, 10, 1)
	p := testParams()
	p.MaxCanvas = 100

	if _, err := Panorama(a, b, p); err == nil {
		t.Errorf("expected the fallback canvas to be too large")
	}
}
