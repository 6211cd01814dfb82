package stitch

import(
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abworrall/panorama/pkg/emath"
	"github.com/abworrall/panorama/pkg/fimage"
	"github.com/abworrall/panorama/pkg/harris"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func pt(x, y float64) emath.Point { return emath.Point{X:x, Y:y} }

func randomPoints(rng *rand.Rand, n int, size float64) []emath.Point {
	pts := make([]emath.Point, n)
	for i := range pts {
		pts[i] = pt(rng.Float64()*size, rng.Float64()*size)
	}
	return pts
}

// matchesFor maps each point through h to build a perfect set of matches
func matchesFor(h emath.Mat3, pts []emath.Point) []Match {
	ms := make([]Match, len(pts))
	for i, p := range pts {
		ms[i] = Match{AIndex:i, BIndex:i, P:p, Q:h.Project(p)}
	}
	return ms
}

func randomDescriptors(rng *rand.Rand, n, size int) []harris.Descriptor {
	ds := make([]harris.Descriptor, n)
	for i := range ds {
		ds[i].P = pt(float64(i), 0)
		ds[i].Data = make([]float64, size)
		for j := range ds[i].Data {
			ds[i].Data[j] = rng.Float64()
		}
	}
	return ds
}

// ramp returns a single channel image with value 10y + x
func ramp(w, h int) fimage.Image {
	im := fimage.New(w, h, 1)
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			im.Set(x, y, 0, float64(10*y + x))
		}
	}
	return im
}
