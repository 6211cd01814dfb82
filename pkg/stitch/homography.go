package stitch

import(
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/abworrall/panorama/pkg/emath"
)

var(
	ErrTooFewMatches = errors.New("need at least 4 matches for a homography")
	ErrDegenerate    = errors.New("degenerate correspondences")
)

// ComputeHomography fits the homography that maps each P onto its Q,
// via the direct linear transform; with more than four matches it is a
// least squares fit.
func ComputeHomography(ms []Match) (emath.Mat3, error) {
	if len(ms) < 4 {
		return emath.Mat3{}, fmt.Errorf("%w: have %d", ErrTooFewMatches, len(ms))
	}
	if len(ms) == 4 && degenerateSample(ms) {
		return emath.Mat3{}, ErrDegenerate
	}

	n := len(ms)
	a := mat.NewDense(2*n, 8, nil)
	b := mat.NewVecDense(2*n, nil)

	for i, m := range ms {
		x, y := m.P.X, m.P.Y
		xp, yp := m.Q.X, m.Q.Y

		a.SetRow(2*i,   []float64{x, y, 1, 0, 0, 0, -x*xp, -y*xp})
		a.SetRow(2*i+1, []float64{0, 0, 0, x, y, 1, -x*yp, -y*yp})
		b.SetVec(2*i,   xp)
		b.SetVec(2*i+1, yp)
	}

	h, err := emath.LeastSquares(a, b)
	if err != nil {
		return emath.Mat3{}, fmt.Errorf("%w: %v", ErrDegenerate, err)
	}

	return emath.Mat3{
		h.AtVec(0), h.AtVec(1), h.AtVec(2),
		h.AtVec(3), h.AtVec(4), h.AtVec(5),
		h.AtVec(6), h.AtVec(7), 1,
	}, nil
}

// degenerateSample is true if any three of the four points, on either
// side of the matches, are collinear (or coincident).
func degenerateSample(ms []Match) bool {
	for _, side := range []func(Match) emath.Point{
		func(m Match) emath.Point { return m.P },
		func(m Match) emath.Point { return m.Q },
	} {
		pts := make([]emath.Point, len(ms))
		scale := 1.0
		for i, m := range ms {
			pts[i] = side(m)
			scale = math.Max(scale, math.Max(math.Abs(pts[i].X), math.Abs(pts[i].Y)))
		}

		tol := 1e-10 * scale * scale
		for i:=0; i<len(pts); i++ {
			for j:=i+1; j<len(pts); j++ {
				for k:=j+1; k<len(pts); k++ {
					if math.Abs(emath.Cross(pts[i], pts[j], pts[k])) <= tol {
						return true
					}
				}
			}
		}
	}
	return false
}

func ProjectPoint(h emath.Mat3, p emath.Point) emath.Point {
	return h.Project(p)
}

// ModelInliers partitions the matches in place: the ones that h maps to
// within thresh of their partner are moved to the front. It returns the
// slice along with the number of inliers, so ms[:n] is the inlier set.
func ModelInliers(h emath.Mat3, ms []Match, thresh float64) ([]Match, int) {
	count := 0
	for i := range ms {
		if ProjectPoint(h, ms[i].P).Dist(ms[i].Q) < thresh {
			ms[i], ms[count] = ms[count], ms[i]
			count++
		}
	}
	return ms, count
}
