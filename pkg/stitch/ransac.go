package stitch

import(
	"fmt"
	"math/rand"

	"github.com/abworrall/panorama/pkg/emath"
)

// Fallback is what RANSAC returns if no model ever fits: a plain shift,
// so that the images still composite side by side.
func Fallback() emath.Mat3 { return emath.Translation(256, 0) }

// An Estimate is the outcome of a RANSAC run.
type Estimate struct {
	H          emath.Mat3
	Inliers    int  // ms[:Inliers] are the inliers for H
	Found      bool // false means H is the Fallback
	Iterations int
}

func (e Estimate)String() string {
	if !e.Found {
		return fmt.Sprintf("estimate[fallback, %d iters]", e.Iterations)
	}
	return fmt.Sprintf("estimate[%d inliers, %d iters]\n%s", e.Inliers, e.Iterations, e.H)
}

// RANSAC repeatedly shuffles the matches, fits a homography to the first
// four, and counts how many matches agree with it (to within thresh
// pixels). It stops early once a model has more than cutoff inliers;
// otherwise after k iterations it returns the best model seen. Samples
// that can't be fit are skipped.
//
// The matches are reordered in place; on return, ms[:e.Inliers] are the
// inliers for e.H.
func RANSAC(rng *rand.Rand, ms []Match, thresh float64, k, cutoff int) Estimate {
	best := Estimate{H:Fallback()}
	if len(ms) < 4 { k = 0 }

	for iter:=1; iter<=k; iter++ {
		rng.Shuffle(len(ms), func(i, j int) { ms[i], ms[j] = ms[j], ms[i] })

		h, err := ComputeHomography(ms[:4])
		if err != nil { continue }

		_, n := ModelInliers(h, ms, thresh)
		if n > cutoff {
			return Estimate{H:h, Inliers:n, Found:true, Iterations:iter}
		}
		if n > best.Inliers {
			best = Estimate{H:h, Inliers:n, Found:true}
		}
	}

	best.Iterations = k
	_, best.Inliers = ModelInliers(best.H, ms, thresh)
	return best
}
