package stitch

import(
	"math/rand"
	"testing"

	"github.com/abworrall/panorama/pkg/emath"
)

// noisyMatches returns nIn perfect matches under h, followed by nOut
// random ones
func noisyMatches(rng *rand.Rand, h emath.Mat3, nIn, nOut int) []Match {
	ms := matchesFor(h, randomPoints(rng, nIn, 400))
	for i:=0; i<nOut; i++ {
		ms = append(ms, Match{AIndex:nIn+i, P:pt(rng.Float64()*400, rng.Float64()*400), Q:pt(rng.Float64()*400, rng.Float64()*400)})
	}
	return ms
}

func TestRANSACRobust(t *testing.T) {
	h := emath.Mat3{1.02, 0.01, 15,  -0.01, 0.98, -7,  1e-5, 2e-5, 1}
	ms := noisyMatches(rand.New(rand.NewSource(6)), h, 40, 10)

	est := RANSAC(rand.New(rand.NewSource(7)), ms, 2, 500, len(ms))
	if !est.Found {
		t.Fatalf("no model found")
	}
	if est.Inliers < 40 {
		t.Errorf("got %d inliers, want >= 40", est.Inliers)
	}
	diff(t, 500, est.Iterations)

	// The inliers are at the front
	for _, m := range ms[:est.Inliers] {
		if d := est.H.Project(m.P).Dist(m.Q); d >= 2 {
			t.Errorf("%s in inlier set, but off by %.2f", m, d)
		}
	}
	for _, m := range ms[est.Inliers:] {
		if d := est.H.Project(m.P).Dist(m.Q); d < 2 {
			t.Errorf("%s in outlier set, but off by %.2f", m, d)
		}
	}

	p := pt(200, 200)
	if d := est.H.Project(p).Dist(h.Project(p)); d > 0.1 {
		t.Errorf("estimate is off by %.3f at %s", d, p)
	}
}

func TestRANSACEarlyExit(t *testing.T) {
	h := emath.Translation(10, -4)
	ms := noisyMatches(rand.New(rand.NewSource(8)), h, 40, 10)

	est := RANSAC(rand.New(rand.NewSource(9)), ms, 1, 1000, 30)
	if !est.Found || est.Inliers <= 30 {
		t.Fatalf("bad estimate %s", est)
	}
	if est.Iterations >= 1000 {
		t.Errorf("did not stop early")
	}
}

func TestRANSACDeterministic(t *testing.T) {
	h := emath.Translation(10, -4)
	run := func() Estimate {
		ms := noisyMatches(rand.New(rand.NewSource(10)), h, 20, 20)
		return RANSAC(rand.New(rand.NewSource(11)), ms, 1, 50, 100)
	}
	diff(t, run(), run())
}

func TestRANSACFallback(t *testing.T) {
	rng := rand.New(rand.NewSource(12))

	for _, n := range []int{0, 3} {
		ms := noisyMatches(rng, emath.Identity(), 0, n)
		est := RANSAC(rng, ms, 1, 100, 10)
		diff(t, false, est.Found)
		diff(t, Fallback(), est.H)
		diff(t, emath.Translation(256, 0), est.H)
	}

	// Every sample is degenerate: all points on one line
	var ms []Match
	for i:=0; i<10; i++ {
		ms = append(ms, Match{P:pt(float64(i), 0), Q:pt(float64(i), 0)})
	}
	est := RANSAC(rng, ms, 1, 100, 5)
	diff(t, false, est.Found)
	diff(t, Fallback(), est.H)
}
