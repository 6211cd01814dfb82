package stitch

import(
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/abworrall/panorama/pkg/emath"
	"github.com/abworrall/panorama/pkg/harris"
	"github.com/abworrall/panorama/pkg/pool"
)

var ErrIncompatibleDescriptors = errors.New("descriptors have different lengths")

// A Match pairs up a corner in image A with a corner in image B.
type Match struct {
	AIndex, BIndex int         // indices into the descriptor lists
	P, Q           emath.Point // the corner in A, the corner in B
	Distance       float64     // L1 distance between the descriptors
}

func (m Match)String() string {
	return fmt.Sprintf("match[%d%s -> %d%s, d=%.3f]", m.AIndex, m.P, m.BIndex, m.Q, m.Distance)
}

func L1Distance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

// MatchDescriptors pairs each descriptor in a with its nearest
// neighbour in b. The pairs are then taken closest first, and a pair is
// dropped if its b descriptor has already been claimed; so each b
// descriptor appears at most once in the result, which is sorted by
// ascending distance.
func MatchDescriptors(a, b []harris.Descriptor) ([]Match, error) {
	if len(a) == 0 || len(b) == 0 {
		return []Match{}, nil
	}

	n := len(a[0].Data)
	for _, ds := range [][]harris.Descriptor{a, b} {
		for _, d := range ds {
			if len(d.Data) != n {
				return nil, fmt.Errorf("%w: %d vs %d", ErrIncompatibleDescriptors, len(d.Data), n)
			}
		}
	}

	// Nearest neighbour for each a; the first of any equally near b wins
	ms := make([]Match, len(a))
	pool.Run(len(a), func(i int) {
		best, bestDist := 0, math.Inf(1)
		for j := range b {
			if d := L1Distance(a[i].Data, b[j].Data); d < bestDist {
				best, bestDist = j, d
			}
		}
		ms[i] = Match{AIndex:i, BIndex:best, P:a[i].P, Q:b[best].P, Distance:bestDist}
	})

	sort.SliceStable(ms, func(i, j int) bool { return ms[i].Distance < ms[j].Distance })

	// Keep the first (closest) claim on each b, packing them to the front
	claimed := make([]bool, len(b))
	count := 0
	for i := range ms {
		if claimed[ms[i].BIndex] { continue }
		claimed[ms[i].BIndex] = true
		ms[count], ms[i] = ms[i], ms[count]
		count++
	}

	return ms[:count], nil
}
