package stitch

import(
	"fmt"

	"github.com/codahale/hdrhistogram"
)

// Distances are recorded in thousandths, to three significant figures.
const (
	statsScale    = 1000.0
	statsMaxValue = 1e12
)

// MatchStats summarizes the distribution of match distances.
type MatchStats struct {
	Count               int64
	Min, P50, P90, Max  float64
	Mean                float64
}

func (s MatchStats)String() string {
	return fmt.Sprintf("%d matches, dist min=%.3f p50=%.3f p90=%.3f max=%.3f mean=%.3f",
		s.Count, s.Min, s.P50, s.P90, s.Max, s.Mean)
}

func DistanceStats(ms []Match) MatchStats {
	h := hdrhistogram.New(0, statsMaxValue, 3)
	for _, m := range ms {
		v := int64(m.Distance * statsScale + 0.5)
		if v > statsMaxValue { v = statsMaxValue }
		h.RecordValue(v)
	}

	if h.TotalCount() == 0 {
		return MatchStats{}
	}

	return MatchStats{
		Count: h.TotalCount(),
		Min:   float64(h.Min()) / statsScale,
		P50:   float64(h.ValueAtQuantile(50)) / statsScale,
		P90:   float64(h.ValueAtQuantile(90)) / statsScale,
		Max:   float64(h.Max()) / statsScale,
		Mean:  h.Mean() / statsScale,
	}
}
