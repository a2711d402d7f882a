package text

import (
	"math"
	"sort"
)

// quantizeBaseline snaps a baseline y down to the next-lower multiple of
// the band height, so that slightly jittered baselines on one visual
// line land in the same band.
func quantizeBaseline(y, band float64) float64 {
	return band * math.Floor(y/band)
}

// ReadingOrderLess orders two events into approximate reading order:
// higher bands first (page coordinates grow upward), and within one band
// left to right by baseline start.
func ReadingOrderLess(a, b *TextRenderEvent, band float64) bool {
	ya := quantizeBaseline(a.Baseline().Y0, band)
	yb := quantizeBaseline(b.Baseline().Y0, band)
	if ya == yb {
		return a.Baseline().X0 < b.Baseline().X0
	}
	return ya > yb
}

// SortReadingOrder stably sorts events in place into reading order using
// the configured baseline band.
func SortReadingOrder(events []*TextRenderEvent, cfg Config) {
	sort.SliceStable(events, func(i, j int) bool {
		return ReadingOrderLess(events[i], events[j], cfg.BaselineBand)
	})
}
