package cachesim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdaptSizeBehavesLikeExpLRUBetweenReconfigurations(t *testing.T) {
	p := NewAdaptSize(NewRand(1))
	p.SetSize(1 << 20)
	require.NoError(t, p.SetPar("t", "1000000")) // push reconfiguration far out

	p.Lookup(Request{ID: 1, Size: 1})
	p.Admit(Request{ID: 1, Size: 1})
	require.True(t, p.Lookup(Request{ID: 1, Size: 1}), "a tiny object under the default C should be admitted")
}

func TestAdaptSizeRejectsUnknownParam(t *testing.T) {
	p := NewAdaptSize(NewRand(1))
	require.Error(t, p.SetPar("bogus", "1"))
}

func TestAdaptSizeModelHitRateIsBounded(t *testing.T) {
	p := NewAdaptSize(NewRand(1))
	p.SetSize(1000)
	p.alignedReqCount = []float64{10, 5, 1}
	p.alignedObjSize = []float64{100, 200, 50}

	hr := p.modelHitRate(math.Log2(1000))
	require.GreaterOrEqual(t, hr, 0.0)
	require.LessOrEqual(t, hr, 16.0) // sum of per-object request counts bounds the object-weighted rate
}

func TestAdaptSizeOptimizeCLeavesCUnchangedOnDegenerateBracket(t *testing.T) {
	p := NewAdaptSize(NewRand(1))
	p.SetSize(1) // log2(1) == 0 collapses the coarse-scan bracket to a point

	prevC := p.c
	p.optimizeC()
	require.Equal(t, prevC, p.c, "a degenerate x1 < x2 bracket should leave C untouched")
}

func TestAdaptSizeReconfigureTracksLongTermCounts(t *testing.T) {
	p := NewAdaptSize(NewRand(1))
	p.SetSize(10)

	// Force the "enough data gathered" gate open and trigger a real
	// reconfiguration directly, rather than feeding 500000+ requests.
	p.interval[1] = &adaptSizeInfo{requestCount: 5, objSize: 4}
	p.interval[2] = &adaptSizeInfo{requestCount: 2, objSize: 4}
	p.statSize = 100
	p.nextReconfig = 1

	p.reconfigure()

	require.NotEmpty(t, p.longTerm, "reconfiguration should have folded interval data into longTerm")
	require.Empty(t, p.interval, "interval data should be cleared after folding into longTerm")
}
