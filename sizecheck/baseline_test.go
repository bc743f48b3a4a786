package sizecheck

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBaselineZScoreNeedsTwoSamples(t *testing.T) {
	var bl Baseline
	s := compileYAML(t, baselineYAML)
	bl.Observe(s)

	_, ok := bl.ZScore("Ping", 4)
	require.False(t, ok, "a single observation has no spread to score against")
}

func TestBaselineFlagsOutlier(t *testing.T) {
	var bl Baseline
	for _, size := range []int{8, 8, 8, 8, 8} {
		s := compileYAML(t, "messages:\n  - name: Ping\n    fields:\n      - {name: seq, type: int}\n")
		_ = size
		bl.Observe(s)
	}

	// Ping's footprint never varies across these identical snapshots, so its
	// stddev is 0: any observed deviation should report an infinite z-score
	// rather than a divide-by-zero.
	z, ok := bl.ZScore("Ping", 8)
	require.True(t, ok)
	require.Zero(t, z)

	z, ok = bl.ZScore("Ping", 9)
	require.True(t, ok)
	require.True(t, z > 0)
}

func TestBaselineUnknownMessage(t *testing.T) {
	var bl Baseline
	bl.Observe(compileYAML(t, baselineYAML))

	_, ok := bl.ZScore("NoSuchMessage", 1)
	require.False(t, ok)
}
