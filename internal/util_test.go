package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconstructPath(t *testing.T) {
	cameFrom := map[int]int{2: 1, 3: 2, 4: 3}
	previous := func(n int) (int, bool) {
		p, ok := cameFrom[n]
		return p, ok
	}

	assert.Equal(t, []int{1, 2, 3, 4}, ReconstructPath(previous, 4, 1))
	assert.Equal(t, []int{1}, ReconstructPath(previous, 1, 1))
	// A broken chain stops at the last known node.
	assert.Equal(t, []int{9}, ReconstructPath(previous, 9, 1))
}

func TestCollectAncestors(t *testing.T) {
	preds := map[string][]string{
		"goal": {"a", "b"},
		"a":    {"start"},
		"b":    {"start", "a"},
		"x":    {"start"},
	}
	got := CollectAncestors([]string{"goal", "goal"}, func(n string) []string { return preds[n] })

	assert.Len(t, got, 4)
	for _, n := range []string{"goal", "a", "b", "start"} {
		assert.Contains(t, got, n)
	}
	assert.NotContains(t, got, "x")

	assert.Empty(t, CollectAncestors(nil, func(n string) []string { return preds[n] }))
}
