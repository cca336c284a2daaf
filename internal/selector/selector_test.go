package selector

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/flowfinder/internal/catalog"
)

func TestTargetCountFor(t *testing.T) {
	assert.Equal(t, 2, TargetCountFor(1))
	assert.Equal(t, 2, TargetCountFor(4))
	assert.Equal(t, 3, TargetCountFor(5))
	assert.Equal(t, 3, TargetCountFor(9))
	assert.Equal(t, 4, TargetCountFor(10))
	assert.Equal(t, 4, TargetCountFor(16))
}

// Whenever the catalog holds at least the target count of eligible patterns,
// the selector must return exactly the target count.
func TestSelectionCount(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	s := New(c)

	for level := 1; level <= 20; level++ {
		rng := rand.New(rand.NewSource(int64(level)))
		got, err := s.Select(context.Background(), rng, level)
		require.NoError(t, err)

		eligible := len(c.PatternsUpTo(level + stretchReach))
		want := TargetCountFor(level)
		if eligible < want {
			want = eligible
		}
		assert.Len(t, got, want, "level %d", level)
	}
}

func TestSelectionWithoutReplacement(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	s := New(c)

	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		got, err := s.Select(context.Background(), rng, 16)
		require.NoError(t, err)
		seen := make(map[string]bool, len(got))
		for _, p := range got {
			assert.False(t, seen[p.ID], "pattern %s picked twice", p.ID)
			seen[p.ID] = true
		}
	}
}

func TestEmptyBandRedistributes(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	s := New(c)

	// At level 1 no pattern sits more than 2 levels below, so the review
	// band is empty; its quota must flow to the other bands silently.
	rng := rand.New(rand.NewSource(7))
	got, err := s.Select(context.Background(), rng, 1)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSelectionRespectsEligibility(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	s := New(c)

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		got, err := s.Select(context.Background(), rng, 5)
		require.NoError(t, err)
		for _, p := range got {
			assert.LessOrEqual(t, p.UserLevel, 5+stretchReach)
		}
	}
}
