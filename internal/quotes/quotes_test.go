package quotes

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPick_AlwaysMember(t *testing.T) {
	for _, set := range [][]string{Challenge, Tracker} {
		s := New(set, rand.NewPCG(1, 2))
		for range 200 {
			q := s.Pick()
			assert.Contains(t, set, q)
		}
	}
}

func TestPick_EventuallyReturnsEveryQuote(t *testing.T) {
	s := New(Challenge, rand.NewPCG(42, 7))
	seen := make(map[string]bool)
	for i := 0; i < 1000 && len(seen) < len(Challenge); i++ {
		seen[s.Pick()] = true
	}
	assert.Len(t, seen, len(Challenge))
}

func TestPick_DeterministicWithSameSeed(t *testing.T) {
	a := New(Tracker, rand.NewPCG(9, 9))
	b := New(Tracker, rand.NewPCG(9, 9))
	for range 20 {
		require.Equal(t, a.Pick(), b.Pick())
	}
}

func TestNew_EmptySetFallsBack(t *testing.T) {
	s := New(nil, nil)
	assert.Equal(t, len(Challenge), s.Len())
	assert.True(t, s.Contains(s.Pick()))
}

func TestNew_CopiesSet(t *testing.T) {
	set := []string{"one", "two"}
	s := New(set, rand.NewPCG(1, 1))
	set[0] = "changed"

	assert.True(t, s.Contains("one"))
	assert.False(t, s.Contains("changed"))
}

func TestSetsHaveFiveEntries(t *testing.T) {
	assert.Len(t, Challenge, 5)
	assert.Len(t, Tracker, 5)
}
