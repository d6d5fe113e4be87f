package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palello/winnow/feedback"
)

var smallTargets = []string{"abbey", "caddy", "sorry", "rotor", "cheer", "eerie"}

func TestHistogramConservation(t *testing.T) {
	for _, guess := range []string{"caddy", "aaaaa", "zzzzz", "rotor"} {
		hist := Histogram(guess, smallTargets)
		total := 0
		for _, c := range hist {
			total += int(c)
		}
		assert.Equal(t, len(smallTargets), total, "guess %q", guess)
	}
}

func TestEstimateKnownValues(t *testing.T) {
	// caddy vs {abbey, caddy, sorry} lands each target in its own bucket:
	// 165, 242 (all correct), and 162.
	q := Estimate("caddy", []string{"abbey", "caddy", "sorry"})
	assert.True(t, q.HasWinning)
	assert.Equal(t, 1.0, q.ExpectedRemaining)
	assert.Equal(t, uint16(1), q.MaxRemaining)
	assert.Equal(t, feedback.Score(162), q.ScoreWithMaxRemaining)
	assert.Equal(t, "caddy", q.Guess)
}

func TestEstimateTiedBucketsTakeLowestScore(t *testing.T) {
	// Two buckets of two each: 42 (sorry vs rotor) and 242 (sorry vs
	// sorry). The strictly-greater scan keeps the first, lower score.
	q := Estimate("sorry", []string{"sorry", "rotor", "sorry", "rotor"})
	assert.Equal(t, uint16(2), q.MaxRemaining)
	assert.Equal(t, feedback.Score(42), q.ScoreWithMaxRemaining)
	assert.Equal(t, 2.0, q.ExpectedRemaining)
	assert.True(t, q.HasWinning)
}

func TestHasWinningIffMembership(t *testing.T) {
	for _, guess := range []string{"abbey", "caddy", "penny", "aaaaa"} {
		q := Estimate(guess, smallTargets)
		member := false
		for _, target := range smallTargets {
			if target == guess {
				member = true
			}
		}
		assert.Equal(t, member, q.HasWinning, "guess %q", guess)
	}
}

func TestEstimatePanicsOnEmptyTargets(t *testing.T) {
	assert.Panics(t, func() { Estimate("caddy", nil) })
	assert.Panics(t, func() { EstimatePair("caddy", "abbey", []string{}) })
}

func TestPairOfSameGuessMatchesSingle(t *testing.T) {
	// Guessing the same word twice learns nothing new, so the joint
	// buckets are the single-guess buckets on the diagonal.
	single := Estimate("caddy", smallTargets)
	pair := EstimatePair("caddy", "caddy", smallTargets)
	assert.Equal(t, single.ExpectedRemaining, pair.ExpectedRemaining)
	assert.Equal(t, single.MaxRemaining, pair.MaxRemaining)
	assert.Equal(t, single.ScoreWithMaxRemaining, pair.ScoreAWithMaxRemaining)
	assert.Equal(t, single.ScoreWithMaxRemaining, pair.ScoreBWithMaxRemaining)
}

func TestPairRefinesEitherSingle(t *testing.T) {
	// The joint partition refines both single partitions, so the pair
	// can never expect to leave more candidates than either guess alone.
	a := Estimate("caddy", smallTargets)
	b := Estimate("rotor", smallTargets)
	pair := EstimatePair("caddy", "rotor", smallTargets)
	require.LessOrEqual(t, pair.ExpectedRemaining, a.ExpectedRemaining)
	require.LessOrEqual(t, pair.ExpectedRemaining, b.ExpectedRemaining)
	require.LessOrEqual(t, pair.MaxRemaining, a.MaxRemaining)
	require.LessOrEqual(t, pair.MaxRemaining, b.MaxRemaining)
}
