package quality

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"lukechampine.com/frand"
)

func TestCompareKeyOrder(t *testing.T) {
	base := GuessQuality{Guess: "mmmmm", ExpectedRemaining: 4, MaxRemaining: 10}

	// Smaller product wins regardless of the other fields.
	better := GuessQuality{Guess: "zzzzz", ExpectedRemaining: 3, MaxRemaining: 10}
	assert.Negative(t, Compare(&better, &base))
	assert.Positive(t, Compare(&base, &better))

	// Equal product: a possible winner sorts first.
	winner := base
	winner.HasWinning = true
	assert.Negative(t, Compare(&winner, &base))

	// Equal product and winner flag: smaller worst case first.
	// 8×5 and 10×4 share a product of 40.
	tighter := GuessQuality{Guess: "zzzzz", ExpectedRemaining: 5, MaxRemaining: 8}
	assert.Negative(t, Compare(&tighter, &base))

	// Everything equal but the word: alphabetical.
	alpha := base
	alpha.Guess = "aaaaa"
	assert.Negative(t, Compare(&alpha, &base))
	assert.Equal(t, 0, Compare(&base, &base))
}

func TestSortIsDeterministic(t *testing.T) {
	guesses := []string{"caddy", "abbey", "sorry", "rotor", "cheer", "eerie", "penny", "aaaaa"}

	reference := make([]GuessQuality, len(guesses))
	for i, g := range guesses {
		reference[i] = Estimate(g, smallTargets)
	}
	Sort(reference)

	// However the estimates arrive, sorting must reproduce the same order.
	for trial := 0; trial < 20; trial++ {
		shuffled := make([]GuessQuality, len(reference))
		copy(shuffled, reference)
		frand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		Sort(shuffled)
		if !reflect.DeepEqual(reference, shuffled) {
			t.Fatalf("trial %d: sort order diverged", trial)
		}
	}
}
