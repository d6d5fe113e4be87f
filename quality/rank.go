package quality

import (
	"sort"
	"strings"
)

// Compare orders two quality summaries; whichever compares smaller is the
// better guess. Keys, applied until one side wins strictly:
//
//  1. MaxRemaining × ExpectedRemaining ascending. The product blends the
//     worst case with the average case and sorts better than either alone.
//  2. HasWinning, true first. Guesses that might end the game right now
//     beat otherwise-equal ones that cannot.
//  3. MaxRemaining ascending: a guaranteed smaller worst case.
//  4. ExpectedRemaining ascending: a smaller average case.
//  5. The guess word itself, ascending.
//
// Key 5 makes this a strict total order over distinct guesses, so a sort
// produces the same sequence no matter how the summaries were computed or
// shuffled beforehand.
func Compare(a, b *GuessQuality) int {
	aprod := float64(a.MaxRemaining) * a.ExpectedRemaining
	bprod := float64(b.MaxRemaining) * b.ExpectedRemaining
	if aprod != bprod {
		if aprod < bprod {
			return -1
		}
		return 1
	}

	if a.HasWinning != b.HasWinning {
		if a.HasWinning {
			return -1
		}
		return 1
	}

	if a.MaxRemaining != b.MaxRemaining {
		if a.MaxRemaining < b.MaxRemaining {
			return -1
		}
		return 1
	}

	if a.ExpectedRemaining != b.ExpectedRemaining {
		if a.ExpectedRemaining < b.ExpectedRemaining {
			return -1
		}
		return 1
	}

	return strings.Compare(a.Guess, b.Guess)
}

// Sort orders summaries best-first, in place.
func Sort(qualities []GuessQuality) {
	sort.Slice(qualities, func(i, j int) bool {
		return Compare(&qualities[i], &qualities[j]) < 0
	})
}
