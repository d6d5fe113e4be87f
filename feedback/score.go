// Package feedback scores a guessed word against a target word the way the
// puzzle does: every letter of the guess is marked right-letter-right-place,
// right-letter-wrong-place, or absent.
//
// The five marks pack into a single base-3 number, the Score, with the
// leftmost letter in the lowest digit. Guessing "caddy" against "abbey"
// marks C absent, A wrong place, D absent, D absent, Y right place, which
// reads bottom-up as 20010 in base 3, or 165.
//
// Higher scores are not better in any way. The point of the packing is that
// a score is a small dense array index, so a histogram of the scores a guess
// earns against a whole candidate list fits in one fixed-size array.
package feedback

import "fmt"

// Score is the packed per-letter feedback for one guess/target pair. Valid
// values are 0 through NumScores-1. Each base-3 digit is 0 (letter absent),
// 1 (right letter, wrong place), or 2 (right letter, right place), least
// significant digit first.
type Score uint8

const (
	// WordLength is the number of letters in every word this package
	// handles. The scorer is written for exactly five and asserts it.
	WordLength = 5

	// NumScores is 3^WordLength: every way of marking WordLength letters
	// with one of three marks.
	NumScores = 243

	// AllCorrect is the score whose digits are all 2. Only a guess equal
	// to the target earns it.
	AllCorrect Score = NumScores - 1
)

var pow3 = [WordLength]Score{1, 3, 9, 27, 81}

func init() {
	n := 1
	for i := 0; i < WordLength; i++ {
		n *= 3
	}
	if n != NumScores {
		panic(fmt.Sprintf("NumScores is %d but WordLength is %d", NumScores, WordLength))
	}
}

// ScorePair scores guess against target. It is NOT symmetric when letters
// repeat: ScorePair("caddy", "abbey") != ScorePair("abbey", "caddy").
//
// Both words must be exactly WordLength letters. Anything else is a caller
// bug, and this panics rather than truncate or pad.
//
// This runs once per guess/target pair, for every guess against every
// remaining target, every round, so it stays allocation-free and works on
// bytes. scorePairRef below is the uncluttered statement of the same rules;
// the tests compare the two over every word pair of a small alphabet.
func ScorePair(guess, target string) Score {
	if len(guess) != WordLength {
		panic(fmt.Sprintf("guess %q is not exactly %d letters", guess, WordLength))
	}
	if len(target) != WordLength {
		panic(fmt.Sprintf("target %q is not exactly %d letters", target, WordLength))
	}

	var result Score

	// Pair up the right-letter-right-place matches first and mark those
	// positions off. Matching "cheer" against "abbey", the second E of
	// cheer must take the place match; the first E must not steal it as a
	// wrong-place match.
	var guessUsed uint32
	if guess[0] == target[0] {
		result += 2
		guessUsed |= 1
	}
	if guess[1] == target[1] {
		result += 6
		guessUsed |= 2
	}
	if guess[2] == target[2] {
		result += 18
		guessUsed |= 4
	}
	if guess[3] == target[3] {
		result += 54
		guessUsed |= 8
	}
	if guess[4] == target[4] {
		result += 162
		guessUsed |= 16
	}

	// Every remaining guess letter claims the leftmost not-yet-claimed
	// target position holding the same letter, if there is one. All 5*4
	// pairings get considered; skipping ahead cleverly is not faster than
	// the constant-size loop.
	targetUsed := guessUsed
	for i := 0; i < WordLength; i++ {
		if guessUsed&(1<<i) != 0 {
			continue
		}
		g := guess[i]
		for j := 0; j < WordLength; j++ {
			if targetUsed&(1<<j) == 0 && target[j] == g {
				targetUsed |= 1 << j
				result += pow3[i]
				break
			}
		}
	}

	return result
}

// scorePairRef is the plain two-pass definition of ScorePair, kept so the
// bitmask version above can be checked against it exhaustively.
func scorePairRef(guess, target string) Score {
	var guessUsed, targetUsed [WordLength]bool
	var result Score

	for i := 0; i < WordLength; i++ {
		if guess[i] == target[i] {
			result += 2 * pow3[i]
			guessUsed[i] = true
			targetUsed[i] = true
		}
	}

	for i := 0; i < WordLength; i++ {
		if guessUsed[i] {
			continue
		}
		for j := 0; j < WordLength; j++ {
			if !targetUsed[j] && target[j] == guess[i] {
				targetUsed[j] = true
				result += pow3[i]
				break
			}
		}
	}

	return result
}
