package feedback

import (
	"errors"
	"fmt"
)

// ErrMalformedScore is returned by ParseScore for text that is not exactly
// WordLength valid mark characters. Callers prompting a human should
// re-prompt on it.
var ErrMalformedScore = errors.New("malformed score text")

// String renders the score with one character per letter position, leftmost
// letter first: '.' for absent, 'y' for wrong place, 'G' for right place.
// 165 => ".y..G". A score outside the valid range is a caller bug and
// panics; scores built by this package are always in range.
func (s Score) String() string {
	if s >= NumScores {
		panic(fmt.Sprintf("score %d is not in 0..%d", s, NumScores-1))
	}
	var out [WordLength]byte
	for i := 0; i < WordLength; i++ {
		switch s % 3 {
		case 0:
			out[i] = '.'
		case 1:
			out[i] = 'y'
		case 2:
			out[i] = 'G'
		}
		s /= 3
	}
	return string(out[:])
}

// ParseScore turns readable text back into a score: ".y..G" => 165. The y
// and g marks are accepted in either case. This is the exact inverse of
// String for every valid score.
func ParseScore(text string) (Score, error) {
	if len(text) != WordLength {
		return 0, ErrMalformedScore
	}
	var result Score
	mult := Score(1)
	for i := 0; i < WordLength; i++ {
		switch text[i] {
		case 'g', 'G':
			result += 2 * mult
		case 'y', 'Y':
			result += mult
		case '.':
		default:
			return 0, ErrMalformedScore
		}
		mult *= 3
	}
	return result, nil
}
