// Package quality estimates how effectively a candidate guess narrows a set
// of still-possible target words, and ranks those estimates.
//
// The estimate for one guess is a histogram: bucket every target by the
// feedback score the guess would earn against it. If the true answer is
// equally likely to be any target, then after playing the guess the
// surviving candidates are exactly the answer's bucket, so the bucket sizes
// say everything about how well the guess splits the field.
package quality

import (
	"fmt"
	"math"

	"github.com/palello/winnow/feedback"
)

// GuessQuality summarizes one guess word against an entire target list.
type GuessQuality struct {
	Guess string

	// HasWinning is true if some target scores all-correct against the
	// guess, i.e. the guess itself could be the answer.
	HasWinning bool

	// ExpectedRemaining is the number of targets that would survive the
	// guess's feedback, averaged over every target being the true answer.
	ExpectedRemaining float64

	// MaxRemaining is the size of the largest feedback bucket: the worst
	// case for how little this guess narrows the list.
	MaxRemaining uint16

	// ScoreWithMaxRemaining is the feedback that produces that worst case,
	// the lowest such score when buckets tie.
	ScoreWithMaxRemaining feedback.Score
}

// Histogram counts, for one guess, how many targets produce each possible
// feedback score. Bucket sc holds the number of targets t with
// ScorePair(guess, t) == sc; the counts always sum to len(targets).
func Histogram(guess string, targets []string) [feedback.NumScores]uint16 {
	var hist [feedback.NumScores]uint16
	for _, t := range targets {
		hist[feedback.ScorePair(guess, t)]++
	}
	return hist
}

// Estimate scores one candidate guess against the remaining targets. The
// guess need not be a possible answer itself; exploratory guesses are
// routine. An empty target list, or one too large for the uint16 bucket
// counters, is a caller bug and panics.
func Estimate(guess string, targets []string) GuessQuality {
	checkTargets(targets)

	hist := Histogram(guess, targets)
	maxCount, argmax, sumSquares := reduce(hist[:])

	return GuessQuality{
		Guess:                 guess,
		HasWinning:            hist[feedback.AllCorrect] > 0,
		ExpectedRemaining:     float64(sumSquares) / float64(len(targets)),
		MaxRemaining:          maxCount,
		ScoreWithMaxRemaining: feedback.Score(argmax),
	}
}

// reduce scans buckets in ascending score order. Only a strictly larger
// count displaces the tracked maximum, so ties go to the lowest score. A
// bucket of size c is experienced by c targets, each seeing c survivors, so
// c² summed over buckets and divided by the target count is the expected
// survivor count.
func reduce(hist []uint16) (maxCount uint16, argmax int, sumSquares uint64) {
	for sc, c := range hist {
		if c > maxCount {
			maxCount = c
			argmax = sc
		}
		sumSquares += uint64(c) * uint64(c)
	}
	return maxCount, argmax, sumSquares
}

func checkTargets(targets []string) {
	if len(targets) == 0 {
		panic("estimate needs at least one target")
	}
	if len(targets) > math.MaxUint16 {
		panic(fmt.Sprintf("target list of %d overflows the bucket counters", len(targets)))
	}
}
