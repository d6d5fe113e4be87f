package quality

import "github.com/palello/winnow/feedback"

// PairQuality summarizes a fixed pair of guesses played together, before
// seeing the feedback for either.
type PairQuality struct {
	GuessA string
	GuessB string

	// ExpectedRemaining and MaxRemaining mean what they do in GuessQuality,
	// but over the joint buckets: a target survives the pair only if it
	// matches the observed feedback for both guesses.
	ExpectedRemaining float64
	MaxRemaining      uint16

	// The joint bucket achieving MaxRemaining, lowest (ScoreA, ScoreB)
	// pair on ties with ScoreA the more significant key.
	ScoreAWithMaxRemaining feedback.Score
	ScoreBWithMaxRemaining feedback.Score
}

// EstimatePair scores two guesses jointly. Targets land in one of
// NumScores×NumScores buckets keyed by both feedback scores, and the buckets
// reduce exactly as in Estimate. There is no winner flag or ranking for
// pairs; this answers "how far do these two guesses narrow the field
// together", nothing more.
func EstimatePair(guessA, guessB string, targets []string) PairQuality {
	checkTargets(targets)

	hist := make([]uint16, feedback.NumScores*feedback.NumScores)
	for _, t := range targets {
		a := feedback.ScorePair(guessA, t)
		b := feedback.ScorePair(guessB, t)
		hist[int(a)*feedback.NumScores+int(b)]++
	}
	maxCount, argmax, sumSquares := reduce(hist)

	return PairQuality{
		GuessA:                 guessA,
		GuessB:                 guessB,
		ExpectedRemaining:      float64(sumSquares) / float64(len(targets)),
		MaxRemaining:           maxCount,
		ScoreAWithMaxRemaining: feedback.Score(argmax / feedback.NumScores),
		ScoreBWithMaxRemaining: feedback.Score(argmax % feedback.NumScores),
	}
}
