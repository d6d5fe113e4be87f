// Package automatic plays complete games with no human in the loop, for
// measuring how well the suggestion engine actually narrows real puzzles.
package automatic

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/palello/winnow/feedback"
	"github.com/palello/winnow/suggester"
	"github.com/palello/winnow/wordlist"
)

const DefaultMaxTurns = 10

// GameResult records one autoplayed game.
type GameResult struct {
	Target  string   `yaml:"target"`
	Guesses []string `yaml:"guesses,flow"`
	Scores  []string `yaml:"scores,flow"`
	Turns   int      `yaml:"turns"`
	Solved  bool     `yaml:"solved"`
}

// GameRunner plays one game at a time: every round it takes the top-ranked
// suggestion, scores it against the hidden target, and culls. One runner
// per worker; the guess list and starting pool are shared and read-only.
type GameRunner struct {
	sug      *suggester.Suggester
	pool     []string
	maxTurns int
}

func NewGameRunner(guesses, pool []string) *GameRunner {
	sug := suggester.NewSuggester(guesses)
	// Games are parallelized above the runner, one game per worker, so the
	// suggester inside each stays single-threaded.
	sug.SetThreads(1)
	return &GameRunner{sug: sug, pool: pool, maxTurns: DefaultMaxTurns}
}

func (r *GameRunner) SetMaxTurns(t int) {
	if t > 0 {
		r.maxTurns = t
	}
}

// Run plays a full game against target. The target should be drawn from the
// runner's pool; a target outside it can empty the candidate list, which
// ends the game with an error.
func (r *GameRunner) Run(ctx context.Context, target string) (GameResult, error) {
	res := GameResult{Target: target}
	remaining := r.pool

	for turn := 0; turn < r.maxTurns; turn++ {
		var guess string
		switch {
		case len(remaining) == 0:
			return res, fmt.Errorf("no candidates left for target %q; was it in the pool?", target)
		case len(remaining) <= 2:
			// One candidate is the answer; with two, guessing either
			// wins now or next turn. Not worth a full evaluation.
			guess = remaining[0]
		default:
			ranked, err := r.sug.Suggest(ctx, remaining)
			if err != nil {
				return res, err
			}
			guess = ranked[0].Guess
		}

		sc := feedback.ScorePair(guess, target)
		res.Guesses = append(res.Guesses, guess)
		res.Scores = append(res.Scores, sc.String())
		res.Turns++

		if sc == feedback.AllCorrect {
			res.Solved = true
			log.Debug().Str("target", target).Int("turns", res.Turns).Msg("solved")
			return res, nil
		}
		remaining = wordlist.Cull(remaining, guess, sc)
	}

	log.Debug().Str("target", target).Int("turns", res.Turns).Msg("unsolved")
	return res, nil
}
