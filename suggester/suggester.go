// Package suggester fans the quality estimator out over every admissible
// guess word and returns the estimates in ranked order.
package suggester

import (
	"context"
	"errors"
	"math"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/palello/winnow/quality"
)

var ErrNoGuesses = errors.New("no guess words to evaluate")
var ErrNoTargets = errors.New("no target words remain")

// Suggester evaluates a fixed list of admissible guesses against whatever
// target list each call supplies. The guess list is shared and never
// mutated; hard-mode callers build a new Suggester from the culled list.
type Suggester struct {
	guesses []string
	threads int
}

func NewSuggester(guesses []string) *Suggester {
	return &Suggester{
		guesses: guesses,
		threads: int(math.Max(1, float64(runtime.NumCPU()-1))),
	}
}

func (s *Suggester) SetThreads(t int) {
	if t > 0 {
		s.threads = t
	}
}

func (s *Suggester) Threads() int { return s.threads }

func (s *Suggester) Guesses() []string { return s.guesses }

// Suggest estimates every guess against targets and returns the estimates
// ranked best-first. Each estimate reads only its own guess and the shared
// target list and writes only its own slot, so the workers share nothing
// and need no locks; the deterministic sort after the join is what fixes
// the output order, not the scheduling.
func (s *Suggester) Suggest(ctx context.Context, targets []string) ([]quality.GuessQuality, error) {
	if len(s.guesses) == 0 {
		return nil, ErrNoGuesses
	}
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}

	start := time.Now()
	results := make([]quality.GuessQuality, len(s.guesses))

	g, ctx := errgroup.WithContext(ctx)
	for t := 0; t < s.threads; t++ {
		t := t
		g.Go(func() error {
			for i := t; i < len(s.guesses); i += s.threads {
				select {
				case <-ctx.Done():
					log.Debug().Msgf("Thread %v cancelled at guess %v", t, i)
					return ctx.Err()
				default:
				}
				results[i] = quality.Estimate(s.guesses[i], targets)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	quality.Sort(results)
	log.Debug().
		Int("guesses", len(s.guesses)).
		Int("targets", len(targets)).
		Int("threads", s.threads).
		Dur("elapsed", time.Since(start)).
		Msg("suggest-done")
	return results, nil
}
