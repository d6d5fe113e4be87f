package automatic

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
	"lukechampine.com/frand"

	"github.com/palello/winnow/stats"
)

// Summary aggregates a batch of autoplayed games.
type Summary struct {
	Played int
	Solved int

	// TurnStat accumulates turns-to-solve over the solved games only.
	TurnStat stats.Statistic

	// Turns holds one entry per solved game, for histogram display.
	Turns []float64
}

// StartGames plays numGames games on the given number of workers, drawing a
// random target from pool for each game. If logw is non-nil, every game is
// appended to it as a YAML document. Blocks until all games finish or ctx
// is cancelled; games already queued when cancellation lands still run to
// completion.
func StartGames(ctx context.Context, guesses, pool []string, numGames, threads int, logw io.Writer) (*Summary, error) {
	if numGames <= 0 {
		return nil, errors.New("need a positive number of games")
	}
	if threads <= 0 {
		threads = 1
	}
	if len(pool) == 0 {
		return nil, errors.New("empty target pool")
	}
	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)

	jobs := make(chan string, 100)
	resultChan := make(chan GameResult, 100)
	var wg sync.WaitGroup
	wg.Add(threads)

	for i := 0; i < threads; i++ {
		go func() {
			defer wg.Done()
			r := NewGameRunner(guesses, pool)
			for target := range jobs {
				res, err := r.Run(ctx, target)
				if err != nil {
					log.Err(err).Str("target", target).Msg("autoplay-game-error")
					continue
				}
				resultChan <- res
			}
		}()
	}

	go func() {
	gameLoop:
		for i := 0; i < numGames; i++ {
			jobs <- pool[frand.Intn(len(pool))]
			select {
			case <-ctx.Done():
				log.Info().Msg("Got stop signal, exiting soon...")
				break gameLoop
			default:
				// do nothing
			}
		}
		close(jobs)
		wg.Wait()
		close(resultChan)
	}()

	var enc *yaml.Encoder
	if logw != nil {
		enc = yaml.NewEncoder(logw)
		defer enc.Close()
	}

	summary := &Summary{}
	for res := range resultChan {
		summary.Played++
		if res.Solved {
			summary.Solved++
			summary.TurnStat.Push(float64(res.Turns))
			summary.Turns = append(summary.Turns, float64(res.Turns))
		}
		if enc != nil {
			if err := enc.Encode(res); err != nil {
				log.Err(err).Msg("autoplay-log-error")
			}
		}
	}

	log.Info().Msgf("All games finished. Solved %v of %v.", summary.Solved, summary.Played)
	return summary, nil
}
