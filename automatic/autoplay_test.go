package automatic

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matryer/is"
	"gopkg.in/yaml.v3"

	"github.com/palello/winnow/feedback"
	"github.com/palello/winnow/wordlist"
)

func testPool() []string {
	// A pool small enough for fast tests but with letter overlap, so the
	// engine has real narrowing to do.
	return []string{
		"abbey", "caddy", "sorry", "rotor", "cheer", "slate", "crane",
		"stone", "store", "score", "shore", "snore", "spore", "swore",
	}
}

func TestGameRunnerSolvesEveryPoolWord(t *testing.T) {
	is := is.New(t)
	pool := testPool()
	r := NewGameRunner(pool, pool)
	for _, target := range pool {
		res, err := r.Run(context.Background(), target)
		is.NoErr(err)
		is.True(res.Solved)
		is.True(res.Turns <= DefaultMaxTurns)
		is.Equal(res.Guesses[len(res.Guesses)-1], target)
		is.Equal(res.Scores[len(res.Scores)-1], "GGGGG")
	}
}

func TestGameRunnerIsDeterministic(t *testing.T) {
	is := is.New(t)
	pool := testPool()
	r := NewGameRunner(pool, pool)
	first, err := r.Run(context.Background(), "snore")
	is.NoErr(err)
	second, err := r.Run(context.Background(), "snore")
	is.NoErr(err)
	is.Equal(first, second)
}

func TestGameRunnerCullsConsistently(t *testing.T) {
	is := is.New(t)
	pool := testPool()
	r := NewGameRunner(pool, pool)
	res, err := r.Run(context.Background(), "store")
	is.NoErr(err)

	// Replaying the recorded rounds must reproduce the same culls and end
	// with the target alone.
	remaining := pool
	for i, g := range res.Guesses {
		sc, err := feedback.ParseScore(res.Scores[i])
		is.NoErr(err)
		remaining = wordlist.Cull(remaining, g, sc)
		is.True(len(remaining) >= 1)
	}
	is.Equal(remaining, []string{"store"})
}

func TestStartGames(t *testing.T) {
	is := is.New(t)
	pool := testPool()
	var buf bytes.Buffer

	summary, err := StartGames(context.Background(), pool, pool, 6, 2, &buf)
	is.NoErr(err)
	is.Equal(summary.Played, 6)
	is.Equal(summary.Solved, 6)
	is.Equal(len(summary.Turns), 6)
	is.True(summary.TurnStat.Mean() >= 1)

	// One YAML document per game.
	dec := yaml.NewDecoder(strings.NewReader(buf.String()))
	games := 0
	for {
		var res GameResult
		if dec.Decode(&res) != nil {
			break
		}
		is.True(res.Solved)
		is.Equal(res.Scores[len(res.Scores)-1], "GGGGG")
		games++
	}
	is.Equal(games, 6)
}

func TestStartGamesRejectsBadInput(t *testing.T) {
	is := is.New(t)
	_, err := StartGames(context.Background(), testPool(), testPool(), 0, 1, nil)
	is.True(err != nil)
	_, err = StartGames(context.Background(), testPool(), nil, 3, 1, nil)
	is.True(err != nil)
}
