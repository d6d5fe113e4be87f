package shell

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/palello/winnow/quality"
)

func TestWrapWords(t *testing.T) {
	is := is.New(t)
	words := []string{"abbey", "caddy", "sorry", "rotor"}
	is.Equal(wrapWords(words, 100), "abbey caddy sorry rotor")
	is.Equal(wrapWords(words, 11), "abbey caddy\nsorry rotor")
	is.Equal(wrapWords(words[:1], 3), "abbey")
}

func TestStatusText(t *testing.T) {
	is := is.New(t)
	sc := &ShellController{}

	sc.targets = nil
	is.True(strings.Contains(sc.statusText(), "no possible words remaining"))

	sc.targets = []string{"abbey"}
	is.Equal(sc.statusText(), "The word is: abbey")

	sc.targets = []string{"abbey", "caddy"}
	is.True(strings.Contains(sc.statusText(), "one of two"))

	sc.targets = []string{"abbey", "caddy", "sorry"}
	text := sc.statusText()
	is.True(strings.Contains(text, "3 possibilities"))
	is.True(strings.Contains(text, "abbey caddy sorry"))
}

func TestSuggestionTable(t *testing.T) {
	is := is.New(t)
	targets := []string{"abbey", "caddy", "sorry", "rotor", "cheer"}
	sc := &ShellController{targets: targets}

	ranked := make([]quality.GuessQuality, 0, 3)
	for _, g := range []string{"caddy", "slate", "zzzzz"} {
		ranked = append(ranked, quality.Estimate(g, targets))
	}
	quality.Sort(ranked)

	table := sc.suggestionTable(ranked, len(ranked))
	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	is.Equal(len(lines), 3)

	// caddy is in the target list, so its row carries the winner marker.
	for _, line := range lines {
		if strings.Contains(line, "caddy") {
			is.True(strings.HasPrefix(line, "*"))
		}
		if strings.Contains(line, "zzzzz") {
			is.True(strings.HasPrefix(line, " "))
			// zzzzz matches nothing: one bucket holding all five targets.
			is.True(strings.Contains(line, "max 5 left with ....."))
		}
	}

	// Rows past topN are skipped, and the skipped count flushes when a
	// later could-win row forces its way in.
	qs := []quality.GuessQuality{
		{Guess: "slate", ExpectedRemaining: 1, MaxRemaining: 1},
		{Guess: "penny", ExpectedRemaining: 2, MaxRemaining: 2},
		{Guess: "quill", ExpectedRemaining: 3, MaxRemaining: 3},
		{Guess: "caddy", ExpectedRemaining: 5, MaxRemaining: 5, HasWinning: true},
	}
	table = sc.suggestionTable(qs, 1)
	is.True(strings.Contains(table, "(2 words omitted)"))
	is.True(strings.Contains(table, "* caddy"))
	is.True(!strings.Contains(table, "penny"))
}
