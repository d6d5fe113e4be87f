package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"

	"github.com/palello/winnow/automatic"
	"github.com/palello/winnow/feedback"
	"github.com/palello/winnow/quality"
	"github.com/palello/winnow/wordlist"
)

// statusText describes the current possibility space the way a human wants
// to read it: the count, and the words themselves while the list is short
// enough to eyeball.
func (sc *ShellController) statusText() string {
	switch len(sc.targets) {
	case 0:
		return "Somehow, there are no possible words remaining. Were the guesses and scores entered correctly? (`reset` starts over)"
	case 1:
		return "The word is: " + sc.targets[0]
	case 2:
		return fmt.Sprintf("It's one of two: %s %s. Guess one; if it's wrong it's the other.",
			sc.targets[0], sc.targets[1])
	}

	shown := sc.targets
	suffix := ""
	if len(shown) > maxPossibilitiesShown {
		shown = shown[:maxPossibilitiesShown]
		suffix = "..."
	}
	return fmt.Sprintf("There are %d possibilities for the word.\n\n%s%s",
		len(sc.targets), wrapWords(shown, 100), suffix)
}

func wrapWords(words []string, width int) string {
	var ss strings.Builder
	lineLen := 0
	for i, w := range words {
		if lineLen+len(w)+1 > width && lineLen > 0 {
			ss.WriteByte('\n')
			lineLen = 0
		} else if i > 0 {
			ss.WriteByte(' ')
			lineLen++
		}
		ss.WriteString(w)
		lineLen += len(w)
	}
	return ss.String()
}

// suggest evaluates every admissible guess against the remaining targets
// and prints the best ones.
func (sc *ShellController) suggest(topN int) error {
	if len(sc.targets) < 2 {
		sc.showMessage(sc.statusText())
		return nil
	}
	ranked, err := sc.sug.Suggest(context.Background(), sc.targets)
	if err != nil {
		return err
	}
	sc.showMessage("\nSUGGESTED GUESSES (sorted by expected remaining × max remaining)\n" +
		strings.Repeat("=", 102))
	sc.showMessage(sc.suggestionTable(ranked, topN))
	return nil
}

// suggestionTable renders a ranked suggestion list: the top entries, plus
// every could-win entry near the top, with the targets that would survive
// each guess's worst outcome.
func (sc *ShellController) suggestionTable(ranked []quality.GuessQuality, topN int) string {
	const maxTargetsShown = 10

	var ss strings.Builder
	numWinning := 0
	numSkipped := 0
	for i := range ranked {
		q := &ranked[i]

		if i < topN || q.HasWinning {
			if numSkipped > 0 {
				fmt.Fprintf(&ss, "   ... (%d words omitted) ...\n", numSkipped)
				numSkipped = 0
			}
			worst := lo.Filter(sc.targets, func(w string, _ int) bool {
				return feedback.ScorePair(q.Guess, w) == q.ScoreWithMaxRemaining
			})
			suffix := ""
			if len(worst) > maxTargetsShown {
				worst = worst[:maxTargetsShown]
				suffix = "..."
			}
			marker := ' '
			if q.HasWinning {
				marker = '*'
			}
			fmt.Fprintf(&ss, "%c %s | average %.1f left, max %d left with %s => %s%s\n",
				marker, q.Guess, q.ExpectedRemaining, q.MaxRemaining,
				q.ScoreWithMaxRemaining, strings.Join(worst, " "), suffix)
		} else {
			numSkipped++
		}

		if q.HasWinning {
			numWinning++
		}
		// Once several possible winners have shown, the rest is noise.
		if numWinning > 4 && i > 10 {
			break
		}
	}
	return ss.String()
}

func (sc *ShellController) estimatePair(wordA, wordB string) error {
	a, ok := wordlist.Normalize(wordA)
	if !ok {
		return fmt.Errorf("%q is not exactly five letters", wordA)
	}
	b, ok := wordlist.Normalize(wordB)
	if !ok {
		return fmt.Errorf("%q is not exactly five letters", wordB)
	}
	if len(sc.targets) == 0 {
		return errors.New("no targets remain")
	}
	pq := quality.EstimatePair(a, b, sc.targets)
	sc.showMessage(fmt.Sprintf(
		"%s + %s | average %.1f left, max %d left with %s/%s (of %d possibilities)",
		pq.GuessA, pq.GuessB, pq.ExpectedRemaining, pq.MaxRemaining,
		pq.ScoreAWithMaxRemaining, pq.ScoreBWithMaxRemaining, len(sc.targets)))
	return nil
}

// showHist plots how the remaining possibilities spread over one guess's
// outcomes: one input value per occupied feedback bucket, weighted by size.
func (sc *ShellController) showHist(word string) error {
	w, ok := wordlist.Normalize(word)
	if !ok {
		return fmt.Errorf("%q is not exactly five letters", word)
	}
	if len(sc.targets) == 0 {
		return errors.New("no targets remain")
	}

	hist := quality.Histogram(w, sc.targets)
	var sizes []float64
	buckets := 0
	for _, c := range hist {
		if c > 0 {
			sizes = append(sizes, float64(c))
			buckets++
		}
	}
	sc.showMessage(fmt.Sprintf("%s splits the %d possibilities into %d outcomes; bucket sizes:",
		w, len(sc.targets), buckets))
	h := histogram.Hist(15, sizes)
	return histogram.Fprint(os.Stdout, h, histogram.Linear(40))
}

// autoplay self-plays games with the current lists and reports how many
// turns the engine needs.
func (sc *ShellController) autoplay(args []string) error {
	numGames := 20
	threads := sc.sug.Threads()
	var err error
	if len(args) > 0 {
		if numGames, err = strconv.Atoi(args[0]); err != nil || numGames < 1 {
			return errors.New("wrong format; try `autoplay 100`")
		}
	}
	if len(args) > 1 {
		if threads, err = strconv.Atoi(args[1]); err != nil || threads < 1 {
			return errors.New("threads must be a positive number")
		}
	}

	var logw io.Writer
	if path := sc.cfg.GetString("autoplay-log"); path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		logw = f
	}

	sc.showMessage(fmt.Sprintf("Playing %d games on %d threads...", numGames, threads))
	summary, err := automatic.StartGames(context.Background(), sc.guesses, sc.startTargets, numGames, threads, logw)
	if err != nil {
		return err
	}

	low, high := summary.TurnStat.MeanInterval(95)
	sc.showMessage(fmt.Sprintf(
		"solved %d/%d | turns: mean %.2f (95%% CI %.2f to %.2f), min %.0f, max %.0f",
		summary.Solved, summary.Played, summary.TurnStat.Mean(), low, high,
		summary.TurnStat.Min(), summary.TurnStat.Max()))

	if len(summary.Turns) > 0 {
		h := histogram.Hist(8, summary.Turns)
		return histogram.Fprint(os.Stdout, h, histogram.Linear(40))
	}
	return nil
}
