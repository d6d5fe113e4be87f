// Package wordlist loads and filters the word lists the solver consumes:
// the admissible-guess list and the frequency-ranked candidate targets.
//
// The lists are external data, injected by path; nothing in the core keeps
// module-level word state. A small embedded sample ships for demos and
// tests.
package wordlist

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/palello/winnow/feedback"
)

var ErrEmptyList = errors.New("word list has no usable words")

//go:embed sample.txt
var sampleData string

// Sample returns the built-in word list. It is big enough to play with and
// small enough to embed; point the config at real lists for serious use.
func Sample() []string {
	words, err := parseWords(strings.NewReader(sampleData))
	if err != nil {
		panic("embedded sample list is broken: " + err.Error())
	}
	return words
}

// Normalize lowercases w and reports whether it is exactly five ASCII
// letters. Everything entering this package's lists goes through here, so
// the scorer's length precondition holds for any word taken from a list.
func Normalize(w string) (string, bool) {
	w = strings.ToLower(strings.TrimSpace(w))
	if len(w) != feedback.WordLength {
		return "", false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return "", false
		}
	}
	return w, true
}

func parseWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w, ok := Normalize(line)
		if !ok {
			log.Debug().Str("entry", line).Msg("skipping non-word entry")
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrEmptyList
	}
	return words, nil
}

// LoadWords reads a list with one word per line, skipping blank lines and
// # comments. Entries that do not normalize to five-letter words are
// dropped with a debug log rather than failing the load; published lists
// tend to carry a little junk.
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	defer f.Close()
	words, err := parseWords(f)
	if err != nil {
		return nil, fmt.Errorf("word list %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("words", len(words)).Msg("loaded word list")
	return words, nil
}

// WordFreq is one entry of a frequency list: a word and how often it shows
// up in some large corpus. Only the relative order of the counts matters.
type WordFreq struct {
	Word  string
	Count uint64
}

// LoadFrequencies reads "word,count" lines. Malformed lines and non-words
// are skipped like in LoadWords.
func LoadFrequencies(path string) ([]WordFreq, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading frequency list: %w", err)
	}
	defer f.Close()

	var freqs []WordFreq
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, countStr, found := strings.Cut(line, ",")
		if !found {
			log.Debug().Str("entry", line).Msg("skipping malformed frequency entry")
			continue
		}
		w, ok := Normalize(word)
		if !ok {
			continue
		}
		count, err := strconv.ParseUint(strings.TrimSpace(countStr), 10, 64)
		if err != nil {
			log.Debug().Str("entry", line).Msg("skipping unparseable frequency count")
			continue
		}
		freqs = append(freqs, WordFreq{Word: w, Count: count})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(freqs) == 0 {
		return nil, fmt.Errorf("frequency list %s: %w", path, ErrEmptyList)
	}
	return freqs, nil
}

// CommonTargets returns the limit most frequent words that are also
// admissible guesses, most frequent first. Frequency lists gathered from
// wild text are full of names, typos, and acronyms; intersecting with the
// guess list culls those. A limit of zero or less means no limit.
func CommonTargets(freqs []WordFreq, guesses []string, limit int) []string {
	admissible := make(map[string]struct{}, len(guesses))
	for _, g := range guesses {
		admissible[g] = struct{}{}
	}

	kept := lo.Filter(freqs, func(wf WordFreq, _ int) bool {
		_, ok := admissible[wf.Word]
		return ok
	})
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Count > kept[j].Count
	})
	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}
	return lo.Map(kept, func(wf WordFreq, _ int) string { return wf.Word })
}

// OrderSolutions sorts a known-solutions list by descending frequency, ties
// alphabetical, so the most plausible answers display first. Words missing
// from the frequency list count as frequency zero and sort last.
func OrderSolutions(solutions []string, freqs []WordFreq) []string {
	counts := make(map[string]uint64, len(freqs))
	for _, wf := range freqs {
		counts[wf.Word] = wf.Count
	}
	ordered := make([]string, len(solutions))
	copy(ordered, solutions)
	sort.Slice(ordered, func(i, j int) bool {
		ci, cj := counts[ordered[i]], counts[ordered[j]]
		if ci != cj {
			return ci > cj
		}
		return ordered[i] < ordered[j]
	})
	return ordered
}

// Cull keeps the words that would have produced the observed score for the
// played guess. This is the step that shrinks the candidate list after
// every round, and in hard mode it shrinks the guess list the same way.
func Cull(words []string, guess string, observed feedback.Score) []string {
	return lo.Filter(words, func(w string, _ int) bool {
		return feedback.ScorePair(guess, w) == observed
	})
}
