// Package shell is the interactive solving loop: show the remaining
// possibilities, suggest guesses, read back the puzzle's feedback, cull,
// repeat.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/palello/winnow/config"
	"github.com/palello/winnow/feedback"
	"github.com/palello/winnow/suggester"
	"github.com/palello/winnow/wordlist"
)

const (
	// How many suggestions a plain `suggest` shows.
	DefaultSuggestions = 15

	// How many remaining possibilities `show` prints before truncating.
	maxPossibilitiesShown = 200
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	execPath string

	// The admissible guesses. In hard mode this list shrinks with every
	// round; allGuesses keeps the originals for reset.
	guesses    []string
	allGuesses []string

	// The candidate targets still consistent with all feedback so far,
	// and the starting set for reset.
	targets      []string
	startTargets []string

	hardMode bool
	sug      *suggester.Suggester
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stdout())
}

func (sc *ShellController) showError(err error) {
	showMessage("Error: "+err.Error(), sc.l.Stderr())
}

func NewShellController(cfg *config.Config, execPath string) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mwinnow>\033[0m ",
		HistoryFile:     "/tmp/winnow-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}

	sc := &ShellController{l: l, cfg: cfg, execPath: execPath}
	sc.hardMode = cfg.GetBool("hard")
	if err := sc.loadLists(); err != nil {
		// A broken explicit list is fatal; better than silently solving
		// with the wrong dictionary.
		panic(err)
	}
	sc.sug = suggester.NewSuggester(sc.guesses)
	if t := cfg.GetInt("threads"); t > 0 {
		sc.sug.SetThreads(t)
	}
	return sc
}

// loadLists assembles the guess list and the starting target list from the
// configured paths, or the built-in sample when nothing is configured.
func (sc *ShellController) loadLists() error {
	guessPath := sc.cfg.WordPath("guess-list")
	freqPath := sc.cfg.WordPath("frequency-list")

	if guessPath == "" || freqPath == "" {
		log.Warn().Msg("no word lists configured; using the small built-in sample list")
		sc.allGuesses = wordlist.Sample()
		sc.startTargets = sc.allGuesses
	} else {
		guesses, err := wordlist.LoadWords(guessPath)
		if err != nil {
			return err
		}
		freqs, err := wordlist.LoadFrequencies(freqPath)
		if err != nil {
			return err
		}
		sc.allGuesses = guesses

		if sc.cfg.GetBool("solutions") {
			solutions, err := wordlist.LoadWords(sc.cfg.WordPath("solutions-list"))
			if err != nil {
				return err
			}
			sc.startTargets = wordlist.OrderSolutions(solutions, freqs)
		} else {
			sc.startTargets = wordlist.CommonTargets(freqs, guesses, sc.cfg.GetInt("common"))
		}
	}
	if len(sc.startTargets) == 0 {
		return errors.New("no candidate targets survived list filtering")
	}

	sc.guesses = sc.allGuesses
	sc.targets = sc.startTargets
	log.Info().
		Int("guesses", len(sc.guesses)).
		Int("targets", len(sc.targets)).
		Bool("hard", sc.hardMode).
		Msg("word lists ready")
	return nil
}

// Loop reads and executes commands until exit, EOF, or interrupt.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	sc.showMessage(sc.statusText())
	sc.showMessage("Type `suggest` for good guesses, `guess <word> <score>` after you play one, `help` for everything else.")

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			sig <- syscall.SIGINT
			break
		}
		if err := sc.standardModeSwitch(line); err != nil {
			sc.showError(err)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Execute runs a single command line, for non-interactive use.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	defer sc.l.Close()
	if err := sc.standardModeSwitch(strings.TrimSpace(line)); err != nil {
		sc.showError(err)
	}
}

func (sc *ShellController) Cleanup() {}

func (sc *ShellController) standardModeSwitch(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "show", "s":
		sc.showMessage(sc.statusText())

	case "suggest", "gen":
		n := DefaultSuggestions
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return errors.New("wrong format; try `suggest 20`")
			}
		}
		return sc.suggest(n)

	case "guess":
		if len(args) != 2 {
			return errors.New("wrong format; try `guess caddy .y..G`")
		}
		return sc.applyGuess(args[0], args[1])

	case "pair":
		if len(args) != 2 {
			return errors.New("wrong format; try `pair slate crony`")
		}
		return sc.estimatePair(args[0], args[1])

	case "hist":
		if len(args) != 1 {
			return errors.New("wrong format; try `hist slate`")
		}
		return sc.showHist(args[0])

	case "threads":
		if len(args) == 0 {
			sc.showMessage(fmt.Sprintf("threads: %d", sc.sug.Threads()))
			return nil
		}
		t, err := strconv.Atoi(args[0])
		if err != nil || t < 1 {
			return errors.New("threads must be a positive number")
		}
		sc.sug.SetThreads(t)
		sc.showMessage(fmt.Sprintf("threads: %d", t))

	case "hard":
		if len(args) == 0 {
			sc.showMessage(fmt.Sprintf("hard mode: %v", sc.hardMode))
			return nil
		}
		switch args[0] {
		case "on":
			sc.hardMode = true
		case "off":
			sc.hardMode = false
		default:
			return errors.New("try `hard on` or `hard off`")
		}
		sc.showMessage(fmt.Sprintf("hard mode: %v", sc.hardMode))

	case "autoplay":
		return sc.autoplay(args)

	case "reset":
		sc.guesses = sc.allGuesses
		sc.targets = sc.startTargets
		sc.sug = sc.newSuggester(sc.guesses)
		sc.showMessage(sc.statusText())

	case "help":
		sc.usage()

	default:
		return fmt.Errorf("command %q not found; try `help`", line)
	}
	return nil
}

func (sc *ShellController) newSuggester(guesses []string) *suggester.Suggester {
	s := suggester.NewSuggester(guesses)
	s.SetThreads(sc.sug.Threads())
	return s
}

// applyGuess culls the candidate list by the score the puzzle reported for
// a played guess. In hard mode the guess list gets the same cull.
func (sc *ShellController) applyGuess(word, scoreText string) error {
	w, ok := wordlist.Normalize(word)
	if !ok {
		return fmt.Errorf("your guess of %q was not exactly five letters", word)
	}
	observed, err := feedback.ParseScore(scoreText)
	if err != nil {
		return fmt.Errorf("%w: scores are %d characters, '.' = not in the word, "+
			"y = in the word but elsewhere, G = right letter right place",
			err, feedback.WordLength)
	}

	sc.targets = wordlist.Cull(sc.targets, w, observed)
	if sc.hardMode {
		sc.guesses = wordlist.Cull(sc.guesses, w, observed)
		sc.sug = sc.newSuggester(sc.guesses)
	}
	log.Debug().Str("guess", w).Stringer("score", observed).
		Int("remaining", len(sc.targets)).Msg("culled")

	if observed == feedback.AllCorrect {
		sc.showMessage("That's the word. Well done.")
		return nil
	}
	sc.showMessage(sc.statusText())
	return nil
}

func (sc *ShellController) usage() {
	sc.showMessage(`commands:
show - show the remaining possibilities
suggest [n] - evaluate every guess and list the n best (default 15)
guess <word> <score> - record a played guess and the reported score, e.g. guess caddy .y..G
    score characters: . = not in the word, y = wrong place, G = right place
pair <w1> <w2> - estimate how far two guesses narrow the field together
hist <word> - histogram of how the possibilities spread over a guess's outcomes
threads [n] - show or set evaluation workers
hard [on|off] - cull the guess list too, for hard-mode play
autoplay [games] [threads] - self-play games and report turns-to-solve
reset - restore the full lists
exit - leave`)
}
