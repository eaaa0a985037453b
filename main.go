package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"hex/engine"
	"hex/experiments"
	"hex/game"
	"hex/meta"
	"hex/searcher"
	"hex/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	experiment := flag.String("experiment", "", "Path to a YAML experiment config; plays AI vs AI match-ups instead of an interactive game")
	size := flag.Int("size", 0, "Board size in [3,11]; prompts when 0")
	player := flag.Int("player", 0, "1 to play Blue (top-bottom, moves first), 2 to play Red (left-right); prompts when 0")
	trials := flag.Int("trials", meta.TRIALS, "Random playouts per candidate move")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Number of goroutines evaluating candidate moves")
	seed := flag.Uint64("seed", 0, "Seed for reproducible AI moves; random when 0")
	parity := flag.String("parity", "true", "Playout fill order: \"true\" continues real alternation, \"ai-first\" starts with the AI")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if *experiment != "" {
		cfg, err := experiments.LoadConfig(*experiment)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load experiment")
		}
		summary, err := experiments.Run(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		log.Info().Msgf("wins by agent: %v", summary.Wins)
		return
	}

	options := []searcher.Option{searcher.WithTrials(*trials), searcher.WithGoroutines(*goroutines)}
	if *seed != 0 {
		options = append(options, searcher.WithSeed(*seed))
	}
	switch *parity {
	case "true":
		options = append(options, searcher.WithParity(searcher.TrueParity))
	case "ai-first":
		options = append(options, searcher.WithParity(searcher.AIFirstParity))
	default:
		log.Fatal().Msgf("unknown parity %q", *parity)
	}

	if err := play(os.Stdin, os.Stdout, *player, *size, options); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

func play(r io.Reader, w io.Writer, player, size int, options []searcher.Option) error {
	in := bufio.NewScanner(r)

	fmt.Fprintln(w, "Starting Hex Game")
	fmt.Fprintln(w, "*****************************")
	fmt.Fprintln(w, "Top and Bottom sides are BLUE")
	fmt.Fprintln(w, "Left and Right sides are RED")
	fmt.Fprintln(w, "*****************************")

	var human game.Player
	var err error
	if player == 1 || player == 2 {
		human = colourFor(player)
	} else if human, err = promptPlayer(in, w); err != nil {
		return err
	}
	if size < meta.MIN_SIZE || size > meta.MAX_SIZE {
		if size, err = promptSize(in, w); err != nil {
			return err
		}
	}

	ai := human.Opponent()
	board, err := game.NewBoard(size, game.Blue, ai, human)
	if err != nil {
		return err
	}

	humanAgent := agent.NewHumanAgent(in, w)
	aiAgent := agent.NewEvaluationAgent(options...)
	blue, red := humanAgent, aiAgent
	if human == game.Red {
		blue, red = aiAgent, humanAgent
	}

	e := engine.NewLocalEngine(board, blue, red)
	e.Display = w
	winner, _, _, err := e.Run()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Player %s has won the game!\n", winner)
	return nil
}

func colourFor(selection int) game.Player {
	if selection == 2 {
		return game.Red
	}
	return game.Blue
}

// promptPlayer asks which colour the human plays until the answer is 1 or 2.
func promptPlayer(in *bufio.Scanner, w io.Writer) (game.Player, error) {
	for {
		fmt.Fprintln(w, "Enter 1 to play as Player 1 (Blue) or 2 for Player 2 (Red)")
		selection, err := readInt(in)
		if err != nil {
			return game.Empty, err
		}
		if selection == 1 || selection == 2 {
			return colourFor(selection), nil
		}
		fmt.Fprintln(w, "Invalid selection! Try again")
	}
}

// promptSize asks for the board size until it lies in [MIN_SIZE, MAX_SIZE].
func promptSize(in *bufio.Scanner, w io.Writer) (int, error) {
	for {
		fmt.Fprintln(w, "Enter size of board")
		size, err := readInt(in)
		if err != nil {
			return 0, err
		}
		if size >= meta.MIN_SIZE && size <= meta.MAX_SIZE {
			return size, nil
		}
		fmt.Fprintf(w, "Size of board should be between %d and %d.\n", meta.MIN_SIZE, meta.MAX_SIZE)
	}
}

// readInt returns the next line as an integer, or -1 if it is not one.
func readInt(in *bufio.Scanner) (int, error) {
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
	if err != nil {
		return -1, nil
	}
	return n, nil
}
