package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jason-s-yu/minicheckers/engine"
	"github.com/jason-s-yu/minicheckers/service/internal/config"
	"github.com/jason-s-yu/minicheckers/service/internal/game"
	"github.com/sirupsen/logrus"
)

func main() {
	var (
		envFile    = flag.String("env", "", "optional .env file (default ./.env if present)")
		difficulty = flag.String("difficulty", "", "easy, medium or hard (overrides "+config.EnvDifficulty+")")
		depth      = flag.Int("depth", 0, "search cutoff depth (overrides "+config.EnvCutoffDepth+")")
		first      = flag.String("first", "", "human or machine (overrides "+config.EnvFirstMover+")")
	)
	flag.Parse()

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	if *difficulty != "" {
		if cfg.Difficulty, err = engine.ParseDifficulty(*difficulty); err != nil {
			fmt.Fprintln(os.Stderr, "-difficulty:", err)
			os.Exit(2)
		}
	}
	if *depth > 0 {
		cfg.CutoffDepth = *depth
	}
	if *first != "" {
		if cfg.FirstMover, err = config.ParseFirstMover(*first); err != nil {
			fmt.Fprintln(os.Stderr, "-first:", err)
			os.Exit(2)
		}
	}

	logger := cfg.NewLogger(os.Stderr)
	s, err := game.NewSession(cfg.Rules(), logger)
	if err != nil {
		logger.WithError(err).Fatal("cannot create session")
	}
	s.BroadcastFn = func(ev game.GameEvent) { printEvent(os.Stdout, ev) }

	fmt.Printf("Mini-checkers: you are H (moving up), the machine is C | difficulty=%s depth=%d first=%s\n",
		cfg.Difficulty, cfg.CutoffDepth, cfg.FirstMover)
	fmt.Println("Enter moves as \"row,col row,col\"; \"moves\" lists legal moves, \"quit\" exits.")

	s.Start()
	play(s, bufio.NewScanner(os.Stdin), os.Stdout, logger)
}

// play reads human moves from in until the game ends or input runs out.
func play(s *game.Session, in *bufio.Scanner, out io.Writer, logger *logrus.Logger) {
	for {
		snap := s.Snapshot()
		printBoard(out, snap.Board)
		if snap.GameOver {
			fmt.Fprintf(out, "Game over: %s\n", snap.Outcome)
			return
		}

		fmt.Fprint(out, "> ")
		if !in.Scan() {
			fmt.Fprintln(out)
			return
		}
		line := strings.TrimSpace(in.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return
		case "moves":
			for _, a := range s.HumanActions() {
				fmt.Fprintln(out, " ", a)
			}
			continue
		}

		from, to, err := parseMove(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if _, err := s.SubmitHumanMove(from, to); err != nil {
			if errors.Is(err, engine.ErrInvalidAction) {
				fmt.Fprintln(out, "Illegal move, try again (\"moves\" lists them).")
				continue
			}
			logger.WithError(err).Warn("move not accepted")
		}
	}
}

// parseMove reads "r,c r,c" or "r,c-r,c".
func parseMove(line string) (engine.Position, engine.Position, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == '-' || r == 'x' })
	if len(fields) != 2 {
		return engine.Position{}, engine.Position{}, fmt.Errorf("want two positions, got %q", line)
	}
	from, err := engine.ParsePosition(fields[0])
	if err != nil {
		return engine.Position{}, engine.Position{}, err
	}
	to, err := engine.ParsePosition(fields[1])
	if err != nil {
		return engine.Position{}, engine.Position{}, err
	}
	return from, to, nil
}

func printBoard(out io.Writer, rows []string) {
	fmt.Fprintln(out, "   0 1 2 3 4 5")
	for i, row := range rows {
		fmt.Fprintf(out, "%d  %s\n", i, strings.Join(strings.Split(row, ""), " "))
	}
}

func printEvent(out io.Writer, ev game.GameEvent) {
	switch ev.Type {
	case game.EventMachineMove:
		fmt.Fprintf(out, "Machine plays %s (nodes=%d depth=%d prunes=%d/%d)\n",
			ev.Action, ev.Stats.Nodes, ev.Stats.MaxDepth, ev.Stats.MaxPrunes, ev.Stats.MinPrunes)
	case game.EventMachinePass:
		fmt.Fprintln(out, "Machine has no move and passes.")
	case game.EventHumanPass:
		fmt.Fprintln(out, "You have no move; your pieces are frozen and the machine plays again.")
	case game.EventPiecesReactivated:
		fmt.Fprintf(out, "Reactivated: %v\n", ev.Positions)
	}
}
