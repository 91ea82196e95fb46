package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tomasstrnad1997/minesweeper/config"
	"github.com/tomasstrnad1997/minesweeper/game"
	"github.com/tomasstrnad1997/minesweeper/mines"
	"github.com/tomasstrnad1997/minesweeper/render"
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

const usage = `Minesweeper in the terminal.

Usage:
  minesweeper [options]

Commands while playing:
  <row> <col>       reveal a cell
  <row> <col> f     toggle a flag (also "f <row> <col>")
  q                 quit

Options:
`

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, in io.Reader, out, errOut io.Writer) error {
	flagSet := flag.NewFlagSet("minesweeper", flag.ContinueOnError)
	flagSet.SetOutput(out)
	flagSet.Usage = func() {
		fmt.Fprint(out, usage)
		flagSet.PrintDefaults()
	}
	configPath := flagSet.String("config", os.Getenv("MINES_CONFIG"), "Path to an HCL config file.")
	rows := flagSet.Int("rows", 0, "Number of rows.")
	cols := flagSet.Int("cols", 0, "Number of columns.")
	mineCount := flagSet.Int("mines", 0, "Number of mines.")
	seed := flagSet.Int64("seed", 0, "Seed for mine placement. 0 picks a random layout.")
	logLevel := flagSet.String("log-level", "warning", "Log level: debug, info, warning or error.")
	noColor := flagSet.Bool("no-color", false, "Disable coloured output.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}

	log := logrus.New()
	log.SetOutput(errOut)
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	log.SetLevel(level)

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
	}
	if cfg, err = config.FromEnv(cfg); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rows
		case "cols":
			cfg.Cols = *cols
		case "mines":
			cfg.Mines = *mineCount
		case "seed":
			cfg.Seed = *seed
		case "no-color":
			cfg.Color = cfg.Color && !*noColor
		}
	})
	if f, ok := out.(*os.File); !ok || !render.IsTerminal(f) {
		cfg.Color = false
	}
	log.WithFields(logrus.Fields{
		"rows":  cfg.Rows,
		"cols":  cfg.Cols,
		"mines": cfg.Mines,
		"seed":  cfg.Seed,
	}).Debug("configuration loaded")

	opts := []game.Option{game.WithLogger(logrus.NewEntry(log))}
	if cfg.Seed != 0 {
		opts = append(opts, game.WithGenerator(mines.NewGenerator(rand.New(rand.NewSource(cfg.Seed)))))
	}
	g := game.New(cfg.GameConfig(), opts...)
	r := render.New(render.Options{Color: cfg.Color, Locale: cfg.Locale, LocalesDir: cfg.LocalesDir})

	if width := render.Width(g.Board()); !render.Fits(width) {
		log.WithField("width", width).Warn("board is wider than the terminal")
	}
	return play(g, r, in, out)
}

func play(g *game.Game, r *render.Renderer, in io.Reader, out io.Writer) error {
	if err := r.Frame(out, g); err != nil {
		return err
	}
	scanner := bufio.NewScanner(in)
	for !g.Over() {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "q", "quit":
			return nil
		}

		move, err := game.ParseCommand(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		result, err := g.MakeMove(move)
		var invalid *game.InvalidMoveError
		if errors.As(err, &invalid) {
			fmt.Fprintln(out, err)
			continue
		}
		if err != nil {
			return err
		}
		if msg := r.Result(result); msg != "" {
			fmt.Fprintln(out, msg)
		}
		if err := r.Frame(out, g); err != nil {
			return err
		}
	}
	return scanner.Err()
}
