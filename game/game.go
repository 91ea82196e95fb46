package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/tomasstrnad1997/minesweeper/mines"
)

type MoveType byte

const (
	Reveal MoveType = 0x01
	Flag   MoveType = 0x02
)

type Move struct {
	Row  int
	Col  int
	Type MoveType
}

func (move Move) String() string {
	msg := fmt.Sprintf("(%d, %d) ", move.Row, move.Col)
	switch move.Type {
	case Reveal:
		return msg + "Reveal"
	case Flag:
		return msg + "Flag"
	default:
		return msg + "UNKNOWN"
	}
}

type MoveResultType int

const (
	NoChange MoveResultType = iota
	MineBlown
	CellRevealed
	Flagged
	GameWon
)

func (r MoveResultType) String() string {
	switch r {
	case NoChange:
		return "no change"
	case MineBlown:
		return "mine blown"
	case CellRevealed:
		return "cell revealed"
	case Flagged:
		return "flagged"
	case GameWon:
		return "game won"
	default:
		return "unknown"
	}
}

type MoveResult struct {
	Result  MoveResultType
	Updated []mines.UpdatedCell
}

type State int

const (
	Ready State = iota
	Playing
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

var (
	ErrGameOver        = errors.New("game is over")
	ErrUnknownMoveType = errors.New("unknown move type")
)

type InvalidMoveError struct {
	Move Move
	Rows int
	Cols int
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("move out of range - (%d, %d) - board (%d, %d)", e.Move.Row, e.Move.Col, e.Rows, e.Cols)
}

// Game owns the current board of one session and applies moves to it. The
// mines are generated on the first reveal so that the first revealed cell
// and its neighbours are always safe.
type Game struct {
	Config mines.GameConfig

	board *mines.Board
	state State
	gen   *mines.Generator
	log   *logrus.Entry
}

type Option func(*Game)

func WithGenerator(gen *mines.Generator) Option {
	return func(g *Game) {
		g.gen = gen
	}
}

func WithLogger(log *logrus.Entry) Option {
	return func(g *Game) {
		g.log = log
	}
}

func New(cfg mines.GameConfig, opts ...Option) *Game {
	g := &Game{
		Config: cfg,
		board:  mines.NewBoard(cfg.Rows, cfg.Cols),
		state:  Ready,
		gen:    mines.DefaultGenerator,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		g.log = logrus.NewEntry(discard)
	}
	return g
}

func (g *Game) Board() *mines.Board {
	return g.board
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Over() bool {
	return g.state == Won || g.state == Lost
}

// MinesRemaining is the mine count minus placed flags. Before the first
// reveal the configured count is used; afterwards the mines actually placed,
// which can be fewer when the board had no room. It goes negative when the
// player has placed more flags than there are mines.
func (g *Game) MinesRemaining() int {
	total := g.Config.MineCount
	if g.state != Ready {
		total = mines.CountMines(g.board)
	}
	return total - mines.CountFlags(g.board)
}

// Updates lists every visible cell, for a view that needs a full redraw.
func (g *Game) Updates() []mines.UpdatedCell {
	return mines.Snapshot(g.board)
}

func (g *Game) MakeMove(move Move) (*MoveResult, error) {
	switch move.Type {
	case Reveal:
		return g.Reveal(move.Row, move.Col)
	case Flag:
		return g.Flag(move.Row, move.Col)
	default:
		return nil, fmt.Errorf("%w %x", ErrUnknownMoveType, byte(move.Type))
	}
}

func (g *Game) Reveal(row, col int) (*MoveResult, error) {
	if err := g.checkMove(Move{row, col, Reveal}); err != nil {
		return nil, err
	}
	before := g.board
	if before.At(row, col).Flagged {
		return &MoveResult{NoChange, nil}, nil
	}
	if g.state == Ready {
		g.start(row, col)
	}

	board := mines.RevealCell(g.board, row, col)
	if board == g.board {
		return &MoveResult{NoChange, nil}, nil
	}

	result := CellRevealed
	switch {
	case mines.CheckGameLost(board):
		board = mines.RevealAllMines(board)
		g.state = Lost
		result = MineBlown
	case mines.CheckGameWon(board):
		g.state = Won
		result = GameWon
	}
	g.board = board
	g.log.WithFields(logrus.Fields{
		"row":    row,
		"col":    col,
		"result": result,
	}).Debug("cell revealed")
	if g.Over() {
		g.log.WithField("state", g.state).Info("game over")
	}
	return &MoveResult{result, mines.Diff(before, board)}, nil
}

func (g *Game) Flag(row, col int) (*MoveResult, error) {
	if err := g.checkMove(Move{row, col, Flag}); err != nil {
		return nil, err
	}
	before := g.board
	board := mines.ToggleFlag(before, row, col)
	if board == before {
		return &MoveResult{NoChange, nil}, nil
	}
	g.board = board
	g.log.WithFields(logrus.Fields{
		"row":     row,
		"col":     col,
		"flagged": board.At(row, col).Flagged,
	}).Debug("flag toggled")
	return &MoveResult{Flagged, mines.Diff(before, board)}, nil
}

// start generates the minefield around the first reveal and carries over any
// flags placed before it.
func (g *Game) start(row, col int) {
	board := g.gen.CreateBoard(g.Config, &mines.Position{Row: row, Col: col})
	for r := 0; r < g.board.Rows(); r++ {
		for c := 0; c < g.board.Cols(); c++ {
			if g.board.At(r, c).Flagged {
				board = mines.ToggleFlag(board, r, c)
			}
		}
	}
	g.board = board
	g.state = Playing
	g.log.WithFields(logrus.Fields{
		"rows":  g.Config.Rows,
		"cols":  g.Config.Cols,
		"mines": mines.CountMines(board),
	}).Info("minefield generated")
}

func (g *Game) checkMove(move Move) error {
	if g.Over() {
		return ErrGameOver
	}
	if !g.board.Valid(move.Row, move.Col) {
		return &InvalidMoveError{move, g.board.Rows(), g.board.Cols()}
	}
	return nil
}
