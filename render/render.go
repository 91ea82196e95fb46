package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"github.com/tomasstrnad1997/minesweeper/game"
	"github.com/tomasstrnad1997/minesweeper/mines"
)

// Glyphs used for cells that are not a revealed number.
const (
	IconHidden = "#"
	IconFlag   = "F"
	IconMine   = "*"
	IconZero   = "."
)

type Options struct {
	Color bool
	// LocalesDir holds gettext catalogues for Locale. Empty keeps the
	// built-in English strings.
	LocalesDir string
	Locale     string
}

// Renderer draws boards and status lines for a terminal.
type Renderer struct {
	color bool

	colorHidden  color.Style
	colorFlag    color.Style
	colorMine    color.Style
	colorZero    color.Style
	colorHeader  color.Style
	colorWon     color.Style
	colorLost    color.Style
	colorNumbers [9]color.Style
}

func New(opts Options) *Renderer {
	if opts.LocalesDir != "" {
		gotext.Configure(opts.LocalesDir, opts.Locale, "default")
	}
	r := &Renderer{color: opts.Color}
	r.colorHidden = color.Style{color.FgGray}
	r.colorFlag = color.Style{color.FgRed, color.OpBold}
	r.colorMine = color.Style{color.FgBlack, color.BgRed, color.OpBold}
	r.colorZero = color.Style{color.FgDarkGray}
	r.colorHeader = color.Style{color.FgCyan}
	r.colorWon = color.Style{color.FgGreen, color.OpBold}
	r.colorLost = color.Style{color.FgRed, color.OpBold}
	r.colorNumbers = [9]color.Style{
		{},
		{color.FgBlue},
		{color.FgGreen},
		{color.FgRed},
		{color.FgMagenta},
		{color.FgYellow},
		{color.FgCyan},
		{color.FgWhite},
		{color.FgGray},
	}
	return r
}

func (r *Renderer) paint(style color.Style, text string) string {
	if !r.color {
		return text
	}
	return style.Sprint(text)
}

// cellWidth is wide enough for the largest row or column label plus a space.
func cellWidth(board *mines.Board) int {
	return len(strconv.Itoa(max(board.Rows(), board.Cols())-1)) + 1
}

// Width is the number of terminal columns Board needs.
func Width(board *mines.Board) int {
	w := cellWidth(board)
	return w * (board.Cols() + 1)
}

func (r *Renderer) cell(c mines.Cell) string {
	switch {
	case c.Revealed && c.IsMine():
		return r.paint(r.colorMine, IconMine)
	case c.Revealed && c.Content.Adjacent() == 0:
		return r.paint(r.colorZero, IconZero)
	case c.Revealed:
		n := c.Content.Adjacent()
		return r.paint(r.colorNumbers[n], strconv.Itoa(n))
	case c.Flagged:
		return r.paint(r.colorFlag, IconFlag)
	default:
		return r.paint(r.colorHidden, IconHidden)
	}
}

// Board writes the board with row numbers down the left and column numbers
// across the top.
func (r *Renderer) Board(w io.Writer, board *mines.Board) error {
	if board.Empty() {
		return nil
	}
	width := cellWidth(board)
	pad := func(s string) string {
		visible := len(color.ClearCode(s))
		return strings.Repeat(" ", max(width-visible, 0)) + s
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width))
	for c := 0; c < board.Cols(); c++ {
		sb.WriteString(pad(r.paint(r.colorHeader, strconv.Itoa(c))))
	}
	sb.WriteByte('\n')
	for row := 0; row < board.Rows(); row++ {
		sb.WriteString(pad(r.paint(r.colorHeader, strconv.Itoa(row))))
		for col := 0; col < board.Cols(); col++ {
			sb.WriteString(pad(r.cell(board.At(row, col))))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Status describes the game for the line under the board.
func (r *Renderer) Status(g *game.Game) string {
	switch g.State() {
	case game.Won:
		return r.paint(r.colorWon, gotext.Get("You won!"))
	case game.Lost:
		return r.paint(r.colorLost, gotext.Get("Boom! You hit a mine."))
	default:
		return gotext.Get("Mines left: %d", g.MinesRemaining())
	}
}

// Result describes the outcome of a single move.
func (r *Renderer) Result(result *game.MoveResult) string {
	switch result.Result {
	case game.NoChange:
		return gotext.Get("Nothing happened.")
	case game.Flagged:
		return gotext.Get("Flag toggled.")
	case game.CellRevealed:
		return gotext.Get("Revealed %d cells.", len(result.Updated))
	default:
		return ""
	}
}

// Frame writes the board and the status line.
func (r *Renderer) Frame(w io.Writer, g *game.Game) error {
	if err := r.Board(w, g.Board()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, r.Status(g))
	return err
}
