package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/require"

	"github.com/tomasstrnad1997/minesweeper/game"
	"github.com/tomasstrnad1997/minesweeper/mines"
	"github.com/tomasstrnad1997/minesweeper/render"
)

type keepOrder struct{}

func (keepOrder) Shuffle(n int, swap func(i, j int)) {}

func TestBoardPlain(t *testing.T) {
	board := mines.CreateBoardWithMines(3, 3, []mines.Position{{Row: 0, Col: 0}})
	board = mines.ToggleFlag(board, 0, 0)
	board = mines.RevealCell(board, 2, 2)

	var buf bytes.Buffer
	r := render.New(render.Options{})
	require.NoError(t, r.Board(&buf, board))

	want := "" +
		"   0 1 2\n" +
		" 0 F 1 .\n" +
		" 1 1 1 .\n" +
		" 2 . . .\n"
	require.Equal(t, want, buf.String())
}

func TestBoardWideLabels(t *testing.T) {
	board := mines.NewBoard(2, 11)
	var buf bytes.Buffer
	require.NoError(t, render.New(render.Options{}).Board(&buf, board))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasSuffix(lines[0], " 9 10"))
	require.Equal(t, "  0"+strings.Repeat("  #", 11), lines[1])
	require.Equal(t, render.Width(board), len(lines[1]))
}

func TestBoardColorKeepsLayout(t *testing.T) {
	board := mines.RevealCell(mines.CreateBoardWithMines(3, 3, []mines.Position{{Row: 0, Col: 0}}), 2, 2)

	var plain, colored bytes.Buffer
	require.NoError(t, render.New(render.Options{}).Board(&plain, board))
	require.NoError(t, render.New(render.Options{Color: true}).Board(&colored, board))
	require.Equal(t, plain.String(), color.ClearCode(colored.String()))
}

func TestEmptyBoardWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.New(render.Options{}).Board(&buf, mines.NewBoard(0, 4)))
	require.Empty(t, buf.String())
}

func TestStatus(t *testing.T) {
	cfg := mines.GameConfig{Rows: 3, Cols: 3, MineCount: 1}
	g := game.New(cfg, game.WithGenerator(mines.NewGenerator(keepOrder{})))
	r := render.New(render.Options{})

	require.Equal(t, "Mines left: 1", r.Status(g))
	_, err := g.Flag(0, 0)
	require.NoError(t, err)
	_, err = g.Flag(0, 1)
	require.NoError(t, err)
	require.Equal(t, "Mines left: -1", r.Status(g))
	_, err = g.Flag(0, 1)
	require.NoError(t, err)

	// The only mine lands on (0,0), so revealing the far corner clears the board.
	result, err := g.Reveal(2, 2)
	require.NoError(t, err)
	require.Equal(t, game.GameWon, result.Result)
	require.Equal(t, "You won!", r.Status(g))

	var buf bytes.Buffer
	require.NoError(t, r.Frame(&buf, g))
	require.True(t, strings.HasSuffix(buf.String(), "You won!\n"))
}

func TestResult(t *testing.T) {
	r := render.New(render.Options{})
	require.Equal(t, "Nothing happened.", r.Result(&game.MoveResult{Result: game.NoChange}))
	require.Equal(t, "Revealed 2 cells.", r.Result(&game.MoveResult{
		Result:  game.CellRevealed,
		Updated: make([]mines.UpdatedCell, 2),
	}))
}
