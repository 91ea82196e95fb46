package mines_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tomasstrnad1997/minesweeper/mines"
)

// keepOrder leaves the candidate order untouched.
type keepOrder struct{}

func (keepOrder) Shuffle(n int, swap func(i, j int)) {}

func TestMinePositionsCount(t *testing.T) {
	positions := mines.GenerateMinePositions(10, 10, 15, nil)
	require.Len(t, positions, 15)

	seen := map[mines.Position]bool{}
	for _, p := range positions {
		if seen[p] {
			t.Fatalf("duplicate mine position %v", p)
		}
		seen[p] = true
		if !mines.IsValidPosition(p.Row, p.Col, 10, 10) {
			t.Fatalf("mine placed off the board at %v", p)
		}
	}
}

func TestMinePositionsSafeZone(t *testing.T) {
	exclude := &mines.Position{Row: 2, Col: 2}
	for i := 0; i < 50; i++ {
		for _, p := range mines.GenerateMinePositions(5, 5, 16, exclude) {
			if p.Row >= 1 && p.Row <= 3 && p.Col >= 1 && p.Col <= 3 {
				t.Fatalf("mine placed in safe zone at %v", p)
			}
		}
	}
}

func TestMinePositionsClamped(t *testing.T) {
	got := mines.GenerateMinePositions(3, 3, 10, &mines.Position{Row: 1, Col: 1})
	require.Empty(t, got)

	got = mines.GenerateMinePositions(3, 3, 10, &mines.Position{Row: 0, Col: 0})
	require.Len(t, got, 5)

	got = mines.GenerateMinePositions(2, 2, 10, nil)
	require.Len(t, got, 4)

	got = mines.GenerateMinePositions(4, 4, -3, nil)
	require.Empty(t, got)
}

func TestMinePositionsOffBoardExclude(t *testing.T) {
	// Only the on-board neighbour (0,0) is kept free; the off-board centre
	// takes no room away from the grid.
	got := mines.GenerateMinePositions(3, 3, 9, &mines.Position{Row: -1, Col: -1})
	require.Len(t, got, 8)
	for _, p := range got {
		if p == (mines.Position{Row: 0, Col: 0}) {
			t.Fatalf("mine placed next to the excluded position at %v", p)
		}
	}
}

func TestMinePositionsDeterministic(t *testing.T) {
	gen := mines.NewGenerator(keepOrder{})
	got := gen.MinePositions(3, 3, 3, &mines.Position{Row: 0, Col: 0})
	want := []mines.Position{{0, 2}, {1, 2}, {2, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected positions (-want +got):\n%s", diff)
	}

	first := mines.NewGenerator(rand.New(rand.NewSource(7))).MinePositions(8, 8, 10, nil)
	second := mines.NewGenerator(rand.New(rand.NewSource(7))).MinePositions(8, 8, 10, nil)
	require.Equal(t, first, second)
}

func TestPlaceMinesCopies(t *testing.T) {
	board := mines.NewBoard(3, 3)
	placed := mines.PlaceMines(board, []mines.Position{{0, 1}, {2, 2}})

	require.NotSame(t, board, placed)
	require.Equal(t, 0, mines.CountMines(board), "input board was modified")
	require.Equal(t, 2, mines.CountMines(placed))
	require.True(t, placed.At(0, 1).IsMine())
	require.True(t, placed.At(2, 2).IsMine())
	require.False(t, placed.At(1, 1).IsMine())
}
