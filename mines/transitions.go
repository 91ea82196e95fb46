package mines

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

// RevealCell reveals (row, col). Revealing a cell with no adjacent mines also
// reveals its neighbours, spreading through the connected zero region and
// its numbered border.
//
// The board itself is returned when nothing can change: the board is empty,
// the position is invalid, or the cell is already revealed or flagged.
func RevealCell(board *Board, row, col int) *Board {
	if !board.Valid(row, col) {
		return board
	}
	target := board.cell(row, col)
	if target.Revealed || target.Flagged {
		return board
	}
	revealed := board.Clone()
	cascade(revealed, Position{row, col})
	return revealed
}

// cascade reveals start and floods outwards from zero cells. board is
// modified in place and must not be shared.
func cascade(board *Board, start Position) {
	pending := stack.New[Position]()
	queued := mapset.New[int]()
	pending.Push(start)
	queued.Put(board.index(start.Row, start.Col))

	for pending.Size() > 0 {
		p := pending.Pop()
		cell := board.cell(p.Row, p.Col)
		if cell.Revealed || cell.Flagged {
			continue
		}
		cell.Revealed = true
		if cell.IsMine() || cell.Content.Adjacent() != 0 {
			continue
		}
		for _, n := range GetNeighbors(p.Row, p.Col, board.rows, board.cols) {
			i := board.index(n.Row, n.Col)
			if queued.Has(i) {
				continue
			}
			queued.Put(i)
			pending.Push(n)
		}
	}
}

// RevealAllMines returns a copy of board with every mine revealed. A flag on
// a mine is dropped as it is revealed; other cells are left as they are.
func RevealAllMines(board *Board) *Board {
	revealed := board.Clone()
	for i := range revealed.cells {
		if revealed.cells[i].IsMine() {
			revealed.cells[i].Revealed = true
			revealed.cells[i].Flagged = false
		}
	}
	return revealed
}

// ToggleFlag flips the flag on a hidden cell. The board itself is returned
// for an empty board, an invalid position or a revealed cell.
func ToggleFlag(board *Board, row, col int) *Board {
	if !board.Valid(row, col) || board.cell(row, col).Revealed {
		return board
	}
	flagged := board.Clone()
	cell := flagged.cell(row, col)
	cell.Flagged = !cell.Flagged
	return flagged
}

func CountFlags(board *Board) int {
	return board.count(func(c Cell) bool { return c.Flagged })
}

// CheckGameLost reports whether any mine has been revealed.
func CheckGameLost(board *Board) bool {
	return board.count(func(c Cell) bool { return c.IsMine() && c.Revealed }) > 0
}

// CheckGameWon reports whether every non-mine cell is revealed. Flags play
// no part, and an empty board is never won.
func CheckGameWon(board *Board) bool {
	if board.Empty() {
		return false
	}
	return board.count(func(c Cell) bool { return !c.IsMine() && !c.Revealed }) == 0
}
