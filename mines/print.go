package mines

import "strings"

// String draws the board as a player sees it: '#' hidden, 'F' flagged,
// '*' a revealed mine, '.' a revealed zero and digits for numbers.
func (board *Board) String() string {
	return board.draw(func(c Cell) byte {
		switch {
		case c.Revealed && c.IsMine():
			return '*'
		case c.Revealed && c.Content.Adjacent() == 0:
			return '.'
		case c.Revealed:
			return byte('0' + c.Content.Adjacent())
		case c.Flagged:
			return 'F'
		default:
			return '#'
		}
	})
}

// MinesString draws the minefield regardless of what has been revealed.
func (board *Board) MinesString() string {
	return board.draw(func(c Cell) byte {
		if c.IsMine() {
			return 'O'
		}
		return '#'
	})
}

func (board *Board) draw(glyph func(Cell) byte) string {
	if board.Empty() {
		return ""
	}
	var sb strings.Builder
	sb.Grow(board.rows * (board.cols + 1))
	for r := 0; r < board.rows; r++ {
		for c := 0; c < board.cols; c++ {
			sb.WriteByte(glyph(*board.cell(r, c)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
