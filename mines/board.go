package mines

// Board is a rectangular grid of cells stored row-major. Operations in this
// package never modify a board they are given: a change produces a new
// *Board, and a call that changes nothing returns its argument.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// NewBoard returns a board with every cell empty, hidden and unflagged.
// Negative dimensions are treated as 0.
func NewBoard(rows, cols int) *Board {
	rows = max(rows, 0)
	cols = max(cols, 0)
	return &Board{rows, cols, make([]Cell, rows*cols)}
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Cols() int {
	return board.cols
}

// Empty reports whether the board has no cells (0 rows or 0 columns).
func (board *Board) Empty() bool {
	return board == nil || board.rows == 0 || board.cols == 0
}

func (board *Board) Valid(row, col int) bool {
	return !board.Empty() && IsValidPosition(row, col, board.rows, board.cols)
}

// At returns a copy of the cell at (row, col). Out of range positions yield
// the zero Cell.
func (board *Board) At(row, col int) Cell {
	if !board.Valid(row, col) {
		return Cell{}
	}
	return board.cells[board.index(row, col)]
}

func (board *Board) Clone() *Board {
	if board == nil {
		return NewBoard(0, 0)
	}
	cells := make([]Cell, len(board.cells))
	copy(cells, board.cells)
	return &Board{board.rows, board.cols, cells}
}

func (board *Board) index(row, col int) int {
	return row*board.cols + col
}

func (board *Board) position(index int) Position {
	return Position{index / board.cols, index % board.cols}
}

func (board *Board) cell(row, col int) *Cell {
	return &board.cells[board.index(row, col)]
}

// PlaceMines returns a copy of board with a mine at each valid position.
func PlaceMines(board *Board, positions []Position) *Board {
	placed := board.Clone()
	for _, p := range positions {
		if placed.Valid(p.Row, p.Col) {
			placed.cell(p.Row, p.Col).Content = MineContent()
		}
	}
	return placed
}

// CountAdjacentMines counts the mines around (row, col). It returns 0 for an
// empty board or an invalid position.
func CountAdjacentMines(board *Board, row, col int) int {
	if !board.Valid(row, col) {
		return 0
	}
	mines := 0
	for _, n := range GetNeighbors(row, col, board.rows, board.cols) {
		if board.cell(n.Row, n.Col).IsMine() {
			mines++
		}
	}
	return mines
}

// CalculateNumbers returns a copy of board with every non-mine cell holding
// its adjacent mine count.
func CalculateNumbers(board *Board) *Board {
	numbered := board.Clone()
	if numbered.Empty() {
		return numbered
	}
	for i := range numbered.cells {
		if numbered.cells[i].IsMine() {
			continue
		}
		p := numbered.position(i)
		numbered.cells[i].Content = AdjacentContent(CountAdjacentMines(board, p.Row, p.Col))
	}
	return numbered
}

// CreateBoard builds a board for cfg using the process-wide random source.
// When exclude is set, neither it nor its neighbours receive a mine.
func CreateBoard(cfg GameConfig, exclude *Position) *Board {
	return DefaultGenerator.CreateBoard(cfg, exclude)
}

// CreateBoardWithMines builds a board with mines at exactly the given positions.
func CreateBoardWithMines(rows, cols int, positions []Position) *Board {
	return CalculateNumbers(PlaceMines(NewBoard(rows, cols), positions))
}

func CountMines(board *Board) int {
	return board.count(func(c Cell) bool { return c.IsMine() })
}

func CountRevealed(board *Board) int {
	return board.count(func(c Cell) bool { return c.Revealed })
}

func (board *Board) count(match func(Cell) bool) int {
	if board.Empty() {
		return 0
	}
	n := 0
	for _, c := range board.cells {
		if match(c) {
			n++
		}
	}
	return n
}
