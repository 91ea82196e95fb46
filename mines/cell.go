package mines

import "strconv"

// Content is what a cell holds: either a mine or the number of mines in its
// 8-neighbourhood. The zero value is Adjacent(0).
type Content struct {
	mine     bool
	adjacent uint8
}

func MineContent() Content {
	return Content{mine: true}
}

// AdjacentContent returns a numbered content. n is clamped to [0, 8].
func AdjacentContent(n int) Content {
	n = max(0, min(n, 8))
	return Content{adjacent: uint8(n)}
}

func (c Content) IsMine() bool {
	return c.mine
}

// Adjacent returns the neighbouring mine count, 0 for a mine.
func (c Content) Adjacent() int {
	if c.mine {
		return 0
	}
	return int(c.adjacent)
}

func (c Content) String() string {
	if c.mine {
		return "*"
	}
	return strconv.Itoa(int(c.adjacent))
}

type Cell struct {
	Content  Content
	Revealed bool
	Flagged  bool
}

func (c Cell) IsMine() bool {
	return c.Content.IsMine()
}

// Position addresses a cell by row and column. It is not bounds checked;
// use IsValidPosition against a board's dimensions.
type Position struct {
	Row int
	Col int
}

// GameConfig holds the three parameters a game is generated from.
type GameConfig struct {
	Rows      int
	Cols      int
	MineCount int
}
