package mines

// Values carried by an UpdatedCell. A revealed number is ShowCount|n.
const (
	ShowCount byte = 0x00
	ShowMine  byte = 0x10
	ShowFlag  byte = 0x20
	Unflag    byte = 0x30
)

// UpdatedCell is the visible state of one cell, as a view needs it to redraw.
type UpdatedCell struct {
	Row   int
	Col   int
	Value byte
}

func visibleValue(cell Cell) byte {
	switch {
	case cell.Revealed && cell.IsMine():
		return ShowMine
	case cell.Revealed:
		return ShowCount | byte(cell.Content.Adjacent())
	case cell.Flagged:
		return ShowFlag
	default:
		// Neither flagged nor revealed so it must be unflag
		return Unflag
	}
}

// Diff lists the cells whose revealed or flagged state differs between old
// and updated, in row-major order. Boards of different shape are treated as
// a full redraw of updated.
func Diff(old, updated *Board) []UpdatedCell {
	if old == updated || updated.Empty() {
		return nil
	}
	if old.Empty() || old.rows != updated.rows || old.cols != updated.cols {
		return Snapshot(updated)
	}
	var updates []UpdatedCell
	for i, cell := range updated.cells {
		prev := old.cells[i]
		if prev.Revealed == cell.Revealed && prev.Flagged == cell.Flagged {
			continue
		}
		p := updated.position(i)
		updates = append(updates, UpdatedCell{p.Row, p.Col, visibleValue(cell)})
	}
	return updates
}

// Snapshot lists every revealed or flagged cell of board.
func Snapshot(board *Board) []UpdatedCell {
	if board.Empty() {
		return nil
	}
	var updates []UpdatedCell
	for i, cell := range board.cells {
		if cell.Revealed || cell.Flagged {
			p := board.position(i)
			updates = append(updates, UpdatedCell{p.Row, p.Col, visibleValue(cell)})
		}
	}
	return updates
}
