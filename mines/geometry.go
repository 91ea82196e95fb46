package mines

func IsValidPosition(row, col, rows, cols int) bool {
	return !(row < 0 || row >= rows || col < 0 || col >= cols)
}

// GetNeighbors returns the valid positions at Chebyshev distance 1 from
// (row, col), scanned top row first, left to right.
func GetNeighbors(row, col, rows, cols int) []Position {
	neighbors := make([]Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r := row + dr
			c := col + dc
			if IsValidPosition(r, c, rows, cols) {
				neighbors = append(neighbors, Position{r, c})
			}
		}
	}
	return neighbors
}
