package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidCommand = errors.New("invalid command")

// ParseCommand reads a move typed by a player. Accepted forms are
// "<row> <col>" and "<row> <col> f" as well as "r <row> <col>" and
// "f <row> <col>".
func ParseCommand(text string) (Move, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 || len(fields) > 3 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidCommand, text)
	}

	moveType := Reveal
	if len(fields) == 3 {
		var mode string
		if _, err := strconv.Atoi(fields[0]); err != nil {
			mode, fields = fields[0], fields[1:]
		} else {
			mode, fields = fields[2], fields[:2]
		}
		switch strings.ToLower(mode) {
		case "f", "flag":
			moveType = Flag
		case "r", "reveal":
		default:
			return Move{}, fmt.Errorf("%w: unknown action %q", ErrInvalidCommand, mode)
		}
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Move{}, fmt.Errorf("%w: row %q is not a number", ErrInvalidCommand, fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Move{}, fmt.Errorf("%w: column %q is not a number", ErrInvalidCommand, fields[1])
	}
	return Move{row, col, moveType}, nil
}
