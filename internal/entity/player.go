package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Player is the mark a side puts on the board. The zero value marks an empty cell.
type Player uint8

const (
	X Player = iota + 1
	O
)

// ParsePlayer - decodes the textual mark, "X" or "O".
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "X":
		return X, nil
	case "O":
		return O, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, s)
	}
}

func (that Player) IsValid() bool {
	return that == X || that == O
}

// Opponent - returns the other side.
func (that Player) Opponent() Player {
	if that == X {
		return O
	}
	return X
}

func (that Player) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "?"
	}
}

func (that Player) MarshalText() ([]byte, error) {
	if !that.IsValid() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnknownPlayer, uint8(that))
	}
	return []byte(that.String()), nil
}

func (that *Player) UnmarshalText(text []byte) error {
	player, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}

	*that = player
	return nil
}
