package gamequery

import (
	"fmt"

	uuid "github.com/nu7hatch/gouuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// GameQuery describes the game a client wants the next move for.
type GameQuery struct {
	GameID  uuid.UUID
	Size    entity.Size
	Playing entity.Player
	Moves   []entity.Move
}

// Board - replays the moves on an empty board of the query's size.
// Any illegal move aborts the replay.
func (that *GameQuery) Board() (*entity.Board, error) {
	if !that.Size.IsValid() {
		return nil, fmt.Errorf("%w: %w: %d", apperror.ErrLoading, apperror.ErrUnsupportedSize, that.Size)
	}

	board := entity.NewBoard(that.Size)
	for i, move := range that.Moves {
		if err := board.Apply(move); err != nil {
			return nil, fmt.Errorf("%w: move %d (%s): %w", apperror.ErrLoading, i+1, move, err)
		}
	}

	return board, nil
}

// Token - returns the moves in the wire encoding.
func (that *GameQuery) Token() string {
	return EncodeMoves(that.Moves)
}
