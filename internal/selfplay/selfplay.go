package selfplay

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/gamequery"
)

// Game is a finished self-played game.
type Game struct {
	Board  *entity.Board
	Moves  []entity.Move
	Result entity.GameResult
}

// Token - the moves in the encoding the move service accepts.
func (that *Game) Token() string {
	return gamequery.EncodeMoves(that.Moves)
}

// Play - X and O take turns with the same engine until the game is won or tied.
func Play(size entity.Size, kind engine.Kind, source engine.Source) (*Game, error) {
	if _, err := entity.ParseSize(size.Int()); err != nil {
		return nil, err
	}

	board := entity.NewBoard(size)

	moveEngine, err := engine.Load(kind, board, source)
	if err != nil {
		return nil, err
	}

	var moves []entity.Move
	player := entity.X
	for !board.Result().IsFinished() {
		move, err := moveEngine.NextMove(player)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", len(moves)+1, err)
		}

		if err = board.Apply(move); err != nil {
			return nil, fmt.Errorf("move %d (%s): %w", len(moves)+1, move, err)
		}

		moves = append(moves, move)
		player = player.Opponent()
	}

	return &Game{
		Board:  board,
		Moves:  moves,
		Result: board.Result(),
	}, nil
}
