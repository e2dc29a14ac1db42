package engine

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Opening cells per board size.
var openingCells = map[entity.Size]entity.Position{
	entity.Size3: {Row: 1, Col: 1},
	entity.Size5: {Row: 3, Col: 3},
	entity.Size7: {Row: 4, Col: 4},
}

// CenterEngine opens on the fixed opening cell and plays randomly afterwards.
type CenterEngine struct {
	board  *entity.Board
	source Source
}

func NewCenterEngine(board *entity.Board, source Source) (*CenterEngine, error) {
	source, err := checkLoad(board, source)
	if err != nil {
		return nil, err
	}

	return &CenterEngine{
		board:  board,
		source: source,
	}, nil
}

func (that *CenterEngine) NextMove(playing entity.Player) (entity.Move, error) {
	if err := checkPlaying(playing); err != nil {
		return entity.Move{}, err
	}

	if that.board.NumberOfMoves() > 0 {
		return pickRandom(that.board, that.source, playing)
	}

	position, ok := openingCells[that.board.Size()]
	if !ok {
		return entity.Move{}, fmt.Errorf("%w: no opening cell for %s", apperror.ErrUnsupportedSize, that.board.Size())
	}

	return entity.Move{Player: playing, Position: position}, nil
}
