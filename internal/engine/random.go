package engine

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// RandomEngine plays any free cell with equal probability.
type RandomEngine struct {
	board  *entity.Board
	source Source
}

func NewRandomEngine(board *entity.Board, source Source) (*RandomEngine, error) {
	source, err := checkLoad(board, source)
	if err != nil {
		return nil, err
	}

	return &RandomEngine{
		board:  board,
		source: source,
	}, nil
}

func (that *RandomEngine) NextMove(playing entity.Player) (entity.Move, error) {
	if err := checkPlaying(playing); err != nil {
		return entity.Move{}, err
	}

	return pickRandom(that.board, that.source, playing)
}
