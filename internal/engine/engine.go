package engine

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Engine picks the next move for a loaded board. It never changes the board.
type Engine interface {
	NextMove(playing entity.Player) (entity.Move, error)
}

// Source is a uniform random source over [0, n).
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

// IntN uses the package-level generator, which is safe for concurrent use.
func (globalSource) IntN(n int) int {
	return rand.IntN(n) //nolint: gosec // move choice is not security sensitive
}

func DefaultSource() Source {
	return globalSource{}
}

type Kind string

const (
	KindRandom Kind = "random"
	KindCenter Kind = "center"
)

func ParseKind(s string) (Kind, error) {
	switch kind := Kind(s); kind {
	case KindRandom, KindCenter:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownEngine, s)
	}
}

// Load - builds an engine of the given kind on top of board. A nil source
// means DefaultSource.
func Load(kind Kind, board *entity.Board, source Source) (Engine, error) {
	switch kind {
	case KindRandom:
		randomEngine, err := NewRandomEngine(board, source)
		if err != nil {
			return nil, err
		}
		return randomEngine, nil
	case KindCenter:
		centerEngine, err := NewCenterEngine(board, source)
		if err != nil {
			return nil, err
		}
		return centerEngine, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownEngine, kind)
	}
}

func checkLoad(board *entity.Board, source Source) (Source, error) {
	if board == nil {
		return nil, fmt.Errorf("%w: board is missing", apperror.ErrLoading)
	}

	if source == nil {
		return DefaultSource(), nil
	}

	return source, nil
}

func checkPlaying(playing entity.Player) error {
	if !playing.IsValid() {
		return fmt.Errorf("%w: %d", apperror.ErrUnknownPlayer, uint8(playing))
	}
	return nil
}

// pickRandom - chooses one of the free cells uniformly.
func pickRandom(board *entity.Board, source Source, playing entity.Player) (entity.Move, error) {
	positions := board.EmptyPositions()
	if len(positions) == 0 {
		return entity.Move{}, apperror.ErrNoMove
	}

	return entity.Move{
		Player:   playing,
		Position: positions[source.IntN(len(positions))],
	}, nil
}
