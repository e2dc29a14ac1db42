package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/gamequery"
)

type moveCache interface {
	Get(ctx context.Context, key string) (entity.Move, error)
	Set(ctx context.Context, key string, move entity.Move) error
}

type MoveUseCase struct {
	logger *slog.Logger

	defaultKind engine.Kind
	source      engine.Source
	cache       moveCache
}

// NewMoveUseCase - cache may be nil, then every request is computed.
func NewMoveUseCase(logger *slog.Logger, defaultKind engine.Kind, source engine.Source, cache moveCache) *MoveUseCase {
	return &MoveUseCase{
		logger: logger.With("component", "move_usecase"),

		defaultKind: defaultKind,
		source:      source,
		cache:       cache,
	}
}

// NextMove - rebuilds the board from query and asks the engine of the given
// kind (the default one when empty) for the next move.
func (that *MoveUseCase) NextMove(ctx context.Context, query *gamequery.GameQuery, kind engine.Kind) (entity.Move, error) {
	log := that.logger.With("method", "NextMove", "game_id", query.GameID.String())

	if kind == "" {
		kind = that.defaultKind
	}

	key := cacheKey(query, kind)
	if move, ok := that.cachedMove(ctx, log, key); ok {
		return move, nil
	}

	board, err := query.Board()
	if err != nil {
		return entity.Move{}, err
	}

	if result := board.Result(); result.IsFinished() {
		return entity.Move{}, fmt.Errorf("%w: %s", apperror.ErrGameFinished, result)
	}

	moveEngine, err := engine.Load(kind, board, that.source)
	if err != nil {
		return entity.Move{}, err
	}

	move, err := moveEngine.NextMove(query.Playing)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to pick next move: %w", err)
	}

	log.Debug("move picked", "engine", kind, "move", move.String(), "moves_played", board.NumberOfMoves())

	that.storeMove(ctx, log, key, move)

	return move, nil
}

func (that *MoveUseCase) cachedMove(ctx context.Context, log *slog.Logger, key string) (entity.Move, bool) {
	if that.cache == nil {
		return entity.Move{}, false
	}

	move, err := that.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			log.Warn("failed to read cached move", "error", err)
		}
		return entity.Move{}, false
	}

	log.Debug("cached move served", "move", move.String())

	return move, true
}

func (that *MoveUseCase) storeMove(ctx context.Context, log *slog.Logger, key string, move entity.Move) {
	if that.cache == nil {
		return
	}

	if err := that.cache.Set(ctx, key, move); err != nil {
		log.Warn("failed to cache move", "error", err)
	}
}

func cacheKey(query *gamequery.GameQuery, kind engine.Kind) string {
	return fmt.Sprintf("%s:%d:%s:%s:%s", query.GameID.String(), query.Size, query.Playing, kind, query.Token())
}
