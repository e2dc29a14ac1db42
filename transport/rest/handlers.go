package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/gamequery"
)

const (
	movePrefix  = "Move:"
	errorPrefix = "Error:"
)

type moveUseCase interface {
	NextMove(ctx context.Context, query *gamequery.GameQuery, kind engine.Kind) (entity.Move, error)
}

type MoveHandler interface {
	NextMove(ctx echo.Context) error
}

type moveHandler struct {
	logger *slog.Logger

	decoder *gamequery.Decoder
	moves   moveUseCase
}

func NewMoveHandler(logger *slog.Logger, decoder *gamequery.Decoder, moves moveUseCase) MoveHandler {
	return &moveHandler{
		logger:  logger,
		decoder: decoder,
		moves:   moves,
	}
}

// NextMove - GET /move?gid=&size=&playing=&moves=[&engine=].
func (that *moveHandler) NextMove(ctx echo.Context) error {
	log := that.logger.With("method", "NextMove")

	query, err := that.decoder.Decode(gamequery.Params{
		GameID:  ctx.QueryParam("gid"),
		Size:    ctx.QueryParam("size"),
		Playing: ctx.QueryParam("playing"),
		Moves:   ctx.QueryParam("moves"),
	})
	if err != nil {
		return that.replyError(ctx, log, err)
	}

	var kind engine.Kind
	if raw := ctx.QueryParam("engine"); raw != "" {
		if kind, err = engine.ParseKind(raw); err != nil {
			return that.replyError(ctx, log, err)
		}
	}

	move, err := that.moves.NextMove(ctx.Request().Context(), query, kind)
	if err != nil {
		return that.replyError(ctx, log, err)
	}

	return ctx.String(http.StatusOK, movePrefix+move.String())
}

func (that *moveHandler) replyError(ctx echo.Context, log *slog.Logger, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("failed to compute next move", "error", err)
		return ctx.String(status, errorPrefix+"internal server error")
	}

	log.Info("next move refused", "status", status, "error", err)

	return ctx.String(status, errorPrefix+err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrLoading), errors.Is(err, apperror.ErrGameFinished):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrNoMove):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrInvalidGameID),
		errors.Is(err, apperror.ErrUnknownPlayer),
		errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrUnsupportedSize),
		errors.Is(err, apperror.ErrUnknownEngine):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
