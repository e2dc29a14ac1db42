package apperror

import "errors"

var (
	ErrOutOfBounds     = errors.New("position out of bounds")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidMove     = errors.New("invalid move detected")
	ErrLoading         = errors.New("problem with board loading")
	ErrNoMove          = errors.New("no valid moves available")
	ErrUnsupportedSize = errors.New("unsupported board size")
	ErrUnknownPlayer   = errors.New("unknown player symbol")
	ErrInvalidGameID   = errors.New("invalid game id")
	ErrUnknownEngine   = errors.New("unknown engine")
	ErrGameFinished    = errors.New("game is already finished")
	ErrNotFound        = errors.New("not found")
)
