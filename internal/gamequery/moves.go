package gamequery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	moveSeparator = "_"
	partSeparator = "-"
)

// DecodeMoves - parses a token like "X-1-1_O-0-2". The token is cut into at
// most size*size segments. A token made of a single unreadable segment (the
// empty string included) stands for "no moves yet"; any other unreadable
// segment fails the whole token.
func DecodeMoves(token string, size entity.Size) ([]entity.Move, error) {
	segments := strings.SplitN(token, moveSeparator, size.Int()*size.Int())

	moves := make([]entity.Move, 0, len(segments))
	for i, segment := range segments {
		move, ok := decodeMove(segment)
		if !ok {
			if len(segments) == 1 {
				return []entity.Move{}, nil
			}

			return nil, fmt.Errorf("%w: segment %d %q", apperror.ErrInvalidMove, i+1, segment)
		}

		moves = append(moves, move)
	}

	return moves, nil
}

// EncodeMoves - inverse of DecodeMoves. No moves encode to "".
func EncodeMoves(moves []entity.Move) string {
	segments := make([]string, 0, len(moves))
	for _, move := range moves {
		segments = append(segments, move.String())
	}

	return strings.Join(segments, moveSeparator)
}

func decodeMove(segment string) (entity.Move, bool) {
	parts := strings.SplitN(segment, partSeparator, 3)
	if len(parts) != 3 {
		return entity.Move{}, false
	}

	player, err := entity.ParsePlayer(parts[0])
	if err != nil {
		return entity.Move{}, false
	}

	row, ok := parseCoordinate(parts[1])
	if !ok {
		return entity.Move{}, false
	}

	col, ok := parseCoordinate(parts[2])
	if !ok {
		return entity.Move{}, false
	}

	return entity.Move{Player: player, Position: entity.Position{Row: row, Col: col}}, true
}

func parseCoordinate(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}
