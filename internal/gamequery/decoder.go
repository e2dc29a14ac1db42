package gamequery

import (
	"fmt"
	"strconv"
	"strings"

	uuid "github.com/nu7hatch/gouuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Params are the raw request values a GameQuery is decoded from.
type Params struct {
	GameID  string
	Size    string
	Playing string
	Moves   string
}

type Decoder struct {
	strictSize bool
}

// NewDecoder - with strictSize unset, a size outside {3, 5, 7} falls back to 3;
// with it set such a size is rejected.
func NewDecoder(strictSize bool) *Decoder {
	return &Decoder{
		strictSize: strictSize,
	}
}

func (that *Decoder) Decode(params Params) (*GameQuery, error) {
	gameID, err := ParseGameID(params.GameID)
	if err != nil {
		return nil, err
	}

	size, err := that.DecodeSize(params.Size)
	if err != nil {
		return nil, err
	}

	playing, err := entity.ParsePlayer(params.Playing)
	if err != nil {
		return nil, fmt.Errorf("invalid playing: %w", err)
	}

	moves, err := DecodeMoves(params.Moves, size)
	if err != nil {
		return nil, err
	}

	return &GameQuery{
		GameID:  gameID,
		Size:    size,
		Playing: playing,
		Moves:   moves,
	}, nil
}

// DecodeSize - an absent size means the default one.
func (that *Decoder) DecodeSize(raw string) (entity.Size, error) {
	if raw == "" {
		return entity.DefaultSize, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnsupportedSize, raw)
	}

	size, err := entity.ParseSize(n)
	if err != nil {
		if that.strictSize {
			return 0, err
		}
		return entity.DefaultSize, nil
	}

	return size, nil
}

// ParseGameID - accepts the canonical hyphenated UUID form in any case.
func ParseGameID(raw string) (uuid.UUID, error) {
	id, err := uuid.ParseHex(strings.ToLower(raw))
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("%w: %q", apperror.ErrInvalidGameID, raw)
	}

	return *id, nil
}
