package entity

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Size is the board dimension. Only 3, 5 and 7 are playable.
type Size int

const (
	Size3 Size = 3
	Size5 Size = 5
	Size7 Size = 7

	DefaultSize = Size3
)

// ParseSize - validates a raw dimension.
func ParseSize(raw int) (Size, error) {
	switch size := Size(raw); size {
	case Size3, Size5, Size7:
		return size, nil
	default:
		return 0, fmt.Errorf("%w: %d", apperror.ErrUnsupportedSize, raw)
	}
}

func (that Size) IsValid() bool {
	return that == Size3 || that == Size5 || that == Size7
}

// WinCondition - number of consecutive marks needed to win on a board of this size.
func (that Size) WinCondition() int {
	if that == Size3 {
		return 3
	}
	return 4
}

func (that Size) Int() int {
	return int(that)
}

// String renders the size as "3x3".
func (that Size) String() string {
	return fmt.Sprintf("%dx%d", that, that)
}

func (that Size) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(int(that))), nil
}

// UnmarshalText accepts both "5" and "5x5".
func (that *Size) UnmarshalText(text []byte) error {
	s := string(text)
	if len(s) == 3 && s[1] == 'x' && s[0] == s[2] {
		s = s[:1]
	}

	raw, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: %q", apperror.ErrUnsupportedSize, string(text))
	}

	size, err := ParseSize(raw)
	if err != nil {
		return err
	}

	*that = size
	return nil
}
