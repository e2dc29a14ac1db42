package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const EmptyCell = "."

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Move struct {
	Player   Player   `json:"player"`
	Position Position `json:"position"`
}

// String renders the move in token form, e.g. "X-1-2".
func (that Move) String() string {
	return fmt.Sprintf("%s-%d-%d", that.Player, that.Position.Row, that.Position.Col)
}

type Outcome uint8

const (
	Pending Outcome = iota
	Won
	Tie
)

// GameResult is derived from the board on every call and never stored.
type GameResult struct {
	Outcome Outcome `json:"outcome"`
	Winner  Player  `json:"winner,omitempty"`
}

func WonBy(player Player) GameResult {
	return GameResult{Outcome: Won, Winner: player}
}

func (that GameResult) IsFinished() bool {
	return that.Outcome == Won || that.Outcome == Tie
}

func (that GameResult) String() string {
	switch that.Outcome {
	case Won:
		return "won by " + that.Winner.String()
	case Tie:
		return "tie"
	default:
		return "pending"
	}
}

// run directions: right, down, down-right, down-left.
var directions = [...]struct{ dRow, dCol int }{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// Board holds the cells in row-major order; a zero Player is an empty cell.
type Board struct {
	size  Size
	cells []Player
}

func NewBoard(size Size) *Board {
	return &Board{
		size:  size,
		cells: make([]Player, size.Int()*size.Int()),
	}
}

func (that *Board) Size() Size {
	return that.size
}

// AddMove - puts the player's mark on an empty cell.
func (that *Board) AddMove(player Player, position Position) error {
	if !that.inBounds(position.Row, position.Col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, position.Row, position.Col)
	}

	idx := that.index(position)
	if that.cells[idx] != 0 {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, position.Row, position.Col)
	}

	that.cells[idx] = player

	return nil
}

func (that *Board) Apply(move Move) error {
	return that.AddMove(move.Player, move.Position)
}

// Cell - returns the mark at position and whether the cell is occupied.
func (that *Board) Cell(position Position) (Player, bool) {
	if !that.inBounds(position.Row, position.Col) {
		return 0, false
	}

	player := that.cells[that.index(position)]
	return player, player != 0
}

// EmptyPositions - returns free cells in row-major order.
func (that *Board) EmptyPositions() []Position {
	positions := make([]Position, 0, len(that.cells)-that.NumberOfMoves())
	for idx, cell := range that.cells {
		if cell == 0 {
			positions = append(positions, that.position(idx))
		}
	}

	return positions
}

func (that *Board) NumberOfMoves() int {
	moves := 0
	for _, cell := range that.cells {
		if cell != 0 {
			moves++
		}
	}

	return moves
}

func (that *Board) IsEmpty() bool {
	return that.NumberOfMoves() == 0
}

// Result - looks for a winning run starting at every occupied cell. A run is
// only checked when its last cell is still on the board.
func (that *Board) Result() GameResult {
	run := that.size.WinCondition()

	for idx, player := range that.cells {
		if player == 0 {
			continue
		}

		start := that.position(idx)
		for _, dir := range directions {
			if that.hasRun(player, start, dir.dRow, dir.dCol, run) {
				return WonBy(player)
			}
		}
	}

	if that.NumberOfMoves() == len(that.cells) {
		return GameResult{Outcome: Tie}
	}

	return GameResult{Outcome: Pending}
}

func (that *Board) hasRun(player Player, start Position, dRow, dCol, run int) bool {
	if !that.inBounds(start.Row+(run-1)*dRow, start.Col+(run-1)*dCol) {
		return false
	}

	for i := 1; i < run; i++ {
		next := Position{Row: start.Row + i*dRow, Col: start.Col + i*dCol}
		if that.cells[that.index(next)] != player {
			return false
		}
	}

	return true
}

// String draws the board one row per line.
func (that *Board) String() string {
	var sb strings.Builder

	n := that.size.Int()
	for idx, cell := range that.cells {
		if cell == 0 {
			sb.WriteString(EmptyCell)
		} else {
			sb.WriteString(cell.String())
		}

		if idx%n == n-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func (that *Board) inBounds(row, col int) bool {
	n := that.size.Int()
	return row >= 0 && row < n && col >= 0 && col < n
}

func (that *Board) index(position Position) int {
	return position.Row*that.size.Int() + position.Col
}

func (that *Board) position(idx int) Position {
	n := that.size.Int()
	return Position{Row: idx / n, Col: idx % n}
}
