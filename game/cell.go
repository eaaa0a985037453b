package game

import "fmt"

// Player is the owner of a cell. The zero value is an empty cell.
type Player uint8

const (
	Empty Player = iota
	Blue         // Connects the top row to the bottom row
	Red          // Connects the left column to the right column
)

// Opponent returns the other colour. Empty has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Blue:
		return Red
	case Red:
		return Blue
	default:
		return Empty
	}
}

func (p Player) String() string {
	switch p {
	case Blue:
		return "Blue"
	case Red:
		return "Red"
	default:
		return "Empty"
	}
}

// glyph is the single character used when displaying a cell.
func (p Player) glyph() byte {
	switch p {
	case Blue:
		return 'B'
	case Red:
		return 'R'
	default:
		return '.'
	}
}

func (p Player) valid() bool {
	return p == Blue || p == Red
}

type Phase int

const (
	Init Phase = iota
	AwaitingBlue
	AwaitingRed
	Finished
)

func (ph Phase) String() string {
	switch ph {
	case Init:
		return "Init"
	case AwaitingBlue:
		return "AwaitingBlue"
	case AwaitingRed:
		return "AwaitingRed"
	case Finished:
		return "Finished"
	default:
		return fmt.Sprintf("Phase(%d)", int(ph))
	}
}

// awaiting returns the phase in which p is the player to move.
func awaiting(p Player) Phase {
	if p == Red {
		return AwaitingRed
	}
	return AwaitingBlue
}

// Position is a (row, col) coordinate on the board.
type Position struct {
	Row int
	Col int
}

func (pos Position) String() string {
	return fmt.Sprintf("(%d,%d)", pos.Row, pos.Col)
}

// Cell is a read-only view of one grid unit.
type Cell struct {
	Position
	Owner Player
}

func (c Cell) IsEmpty() bool {
	return c.Owner == Empty
}
