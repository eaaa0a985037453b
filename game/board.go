package game

import (
	"fmt"

	"hex/meta"
)

const maxCells = meta.MAX_SIZE * meta.MAX_SIZE

// offsets are the six hex neighbours of (r, c) as (dr, dc).
var offsets = [6]Position{
	{Row: -1, Col: 0},
	{Row: -1, Col: 1},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
	{Row: 1, Col: 0},
	{Row: 1, Col: -1},
}

// Board is an N×N Hex grid. Cell owners live in a flat fixed-size array so a
// Board is copied by value with no aliasing between copies.
type Board struct {
	size   int
	cells  [maxCells]Player
	stones int
	phase  Phase
	winner Player
	first  Player
	ai     Player
	human  Player
}

// NewBoard creates an empty board waiting for the first player.
func NewBoard(size int, first, ai, human Player) (*Board, error) {
	if size < meta.MIN_SIZE || size > meta.MAX_SIZE {
		return nil, fmt.Errorf("%w: %d not in [%d,%d]", ErrInvalidSize, size, meta.MIN_SIZE, meta.MAX_SIZE)
	}
	if !first.valid() || !ai.valid() || !human.valid() {
		return nil, fmt.Errorf("%w: first=%s ai=%s human=%s", ErrInvalidPlayer, first, ai, human)
	}
	if ai == human {
		return nil, fmt.Errorf("%w: ai and human are both %s", ErrInvalidPlayer, ai)
	}

	return &Board{
		size:  size,
		phase: awaiting(first),
		first: first,
		ai:    ai,
		human: human,
	}, nil
}

// Copy returns an independent deep copy of the board.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

func (b *Board) Size() int     { return b.size }
func (b *Board) Phase() Phase  { return b.phase }
func (b *Board) First() Player { return b.first }
func (b *Board) AI() Player    { return b.ai }
func (b *Board) Human() Player { return b.human }
func (b *Board) Stones() int   { return b.stones }

// Winner returns the winner recorded by the last successful CheckWin.
func (b *Board) Winner() (Player, bool) {
	return b.winner, b.phase == Finished
}

// ToMove returns the player whose turn it is under strict alternation.
func (b *Board) ToMove() Player {
	if b.stones%2 == 0 {
		return b.first
	}
	return b.first.Opponent()
}

func (b *Board) Full() bool {
	return b.stones == b.size*b.size
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

func (b *Board) index(row, col int) int {
	return row*b.size + col
}

// Owner returns the owner of an in-bounds cell, Empty otherwise.
func (b *Board) Owner(row, col int) Player {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[b.index(row, col)]
}

func (b *Board) Cell(row, col int) (Cell, bool) {
	if !b.InBounds(row, col) {
		return Cell{}, false
	}
	return Cell{Position: Position{Row: row, Col: col}, Owner: b.cells[b.index(row, col)]}, true
}

// Cells returns every cell in ascending (row, col) order.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, 0, b.size*b.size)
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			cells = append(cells, Cell{Position: Position{Row: r, Col: c}, Owner: b.cells[b.index(r, c)]})
		}
	}
	return cells
}

// EmptyCells returns the unclaimed positions in ascending (row, col) order.
func (b *Board) EmptyCells() []Position {
	empty := make([]Position, 0, b.size*b.size-b.stones)
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.cells[b.index(r, c)] == Empty {
				empty = append(empty, Position{Row: r, Col: c})
			}
		}
	}
	return empty
}

// ApplyMove claims (row, col) for player and passes the turn to the opponent.
// On error the board is left untouched.
func (b *Board) ApplyMove(row, col int, player Player) (Phase, error) {
	if b.phase == Finished {
		return b.phase, ErrGameFinished
	}
	if !player.valid() {
		return b.phase, fmt.Errorf("%w: %s", ErrInvalidPlayer, player)
	}
	if err := b.claimable(row, col); err != nil {
		return b.phase, err
	}
	if player != b.ToMove() {
		return b.phase, fmt.Errorf("%w: %s moved out of turn", ErrInvalidMove, player)
	}

	b.set(row, col, player)
	b.phase = awaiting(player.Opponent())
	return b.phase, nil
}

// Place claims a cell without turn bookkeeping. Playouts use it to fill
// board copies in an arbitrary colour order.
func (b *Board) Place(row, col int, player Player) error {
	if !player.valid() {
		return fmt.Errorf("%w: %s", ErrInvalidPlayer, player)
	}
	if err := b.claimable(row, col); err != nil {
		return err
	}
	b.set(row, col, player)
	return nil
}

func (b *Board) claimable(row, col int) error {
	if !b.InBounds(row, col) {
		return fmt.Errorf("%w: %s out of bounds for size %d", ErrInvalidMove, Position{Row: row, Col: col}, b.size)
	}
	if owner := b.cells[b.index(row, col)]; owner != Empty {
		return fmt.Errorf("%w: %s already owned by %s", ErrInvalidMove, Position{Row: row, Col: col}, owner)
	}
	return nil
}

func (b *Board) set(row, col int, player Player) {
	b.cells[b.index(row, col)] = player
	b.stones++
}

// Neighbors returns the in-bounds hex neighbours of (row, col).
func (b *Board) Neighbors(row, col int) []Position {
	if !b.InBounds(row, col) {
		return nil
	}
	neighbors := make([]Position, 0, len(offsets))
	for _, d := range offsets {
		r, c := row+d.Row, col+d.Col
		if b.InBounds(r, c) {
			neighbors = append(neighbors, Position{Row: r, Col: c})
		}
	}
	return neighbors
}
