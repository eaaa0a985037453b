package game

import "errors"

var (
	// ErrInvalidMove is returned for out-of-bounds, occupied, or out-of-turn moves.
	// The turn is not advanced.
	ErrInvalidMove = errors.New("invalid move")

	// ErrNoAvailableMoves is returned when a move is requested on a full board.
	ErrNoAvailableMoves = errors.New("no available moves")

	// ErrInvariantViolation signals a full board without a winner. Hex cannot
	// end in a draw, so this is a defect and never a normal outcome.
	ErrInvariantViolation = errors.New("invariant violation: full board without a winner")

	ErrGameFinished  = errors.New("game already finished")
	ErrInvalidSize   = errors.New("invalid board size")
	ErrInvalidPlayer = errors.New("invalid player")
)
