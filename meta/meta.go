// meta/meta.go
package meta

// MIN_SIZE is the smallest playable board.
const MIN_SIZE = 3

// MAX_SIZE is the largest playable board. Board storage is sized for it.
const MAX_SIZE = 11

// TRIALS defines the number of random playouts per candidate move.
const TRIALS = 1000

// GO_ROUTINES defines the number of goroutines evaluating candidates.
const GO_ROUTINES = 8

// MAX_INVALID_MOVES bounds how often an agent may be re-asked in one turn.
const MAX_INVALID_MOVES = 100
