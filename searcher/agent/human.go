package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hex/experiments/metrics"
	"hex/game"
)

type humanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanAgent reads "row col" lines from in and writes prompts to out.
func NewHumanAgent(in *bufio.Scanner, out io.Writer) Agent {
	return &humanAgent{in: in, out: out}
}

func (a *humanAgent) FindMove(board *game.Board, player game.Player) (game.Position, metrics.SearchMetric, error) {
	for {
		fmt.Fprintf(a.out, "%s's turn, enter row and column: ", player)
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return game.Position{}, metrics.SearchMetric{}, err
			}
			return game.Position{}, metrics.SearchMetric{}, io.ErrUnexpectedEOF
		}

		pos, err := ParsePosition(a.in.Text())
		if err != nil {
			fmt.Fprintf(a.out, "Invalid input: %v\n", err)
			continue
		}
		return pos, metrics.SearchMetric{}, nil
	}
}

// ParsePosition parses two whitespace-separated integers.
func ParsePosition(line string) (game.Position, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return game.Position{}, fmt.Errorf("expected \"row col\", got %q", line)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.Position{}, fmt.Errorf("bad row: %w", err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Position{}, fmt.Errorf("bad column: %w", err)
	}
	return game.Position{Row: row, Col: col}, nil
}
