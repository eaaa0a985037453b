package game

// visitSet marks cells reached during one connectivity check. It lives on the
// caller's stack, so nothing survives the call.
type visitSet [maxCells]bool

// CheckWin looks for a chain joining a player's two edges: Blue from row 0
// to the last row, Red from column 0 to the last column. Sources are the
// cells of row 0 followed by the cells of column 0; a source only starts a
// search for its owner when it lies on that owner's starting edge. The first
// winning chain found finishes the game.
func (b *Board) CheckWin() (bool, Player) {
	var visited visitSet

	try := func(row, col int) bool {
		i := b.index(row, col)
		owner := b.cells[i]
		if owner == Empty || visited[i] || !b.onStartEdge(row, col, owner) {
			return false
		}
		return b.reaches(row, col, owner, &visited)
	}

	for c := 0; c < b.size; c++ {
		if try(0, c) {
			return b.finish(b.cells[b.index(0, c)])
		}
	}
	for r := 1; r < b.size; r++ {
		if try(r, 0) {
			return b.finish(b.cells[b.index(r, 0)])
		}
	}
	return false, Empty
}

func (b *Board) finish(winner Player) (bool, Player) {
	b.phase = Finished
	b.winner = winner
	return true, winner
}

// Connected reports whether player owns a chain between its two edges,
// without touching the game phase.
func (b *Board) Connected(player Player) bool {
	if !player.valid() {
		return false
	}
	var visited visitSet
	for i := 0; i < b.size; i++ {
		row, col := 0, i
		if player == Red {
			row, col = i, 0
		}
		idx := b.index(row, col)
		if b.cells[idx] == player && !visited[idx] && b.reaches(row, col, player, &visited) {
			return true
		}
	}
	return false
}

func (b *Board) onStartEdge(row, col int, owner Player) bool {
	if owner == Blue {
		return row == 0
	}
	return col == 0
}

func (b *Board) onTargetEdge(row, col int, owner Player) bool {
	if owner == Blue {
		return row == b.size-1
	}
	return col == b.size-1
}

// reaches runs a breadth-first search over owner's cells from (row, col) and
// reports whether the component touches owner's target edge.
func (b *Board) reaches(row, col int, owner Player, visited *visitSet) bool {
	// Each cell is enqueued at most once, so a fixed array suffices.
	var queue [maxCells]Position
	head, tail := 0, 0

	visited[b.index(row, col)] = true
	queue[tail] = Position{Row: row, Col: col}
	tail++

	for head < tail {
		cur := queue[head]
		head++
		if b.onTargetEdge(cur.Row, cur.Col, owner) {
			return true
		}
		for _, d := range offsets {
			r, c := cur.Row+d.Row, cur.Col+d.Col
			if !b.InBounds(r, c) {
				continue
			}
			i := b.index(r, c)
			if b.cells[i] != owner || visited[i] {
				continue
			}
			visited[i] = true
			queue[tail] = Position{Row: r, Col: c}
			tail++
		}
	}
	return false
}
