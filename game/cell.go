package game

// Cell is a token standing on a cell of a CellMap; a move slides it to any cell
// in the current cell's successor range.
type Cell struct {
	board *CellMap
	cell  int
}

// Position returns the index of the cell the token stands on.
func (c Cell) Position() int {
	return c.cell
}

func (c Cell) Board() *CellMap {
	return c.board
}

// IsLegalMove takes the destination cell.
func (c Cell) IsLegalMove(move ...int) bool {
	if len(move) != 1 {
		return false
	}
	r, ok := c.board.Next(c.cell)
	if !ok {
		return false
	}
	return r.Low <= move[0] && move[0] <= r.High
}

func (c Cell) ApplyMove(move ...int) ([]Position, bool) {
	if !c.IsLegalMove(move...) {
		return nil, false
	}
	return []Position{Cell{board: c.board, cell: move[0]}}, true
}

func (c Cell) Outcomes() []Outcome {
	r, ok := c.board.Next(c.cell)
	if !ok {
		return nil
	}
	outcomes := make([]Outcome, 0, r.High-r.Low+1)
	for next := r.Low; next <= r.High; next++ {
		outcomes = append(outcomes, Outcome{Cell{board: c.board, cell: next}})
	}
	return outcomes
}

func (c Cell) CanMove() bool {
	_, ok := c.board.Next(c.cell)
	return ok
}

// Key embeds the board's ranges, so tokens on equal boards share nimbers.
func (c Cell) Key() Key {
	return Key{Variant: "cell", Rules: c.board.fingerprint, State: itoa(c.cell)}
}
