package game

import "fmt"

// Range is an inclusive range of cells a token may move to.
type Range struct {
	Low  int
	High int
}

// CellMap is the static board of a token game: each cell maps to the range of
// cells its token may move to. Cell 0 is terminal and every other cell only
// reaches lower cells, so the board is a DAG.
type CellMap struct {
	next        []Range
	fingerprint string
}

// NewCellMap builds a board from the successor ranges of cells 1..len(next).
// next[i] holds the range of cell i+1.
func NewCellMap(next []Range) (*CellMap, error) {
	m := &CellMap{next: make([]Range, len(next)+1)}
	buf := make([]int, 0, 2*len(next))
	for i, r := range next {
		cell := i + 1
		if !(0 <= r.Low && r.Low <= r.High && r.High < cell) {
			return nil, fmt.Errorf("cell %d: range [%d, %d] must satisfy 0 <= low <= high < %d", cell, r.Low, r.High, cell)
		}
		m.next[cell] = r
		buf = append(buf, r.Low, r.High)
	}
	m.fingerprint = joinInts(buf)
	return m, nil
}

// Size returns the number of cells, terminal cell included.
func (m *CellMap) Size() int {
	return len(m.next)
}

// Next returns the successor range of a cell; ok is false for the terminal cell
// and for cells outside the board.
func (m *CellMap) Next(cell int) (r Range, ok bool) {
	if cell <= 0 || cell >= len(m.next) {
		return Range{}, false
	}
	return m.next[cell], true
}

// Ranges returns the successor ranges of cells 1..Size()-1.
func (m *CellMap) Ranges() []Range {
	ranges := make([]Range, len(m.next)-1)
	copy(ranges, m.next[1:])
	return ranges
}

// Token creates a token standing on cell.
func (m *CellMap) Token(cell int) Cell {
	if cell < 0 || cell >= len(m.next) {
		panic(fmt.Sprintf("cell %d is outside the board", cell))
	}
	return Cell{board: m, cell: cell}
}
