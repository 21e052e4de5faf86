package catalog

import (
	"fmt"
	"nimber/game"
	"nimber/meta"
	"strconv"
	"strings"
)

// InvalidInputError names the input field that violates a constraint.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid input: %s = %s %s", e.Field, e.Value, e.Reason)
}

func invalid(field string, value any, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Value: fmt.Sprint(value), Reason: reason}
}

// Bounds constrains an array input.
type Bounds struct {
	MinLength, MaxLength int
	MinValue, MaxValue   int
}

var (
	PileBounds = Bounds{meta.MIN_PILES, meta.MAX_PILES, 0, meta.MAX_PILE_SIZE}
	SetBounds  = Bounds{1, meta.MAX_SET_SIZE, 1, meta.MAX_SET_VALUE}
)

// Validate checks values against the bounds. field names the array in errors.
func (b Bounds) Validate(field string, values []int) error {
	if len(values) < b.MinLength || len(values) > b.MaxLength {
		return &InvalidInputError{
			Field:  "length of " + field,
			Value:  strconv.Itoa(len(values)),
			Reason: fmt.Sprintf("is not between %d and %d", b.MinLength, b.MaxLength),
		}
	}
	for i, v := range values {
		if v < b.MinValue || v > b.MaxValue {
			return invalid(fmt.Sprintf("%s_%d", field, i+1), v, fmt.Sprintf("is not between %d and %d", b.MinValue, b.MaxValue))
		}
	}
	return nil
}

// ParseArray reads one line of whitespace separated integers.
func ParseArray(field, text string, bounds Bounds) ([]int, error) {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return nil, &InvalidInputError{Field: field, Reason: "needs one line of integers separated by spaces"}
	}
	tokens := strings.Fields(lines[0])
	values := make([]int, len(tokens))
	for i, token := range tokens {
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, invalid(fmt.Sprintf("%s_%d", field, i+1), strconv.Quote(token), "is not a number")
		}
		values[i] = v
	}
	if err := bounds.Validate(field, values); err != nil {
		return nil, err
	}
	return values, nil
}

// Cells is the main-batu-lagi input. Cells and items are numbered from 1:
// Next[i-2] holds the bounds a_i, b_i of cell i, and Positions holds the cell
// of every item.
type Cells struct {
	N, M      int
	Next      []game.Range
	Positions []int
}

// ParseCells reads "N M", then N-1 lines "a_i b_i", then one line of M item
// positions.
func ParseCells(text string) (Cells, error) {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return Cells{}, &InvalidInputError{Field: "N and M", Reason: "need one non-empty line"}
	}

	first := strings.Fields(lines[0])
	n, err := parseToken("N", first, 0)
	if err != nil {
		return Cells{}, err
	}
	m, err := parseToken("M", first, 1)
	if err != nil {
		return Cells{}, err
	}
	if n < 1 || n > meta.MAX_CELLS {
		return Cells{}, invalid("N", n, fmt.Sprintf("is not between 1 and %d", meta.MAX_CELLS))
	}
	if m < 1 || m > meta.MAX_ITEMS {
		return Cells{}, invalid("M", m, fmt.Sprintf("is not between 1 and %d", meta.MAX_ITEMS))
	}

	c := Cells{N: n, M: m, Next: make([]game.Range, 0, n-1), Positions: make([]int, 0, m)}
	for i := 2; i <= n; i++ {
		if i-1 >= len(lines) {
			return Cells{}, &InvalidInputError{Field: fmt.Sprintf("a_%d and b_%d", i, i), Reason: "are missing"}
		}
		tokens := strings.Fields(lines[i-1])
		a, err := parseToken(fmt.Sprintf("a_%d", i), tokens, 0)
		if err != nil {
			return Cells{}, err
		}
		b, err := parseToken(fmt.Sprintf("b_%d", i), tokens, 1)
		if err != nil {
			return Cells{}, err
		}
		c.Next = append(c.Next, game.Range{Low: a, High: b})
	}

	if n >= len(lines) {
		return Cells{}, &InvalidInputError{Field: "initial positions", Reason: "are missing"}
	}
	tokens := strings.Fields(lines[n])
	if len(tokens) < m {
		return Cells{}, invalid("number of positions", len(tokens), fmt.Sprintf("is less than M = %d", m))
	}
	for k := 0; k < m; k++ {
		v, err := parseToken(fmt.Sprintf("c_%d", k+1), tokens, k)
		if err != nil {
			return Cells{}, err
		}
		c.Positions = append(c.Positions, v)
	}

	if err := c.Validate(); err != nil {
		return Cells{}, err
	}
	return c, nil
}

// Validate checks 1 <= a_i <= b_i < i, that bounds never decrease from one
// cell to the next, and that every item sits on a cell.
func (c Cells) Validate() error {
	if c.N < 1 || c.N > meta.MAX_CELLS {
		return invalid("N", c.N, fmt.Sprintf("is not between 1 and %d", meta.MAX_CELLS))
	}
	if c.M < 1 || c.M > meta.MAX_ITEMS {
		return invalid("M", c.M, fmt.Sprintf("is not between 1 and %d", meta.MAX_ITEMS))
	}
	if len(c.Next) != c.N-1 {
		return invalid("number of cell bounds", len(c.Next), fmt.Sprintf("is not N-1 = %d", c.N-1))
	}
	if len(c.Positions) != c.M {
		return invalid("number of positions", len(c.Positions), fmt.Sprintf("is not M = %d", c.M))
	}

	for j, r := range c.Next {
		i := j + 2
		if !(1 <= r.Low && r.Low <= r.High && r.High < i) {
			return &InvalidInputError{
				Field:  fmt.Sprintf("a_%d and b_%d", i, i),
				Value:  fmt.Sprintf("%d %d", r.Low, r.High),
				Reason: fmt.Sprintf("violate 1 <= a <= b < %d", i),
			}
		}
		if j > 0 {
			prev := c.Next[j-1]
			if prev.Low > r.Low || prev.High > r.High {
				return &InvalidInputError{
					Field:  fmt.Sprintf("a_%d and b_%d", i, i),
					Value:  fmt.Sprintf("%d %d", r.Low, r.High),
					Reason: fmt.Sprintf("are less than a_%d = %d or b_%d = %d", i-1, prev.Low, i-1, prev.High),
				}
			}
		}
	}

	for k, p := range c.Positions {
		if p < 1 || p > c.N {
			return invalid(fmt.Sprintf("c_%d", k+1), p, fmt.Sprintf("is not between 1 and %d", c.N))
		}
	}
	return nil
}

// Board converts the bounds to a board whose cells are numbered from 0.
func (c Cells) Board() (*game.CellMap, error) {
	next := make([]game.Range, len(c.Next))
	for i, r := range c.Next {
		next[i] = game.Range{Low: r.Low - 1, High: r.High - 1}
	}
	board, err := game.NewCellMap(next)
	if err != nil {
		return nil, fmt.Errorf("build board: %w", err)
	}
	return board, nil
}

// Tokens places one token per item on the board.
func (c Cells) Tokens() ([]game.Position, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	board, err := c.Board()
	if err != nil {
		return nil, err
	}
	tokens := make([]game.Position, len(c.Positions))
	for k, p := range c.Positions {
		tokens[k] = board.Token(p - 1)
	}
	return tokens, nil
}

// String formats c the way ParseCells reads it.
func (c Cells) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d\n", c.N, c.M)
	for _, r := range c.Next {
		fmt.Fprintf(&sb, "%d %d\n", r.Low, r.High)
	}
	for k, p := range c.Positions {
		if k > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(p))
	}
	return sb.String()
}

func parseToken(field string, tokens []string, index int) (int, error) {
	if index >= len(tokens) {
		return 0, &InvalidInputError{Field: field, Reason: "is missing"}
	}
	v, err := strconv.Atoi(tokens[index])
	if err != nil {
		return 0, invalid(field, strconv.Quote(tokens[index]), "is not a number")
	}
	return v, nil
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
