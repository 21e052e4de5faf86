package player

import (
	"fmt"
	"nimber/engine"
	"strings"
)

type Kind int

const (
	Human Kind = iota
	PC
)

func (k Kind) String() string {
	switch k {
	case Human:
		return "human"
	case PC:
		return "pc"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Strategy is how a PC player picks its move.
type Strategy int

const (
	Optimal Strategy = iota
	Random
)

func (s Strategy) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseKind accepts "human" or "pc", case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human":
		return Human, nil
	case "pc":
		return PC, nil
	default:
		return 0, fmt.Errorf("unknown player kind %q", s)
	}
}

// ParseStrategy accepts "optimal" or "random", case-insensitively.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "optimal":
		return Optimal, nil
	case "random":
		return Random, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", s)
	}
}

// Player represents a game player.
type Player struct {
	Role     string
	Kind     Kind
	Strategy Strategy
}

const (
	FirstRole  = "First player"
	SecondRole = "Second player"
)

func NewHuman(role string) Player {
	return Player{Role: role, Kind: Human}
}

func NewPC(role string, strategy Strategy) Player {
	return Player{Role: role, Kind: PC, Strategy: strategy}
}

// Defaults returns the two players used when none are configured: PCs playing
// optimally.
func Defaults() (first, second Player) {
	return NewPC(FirstRole, Optimal), NewPC(SecondRole, Optimal)
}

func (p Player) IsPC() bool {
	return p.Kind == PC
}

// TakeTurn asks s for a move following the player's strategy. Humans never
// get a suggestion; their moves come from the caller.
func (p Player) TakeTurn(s engine.Suggester) (engine.Move, bool) {
	if !p.IsPC() {
		return engine.Move{}, false
	}
	if p.Strategy == Random {
		return s.RandomNextMove()
	}
	return s.OptimalNextMove()
}

func (p Player) String() string {
	if p.IsPC() {
		return fmt.Sprintf("%s (%s, %s)", p.Role, p.Kind, p.Strategy)
	}
	return fmt.Sprintf("%s (%s)", p.Role, p.Kind)
}
