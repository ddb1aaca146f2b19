package game

import (
	"errors"
	"fmt"
)

// ErrUnknownMove is returned when a string does not name a move.
var ErrUnknownMove = errors.New("unknown move")

// Move is one hand shape. Moves are plain values and never change.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

// Moves is the fixed move ordering. Each move is beaten by the one after it.
var Moves = [...]Move{Rock, Paper, Scissors}

var moveNames = map[Move]string{
	Rock:     "rock",
	Paper:    "paper",
	Scissors: "scissors",
}

func (m Move) String() string {
	if name, ok := moveNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

// MoveNames lists the lowercase names of all moves in ordering order.
func MoveNames() []string {
	names := make([]string, len(Moves))
	for i, m := range Moves {
		names[i] = m.String()
	}
	return names
}

// ParseMove converts a lowercase move name into a Move.
func ParseMove(name string) (Move, error) {
	for _, m := range Moves {
		if moveNames[m] == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("parse %q: %w", name, ErrUnknownMove)
}
