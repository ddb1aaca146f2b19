package player

import (
	"errors"
	"fmt"

	"rps/utils"

	"golang.org/x/exp/rand"
)

// ErrUnknownOpponent is returned for a roster key nobody answers to.
var ErrUnknownOpponent = errors.New("unknown opponent")

// Factory builds a fresh computer player.
type Factory func(name string, rng *rand.Rand) Player

// Opponent is a roster entry: the answer that picks it and how to build it.
type Opponent struct {
	Key string
	New Factory
}

// Roster lists the computer opponents a human can pick from, in prompt order.
var Roster = []Opponent{
	{Key: "jack", New: func(name string, rng *rand.Rand) Player { return NewRandom(name, rng) }},
	{Key: "miles", New: func(name string, rng *rand.Rand) Player { return NewMirror(name, rng) }},
	{Key: "star", New: func(name string, rng *rand.Rand) Player { return NewCycle(name, rng) }},
}

// RosterKeys returns the roster keys in prompt order.
func RosterKeys() []string {
	keys := make([]string, len(Roster))
	for i, o := range Roster {
		keys[i] = o.Key
	}
	return keys
}

// NewOpponent builds the roster entry for key, named after the key.
func NewOpponent(key string, rng *rand.Rand) (Player, error) {
	i := utils.FindIndex(RosterKeys(), key)
	if i < 0 {
		return nil, fmt.Errorf("%q: %w", key, ErrUnknownOpponent)
	}
	return Roster[i].New(utils.Capitalize(key), rng), nil
}
