package player

import (
	"context"

	"rps/game"
	"rps/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Fixed always plays the same move.
type Fixed struct {
	named
	move game.Move
}

// NewFixed creates a player that always plays move.
func NewFixed(name string, move game.Move) *Fixed {
	return &Fixed{named: named{name: name}, move: move}
}

func (f *Fixed) ChooseMove(ctx context.Context) (game.Move, error) {
	return f.move, nil
}

func (f *Fixed) Observe(own, opponent game.Move) {}

// Random picks uniformly every round and ignores history.
type Random struct {
	named
	rng *rand.Rand
}

// NewRandom creates a player drawing its moves from rng.
func NewRandom(name string, rng *rand.Rand) *Random {
	return &Random{named: named{name: name}, rng: rng}
}

func (r *Random) ChooseMove(ctx context.Context) (game.Move, error) {
	return randomMove(r.rng), nil
}

func (r *Random) Observe(own, opponent game.Move) {}

// Mirror replays whatever the opponent played last round. Its first move is random.
type Mirror struct {
	named
	next game.Move
}

// NewMirror creates a Mirror with a random opening move.
func NewMirror(name string, rng *rand.Rand) *Mirror {
	return &Mirror{named: named{name: name}, next: randomMove(rng)}
}

func (m *Mirror) ChooseMove(ctx context.Context) (game.Move, error) {
	return m.next, nil
}

func (m *Mirror) Observe(own, opponent game.Move) {
	m.next = opponent
	log.Debug().Str("player", m.name).Stringer("next", m.next).Msg("mirroring opponent")
}

// Cycle walks through game.Moves, stepping one past its own last move after
// every round whatever the result.
type Cycle struct {
	named
	next game.Move
}

// NewCycle creates a Cycle with a random opening move.
func NewCycle(name string, rng *rand.Rand) *Cycle {
	return &Cycle{named: named{name: name}, next: randomMove(rng)}
}

func (c *Cycle) ChooseMove(ctx context.Context) (game.Move, error) {
	return c.next, nil
}

func (c *Cycle) Observe(own, opponent game.Move) {
	i := utils.FindIndex(game.Moves[:], own)
	if i < 0 {
		log.Warn().Str("player", c.name).Stringer("move", own).Msg("move is not in the cycle")
		return
	}
	c.next = game.Moves[(i+1)%len(game.Moves)]
	log.Debug().Str("player", c.name).Stringer("next", c.next).Msg("cycling")
}
