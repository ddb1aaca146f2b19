package player

import (
	"context"
	"time"

	"rps/game"

	"golang.org/x/exp/rand"
)

// Player picks a move each round and may adapt once the round is over.
type Player interface {
	Name() string
	SetName(name string)
	// ChooseMove returns this round's move.
	ChooseMove(ctx context.Context) (game.Move, error)
	// Observe is called after every round with this player's move first.
	Observe(own, opponent game.Move)
}

// named carries the display name shared by every player.
type named struct {
	name string
}

func (n *named) Name() string {
	return n.name
}

func (n *named) SetName(name string) {
	n.name = name
}

// NewRand returns a time-seeded source for the random players.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}

func randomMove(r *rand.Rand) game.Move {
	return game.Moves[r.Intn(len(game.Moves))]
}
