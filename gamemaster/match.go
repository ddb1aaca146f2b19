package gamemaster

import (
	"context"
	"fmt"

	"rps/console"
	"rps/game"
	"rps/meta"

	"github.com/rs/zerolog/log"
)

// Round records one exchange and the score right after it.
type Round struct {
	Number int
	Move1  game.Move
	Move2  game.Move
	Won1   bool
	Won2   bool
	Score  game.Score
}

// Match is a finished set of rounds.
type Match struct {
	Rounds  []Round
	Score   game.Score
	Outcome game.Outcome
}

// PlayMatch resets the score, plays meta.ROUNDS rounds and reports the result.
func (s *Session) PlayMatch(ctx context.Context) (Match, error) {
	s.score = game.NewScore()

	intro := []string{fmt.Sprintf("\n\nYou have %d rounds.", meta.ROUNDS), "Game start in..."}
	for i := 1; i <= meta.ROUNDS; i++ {
		count := fmt.Sprint(i)
		if i == meta.ROUNDS {
			count += "\n\n"
		}
		intro = append(intro, count)
	}
	for _, line := range intro {
		if err := s.say(ctx, line, console.None); err != nil {
			return Match{}, err
		}
	}

	rounds := make([]Round, 0, meta.ROUNDS)
	for n := 1; n <= meta.ROUNDS; n++ {
		round, err := s.PlayRound(ctx, n)
		if err != nil {
			return Match{}, err
		}
		rounds = append(rounds, round)
	}

	match := Match{
		Rounds:  rounds,
		Score:   s.score.Copy(),
		Outcome: s.score.Outcome(),
	}
	log.Debug().Stringer("outcome", match.Outcome).Int("p1", match.Score[1]).Int("p2", match.Score[2]).Msg("match over")

	return match, s.summarize(ctx, match.Outcome)
}

// PlayRound asks both players for a move, scores it and lets both adapt.
func (s *Session) PlayRound(ctx context.Context, n int) (Round, error) {
	if err := s.say(ctx, fmt.Sprintf("Round %d:", n), console.None); err != nil {
		return Round{}, err
	}

	move1, err := s.p1.ChooseMove(ctx)
	if err != nil {
		return Round{}, fmt.Errorf("round %d: %w", n, err)
	}
	move2, err := s.p2.ChooseMove(ctx)
	if err != nil {
		return Round{}, fmt.Errorf("round %d: %w", n, err)
	}

	won1, won2 := game.ResolveRound(move1, move2)
	s.score.Apply(won1, won2)
	log.Debug().Int("round", n).Stringer("move1", move1).Stringer("move2", move2).
		Bool("won1", won1).Bool("won2", won2).Msg("round resolved")

	if err := s.say(ctx, fmt.Sprintf("Move: %s - %s,  %s - %s", s.p1.Name(), move1, s.p2.Name(), move2), console.Info); err != nil {
		return Round{}, err
	}
	if err := s.say(ctx, s.scoreLine()+"\n\n", console.Info); err != nil {
		return Round{}, err
	}

	s.p1.Observe(move1, move2)
	s.p2.Observe(move2, move1)

	return Round{
		Number: n,
		Move1:  move1,
		Move2:  move2,
		Won1:   won1,
		Won2:   won2,
		Score:  s.score.Copy(),
	}, nil
}

func (s *Session) summarize(ctx context.Context, outcome game.Outcome) error {
	var message string
	var kind console.Kind
	switch outcome {
	case game.Player1Wins:
		message, kind = fmt.Sprintf("*** %s, you won!! ***", s.p1.Name()), console.Success
	case game.Player2Wins:
		message, kind = fmt.Sprintf("*** %s, you have been defeated by %s. Your opponent!! ***", s.p1.Name(), s.p2.Name()), console.Error
	default:
		message, kind = "It's a tie!!! There is no winner or loser.", console.None
	}
	if err := s.say(ctx, message, kind); err != nil {
		return err
	}
	return s.say(ctx, s.scoreLine()+"\n\n", console.Info)
}

func (s *Session) scoreLine() string {
	return fmt.Sprintf("Score: %s %d, %s %d", s.p1.Name(), s.score[1], s.p2.Name(), s.score[2])
}
