package gamemaster

import (
	"context"
	"fmt"
	"strings"

	"rps/console"
	"rps/game"
	"rps/meta"
	"rps/player"
	"rps/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Console is what the session needs from the terminal.
type Console interface {
	PromptChoice(ctx context.Context, prompt string, allowed []string) (string, error)
	Display(ctx context.Context, message string, kind console.Kind) error
}

// Option configures a Session.
type Option func(s *Session)

// WithPlayers seats both players up front instead of the defaults.
func WithPlayers(p1, p2 player.Player) Option {
	return func(s *Session) {
		if p1 != nil {
			s.p1 = p1
		}
		if p2 != nil {
			s.p2 = p2
		}
	}
}

// WithRand sets the source handed to computer opponents.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// Session runs matches between a human in slot 1 and a computer in slot 2
// until the human stops asking for another one.
type Session struct {
	console Console
	p1      player.Player
	p2      player.Player
	score   game.Score
	rng     *rand.Rand
}

// NewSession seats a human in slot 1 and a placeholder rock player in slot 2.
func NewSession(c Console, options ...Option) *Session {
	s := &Session{
		console: c,
		score:   game.NewScore(),
	}
	for _, option := range options {
		option(s)
	}
	if s.rng == nil {
		s.rng = player.NewRand()
	}
	if s.p1 == nil {
		s.p1 = player.NewHuman(meta.HUMAN_NAME, c)
	}
	if s.p2 == nil {
		s.p2 = player.NewFixed(meta.OPPONENT_NAME, game.Rock)
	}
	return s
}

// Players returns the players in slots 1 and 2.
func (s *Session) Players() (player.Player, player.Player) {
	return s.p1, s.p2
}

// Score returns a copy of the current match score.
func (s *Session) Score() game.Score {
	return s.score.Copy()
}

// Run introduces the players and plays matches until the human declines a
// replay. Cancelling ctx ends the session at the next prompt or pause.
func (s *Session) Run(ctx context.Context) error {
	if err := s.Introduce(ctx); err != nil {
		return err
	}

	for {
		if _, err := s.PlayMatch(ctx); err != nil {
			return err
		}
		again, err := s.console.PromptChoice(ctx, "Play again? Y or N: ", []string{"y", "n"})
		if err != nil {
			return fmt.Errorf("failed to read replay answer: %w", err)
		}
		if again == "n" {
			break
		}
	}

	return s.say(ctx, "Game over!", console.None)
}

// Introduce asks for the human's name and which opponent to face.
func (s *Session) Introduce(ctx context.Context) error {
	if err := s.say(ctx, "Welcome to Rock, paper and scissors game.\n\n", console.None); err != nil {
		return err
	}

	name, err := s.console.PromptChoice(ctx, "Introduce yourself by telling us your name: ", nil)
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if name != "" {
		s.p1.SetName(utils.Capitalize(name))
	}

	if err := s.say(ctx, fmt.Sprintf("Hello %s,", s.p1.Name()), console.None); err != nil {
		return err
	}
	if err := s.say(ctx, "Choose who you would like to play with ", console.None); err != nil {
		return err
	}

	keys := player.RosterKeys()
	labels := make([]string, len(keys))
	for i, key := range keys {
		labels[i] = utils.Capitalize(key)
	}
	prompt := strings.Join(labels[:len(labels)-1], ", ") + " or " + labels[len(labels)-1] + ": "

	key, err := s.console.PromptChoice(ctx, prompt, keys)
	if err != nil {
		return fmt.Errorf("failed to read opponent: %w", err)
	}
	opponent, err := player.NewOpponent(key, s.rng)
	if err != nil {
		return err
	}
	s.p2 = opponent
	log.Debug().Str("human", s.p1.Name()).Str("opponent", key).Msg("players seated")

	return s.say(ctx, fmt.Sprintf("\n\n%s, Your opponent is %s!", s.p1.Name(), s.p2.Name()), console.None)
}

func (s *Session) say(ctx context.Context, message string, kind console.Kind) error {
	return s.console.Display(ctx, message, kind)
}
