package player

import (
	"context"
	"fmt"

	"rps/game"
)

const movePrompt = "Rock, paper, scissors > "

// Prompter asks the person at the keyboard to pick one of the allowed answers.
type Prompter interface {
	PromptChoice(ctx context.Context, prompt string, allowed []string) (string, error)
}

// Human reads its moves from the console.
type Human struct {
	named
	prompter Prompter
}

// NewHuman creates a human player that answers through prompter.
func NewHuman(name string, prompter Prompter) *Human {
	return &Human{
		named:    named{name: name},
		prompter: prompter,
	}
}

// ChooseMove asks the human until they name a move.
func (h *Human) ChooseMove(ctx context.Context) (game.Move, error) {
	answer, err := h.prompter.PromptChoice(ctx, movePrompt, game.MoveNames())
	if err != nil {
		return 0, fmt.Errorf("failed to read move for %s: %w", h.name, err)
	}
	return game.ParseMove(answer)
}

// Observe does nothing: the human remembers on their own.
func (h *Human) Observe(own, opponent game.Move) {}
