// meta/meta.go
package meta

import (
	"time"

	"github.com/rs/zerolog"
)

// ROUNDS defines the number of rounds in one match.
const ROUNDS = 3

// PACE defines the pause after each line shown to the player.
const PACE = 300 * time.Millisecond

// HUMAN_NAME is the human's display name until they introduce themselves.
const HUMAN_NAME = "Player 1"

// OPPONENT_NAME is the placeholder opponent's name until one is picked.
const OPPONENT_NAME = "Player 2"

// LOG_LEVEL defines the lowest level logged to stderr. Set it to
// zerolog.DebugLevel to trace rounds and strategy changes.
const LOG_LEVEL = zerolog.WarnLevel
