package game

// Outcome is the result of a finished match.
type Outcome int

const (
	Tie Outcome = iota
	Player1Wins
	Player2Wins
)

func (o Outcome) String() string {
	switch o {
	case Player1Wins:
		return "player 1 wins"
	case Player2Wins:
		return "player 2 wins"
	default:
		return "tie"
	}
}

// Score maps a player slot (1 or 2) to the rounds that player has won.
type Score map[int]int

// NewScore returns a score with both slots at zero.
func NewScore() Score {
	return Score{1: 0, 2: 0}
}

// Apply credits the round winner, if any.
func (s Score) Apply(won1, won2 bool) {
	if won1 {
		s[1]++
	}
	if won2 {
		s[2]++
	}
}

// Copy returns an independent copy of s.
func (s Score) Copy() Score {
	c := make(Score, len(s))
	for slot, points := range s {
		c[slot] = points
	}
	return c
}

// Outcome compares both slots.
func (s Score) Outcome() Outcome {
	switch {
	case s[1] > s[2]:
		return Player1Wins
	case s[1] < s[2]:
		return Player2Wins
	default:
		return Tie
	}
}
