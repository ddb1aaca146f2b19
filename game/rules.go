package game

import "rps/utils"

// Beats reports whether a defeats b: rock crushes scissors, scissors cut
// paper and paper covers rock.
func Beats(a, b Move) bool {
	i := utils.FindIndex(Moves[:], a)
	j := utils.FindIndex(Moves[:], b)
	if i < 0 || j < 0 {
		return false
	}
	return (i-j+len(Moves))%len(Moves) == 1
}

// ResolveRound decides a single exchange. A tie reports (false, false);
// otherwise exactly one side wins.
func ResolveRound(move1, move2 Move) (won1, won2 bool) {
	if move1 == move2 {
		return false, false
	}
	return Beats(move1, move2), Beats(move2, move1)
}
