package combat

// Outcome is the state of a battle. Running is the only non-terminal value.
type Outcome string

// Battle outcomes
const (
	OutcomeRunning            Outcome = "running"
	OutcomeLeftWins           Outcome = "left_wins"
	OutcomeRightWins          Outcome = "right_wins"
	OutcomeStalemate          Outcome = "stalemate"
	OutcomeRoundLimitExceeded Outcome = "round_limit_exceeded"
)

// Terminal reports whether the battle is over
func (o Outcome) Terminal() bool {
	return o != OutcomeRunning
}

// Decide is the terminal check run before every round
func Decide(leftDead, rightDead bool) Outcome {
	switch {
	case leftDead && rightDead:
		return OutcomeStalemate
	case leftDead:
		return OutcomeRightWins
	case rightDead:
		return OutcomeLeftWins
	default:
		return OutcomeRunning
	}
}
