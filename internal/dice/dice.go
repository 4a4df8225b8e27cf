package dice

import "math/rand/v2"

// Difficulty is the modifier applied to a check's success threshold.
type Difficulty int

const (
	Easy     Difficulty = 20
	Normal   Difficulty = 0
	Hard     Difficulty = -20
	VeryHard Difficulty = -40
)

// ParseDifficulty maps a difficulty name to its modifier. "extreme" is
// accepted as an alias for very_hard from older content files. Unknown
// names fall back to Normal.
func ParseDifficulty(name string) Difficulty {
	switch name {
	case "easy":
		return Easy
	case "normal":
		return Normal
	case "hard":
		return Hard
	case "very_hard", "extreme":
		return VeryHard
	}
	return Normal
}

// Outcome grades a resolved check.
type Outcome string

const (
	CriticalSuccess Outcome = "critical_success"
	Success         Outcome = "success"
	Failure         Outcome = "failure"
	CriticalFailure Outcome = "critical_failure"
)

// Succeeded reports whether the outcome counts as a success.
func (o Outcome) Succeeded() bool {
	return o == Success || o == CriticalSuccess
}

// Roller produces uniform rolls in [1, n]. Tests substitute fixed
// sequences for deterministic outcomes.
type Roller interface {
	Roll(n int) int
}

type randRoller struct{}

func (randRoller) Roll(n int) int {
	return rand.IntN(n) + 1
}

// NewRoller returns a Roller backed by the process-wide PRNG.
func NewRoller() Roller {
	return randRoller{}
}

// Threshold is the percent chance a check against the given attribute
// value succeeds, clamped to [5, 95].
func Threshold(attribute int, diff Difficulty) int {
	t := attribute*20 + int(diff)
	if t < 5 {
		t = 5
	}
	if t > 95 {
		t = 95
	}
	return t
}

// Result carries everything a caller needs to narrate a check.
type Result struct {
	Outcome   Outcome `json:"outcome"`
	Roll      int     `json:"roll"`
	Threshold int     `json:"threshold"`
}

// Check rolls a d100 against Threshold(attribute, diff). Rolls of 5 or
// under grade critical success and 96 or over critical failure,
// regardless of the threshold.
func Check(r Roller, attribute int, diff Difficulty) Result {
	threshold := Threshold(attribute, diff)
	roll := r.Roll(100)

	var outcome Outcome
	switch {
	case roll <= 5:
		outcome = CriticalSuccess
	case roll >= 96:
		outcome = CriticalFailure
	case roll <= threshold:
		outcome = Success
	default:
		outcome = Failure
	}

	return Result{Outcome: outcome, Roll: roll, Threshold: threshold}
}
