package search

import "fmt"

// Difficulty selects the policy used for the simulated opponent during
// playouts.
type Difficulty int

const (
	// Easy plays the simulated opponent uniformly at random.
	Easy Difficulty = iota

	// Hard plays the simulated opponent with a one-ply greedy heuristic
	// that maximizes its own disc count.
	Hard
)

// ParseDifficulty parses "easy" or "hard".
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("invalid difficulty: %q", s)
}

func (d Difficulty) String() string {
	if d == Hard {
		return "hard"
	}
	return "easy"
}
