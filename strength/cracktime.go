package strength

import (
	"fmt"
	"math"
)

// Assumes a high-end GPU rig brute-forcing offline.
const guessesPerSecond = 1e10

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerYear   = 365.25 * secondsPerDay
)

// EstimatedCrackTime renders a human-readable brute-force estimate for
// the given entropy. It is a feedback heuristic, not a guarantee.
func EstimatedCrackTime(bits float64) string {
	if bits <= 0 {
		return "instantly"
	}

	seconds := math.Exp2(bits) / guessesPerSecond

	switch {
	case math.IsInf(seconds, 1) || seconds/secondsPerYear > 1e15:
		return "centuries"
	case seconds < secondsPerMinute:
		return fmt.Sprintf("%.2f seconds", seconds)
	case seconds < secondsPerHour:
		return fmt.Sprintf("%.2f minutes", seconds/secondsPerMinute)
	case seconds < secondsPerDay:
		return fmt.Sprintf("%.2f hours", seconds/secondsPerHour)
	case seconds < secondsPerYear:
		return fmt.Sprintf("%.2f days", seconds/secondsPerDay)
	default:
		return fmt.Sprintf("%.2f years", seconds/secondsPerYear)
	}
}
