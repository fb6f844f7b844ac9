package scorer

import (
	"fmt"

	"github.com/ccollicutt/batteval/pkg/config"
)

// Policy turns a signed model/video difference into an error count.
type Policy func(difference int) int

// Absolute scores a difference by its magnitude.
func Absolute(difference int) int {
	return abs(difference)
}

// Doubled penalises under-detection: differences below 1 are doubled before
// taking the magnitude.
func Doubled(difference int) int {
	if difference < 1 {
		difference *= 2
	}
	return abs(difference)
}

// PolicyFor returns the Policy for a configured policy name.
func PolicyFor(p config.ErrorPolicy) (Policy, error) {
	switch p {
	case config.PolicyAbsolute, "":
		return Absolute, nil
	case config.PolicyDoubled:
		return Doubled, nil
	default:
		return nil, fmt.Errorf("%w %q", config.ErrInvalidPolicy, p)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
