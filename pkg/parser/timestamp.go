package parser

import (
	"fmt"
	"regexp"
	"strconv"
)

var digitRun = regexp.MustCompile(`\d+`)

// ExtractIntegers returns every run of ASCII digits in line, in order of
// appearance. A run too large for an int is an error.
func ExtractIntegers(line string) ([]int, error) {
	runs := digitRun.FindAllString(line, -1)
	if len(runs) == 0 {
		return nil, nil
	}

	nums := make([]int, 0, len(runs))
	for _, r := range runs {
		n, err := strconv.Atoi(r)
		if err != nil {
			return nil, fmt.Errorf("parsing integer %q: %w", r, err)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// ExtractPair returns the start and end times on a line. ok is false unless
// the line holds exactly two integers.
func ExtractPair(line string) (start, end int, ok bool) {
	nums, err := ExtractIntegers(line)
	if err != nil || len(nums) != 2 {
		return 0, 0, false
	}
	return nums[0], nums[1], true
}
