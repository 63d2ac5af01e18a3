package cmd

import (
	"fmt"
	"math"
	"strconv"
)

// Input bounds shared by the benchmark subcommands.
const (
	// maxArraySize caps the search/sort array length.
	maxArraySize = 100_000_000
	// maxStringLength caps the lcs/transform/match string lengths.
	maxStringLength = 40_000
)

// parseInt parses a positional argument as a strict base-10 integer,
// naming the parameter in the error.
func parseInt(name, arg string) (int64, error) {
	v, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse %s as an integer: %w", name, err)
	}

	return v, nil
}

// parseArraySize parses and bounds an array size argument.
func parseArraySize(arg string) (int, error) {
	v, err := parseInt("array_size", arg)
	if err != nil {
		return 0, err
	}
	if v < 1 {
		return 0, fmt.Errorf("array_size parameter must be >= 1, got %d", v)
	}
	if v > maxArraySize {
		return 0, fmt.Errorf("array_size parameter must be <= %d, got %d", maxArraySize, v)
	}

	return int(v), nil
}

// parseSearchValue parses a search value within the 32-bit signed range.
func parseSearchValue(arg string) (int, error) {
	v, err := parseInt("search_value", arg)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("search_value must satisfy %d <= search_value <= %d, got %d",
			math.MinInt32, math.MaxInt32, v)
	}

	return int(v), nil
}

// parseStringLength parses and bounds a string length argument. The
// name distinguishes string_length from pattern_length in diagnostics.
func parseStringLength(name, arg string) (int, error) {
	v, err := parseInt(name, arg)
	if err != nil {
		return 0, err
	}
	if v < 1 {
		return 0, fmt.Errorf("%s parameter must be >= 1, got %d", name, v)
	}
	if v > maxStringLength {
		return 0, fmt.Errorf("%s parameter must be <= %d, got %d", name, maxStringLength, v)
	}

	return int(v), nil
}

// parseRepeatCount parses a repeat count, requiring at least one repeat.
func parseRepeatCount(arg string) (int, error) {
	v, err := parseInt("repeat_count", arg)
	if err != nil {
		return 0, err
	}
	if v < 1 {
		return 0, fmt.Errorf("repeat_count parameter must be >= 1, got %d", v)
	}

	return int(v), nil
}

// parseNonNegative parses an integer argument that must be >= 0, used
// by the number-theory subcommands.
func parseNonNegative(name, arg string) (int64, error) {
	v, err := parseInt(name, arg)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("integer parameters must be >= 0, got %s = %d", name, v)
	}

	return v, nil
}
