package seqio

import (
	"cmp"
	"fmt"
	"strconv"
)

// ItemParser converts a trimmed, non-empty token to an item.
// Errors should wrap ErrItem.
type ItemParser[T cmp.Ordered] func(token string) (T, error)

// IntItem parses base-10 integers.
func IntItem(token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrItem, token)
	}

	return n, nil
}

// StringItem accepts the token as is.
func StringItem(token string) (string, error) { return token, nil }
