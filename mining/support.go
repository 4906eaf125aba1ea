package mining

import (
	"fmt"
	"math"
)

// ceilSlack is the relative rounding error absorbed before rounding up, so
// that 0.3 of 10 sequences resolves to 3 and not 4. It scales with the
// product and stays far below the gap to the next integer.
const ceilSlack = 1e-12

// Support is a minimum-support threshold, either relative to the database
// size or an absolute sequence count. Build one with Relative or Absolute.
type Support struct {
	relative float64
	absolute int
	isAbs    bool
}

// Relative returns a threshold expressed as a fraction in (0.0, 1.0].
func Relative(fraction float64) Support {
	return Support{relative: fraction}
}

// Absolute returns a threshold expressed as a sequence count (≥ 1).
func Absolute(count int) Support {
	return Support{absolute: count, isAbs: true}
}

// IsRelative reports whether the threshold is a fraction.
func (s Support) IsRelative() bool { return !s.isAbs }

// String renders the threshold as given.
func (s Support) String() string {
	if s.isAbs {
		return fmt.Sprintf("%d", s.absolute)
	}

	return fmt.Sprintf("%g", s.relative)
}

// Resolve converts the threshold to an absolute count for a database of
// dbSize sequences: ceil(fraction × dbSize) for relative thresholds, never
// below 1. It returns ErrInvalidSupport for a fraction outside (0.0, 1.0]
// or an absolute count below 1.
func (s Support) Resolve(dbSize int) (int, error) {
	if s.isAbs {
		if s.absolute < 1 {
			return 0, fmt.Errorf("absolute support %d must be at least 1: %w", s.absolute, ErrInvalidSupport)
		}

		return s.absolute, nil
	}

	// NaN fails both comparisons, so test for the valid range.
	if !(s.relative > 0.0 && s.relative <= 1.0) {
		return 0, fmt.Errorf("relative support %g must be in (0.0, 1.0]: %w", s.relative, ErrInvalidSupport)
	}

	exact := s.relative * float64(dbSize)
	n := int(math.Ceil(exact - exact*ceilSlack))
	if n < 1 {
		n = 1
	}

	return n, nil
}
