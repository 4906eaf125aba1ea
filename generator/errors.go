// SPDX-License-Identifier: MIT
// Package: seqmine/generator
//
// errors.go: sentinel errors for the generator package.
//
// Error policy:
//   • Callers branch with errors.Is; messages are stable.
//   • Validation panics are confined to option constructors (WithX);
//     generation itself only returns errors.

package generator

import "errors"

// ErrNeedRandSource indicates that no *rand.Rand was configured
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("generator: rng is required")

// ErrBadSize indicates sizes that cannot be satisfied together, such as an
// itemset larger than the number of distinct symbols.
var ErrBadSize = errors.New("generator: invalid size")
