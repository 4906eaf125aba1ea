// SPDX-License-Identifier: MIT
// Package: seqmine/mining
//
// errors.go: sentinel errors for the mining package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the return site, never in the sentinel.
//   • The search itself has no error path: every failure is detected before
//     the first projection.

package mining

import "errors"

var (
	// ErrInvalidSupport is the domain error for a relative support outside
	// (0.0, 1.0] or an absolute support below 1.
	ErrInvalidSupport = errors.New("mining: invalid support")

	// ErrMixedKinds indicates that the database holds both Items-mode and
	// Itemsets-mode sequences.
	ErrMixedKinds = errors.New("mining: database mixes item and itemset sequences")

	// ErrUnknownBackend indicates an unrecognised working-set backend name.
	ErrUnknownBackend = errors.New("mining: unknown backend")
)
