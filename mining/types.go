// SPDX-License-Identifier: MIT
// Package: seqmine/mining
//
// types.go: backend selection, extension descriptors, options and results.

package mining

import (
	"cmp"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Backend selects the WorkingSet implementation used for one mining call.
type Backend int

const (
	// PointerPartition keeps an array of sequence references and re-tests
	// full embedding of the grown pattern on every projection.
	PointerPartition Backend = iota

	// PseudoProjection keeps, per sequence, a stack of matched position
	// indices and resumes the scan after the last matched position.
	PseudoProjection
)

// String returns the configuration name of the backend.
func (b Backend) String() string {
	switch b {
	case PointerPartition:
		return "partition"
	case PseudoProjection:
		return "pseudo"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend maps a configuration name ("partition", "pseudo") to a Backend.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "partition":
		return PointerPartition, nil
	case "pseudo":
		return PseudoProjection, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownBackend)
	}
}

// ExtensionKind distinguishes the two ways a pattern grows by one item.
type ExtensionKind uint8

const (
	// SequenceExtension appends a new trailing position {e}.
	SequenceExtension ExtensionKind = iota

	// ItemExtension adds e to the final itemset (Itemsets mode only).
	ItemExtension
)

// Extension describes the single item by which a pattern was just grown.
type Extension[T cmp.Ordered] struct {
	Kind ExtensionKind
	Item T
}

// Edge is one successful extension recorded for diagnostics.
// Label lists the candidate items that were available to the child.
type Edge struct {
	Parent string
	Label  string
	Child  string
}

// Options configures a mining call.
type Options struct {
	Backend     Backend
	Strip       bool
	LazyPruning bool
	Logger      *zap.Logger
	OnExtend    func(Edge)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the partition backend, no stripping, lazy pruning
// enabled and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Backend:     PointerPartition,
		LazyPruning: true,
		Logger:      zap.NewNop(),
	}
}

// WithBackend selects the working-set backend.
func WithBackend(b Backend) Option {
	return func(o *Options) { o.Backend = b }
}

// WithStripSequences removes infrequent items from a private copy of the
// database before the search.
func WithStripSequences(on bool) Option {
	return func(o *Options) { o.Strip = on }
}

// WithLazyPruning toggles candidate pruning for sequence extensions.
func WithLazyPruning(on bool) Option {
	return func(o *Options) { o.LazyPruning = on }
}

// WithLogger sets the debug logger. A nil logger leaves the default in place.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExtend installs an edge hook invoked once per successful extension.
// Passing nil disables edge collection.
func WithOnExtend(fn func(Edge)) Option {
	return func(o *Options) { o.OnExtend = fn }
}

// Result is the outcome of a mining call.
type Result[T cmp.Ordered] struct {
	// Frontier holds the closed frequent patterns grouped by support.
	Frontier *Frontier[T]

	// MinSupport is the resolved absolute threshold.
	MinSupport int

	// Alphabet lists the frequent candidate items in search order.
	Alphabet []T

	// Nodes counts the patterns visited by the search, the root excluded.
	Nodes int
}
