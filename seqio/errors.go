package seqio

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates malformed sequence text.
	ErrSyntax = errors.New("seqio: syntax error")

	// ErrItem indicates an item token that the item parser rejected.
	ErrItem = errors.New("seqio: invalid item")

	// ErrUnknownFormat indicates an unrecognised output format name.
	ErrUnknownFormat = errors.New("seqio: unknown format")
)

// SyntaxError locates a read failure.
type SyntaxError struct {
	Source string
	Line   int
	Column int
	Msg    string
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Source, e.Line, e.Column, e.Msg)
}

// Unwrap returns ErrSyntax or the item parser's error.
func (e *SyntaxError) Unwrap() error { return e.Err }
