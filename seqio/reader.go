package seqio

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/seqmine/sequence"
)

// Reader decodes a stream of sequences of one Kind.
type Reader[T cmp.Ordered] struct {
	sc     *scanner
	source string
	kind   sequence.Kind
	parse  ItemParser[T]
}

// NewReader returns a Reader over r. source names the input in errors.
func NewReader[T cmp.Ordered](r io.Reader, source string, kind sequence.Kind, parse ItemParser[T]) *Reader[T] {
	return &Reader[T]{sc: newScanner(r), source: source, kind: kind, parse: parse}
}

// Next returns the next sequence, or io.EOF when only whitespace remains.
func (r *Reader[T]) Next() (sequence.Sequence[T], error) {
	out := sequence.Empty[T](r.kind)

	ch, err := r.sc.skipSpace()
	if err != nil {
		return out, err
	}
	if ch != '<' {
		return out, r.unexpected(ch, "'<'")
	}

	ch, err = r.sc.skipSpace()
	if err != nil {
		return out, r.eof(err)
	}
	if ch == '>' {
		return out, nil
	}
	r.sc.unread()

	for {
		if r.kind == sequence.Itemsets {
			set, err := r.itemset()
			if err != nil {
				return out, err
			}
			out.PushSet(set)
		} else {
			item, err := r.item()
			if err != nil {
				return out, err
			}
			out.Push(item)
		}

		ch, err = r.sc.skipSpace()
		if err != nil {
			return out, r.eof(err)
		}
		switch ch {
		case ',':
		case '>':
			return out, nil
		default:
			return out, r.unexpected(ch, "',' or '>'")
		}
	}
}

func (r *Reader[T]) itemset() (sequence.Itemset[T], error) {
	ch, err := r.sc.skipSpace()
	if err != nil {
		return sequence.Itemset[T]{}, r.eof(err)
	}
	if ch != '(' {
		return sequence.Itemset[T]{}, r.unexpected(ch, "'('")
	}
	line, col := r.sc.lastLine, r.sc.lastColumn

	var items []T
	for {
		ch, err = r.sc.skipSpace()
		if err != nil {
			return sequence.Itemset[T]{}, r.eof(err)
		}
		if ch == ')' && len(items) == 0 {
			return sequence.Itemset[T]{}, r.errorAt(line, col, "empty itemset", ErrSyntax)
		}
		r.sc.unread()

		item, err := r.item()
		if err != nil {
			return sequence.Itemset[T]{}, err
		}
		items = append(items, item)

		ch, err = r.sc.skipSpace()
		if err != nil {
			return sequence.Itemset[T]{}, r.eof(err)
		}
		switch ch {
		case ',':
		case ')':
			return sequence.NewItemset(items...), nil
		default:
			return sequence.Itemset[T]{}, r.unexpected(ch, "',' or ')'")
		}
	}
}

func (r *Reader[T]) item() (T, error) {
	var zero T

	ch, err := r.sc.skipSpace()
	if err != nil {
		return zero, r.eof(err)
	}
	line, col := r.sc.lastLine, r.sc.lastColumn

	var b strings.Builder
	for !isDelim(ch) {
		b.WriteRune(ch)
		if ch, err = r.sc.read(); err != nil {
			break
		}
	}
	if err == nil {
		r.sc.unread()
	} else if !errors.Is(err, io.EOF) {
		return zero, err
	}

	token := strings.TrimSpace(b.String())
	if token == "" {
		return zero, r.errorAt(line, col, "empty item", ErrSyntax)
	}
	v, err := r.parse(token)
	if err != nil {
		return zero, r.errorAt(line, col, err.Error(), err)
	}

	return v, nil
}

func (r *Reader[T]) errorAt(line, col int, msg string, err error) error {
	return &SyntaxError{Source: r.source, Line: line, Column: col, Msg: msg, Err: err}
}

func (r *Reader[T]) unexpected(ch rune, want string) error {
	return r.errorAt(r.sc.lastLine, r.sc.lastColumn, fmt.Sprintf("found %q, expected %s", ch, want), ErrSyntax)
}

// eof converts io.EOF inside a sequence into a positioned syntax error.
func (r *Reader[T]) eof(err error) error {
	if errors.Is(err, io.EOF) {
		return r.errorAt(r.sc.line, r.sc.col, "unexpected end of input", ErrSyntax)
	}

	return err
}

// ReadDatabase decodes every sequence in r.
func ReadDatabase[T cmp.Ordered](r io.Reader, source string, kind sequence.Kind, parse ItemParser[T]) ([]sequence.Sequence[T], error) {
	dec := NewReader(r, source, kind, parse)

	var db []sequence.Sequence[T]
	for {
		s, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return db, nil
		}
		if err != nil {
			return nil, err
		}
		db = append(db, s)
	}
}

// ReadFile decodes the sequence database stored at path.
func ReadFile[T cmp.Ordered](path string, kind sequence.Kind, parse ItemParser[T]) ([]sequence.Sequence[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadDatabase(f, path, kind, parse)
}

// Parse decodes exactly one sequence from s.
func Parse[T cmp.Ordered](s string, kind sequence.Kind, parse ItemParser[T]) (sequence.Sequence[T], error) {
	dec := NewReader(strings.NewReader(s), "<string>", kind, parse)
	out, err := dec.Next()
	if errors.Is(err, io.EOF) {
		return out, dec.errorAt(1, 1, "no sequence", ErrSyntax)
	}
	if err != nil {
		return out, err
	}
	if ch, err := dec.sc.skipSpace(); err == nil {
		return out, dec.unexpected(ch, "end of input")
	}

	return out, nil
}
