package seqio

import (
	"bufio"
	"io"
	"unicode"
)

// scanner reads runes and tracks the 1-based position of the next one.
// It supports a single unread after a successful read.
type scanner struct {
	r          *bufio.Reader
	line, col  int
	lastLine   int
	lastColumn int
}

func newScanner(r io.Reader) *scanner {
	return &scanner{r: bufio.NewReader(r), line: 1, col: 1}
}

// read returns the next rune; lastLine/lastColumn hold its position.
func (s *scanner) read() (rune, error) {
	ch, _, err := s.r.ReadRune()
	if err != nil {
		return 0, err
	}
	s.lastLine, s.lastColumn = s.line, s.col
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	return ch, nil
}

func (s *scanner) unread() {
	_ = s.r.UnreadRune()
	s.line, s.col = s.lastLine, s.lastColumn
}

// skipSpace returns the next non-space rune.
func (s *scanner) skipSpace() (rune, error) {
	for {
		ch, err := s.read()
		if err != nil || !unicode.IsSpace(ch) {
			return ch, err
		}
	}
}

func isDelim(ch rune) bool {
	switch ch {
	case ',', '<', '>', '(', ')':
		return true
	}

	return false
}
