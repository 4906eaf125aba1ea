package seqio

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqmine/mining"
	"github.com/katalvlaran/seqmine/sequence"
)

// Format selects a frontier encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a configuration name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

// WriteDatabase writes one sequence per line.
func WriteDatabase[T cmp.Ordered](w io.Writer, db []sequence.Sequence[T]) error {
	bw := bufio.NewWriter(w)
	for _, s := range db {
		bw.WriteString(s.String())
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteText writes each support value followed by its sorted patterns.
func WriteText[T cmp.Ordered](w io.Writer, f *mining.Frontier[T]) error {
	bw := bufio.NewWriter(w)
	for _, s := range f.Supports() {
		fmt.Fprintln(bw, s)
		for _, p := range f.Sorted(s) {
			bw.WriteString(p.String())
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}

// Bucket is the YAML shape of one support group.
type Bucket struct {
	Support  int      `yaml:"support"`
	Patterns []string `yaml:"patterns"`
}

// Document is the YAML shape of a mining result.
type Document struct {
	MinSupport int      `yaml:"min_support"`
	Patterns   int      `yaml:"patterns"`
	Buckets    []Bucket `yaml:"buckets"`
}

// NewDocument groups f for serialisation.
func NewDocument[T cmp.Ordered](f *mining.Frontier[T], minSupport int) Document {
	doc := Document{MinSupport: minSupport, Patterns: f.Len()}
	for _, s := range f.Supports() {
		b := Bucket{Support: s}
		for _, p := range f.Sorted(s) {
			b.Patterns = append(b.Patterns, p.String())
		}
		doc.Buckets = append(doc.Buckets, b)
	}

	return doc
}

// WriteYAML writes f as a YAML Document.
func WriteYAML[T cmp.Ordered](w io.Writer, f *mining.Frontier[T], minSupport int) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(f, minSupport)); err != nil {
		return err
	}

	return enc.Close()
}

// Write encodes f in the given format.
func Write[T cmp.Ordered](w io.Writer, format Format, f *mining.Frontier[T], minSupport int) error {
	switch format {
	case FormatText, "":
		return WriteText(w, f)
	case FormatYAML:
		return WriteYAML(w, f, minSupport)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}
