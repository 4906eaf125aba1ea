package seqio_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqmine/seqio"
	"github.com/katalvlaran/seqmine/sequence"
)

func TestReadDatabase_Items(t *testing.T) {
	in := "<1,2,3>\n  < 4 , 5 >\n<>\n\n<7>"
	db, err := seqio.ReadDatabase(strings.NewReader(in), "items.txt", sequence.Items, seqio.IntItem)
	require.NoError(t, err)
	require.Len(t, db, 4)

	got := make([]string, len(db))
	for i, s := range db {
		got[i] = s.String()
	}
	assert.Equal(t, []string{"<1,2,3>", "<4,5>", "<>", "<7>"}, got)
	assert.True(t, db[2].IsEmpty())
}

func TestReadDatabase_Itemsets(t *testing.T) {
	in := "<(2,1,1),(3)> <( a )>"
	db, err := seqio.ReadDatabase(strings.NewReader(in), "sets.txt", sequence.Itemsets, seqio.StringItem)
	require.NoError(t, err)
	require.Len(t, db, 2)
	assert.Equal(t, "<(1,2),(3)>", db[0].String())
	assert.Equal(t, "<(a)>", db[1].String())
	assert.Equal(t, sequence.Itemsets, db[0].Kind())
}

func TestReadDatabase_StringItemsKeepInnerSpaces(t *testing.T) {
	db, err := seqio.ReadDatabase(strings.NewReader("<log in, log out>"), "s", sequence.Items, seqio.StringItem)
	require.NoError(t, err)
	require.Len(t, db, 1)
	assert.Equal(t, "log in", db[0].Item(0))
	assert.Equal(t, "log out", db[0].Item(1))
}

func TestReadDatabase_Errors(t *testing.T) {
	cases := []struct {
		name      string
		in        string
		kind      sequence.Kind
		want      error
		line, col int
	}{
		{"missing open", "1,2>", sequence.Items, seqio.ErrSyntax, 1, 1},
		{"foreign separator", "<1;2>", sequence.Items, seqio.ErrItem, 1, 2},
		{"empty item", "<1,,2>", sequence.Items, seqio.ErrSyntax, 1, 4},
		{"not a number", "<1>\n<x>", sequence.Items, seqio.ErrItem, 2, 2},
		{"truncated", "<1,2", sequence.Items, seqio.ErrSyntax, 1, 5},
		{"empty itemset", "<()>", sequence.Itemsets, seqio.ErrSyntax, 1, 2},
		{"bare item in itemset mode", "<1>", sequence.Itemsets, seqio.ErrSyntax, 1, 2},
		{"nested sequence", "<(1),<2>>", sequence.Itemsets, seqio.ErrSyntax, 1, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := seqio.ReadDatabase(strings.NewReader(tc.in), "db", tc.kind, seqio.IntItem)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)

			var se *seqio.SyntaxError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, "db", se.Source)
			assert.Equal(t, tc.line, se.Line, "line")
			assert.Equal(t, tc.col, se.Column, "column")
		})
	}
}

func TestReader_NextEOF(t *testing.T) {
	r := seqio.NewReader(strings.NewReader(" <1> \n"), "db", sequence.Items, seqio.IntItem)
	s, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "<1>", s.String())

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestParse(t *testing.T) {
	s, err := seqio.Parse("<(1,2),(3)>", sequence.Itemsets, seqio.IntItem)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	_, err = seqio.Parse("<1> <2>", sequence.Items, seqio.IntItem)
	assert.ErrorIs(t, err, seqio.ErrSyntax)

	_, err = seqio.Parse("   ", sequence.Items, seqio.IntItem)
	assert.ErrorIs(t, err, seqio.ErrSyntax)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.txt")
	require.NoError(t, os.WriteFile(path, []byte("<a,b>\n<b>\n"), 0o644))

	db, err := seqio.ReadFile(path, sequence.Items, seqio.StringItem)
	require.NoError(t, err)
	assert.Len(t, db, 2)

	_, err = seqio.ReadFile(filepath.Join(t.TempDir(), "missing.txt"), sequence.Items, seqio.StringItem)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
