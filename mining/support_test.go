package mining_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqmine/mining"
)

func TestSupport_Resolve(t *testing.T) {
	cases := []struct {
		name string
		s    mining.Support
		n    int
		want int
	}{
		{"half of four", mining.Relative(0.5), 4, 2},
		{"rounds up", mining.Relative(0.26), 4, 2},
		{"exact decimal", mining.Relative(0.3), 10, 3},
		{"exact decimal large", mining.Relative(0.7), 1000000, 700000},
		{"just above an integer", mining.Relative(0.5000000001), 4, 3},
		{"just above on large database", mining.Relative(0.500001), 1000000, 500001},
		{"whole database", mining.Relative(1.0), 7, 7},
		{"never below one", mining.Relative(0.01), 3, 1},
		{"empty database", mining.Relative(0.5), 0, 1},
		{"absolute", mining.Absolute(3), 100, 3},
		{"absolute above size", mining.Absolute(50), 10, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.s.Resolve(tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSupport_Invalid(t *testing.T) {
	for _, s := range []mining.Support{
		mining.Relative(0),
		mining.Relative(-0.1),
		mining.Relative(1.5),
		mining.Relative(math.NaN()),
		mining.Absolute(0),
		mining.Absolute(-2),
	} {
		_, err := s.Resolve(10)
		assert.ErrorIs(t, err, mining.ErrInvalidSupport, "support %v", s)
	}
}

func TestSupport_String(t *testing.T) {
	assert.Equal(t, "0.25", mining.Relative(0.25).String())
	assert.Equal(t, "4", mining.Absolute(4).String())
	assert.True(t, mining.Relative(0.25).IsRelative())
	assert.False(t, mining.Absolute(4).IsRelative())
}

func TestParseBackend(t *testing.T) {
	b, err := mining.ParseBackend("pseudo")
	require.NoError(t, err)
	assert.Equal(t, mining.PseudoProjection, b)

	b, err = mining.ParseBackend(" Partition ")
	require.NoError(t, err)
	assert.Equal(t, mining.PointerPartition, b)

	_, err = mining.ParseBackend("bitmap")
	assert.ErrorIs(t, err, mining.ErrUnknownBackend)

	assert.Equal(t, "pseudo", mining.PseudoProjection.String())
}
