package synalter

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRadix(t *testing.T) {
	r, err := NewRadix([]int{3, 1, 2}, 0)
	require.NoError(t, err)
	require.Equal(t, 6, r.Len())
	require.Equal(t, 3, r.Width())

	expected := [][]int{
		{0, 0, 0}, {1, 0, 0}, {2, 0, 0},
		{0, 0, 1}, {1, 0, 1}, {2, 0, 1},
	}
	digits := make([]int, 0)
	for v := 0; v < r.Len(); v++ {
		digits = r.Digits(v, digits)
		require.Equal(t, expected[v], digits, "v=%d", v)
	}
}

func TestRadixBijective(t *testing.T) {
	r, err := NewRadix([]int{4, 3, 5, 2}, 0)
	require.NoError(t, err)
	seen := map[[4]int]struct{}{}
	for v := 0; v < r.Len(); v++ {
		d := r.Digits(v, nil)
		seen[[4]int{d[0], d[1], d[2], d[3]}] = struct{}{}
	}
	require.Len(t, seen, 4*3*5*2)
}

func TestRadixEmpty(t *testing.T) {
	r, err := NewRadix(nil, 0)
	require.NoError(t, err)
	require.Equal(t, 0, r.Len())
}

func TestRadixErrors(t *testing.T) {
	_, err := NewRadix([]int{2, 0}, 0)
	require.ErrorContains(t, err, "invalid base")

	_, err = NewRadix([]int{math.MaxInt, 2}, 0)
	require.True(t, errors.Is(err, ErrVariantSpaceTooLarge))

	_, err = NewRadix([]int{10, 10}, 99)
	require.True(t, errors.Is(err, ErrVariantSpaceTooLarge))

	r, err := NewRadix([]int{10, 10}, 100)
	require.NoError(t, err)
	require.Equal(t, 100, r.Len())
}
