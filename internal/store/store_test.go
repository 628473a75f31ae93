package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testBackend(t *testing.T, b Backend) {
	defer b.Cleanup()

	_, ok := b.Get("big")
	require.False(t, ok)

	require.NoError(t, b.Set("big", []string{"big", "large", "huge"}))
	require.NoError(t, b.Set("house", []string{"house", "home"}))
	require.NoError(t, b.Set("big", []string{"big", "large", "huge", "vast"}))
	require.Equal(t, 2, b.Len())

	got, ok := b.Get("big")
	require.True(t, ok)
	require.Equal(t, []string{"big", "large", "huge", "vast"}, got)

	seen := map[string][]string{}
	b.IterCallback(func(key string, values []string) {
		seen[key] = values
	})
	require.Equal(t, map[string][]string{
		"big":   {"big", "large", "huge", "vast"},
		"house": {"house", "home"},
	}, seen)
}

func TestMapBackend(t *testing.T) {
	testBackend(t, NewMapBackend())
}

func TestHybridBackend(t *testing.T) {
	b, err := NewHybridBackend()
	require.NoError(t, err)
	testBackend(t, b)
}

func TestEncodeDecode(t *testing.T) {
	require.Equal(t, []string{}, decode(encode(nil)))
	require.Equal(t, []string{"a b", "c"}, decode(encode([]string{"a b", "c"})))
}

func TestNewPicksBackend(t *testing.T) {
	b, err := New(1024)
	require.NoError(t, err)
	require.IsType(t, &MapBackend{}, b)
	b.Cleanup()
}
