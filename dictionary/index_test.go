package dictionary

import (
	"testing"

	"github.com/projectdiscovery/synalter"
	"github.com/stretchr/testify/require"
)

var _ synalter.WordLookup = &Index{}

func TestIndexAggregation(t *testing.T) {
	idx, err := NewIndex(nil)
	require.NoError(t, err)
	defer idx.Close()

	// same headword from two entries (adjective + noun), mixed casing
	n := idx.AddEntries([]Entry{
		{Key: "big_adj", Pos: "adj", Word: "Big", Synonyms: []string{"Large", "huge"}},
		{Key: "big_adv", Pos: "adv", Word: "big", Synonyms: []string{"LARGE", "greatly", "big"}},
		{Key: "empty", Word: "  "},
	})
	require.Equal(t, 2, n)

	got, ok := idx.Lookup("big")
	require.True(t, ok)
	require.Equal(t, []string{"big", "large", "huge", "greatly"}, got)

	_, ok = idx.Lookup("Big")
	require.False(t, ok, "lookup expects folded words")
	require.Equal(t, 1, idx.Len())
}

func TestIndexHeadwords(t *testing.T) {
	idx, err := NewIndex(&IndexOptions{})
	require.NoError(t, err)
	defer idx.Close()

	idx.AddMap(map[string][]string{
		"house": {"home"},
		"Big":   {"large"},
		"fox":   nil,
	})
	require.Equal(t, []string{"big", "fox", "house"}, idx.Headwords())

	got := map[string][]string{}
	idx.Each(func(word string, synonyms []string) {
		got[word] = synonyms
	})
	require.Equal(t, map[string][]string{
		"big":   {"big", "large"},
		"fox":   {"fox"},
		"house": {"house", "home"},
	}, got)
}

func TestIndexDisk(t *testing.T) {
	idx, err := NewIndex(&IndexOptions{Disk: true})
	require.NoError(t, err)
	defer idx.Close()

	idx.Add("go", "run", "Travel")
	got, ok := idx.Lookup("go")
	require.True(t, ok)
	require.Equal(t, []string{"go", "run", "travel"}, got)
}

func TestIndexGenerate(t *testing.T) {
	idx, err := NewIndex(nil)
	require.NoError(t, err)
	defer idx.Close()

	idx.Add("big", "large", "huge")
	idx.Add("house", "home")

	got, err := synalter.Generate("big house", idx)
	require.NoError(t, err)
	require.Equal(t, []string{
		"big house", "large house", "huge house",
		"big home", "large home", "huge home",
	}, got)

	// verbatim casing survives at index 0 of every candidate list
	got, err = synalter.Generate("Big HOUSE", idx)
	require.NoError(t, err)
	require.Len(t, got, 6)
	require.Equal(t, "Big HOUSE", got[0])
	require.Equal(t, "large HOUSE", got[1])
}

func TestIndexLookupReturnsCopy(t *testing.T) {
	idx := newIndex(t)
	idx.Add("big", "large", "huge")

	got, ok := idx.Lookup("big")
	require.True(t, ok)
	got[1] = "tiny"
	got = append(got[:1], "small")
	require.Equal(t, []string{"big", "small"}, got)

	idx.Add("big", "giant")
	got, ok = idx.Lookup("big")
	require.True(t, ok)
	require.Equal(t, []string{"big", "large", "huge", "giant"}, got)
}
