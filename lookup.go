package synalter

import "github.com/projectdiscovery/synalter/normalize"

// WordLookup returns ordered synonyms of a case-folded word.
// ok is false when the word has no entry.
type WordLookup interface {
	Lookup(word string) (synonyms []string, ok bool)
}

// LookupFunc adapts a function to WordLookup
type LookupFunc func(word string) ([]string, bool)

func (f LookupFunc) Lookup(word string) ([]string, bool) {
	return f(word)
}

// MapLookup is a WordLookup over a plain map. Keys are folded when
// queried so callers may populate it with any casing; values are
// returned as-is. When several keys fold to the same word the
// lexicographically smallest key wins.
type MapLookup map[string][]string

func (m MapLookup) Lookup(word string) ([]string, bool) {
	if v, ok := m[word]; ok {
		return v, true
	}
	found := false
	var match string
	for k := range m {
		if normalize.Fold(k) != word {
			continue
		}
		if !found || k < match {
			match = k
			found = true
		}
	}
	if !found {
		return nil, false
	}
	return m[match], true
}

// ChainLookup queries lookups in order and returns the first hit
type ChainLookup []WordLookup

func (c ChainLookup) Lookup(word string) ([]string, bool) {
	for _, l := range c {
		if l == nil {
			continue
		}
		if v, ok := l.Lookup(word); ok {
			return v, true
		}
	}
	return nil, false
}
