package dictionary

import (
	"slices"
	"sort"
	"sync"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/synalter/internal/store"
	"github.com/projectdiscovery/synalter/normalize"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// IndexOptions
type IndexOptions struct {
	// Disk stores index in a hybrid (memory + leveldb) map instead of memory
	// use it for very large thesauri
	Disk bool
	// SizeHint is estimated size of thesaurus files in bytes, a disk
	// backend is picked when it exceeds store.MaxInMemorySize
	SizeHint int
}

// Index maps a folded headword to its folded synonyms.
// Every list starts with the headword itself followed by synonyms
// in first insertion order, without duplicates.
type Index struct {
	mu      sync.RWMutex
	backend store.Backend
}

// NewIndex returns an empty index
func NewIndex(opts *IndexOptions) (*Index, error) {
	if opts == nil {
		opts = &IndexOptions{}
	}
	var (
		backend store.Backend
		err     error
	)
	if opts.Disk {
		backend, err = store.NewHybridBackend()
	} else {
		backend, err = store.New(opts.SizeHint)
	}
	if err != nil {
		return nil, err
	}
	return &Index{backend: backend}, nil
}

// Add merges synonyms into entry of word
func (i *Index) Add(word string, synonyms ...string) {
	key := normalize.Fold(word)
	if key == "" {
		return
	}
	i.mu.Lock()
	defer i.mu.Unlock()

	list, ok := i.backend.Get(key)
	if !ok {
		list = []string{key}
	}
	for _, v := range normalize.FoldAll(synonyms) {
		if !sliceutil.Contains(list, v) {
			list = append(list, v)
		}
	}
	if err := i.backend.Set(key, list); err != nil {
		gologger.Error().Msgf("dictionary: failed to store %v got %v", key, err)
	}
}

// AddEntries adds all entries and returns number of entries used
func (i *Index) AddEntries(entries []Entry) int {
	count := 0
	for _, e := range entries {
		if normalize.Fold(e.Word) == "" {
			gologger.Debug().Msgf("dictionary: skipping entry %q without word", e.Key)
			continue
		}
		i.Add(e.Word, e.Synonyms...)
		count++
	}
	return count
}

// AddMap adds headword => synonyms pairs
func (i *Index) AddMap(m map[string][]string) {
	for k, v := range m {
		i.Add(k, v...)
	}
}

// Lookup returns a copy of synonyms of a folded word, headword first
func (i *Index) Lookup(word string) ([]string, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	list, ok := i.backend.Get(word)
	if !ok {
		return nil, false
	}
	return slices.Clone(list), true
}

// Len returns number of headwords
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.backend.Len()
}

// Headwords returns all headwords sorted
func (i *Index) Headwords() []string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	words := make([]string, 0, i.backend.Len())
	i.backend.IterCallback(func(key string, _ []string) {
		words = append(words, key)
	})
	sort.Strings(words)
	return words
}

// Each calls callback for every headword in sorted order
func (i *Index) Each(callback func(word string, synonyms []string)) {
	for _, w := range i.Headwords() {
		if list, ok := i.Lookup(w); ok {
			callback(w, list)
		}
	}
}

// Close releases index storage
func (i *Index) Close() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.backend.Cleanup()
}
