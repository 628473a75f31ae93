package synalter

import (
	"iter"
	"strings"
)

// SpaceOptions tunes how candidate lists are built
type SpaceOptions struct {
	// MaxVariants caps size of variant space (0 = only bounded by int)
	MaxVariants int
	// KeepSelfEntry when true keeps the headword's own entry in the
	// synonym list even though the verbatim token already occupies index 0.
	// This yields [token] ++ synonyms with no exceptions.
	KeepSelfEntry bool
}

// VariantSpace is the cartesian product of candidate lists of a phrase.
// Variants are rendered on demand from their index so that a space can be
// paged through without building all of it.
type VariantSpace struct {
	Input      *Input
	Candidates [][]string // Candidates[i][0] is always Input.Tokens[i]
	radix      *Radix
}

// Generate returns every variant of phrase in mixed-radix order, i.e
// the first word cycles fastest. Output[0] is always the phrase itself.
// An empty (or whitespace only) phrase yields an empty result.
func Generate(phrase string, lookup WordLookup) ([]string, error) {
	s, err := NewVariantSpace(phrase, lookup, nil)
	if err != nil {
		return nil, err
	}
	return s.Slice(), nil
}

// NewVariantSpace tokenizes phrase, builds candidate list of every token
// and prepares the mixed-radix index over them
func NewVariantSpace(phrase string, lookup WordLookup, opts *SpaceOptions) (*VariantSpace, error) {
	if opts == nil {
		opts = &SpaceOptions{}
	}
	input := NewInput(phrase)
	s := &VariantSpace{
		Input:      input,
		Candidates: make([][]string, len(input.Tokens)),
	}
	bases := make([]int, len(input.Tokens))
	for i, token := range input.Tokens {
		s.Candidates[i] = candidates(token, input.Keys[i], lookup, opts.KeepSelfEntry)
		bases[i] = len(s.Candidates[i])
	}
	radix, err := NewRadix(bases, opts.MaxVariants)
	if err != nil {
		return nil, err
	}
	s.radix = radix
	return s, nil
}

// candidates returns [token] followed by synonyms of key in lookup order.
// The first synonym equal to key is the lookup's entry for the headword
// itself and is skipped (unless keepSelf) since token already stands for it.
// Nothing else is deduplicated.
func candidates(token, key string, lookup WordLookup, keepSelf bool) []string {
	list := []string{token}
	if lookup == nil || key == "" {
		return list
	}
	synonyms, ok := lookup.Lookup(key)
	if !ok {
		return list
	}
	selfSeen := keepSelf
	for _, v := range synonyms {
		if !selfSeen && v == key {
			selfSeen = true
			continue
		}
		list = append(list, v)
	}
	return list
}

// Len returns number of variants (0 for an empty phrase)
func (s *VariantSpace) Len() int {
	return s.radix.Len()
}

// Choice returns candidate index of every position for variant v
func (s *VariantSpace) Choice(v int, dst []int) []int {
	return s.radix.Digits(v, dst)
}

// At renders variant v. It panics if v is out of range.
func (s *VariantSpace) At(v int) string {
	if v < 0 || v >= s.Len() {
		panic("synalter: variant index out of range")
	}
	return s.render(s.Choice(v, nil), &strings.Builder{})
}

func (s *VariantSpace) render(choice []int, sb *strings.Builder) string {
	sb.Reset()
	for i, k := range choice {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.Candidates[i][k])
	}
	return sb.String()
}

// All iterates over variants in index order
func (s *VariantSpace) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		choice := make([]int, s.radix.Width())
		var sb strings.Builder
		for v := 0; v < s.Len(); v++ {
			choice = s.Choice(v, choice)
			if !yield(s.render(choice, &sb)) {
				return
			}
		}
	}
}

// Page returns at most limit variants starting at offset
func (s *VariantSpace) Page(offset, limit int) []string {
	if offset < 0 {
		offset = 0
	}
	end := s.Len()
	if limit >= 0 && offset+limit < end && offset+limit >= offset {
		end = offset + limit
	}
	if offset >= end {
		return []string{}
	}
	results := make([]string, 0, end-offset)
	choice := make([]int, s.radix.Width())
	var sb strings.Builder
	for v := offset; v < end; v++ {
		choice = s.Choice(v, choice)
		results = append(results, s.render(choice, &sb))
	}
	return results
}

// Slice materializes whole variant space
func (s *VariantSpace) Slice() []string {
	return s.Page(0, s.Len())
}
