package pager

import "github.com/projectdiscovery/blackrock"

// Order maps a display position to a source index.
// Implementations must be a bijection over [0, n).
type Order interface {
	Index(i int) int
}

type identity struct{}

func (identity) Index(i int) int { return i }

// Identity keeps source order
func Identity() Order {
	return identity{}
}

type shuffled struct {
	br *blackrock.BlackRock
}

func (s *shuffled) Index(i int) int {
	return int(s.br.Shuffle(int64(i)))
}

// Shuffled returns a random permutation of [0, n) derived from seed.
// Indexes are computed on the fly so n may be far larger than what
// fits in memory.
func Shuffled(n int, seed int64) Order {
	if n <= 1 {
		return identity{}
	}
	return &shuffled{br: blackrock.New(int64(n), seed)}
}
