package synalter

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/projectdiscovery/utils/errkit"
)

var (
	ErrVariantSpaceTooLarge = errkit.New("variant space too large")
)

// Radix is a mixed-radix numbering over a fixed list of bases.
// Every v in [0, Len()) maps to exactly one digit tuple where
// digit[i] = (v / divisor[i]) % base[i] and divisor[i] is the product
// of all bases before i. Digit 0 varies fastest.
//
// This replaces an n-level loop nest (or recursion) over the cartesian
// product with a single integer counter.
type Radix struct {
	bases    []int
	divisors []int
	size     int
}

// NewRadix builds a radix over bases. Every base must be >= 1.
// The product of all bases must fit in an int and must not exceed limit
// when limit > 0, otherwise ErrVariantSpaceTooLarge is returned.
func NewRadix(bases []int, limit int) (*Radix, error) {
	r := &Radix{
		bases:    bases,
		divisors: make([]int, len(bases)),
	}
	if len(bases) == 0 {
		return r, nil
	}
	var size uint64 = 1
	for i, base := range bases {
		if base < 1 {
			return nil, fmt.Errorf("invalid base %v at position %v", base, i)
		}
		r.divisors[i] = int(size)
		hi, lo := bits.Mul64(size, uint64(base))
		if hi != 0 || lo > math.MaxInt {
			return nil, fmt.Errorf("%w: product of candidate counts overflows at position %v", ErrVariantSpaceTooLarge, i)
		}
		size = lo
	}
	if limit > 0 && size > uint64(limit) {
		return nil, fmt.Errorf("%w: %v variants exceeds limit of %v", ErrVariantSpaceTooLarge, size, limit)
	}
	r.size = int(size)
	return r, nil
}

// Len returns number of digit tuples (0 when there are no bases)
func (r *Radix) Len() int {
	return r.size
}

// Width returns number of digits
func (r *Radix) Width() int {
	return len(r.bases)
}

// Digits writes digit tuple of v into dst (resized as needed) and returns it
func (r *Radix) Digits(v int, dst []int) []int {
	if cap(dst) < len(r.bases) {
		dst = make([]int, len(r.bases))
	}
	dst = dst[:len(r.bases)]
	for i, base := range r.bases {
		dst[i] = (v / r.divisors[i]) % base
	}
	return dst
}
