package planner

import "math/bits"

// MaxValves is the largest universe a Set can index.
const MaxValves = 64

// Set is a bitmask over a planner's universe of flow valves: bit i stands
// for the i-th identifier of Planner.Universe in ascending ID order.
type Set uint64

// Has reports whether bit i is set.
func (s Set) Has(i int) bool { return s&(1<<uint(i)) != 0 }

// With returns s with bit i set.
func (s Set) With(i int) Set { return s | 1<<uint(i) }

// Without returns s with bit i cleared.
func (s Set) Without(i int) Set { return s &^ (1 << uint(i)) }

// Len returns the number of set bits.
func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }

// Complement returns the members of universe that are not in s.
func (s Set) Complement(universe Set) Set { return universe &^ s }

// Bits returns the indices of the set bits in ascending order.
func (s Set) Bits() []int {
	out := make([]int, 0, s.Len())
	for rest := s; rest != 0; rest &= rest - 1 {
		out = append(out, rest.lowest())
	}

	return out
}

// lowest returns the index of the lowest set bit; s must be non-zero.
func (s Set) lowest() int { return bits.TrailingZeros64(uint64(s)) }

// full returns the Set with the lowest n bits set.
func full(n int) Set {
	if n >= MaxValves {
		return ^Set(0)
	}

	return Set(1)<<uint(n) - 1
}
