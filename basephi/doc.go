// Package basephi encodes numbers in base φ (the golden ratio).
//
// A value is decomposed greedily into a sum of powers of φ, largest fitting
// power first, in the manner of a Zeckendorf decomposition. Powers are never
// computed by exponentiation: the recurrence φ^(k+1) = φ^k + φ^(k-1) walks
// the power ladder up and down with nothing but additions and subtractions,
// so the arithmetic stays as exact as the underlying decimal precision
// allows.
//
// The decimal arithmetic itself is injected: the codec only needs add,
// subtract, compare, multiply by integer, round, and integer rendering. The
// default provider is backed by gopkg.in/inf.v0 fixed point decimals.
//
// The digit string uses the two symbol charset "01" with an optional radix
// point and sign prefix, e.g. 2 encodes as "10.01". Decoding is strict:
// any other character is a charset error.
//
// Base φ is approximate but converging by nature. When the greedy reduction
// exhausts the configured precision before the remainder vanishes, the
// encoder returns its best effort result with exact=false. That is the one
// documented degradation path; every other path is exact or fails fast.
package basephi
