// Package leb128 implements Little-Endian Base-128 variable length integer
// encoding.
//
// Each output byte carries 7 payload bits and a continuation bit. Unsigned
// encoding stops once the remaining value is zero. Signed encoding uses
// two's complement sign extension over the variable length and stops the
// moment the remaining bits are a pure sign extension of the last emitted
// group.
//
// Values enter and leave as sign separated magnitudes (big-endian bytes plus
// a negative flag); the magnitude is bridged through the radix 10 base
// converter into an arbitrary precision integer, so there is no width limit.
// A hexadecimal surface representation is available purely for display.
package leb128
