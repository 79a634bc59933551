// Package bigint provides the arbitrary precision integer primitives shared
// by the base converters.
//
// All values are non-negative magnitudes. Sign is tracked outside of this
// package as a separate flag so that base conversion never has to deal with
// sign ambiguity. Results are always exact: there is no fixed bit width and
// no floating point path.
package bigint
