// Package radix converts Go values to and from arbitrary base digit strings.
//
// The subpackages do the number work:
//
//	bigint   — arbitrary precision magnitude arithmetic
//	block    — byte/digit block pairing derivation per radix
//	baseconv — the block level base converter and configured codecs
//	leb128   — variable length quantity (LEB128) encoding
//	basephi  — base φ (golden ratio) encoding
//
// This package is the coercion layer on top of them: ToBytes turns an input
// value (string, integer, float, *big.Int, byte or value sequence) into the
// sign separated magnitude bytes the converters operate on, and Compile turns
// decoded bytes back into a requested Go value.
package radix
