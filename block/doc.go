// Package block derives the byte and digit group sizes that make block-wise
// base conversion exact and reversible.
//
// For a radix R the pairing (bytesPerBlock, digitsPerBlock) is the smallest
// pair such that one block's worth of raw bytes maps onto exactly
// digitsPerBlock digits in base R with no partial digit ambiguity. Long
// inputs are then chunked into independently convertible groups.
//
// Radix 10 is a documented exception: decimal output has no natural fixed
// width byte granularity, so it reports the unblocked sentinel (0, 0) and the
// whole input is treated as a single arbitrary length block.
package block
