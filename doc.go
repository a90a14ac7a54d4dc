// Package bitpack reads and writes integer fields packed into a 64-bit word.
//
// A field is described by its width in bits and the index of its least
// significant bit (lsb) within the word:
//
//  | 63 | ... | lsb+width | lsb+width-1 | ... | lsb | lsb-1 | ... | 0 |
//  |----|-----|-----------|-------------------------|-------|-----|---|
//  |    untouched         | field (width bits)      |   untouched     |
//
// Unsigned fields hold values in [0, 2^width - 1]. Signed fields hold two's
// complement values in [-2^(width-1), 2^(width-1) - 1] and are sign extended
// when read.
//
// Every function is pure: words are passed and returned by value, so all of
// them are safe for concurrent use.
//
// Widths
//
// A zero width field holds only zero. It always reads as 0 and only accepts 0
// when set. A 64 bit field covers the whole word and accepts every value of
// its type.
//
// Writing
//
// SetUnsigned and SetSigned clear the field before writing the new value, so
// a field may be overwritten in place. Earlier versions only OR-ed the value
// into the word, which gave the same result only when the field was already
// zero. Words built field by field from zero are encoded identically either
// way.
//
// A value that does not fit in the field is rejected with a DoesNotFit error
// instead of being truncated.
//
// Malformed fields
//
// A field must lie inside the word: lsb + width <= 64. Reading, writing or
// masking a field that doesn't panics, in the same way that indexing past the
// end of a slice does. FitsSigned and FitsUnsigned accept any width.
package bitpack
