package bitpack

import (
	"github.com/zeebo/errs"
)

// Error is the class of errors raised for malformed fields.
var Error = errs.Class("bitpack")

// DoesNotFit is the class of errors returned when a value can't be
// represented in the requested field width.
var DoesNotFit = errs.Class("does not fit")

// WordBits is the width of a word.
const WordBits = 64

// ones returns a value with the low width bits set.
func ones(width uint64) uint64 {
	if width >= WordBits {
		return ^uint64(0)
	}

	return 1<<width - 1
}

func checkField(width, lsb uint64) {
	if lsb > WordBits || width > WordBits-lsb {
		panic(Error.New("field out of range: width=%d lsb=%d", width, lsb))
	}
}

// Mask returns a word with exactly the bits of the field set.
func Mask(width, lsb uint64) uint64 {
	checkField(width, lsb)

	return ones(width) << lsb
}

// FitsSigned returns true if n can be stored in a two's complement field of
// the given width.
func FitsSigned(n int64, width uint64) bool {
	switch {
	case width == 0:
		return n == 0
	case width >= WordBits:
		return true
	}

	// e.g. width=2 covers [-2, 1]
	limit := int64(1) << (width - 1)

	return n >= -limit && n <= limit-1
}

// FitsUnsigned returns true if n can be stored in an unsigned field of the
// given width.
func FitsUnsigned(n uint64, width uint64) bool {
	return n <= ones(width)
}

// GetUnsigned returns the unsigned value of the field.
func GetUnsigned(word, width, lsb uint64) uint64 {
	checkField(width, lsb)

	if width == 0 {
		return 0
	}

	return (word >> lsb) & ones(width)
}

// GetSigned returns the value of the field interpreted as two's complement
// and sign extended to 64 bits.
func GetSigned(word, width, lsb uint64) int64 {
	v := GetUnsigned(word, width, lsb)
	if width == 0 {
		return 0
	}

	if v>>(width-1)&1 == 1 {
		v |= ^ones(width)
	}

	return int64(v)
}

// SetUnsigned returns word with the field replaced by value. If value does
// not fit in width unsigned bits, word is returned unchanged with a
// DoesNotFit error.
//
// The field is cleared before value is written.
func SetUnsigned(word, width, lsb, value uint64) (uint64, error) {
	checkField(width, lsb)

	if !FitsUnsigned(value, width) {
		return word, DoesNotFit.New("unsigned value %d in %d bits", value, width)
	}

	return place(word, width, lsb, value), nil
}

// SetSigned returns word with the field replaced by the two's complement
// representation of value. If value does not fit in width signed bits, word
// is returned unchanged with a DoesNotFit error.
//
// The field is cleared before value is written.
func SetSigned(word, width, lsb uint64, value int64) (uint64, error) {
	checkField(width, lsb)

	if !FitsSigned(value, width) {
		return word, DoesNotFit.New("signed value %d in %d bits", value, width)
	}

	return place(word, width, lsb, uint64(value)&ones(width)), nil
}

// place expects bits to already fit in width.
func place(word, width, lsb, bits uint64) uint64 {
	if width == 0 {
		return word
	}

	mask := ones(width) << lsb

	return word&^mask | bits<<lsb
}
