// Package length implements the two length-prefix call sites objprop
// reads before a string or a sequence (spec.md §4.C), grounded on
// serialization.rs's impl_read_len! macro and read_compact_length_prefix.
package length

import (
	"github.com/finchtower/objprop/bitio"
)

// ReadCompactPrefix reads a one-bit "is large" flag followed by either a
// 31-bit or a 7-bit value, the COMPACT_LENGTH_PREFIXES encoding.
func ReadCompactPrefix(r *bitio.Reader) (uint64, error) {
	isLarge, err := r.ReadBit()
	if err != nil {
		return 0, err
	}

	if isLarge {
		return r.ReadValueBits(31)
	}

	return r.ReadValueBits(7)
}

// ReadStringLen reads the length prefix used before string and wide
// string payloads: realign to a byte boundary, then either a compact
// prefix or a nominal u16, depending on compact.
func ReadStringLen(r *bitio.Reader, compact bool) (int, error) {
	r.RealignToByte()

	if compact {
		v, err := ReadCompactPrefix(r)
		return int(v), err
	}

	v, err := r.LoadU16()
	return int(v), err
}

// ReadSequenceLen reads the length prefix used before a dynamic (list)
// property's element count: realign to a byte boundary, then either a
// compact prefix or a nominal u32, depending on compact.
func ReadSequenceLen(r *bitio.Reader, compact bool) (int, error) {
	r.RealignToByte()

	if compact {
		v, err := ReadCompactPrefix(r)
		return int(v), err
	}

	v, err := r.LoadU32()
	return int(v), err
}
