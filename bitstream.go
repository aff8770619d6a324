// Package bitstream packs and unpacks integer fields of arbitrary bit
// width into densely packed arrays of fixed width words.
//
// Fields are packed starting from the low order bits of each word. A
// field that does not fit in the remainder of a word places its low
// order part in that word and its high order remainder in the next
// one. Words are used in the order the backing slice provides them.
// No lengths or type tags are stored; both sides of a stream must
// agree on the field widths out of band.
//
// The primitives are unchecked by design. Callers must keep widths in
// [0, W] for a W bit word, pre-mask written values to their declared
// width, and provide one extra valid trailing word past the last word
// a cursor will address, because cursors always load a two word
// window. Violating any of these gives undefined results, not errors.
//
// A cursor is not safe for concurrent use. Any number of Readers may
// share an immutable buffer; a Writer needs exclusive access to its
// buffer for as long as it is used.
package bitstream

import "unsafe"

// Word is the set of storage unit types a stream can be built over.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Int is the set of destination types ReadAs can extract into.
type Int interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed is the subset of Int that gets sign extended.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

func wordBits[T Word]() uint { return uint(unsafe.Sizeof(T(0))) * 8 }
