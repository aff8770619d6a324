package bitstream

// Writer packs fields one after another into a word array. It writes
// through to the buffer on every call and needs exclusive access to
// it for as long as it is used.
type Writer[T Word] struct {
	buf []T
	idx uint
	off uint
}

// NewWriter returns a Writer positioned at bit 0 of buf.
func NewWriter[T Word](buf []T) *Writer[T] {
	return NewWriterAt(buf, 0)
}

// NewWriterAt returns a Writer positioned at an absolute starting bit.
func NewWriterAt[T Word](buf []T, bit uint64) *Writer[T] {
	w := uint64(wordBits[T]())
	return &Writer[T]{buf: buf, idx: uint(bit / w), off: uint(bit % w)}
}

// Write stores the low width bits of val at the current position and
// moves forward exactly width bits. Bits around the field keep their
// previous values. val must be pre masked to width; Write does not
// mask.
func (w *Writer[T]) Write(val T, width uint) {
	Inject(w.buf[w.idx:], val, w.off, width)

	wb := wordBits[T]()
	w.off += width
	w.idx += w.off / wb
	w.off %= wb
}
