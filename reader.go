package bitstream

// Reader extracts fields one after another from a word array. The
// position only moves forward; random access goes through ExtractAt
// instead. A Reader owns no memory and must not outlive its buffer.
type Reader[T Word] struct {
	cur cursor[T]
}

// NewReader returns a Reader positioned at bit 0 of buf.
func NewReader[T Word](buf []T) *Reader[T] {
	return NewReaderAt(buf, 0)
}

// NewReaderAt returns a Reader positioned at an absolute starting bit.
func NewReaderAt[T Word](buf []T, bit uint64) *Reader[T] {
	w := uint64(wordBits[T]())
	return &Reader[T]{cur: cursor[T]{
		win: newCachedWindow(buf, uint(bit/w)),
		off: uint(bit % w),
	}}
}

// Read returns the next width bits of the stream, right aligned.
func (r *Reader[T]) Read(width uint) T {
	return r.cur.extract(width)
}

// Read2 reads two consecutive fields. It is purely a convenience; the
// results are exactly those of two Read calls in order. Read3 and
// Read4 likewise.
func (r *Reader[T]) Read2(w0, w1 uint) (T, T) {
	return r.cur.extract(w0), r.cur.extract(w1)
}

func (r *Reader[T]) Read3(w0, w1, w2 uint) (T, T, T) {
	return r.cur.extract(w0), r.cur.extract(w1), r.cur.extract(w2)
}

func (r *Reader[T]) Read4(w0, w1, w2, w3 uint) (T, T, T, T) {
	return r.cur.extract(w0), r.cur.extract(w1), r.cur.extract(w2), r.cur.extract(w3)
}

// Skip moves the position forward width bits without producing a
// value, for reserved or padding fields.
func (r *Reader[T]) Skip(width uint) {
	r.cur.advance(width)
}

// ReadInto fills dst with consecutive fields that all have the same
// width.
func (r *Reader[T]) ReadInto(dst []T, width uint) {
	for i := range dst {
		dst[i] = r.cur.extract(width)
	}
}

// ReadAs reads the next width bits into an arbitrary integer
// destination type, sign extending when the destination is signed.
// Methods cannot take type parameters, so this is a function.
func ReadAs[D Int, T Word](r *Reader[T], width uint) D {
	return fixup[D](r.cur.extract(width), width)
}
