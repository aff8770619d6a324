package bitstream

// Extract returns the width bit field starting at bit of the two word
// window p1:p0, right aligned and masked to width. bit must be less
// than W and width at most W.
func Extract[T Word](p0, p1 T, bit, width uint) T {
	if width == 0 {
		return 0
	}
	return Shift(p0, p1, bit) & (T(1)<<width - 1)
}

// ExtractFrom is Extract against memory: it reads p[0] and, only when
// the field crosses into it, p[1]. No adjustment is done on p; bit is
// expected to already be inside the first word.
func ExtractFrom[T Word](p []T, bit, width uint) T {
	if width == 0 {
		return 0
	}

	result := p[0]
	if bit+width > wordBits[T]() {
		result = Shift(result, p[1], bit)
	} else {
		result >>= bit
	}
	return result & (T(1)<<width - 1)
}

// setBits replaces the width bit field at bit of in with val, leaving
// every other bit alone. val must have no bits set outside the field
// and the field must fit entirely within the word.
func setBits[T Word](in, val T, bit, width uint) T {
	mask := (T(1)<<width - 1) << bit
	return in&^mask | val<<bit&mask
}

// Inject writes the low width bits of val into p starting at bit,
// preserving all bits outside that range. A field that crosses the
// word boundary is split: the first W-bit bits go into p[0], the
// remainder into p[1] starting at bit zero. val must be pre masked
// to width.
func Inject[T Word](p []T, val T, bit, width uint) {
	if width == 0 {
		return
	}

	width0 := min(width, wordBits[T]()-bit)
	width1 := width - width0

	p[0] = setBits(p[0], val, bit, width0)
	if width1 > 0 {
		p[1] = setBits(p[1], val>>width0, 0, width1)
	}
}

// ExtractAt reads a width bit field at an absolute bit offset into
// buf. Together with InjectAt it is the random access path: cursors
// cannot seek.
func ExtractAt[T Word](buf []T, off uint64, width uint) T {
	w := uint64(wordBits[T]())
	return ExtractFrom(buf[off/w:], uint(off%w), width)
}

// InjectAt writes a width bit field at an absolute bit offset into buf.
func InjectAt[T Word](buf []T, val T, off uint64, width uint) {
	w := uint64(wordBits[T]())
	Inject(buf[off/w:], val, uint(off%w), width)
}
