package bitstream

// cursor tracks a monotonic bit position over a window. The sub word
// offset stays in [0, W); whole words get pushed into the window.
type cursor[T Word] struct {
	win window[T]
	off uint
}

func (c *cursor[T]) extract(width uint) T {
	result := Extract(c.win.curr(), c.win.next(), c.off, width)
	c.advance(width)
	return result
}

func (c *cursor[T]) advance(width uint) {
	w := wordBits[T]()
	c.off += width
	c.win.advance(c.off / w)
	c.off %= w
}
