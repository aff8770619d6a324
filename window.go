package bitstream

// window is a two word view over a word array: the current word, the
// one after it, and a way to move forward. Implementations assume one
// extra valid word past the last one addressed.
type window[T Word] interface {
	curr() T
	next() T
	advance(words uint)
}

// directWindow reads memory on every access. It is correct for any
// access pattern, including several cursors sharing one array.
type directWindow[T Word] struct {
	buf []T
	idx uint
}

func newDirectWindow[T Word](buf []T, idx uint) *directWindow[T] {
	return &directWindow[T]{buf: buf, idx: idx}
}

func (d *directWindow[T]) curr() T { return d.buf[d.idx] }
func (d *directWindow[T]) next() T { return d.buf[d.idx+1] }

func (d *directWindow[T]) advance(words uint) { d.idx += words }

// cachedWindow keeps both words of the view in local state so that
// the common advance of zero or one words costs at most one memory
// read instead of two.
type cachedWindow[T Word] struct {
	buf []T
	idx uint
	b0  T
	b1  T
}

func newCachedWindow[T Word](buf []T, idx uint) *cachedWindow[T] {
	c := &cachedWindow[T]{buf: buf, idx: idx}
	c.load()
	return c
}

func (c *cachedWindow[T]) load() {
	c.b0 = c.buf[c.idx]
	c.b1 = c.buf[c.idx+1]
}

func (c *cachedWindow[T]) curr() T { return c.b0 }
func (c *cachedWindow[T]) next() T { return c.b1 }

func (c *cachedWindow[T]) advance(words uint) {
	c.idx += words
	switch words {
	case 0:
	case 1:
		c.b0 = c.b1
		c.b1 = c.buf[c.idx+1]
	default:
		c.load()
	}
}
