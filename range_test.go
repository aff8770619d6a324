package bitstream

import (
	"math/big"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

func TestExtract(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		buf := []uint32{0xAAAAAAAA, 0x55555555}

		// bits of the 64 bit value 0x55555555AAAAAAAA
		assert.Equal(t, ExtractAt(buf, 16, 20), uint32(0x5AAAA))
		assert.Equal(t, ExtractAt(buf, 24, 20), uint32(0x555AA))
		assert.Equal(t, ExtractFrom(buf, 24, 20), uint32(0x555AA))
		assert.Equal(t, ExtractAt(buf, 0, 32), uint32(0xAAAAAAAA))
		assert.Equal(t, ExtractAt(buf, 32, 32), uint32(0x55555555))
	})

	t.Run("ZeroWidth", func(t *testing.T) {
		buf := []uint64{pcg.Uint64(), pcg.Uint64()}
		for bit := uint(0); bit < 64; bit++ {
			assert.Equal(t, Extract(buf[0], buf[1], bit, 0), uint64(0))
			assert.Equal(t, ExtractFrom(buf, bit, 0), uint64(0))
		}
	})

	t.Run("Reference", func(t *testing.T) {
		// randomized fields spanning the word boundary, checked
		// against an arbitrary precision computation of the 128 bit
		// concatenation hi:lo.
		for i := 0; i < 1000; i++ {
			lo, hi := pcg.Uint64(), pcg.Uint64()
			bit := uint(1 + pcg.Uint32n(63))
			width := uint(pcg.Uint32n(65))

			ref := new(big.Int).SetUint64(hi)
			ref.Lsh(ref, 64)
			ref.Or(ref, new(big.Int).SetUint64(lo))
			ref.Rsh(ref, bit)
			mask := new(big.Int).Lsh(big.NewInt(1), width)
			ref.And(ref, mask.Sub(mask, big.NewInt(1)))

			assert.Equal(t, Extract(lo, hi, bit, width), ref.Uint64())
		}
	})
}

func TestInject(t *testing.T) {
	t.Run("ZeroWidth", func(t *testing.T) {
		buf := []uint64{pcg.Uint64(), pcg.Uint64()}
		exp0, exp1 := buf[0], buf[1]

		for bit := uint(0); bit < 64; bit++ {
			Inject(buf, pcg.Uint64(), bit, 0)
		}

		assert.Equal(t, buf[0], exp0)
		assert.Equal(t, buf[1], exp1)
	})

	t.Run("Fuzz", func(t *testing.T) {
		// model the two word buffer as a single uint64 and check that
		// exactly the chosen range changed.
		for i := 0; i < 1000; i++ {
			buf := []uint32{uint32(pcg.Uint64()), uint32(pcg.Uint64())}
			bit := uint(pcg.Uint32n(32))
			width := uint(pcg.Uint32n(33))
			val := uint32(pcg.Uint64()) & uint32(uint64(1)<<width-1)

			whole := uint64(buf[1])<<32 | uint64(buf[0])
			mask := (uint64(1)<<width - 1) << bit
			exp := whole&^mask | uint64(val)<<bit

			Inject(buf, val, bit, width)
			assert.Equal(t, uint64(buf[1])<<32|uint64(buf[0]), exp)
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			buf := make([]uint64, 3)
			off := uint64(pcg.Uint32n(64))
			width := uint(pcg.Uint32n(65))
			val := pcg.Uint64() & (1<<width - 1)

			InjectAt(buf, val, off, width)
			assert.Equal(t, ExtractAt(buf, off, width), val)
		}
	})
}

func BenchmarkExtract(b *testing.B) {
	buf := make([]uint64, 2)
	buf[0], buf[1] = pcg.Uint64(), pcg.Uint64()

	b.Run("Aligned", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			shiftSink = ExtractFrom(buf, 0, 17)
		}
	})

	b.Run("Straddling", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			shiftSink = ExtractFrom(buf, 60, 17)
		}
	})
}
