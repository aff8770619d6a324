package bitstream

import (
	"os"
	"strconv"
)

// Shift returns bits [bits, bits+W) of the 2W bit value high:low, the
// same operation as the x86 shrd instruction.
//
//	2W                W                    0
//	+-----------------+--------------------+
//	|      high       |       low          |
//	+--------+--------+-----------+--------+
//	         |      result        |<-bits---
//	         +--------------------+
//
// bits must be less than W. The result for bits >= W is undefined.
func Shift[T Word](low, high T, bits uint) T {
	if asmShift {
		switch any(low).(type) {
		case uint64:
			return T(shrd64(uint64(low), uint64(high), bits))
		case uint32:
			return T(shrd32(uint32(low), uint32(high), bits))
		case uint16:
			return T(shrd16(uint16(low), uint16(high), bits))
		}
		// no 8 bit shrd instruction exists, and named word types
		// don't match the switch. both take the portable path.
	}
	return shiftEmulated(low, high, bits)
}

// shiftEmulated is the portable form of Shift. shifts of W or more
// are defined to be zero in go, so bits == 0 needs no special case.
func shiftEmulated[T Word](low, high T, bits uint) T {
	return low>>bits | high<<(wordBits[T]()-bits)
}

// noAsmEnv reports whether BITSTREAM_NO_ASM asks for the portable
// shift even when an accelerated one is available. It is consulted
// once at init, never per call.
func noAsmEnv() bool {
	val := os.Getenv("BITSTREAM_NO_ASM")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
