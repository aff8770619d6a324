//go:build !amd64 || purego

package bitstream

const asmShift = false

func shrd64(low, high uint64, bits uint) uint64 { return shiftEmulated(low, high, bits) }
func shrd32(low, high uint32, bits uint) uint32 { return shiftEmulated(low, high, bits) }
func shrd16(low, high uint16, bits uint) uint16 { return shiftEmulated(low, high, bits) }
