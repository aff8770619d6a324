//go:build amd64 && !purego

package bitstream

// asmShift selects the shrd backed Shift.
var asmShift = !noAsmEnv()

// implemented in shift_amd64.s

func shrd64(low, high uint64, bits uint) uint64
func shrd32(low, high uint32, bits uint) uint32
func shrd16(low, high uint16, bits uint) uint16
