package bitstream

// SignExtend copies the bit at signBit into every higher bit of raw.
func SignExtend[S Signed](raw S, signBit uint) S {
	if raw&(S(1)<<signBit) != 0 {
		raw |= ^S(0) << signBit
	}
	return raw
}

// fixup converts an extracted field to the destination type, sign
// extending when the destination is one of the signed integer types.
// Everything else passes through unchanged.
func fixup[D Int, T Word](raw T, width uint) D {
	if width == 0 {
		return 0
	}
	switch any(D(0)).(type) {
	case int8:
		return D(SignExtend(int8(raw), width-1))
	case int16:
		return D(SignExtend(int16(raw), width-1))
	case int32:
		return D(SignExtend(int32(raw), width-1))
	case int64:
		return D(SignExtend(int64(raw), width-1))
	}
	return D(raw)
}
