package base64

import "github.com/sttalbot/stbase64"

// DecodedLen returns the maximum number of bytes that n bytes of
// Base64-encoded data can decode to.
func DecodedLen(n int) int {
	return n/4*3 + n%4*3/4
}

// Decode decodes src, writing at most DecodedLen(len(src)) bytes
// to dst, and returns the number of bytes written.
//
// Decoding stops taking symbols at the first padding symbol;
// more padding may follow, but an alphabet symbol after padding
// is invalid. Unpadded input is accepted, and the unused low bits
// of a final partial group are not checked. A final group holding
// a single symbol is invalid because it cannot carry a whole
// byte.
//
// Unless opts has SkipInvalidInputBytes, any other byte
// (whitespace included) makes the input invalid.
//
// If src is invalid Decode zeroes the bytes it wrote to dst and
// returns 0 and an error of kind InvalidInput. It never returns
// a partial result.
//
// Decode does not branch on the value of alphabet symbols, only
// on the positions of padding and invalid bytes.
func Decode(dst, src []byte, opts DecodingOptions) (int, error) {
	n, err := decode(dst, src, opts)
	if err != nil {
		stbase64.Wipe(dst[:n])
		return 0, err
	}
	return n, nil
}

func decode(dst, src []byte, opts DecodingOptions) (n int, err error) {
	skip := opts.Has(SkipInvalidInputBytes)

	var (
		// acc holds the pending 6-bit values, most recent in the
		// low bits.
		acc  uint32
		nacc int
		// padded is set once the padding symbol has been seen.
		padded bool
	)
	for _, c := range src {
		v := stdRevLookup(uint(c))
		sym := stbase64.ConstantTimeByteNeq(v, 0xff)
		pad := stbase64.ConstantTimeByteEq(c, StdPadding)

		switch {
		case sym == 1:
			if padded {
				// Data after the end of the stream.
				return n, ErrInvalidInput
			}
			acc = acc<<6 | uint32(v)
			nacc++
			if nacc == 4 {
				dst[n+0] = byte(acc >> 16)
				dst[n+1] = byte(acc >> 8)
				dst[n+2] = byte(acc)
				n += 3
				acc, nacc = 0, 0
			}
		case pad == 1:
			padded = true
		case !skip:
			return n, ErrInvalidInput
		}
	}

	switch nacc {
	case 3:
		// 18 bits: keep the top 16.
		acc <<= 6
		dst[n+0] = byte(acc >> 16)
		dst[n+1] = byte(acc >> 8)
		n += 2
	case 2:
		// 12 bits: keep the top 8.
		acc <<= 12
		dst[n] = byte(acc >> 16)
		n++
	case 1:
		return n, ErrInvalidInput
	}
	return n, nil
}

// DecodeBytes decodes src, which holds Base64 text as single-byte
// characters.
//
// On failure it returns nil and an error of kind InvalidInput.
// See Decode for the accepted syntax.
func DecodeBytes(src []byte, opts DecodingOptions) ([]byte, error) {
	dst := make([]byte, DecodedLen(len(src)))
	n, err := Decode(dst, src, opts)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// DecodeString decodes the Base64 text s.
//
// On failure it returns nil and an error of kind InvalidInput.
// See Decode for the accepted syntax.
func DecodeString(s string, opts DecodingOptions) ([]byte, error) {
	return DecodeBytes([]byte(s), opts)
}

// AppendDecode appends the decoding of src to dst and returns
// the extended buffer. On failure it returns dst unchanged.
func AppendDecode(dst, src []byte, opts DecodingOptions) ([]byte, error) {
	m := DecodedLen(len(src))
	if cap(dst)-len(dst) < m {
		buf := make([]byte, len(dst), len(dst)+m)
		copy(buf, dst)
		dst = buf
	}
	n, err := Decode(dst[len(dst):len(dst)+m], src, opts)
	if err != nil {
		return dst, err
	}
	return dst[:len(dst)+n], nil
}

// DecodeOrNil decodes src in strict mode and returns nil if src
// is not valid Base64.
//
// The result for valid empty input is empty but not nil.
func DecodeOrNil(src []byte) []byte {
	b, err := DecodeBytes(src, Strict)
	if err != nil {
		return nil
	}
	return b
}

// DecodeStringOrNil is like DecodeOrNil but decodes a string.
func DecodeStringOrNil(s string) []byte {
	return DecodeOrNil([]byte(s))
}
