package base64

import "encoding/binary"

const (
	// StdPadding is the padding symbol appended to the final
	// group of an encoding.
	StdPadding = '='

	// Alphabet maps each 6-bit value to its Base64 symbol.
	//
	// The codec never indexes into it: lookups are computed by
	// stdLookup and stdRevLookup so that they do not depend on
	// secret-dependent memory accesses.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789" +
		"+/"
)

// EncodedLen returns the size in bytes of the Base64 encoding
// of n source bytes.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// Encode encodes src, writing EncodedLen(len(src)) bytes to dst.
//
// Encode runs in constant time for the length of src.
func Encode(dst, src []byte) {
	if len(src) == 0 {
		return
	}

	for len(src) >= 3 {
		v := uint32(src[0])<<16 | uint32(src[1])<<8 | uint32(src[2])
		binary.LittleEndian.PutUint32(dst, stdLookupSWAR3(v<<8))
		src = src[3:]
		dst = dst[4:]
	}

	switch len(src) {
	case 2:
		v := uint(src[0])<<16 | uint(src[1])<<8
		dst[0] = stdLookup(v >> 18 & 0x3f)
		dst[1] = stdLookup(v >> 12 & 0x3f)
		dst[2] = stdLookup(v >> 6 & 0x3f)
		dst[3] = StdPadding
	case 1:
		v := uint(src[0]) << 16
		dst[0] = stdLookup(v >> 18 & 0x3f)
		dst[1] = stdLookup(v >> 12 & 0x3f)
		dst[2] = StdPadding
		dst[3] = StdPadding
	}
}

// AppendEncode appends the Base64 encoding of src to dst and
// returns the extended buffer.
func AppendEncode(dst, src []byte) []byte {
	n := EncodedLen(len(src))
	if cap(dst)-len(dst) < n {
		buf := make([]byte, len(dst), len(dst)+n)
		copy(buf, dst)
		dst = buf
	}
	Encode(dst[len(dst):len(dst)+n], src)
	return dst[:len(dst)+n]
}

// EncodeToBytes returns the Base64 encoding of src as a byte
// slice.
//
// EncodeToBytes runs in constant time for the length of src.
func EncodeToBytes(src []byte) []byte {
	dst := make([]byte, EncodedLen(len(src)))
	Encode(dst, src)
	return dst
}

// EncodeToString returns the Base64 encoding of src.
//
// EncodeToString runs in constant time for the length of src.
func EncodeToString(src []byte) string {
	return string(EncodeToBytes(src))
}

// stdLookup converts the 6-bit value c to its Base64 symbol.
//
// c must be in [0, 63].
//
// See http://0x80.pl/notesen/2016-01-12-sse-base64-encoding.html
func stdLookup(c uint) byte {
	// Start from 'A' and add the distance between consecutive
	// ranges of the alphabet whenever c crosses into one:
	//    [0, 25]  -> 'A'
	//    [26, 51] -> 'a' (+6)
	//    [52, 61] -> '0' (-75)
	//    62       -> '+' (-15)
	//    63       -> '/' (+3)
	s := uint('A')
	s += (26 - c - 1) >> 8 & 6
	s -= (52 - c - 1) >> 8 & 75
	s -= (62 - c - 1) >> 8 & 15
	s += (63 - c - 1) >> 8 & 3
	return byte(c + s)
}

// stdLookupSWAR3 converts the 24 bits held in u[32:8] into four
// Base64 symbols, first symbol in the lowest byte.
//
// See http://0x80.pl/articles/avx512-foundation-base64.html
func stdLookupSWAR3(u uint32) uint32 {
	// Spread the four 6-bit fields of
	//    AAAAAAAA BBBBBBBB CCCCCCCC ........
	// into one field per byte:
	//    ..CCCCCC ..BBBBCC ..AABBBB ..AAAAAA
	var c uint32
	c |= (u >> 26) & 0x00_00_00_3f
	c |= (u >> 12) & 0x00_00_3f_00
	c |= (u << 2) & 0x00_3f_00_00
	c |= (u << 16) & 0x3f_00_00_00

	const msb = 0x80808080

	// Each step sets the high bit of a lane when the lane is at
	// least the threshold, then widens it to a lane mask.

	// c[i] >= 26
	c0 := (c + 0x66666666) & msb
	c0 -= c0 >> 7
	c0 &= 0x06060606

	// c[i] >= 52
	c1 := (c + 0x4c4c4c4c) & msb
	c1msb := c1
	c1 -= c1 >> 7
	c1 &= 0x3b3b3b3b

	// c[i] >= 62
	c2 := (c + 0x42424242) & msb
	c2 -= c2 >> 7
	c2 &= 0x11111111

	// c[i] >= 63
	c3 := (c + 0x41414141) & msb
	c3 -= c3 >> 7
	c3 &= 0x1d1d1d1d

	s := 0x41414141 ^ c0 ^ c1 ^ c2 ^ c3

	return (c + s) ^ c1msb
}

// stdRevLookup converts the Base64 symbol c to its 6-bit value.
//
// If c is not in the alphabet stdRevLookup returns 0xff. The
// padding symbol is not in the alphabet.
func stdRevLookup(c uint) byte {
	// Written without branches so the compiler inlines it.
	//
	// The shift s is selected by range:
	//    'A'..'Z' -> -65
	//    'a'..'z' -> -71
	//    '0'..'9' -> +4
	//    '+'      -> +19
	//    '/'      -> +16
	// and is zero for every other byte.
	s := ((((64 - c) & (c - 91)) >> 8) & 191) ^
		((((96 - c) & (c - 123)) >> 8) & 185) ^
		((((47 - c) & (c - 58)) >> 8) & 4) ^
		((((42 - c) & (c - 44)) >> 8) & 19) ^
		((((46 - c) & (c - 48)) >> 8) & 16)
	// s == 0 means c is not a symbol: force the result to 0xff.
	return byte((s+c)&0x3f | ((((0 - s) >> 8) & 0xff) ^ 0xff))
}
