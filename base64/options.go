package base64

import (
	"strconv"
	"strings"
)

// DecodingOptions is a set of flags that adjust how strictly
// input is decoded.
//
// Bits without a defined flag are ignored, so a set built
// against a newer version of this package is still accepted.
type DecodingOptions uint

const (
	// SkipInvalidInputBytes discards every byte that is neither
	// an alphabet symbol nor the padding symbol, instead of
	// failing the decode. Whitespace and control characters are
	// treated like any other invalid byte.
	SkipInvalidInputBytes DecodingOptions = 1 << iota
)

// Strict is the empty option set. Any byte outside the alphabet
// and padding fails the decode.
const Strict DecodingOptions = 0

var optionNames = []struct {
	flag DecodingOptions
	name string
}{
	{SkipInvalidInputBytes, "SkipInvalidInputBytes"},
}

// Has reports whether every flag in f is set in o.
func (o DecodingOptions) Has(f DecodingOptions) bool {
	return o&f == f
}

func (o DecodingOptions) String() string {
	if o == Strict {
		return "Strict"
	}
	var names []string
	for _, n := range optionNames {
		if o.Has(n.flag) {
			names = append(names, n.name)
			o &^= n.flag
		}
	}
	if o != 0 {
		names = append(names, "0x"+strconv.FormatUint(uint64(o), 16))
	}
	return strings.Join(names, "|")
}
