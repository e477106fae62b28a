// Package base64 implements Base64 encoding and decoding with the
// standard alphabet and '=' padding, as specified by RFC 4648.
//
// Encoding never fails. Decoding has two modes, selected by
// DecodingOptions:
//
//    DecodeString("TW!Fu", Strict)                // nil, ErrInvalidInput
//    DecodeString("TW!Fu", SkipInvalidInputBytes) // "Man", nil
//
// Comparison to encoding/base64
//
// Unlike encoding/base64, this package does not skip '\r' and
// '\n'. In strict mode they are invalid like any other byte
// outside the alphabet; with SkipInvalidInputBytes every such
// byte is dropped.
//
// Unlike encoding/base64, this package accepts unpadded input
// and does not count padding symbols, and it never returns
// partial output. For example:
//
//    src := []byte("aGVsb?8=")
//    StdEncoding.Decode(dst, src) // 3, CorruptInputError(5)
//    Decode(dst, src, Strict)     // 0, ErrInvalidInput
//
// All functions are safe for concurrent use.
package base64
