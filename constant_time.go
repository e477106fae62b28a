// Package stbase64 holds the constant-time primitives shared by
// the Base64 codec in package base64.
package stbase64

import "crypto/subtle"

// ConstantTimeByteEq returns 1 if x == y and 0 otherwise.
func ConstantTimeByteEq(x, y uint8) int {
	return subtle.ConstantTimeByteEq(x, y)
}

// ConstantTimeByteNeq returns 1 if x != y and 0 otherwise.
func ConstantTimeByteNeq(x, y uint8) int {
	return ConstantTimeByteEq(x, y) ^ 1
}
