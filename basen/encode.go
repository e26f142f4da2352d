// FILE: github.com/jeffbi/brace/basen/encode.go

package basen

import (
	"slices"
	"unsafe"
)

// EncodedLen returns the number of characters required to encode n
// bytes, including any trailing pad characters and excluding line
// wrapping. It returns -1 if the input byte length cannot be encoded
// properly.
//
// If the input is zero, zero will be returned. Remember that
// UnsafeEncode requires the src argument to have a length greater
// than zero.
func (enc *Encoding) EncodedLen(n int) int {
	if n < 0 {
		return -1
	}

	result := enc.encodedLenExpression(n)
	if result <= n && n != 0 {
		return -1
	}

	return result
}

// EncodedWrapLen returns the number of characters required to encode
// n bytes when a newline is appended after every wrapAt characters.
// A wrapAt of zero or less means no wrapping. It returns -1 if the
// input byte length cannot be encoded properly.
func (enc *Encoding) EncodedWrapLen(n, wrapAt int) int {
	result := enc.EncodedLen(n)
	if result <= 0 || wrapAt <= 0 {
		return result
	}

	wrapped := result + result/wrapAt
	if wrapped < result {
		return -1
	}

	return wrapped
}

func (enc *Encoding) encodedLenExpression(n int) int {
	return (n + enc.groupLen - 1) / enc.groupLen * enc.charLen
}

func (enc *Encoding) encodedLen(n int) int {
	result := enc.encodedLenExpression(n)
	if result <= n {
		panic(enc.name + ": invalid encode source length")
	}

	return result
}

func (enc *Encoding) encode(dstPtr, srcPtr unsafe.Pointer, n int) {
	gl, cl := enc.groupLen, enc.charLen
	mask := uint64(1)<<enc.bits - 1

	for range n / gl {
		var hold uint64
		for i := range gl {
			hold = hold<<8 | uint64(*(*byte)(unsafe.Add(srcPtr, i)))
		}

		shift := uint(gl * 8)
		for i := range cl {
			shift -= enc.bits
			*(*byte)(unsafe.Add(dstPtr, i)) = enc.alphabet[(hold>>shift)&mask]
		}

		srcPtr = unsafe.Add(srcPtr, gl)
		dstPtr = unsafe.Add(dstPtr, cl)
	}

	// Tail (padded out to a full symbol group).
	if rem := n % gl; rem != 0 {
		var hold uint64
		for i := range rem {
			hold = hold<<8 | uint64(*(*byte)(unsafe.Add(srcPtr, i)))
		}
		hold <<= uint(gl-rem) * 8

		syms := (rem*8 + int(enc.bits) - 1) / int(enc.bits)
		shift := uint(gl * 8)
		for i := range syms {
			shift -= enc.bits
			*(*byte)(unsafe.Add(dstPtr, i)) = enc.alphabet[(hold>>shift)&mask]
		}
		for i := syms; i < cl; i++ {
			*(*byte)(unsafe.Add(dstPtr, i)) = enc.padChar
		}
	}
}

// UnsafeEncode fills dst with the encoded form of src.
//
// It should generally only be used when working with pre-validated
// sizes of data like in the case of data types with known byte-lengths.
//
// This function panics if the source is empty or if the destination
// does not have enough space in the slice for the encoded form of src.
//
// Knowing the length of the slice now occupied by the encoded form of
// src is the responsibility of the caller. It is the value returned by
// EncodedLen(len(src)).
//
// invariants:
//
// - len(src) > 0
//
// - len(dst) >= EncodedLen(len(src))
func (enc *Encoding) UnsafeEncode(dst []byte, src []byte) {
	// guard statements forcing panics rather than letting next call
	// lead to undefined behaviors

	if n := enc.encodedLen(len(src)); len(dst) < n {
		panic(enc.name + ": encode destination too short")
	}

	enc.encode(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), len(src))
}

// Encode returns nil if src is empty, otherwise it returns the
// encoded form of src.
func (enc *Encoding) Encode(src []byte) []byte {
	n := len(src)
	if n == 0 {
		return nil
	}

	n = enc.encodedLen(n)
	dst := make([]byte, n)

	enc.encode(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), len(src))

	return dst
}

// EncodeString returns "" if src is empty, otherwise it returns the
// encoded form of src.
func (enc *Encoding) EncodeString(src string) string {
	n := len(src)
	if n == 0 {
		return ""
	}

	n = enc.encodedLen(n)
	dst := make([]byte, n)

	enc.encode(unsafe.Pointer(&dst[0]), unsafe.Pointer(unsafe.StringData(src)), len(src))

	return string(dst)
}

// AppendEncode returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func (enc *Encoding) AppendEncode(dst, src []byte) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}

	n = enc.encodedLen(n)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	enc.encode(unsafe.Pointer(&dst[orig]), unsafe.Pointer(&src[0]), len(src))

	return dst
}

// AppendEncodeString returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func (enc *Encoding) AppendEncodeString(dst []byte, src string) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}

	n = enc.encodedLen(n)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	enc.encode(unsafe.Pointer(&dst[orig]), unsafe.Pointer(unsafe.StringData(src)), len(src))

	return dst
}

func (enc *Encoding) encodeWrap(dst, src []byte, wrapAt int) int {
	di, col := 0, 0

	emit := func(c byte) {
		dst[di] = c
		di++
		if col++; col == wrapAt {
			dst[di] = '\n'
			di++
			col = 0
		}
	}

	gl, cl := enc.groupLen, enc.charLen
	mask := uint64(1)<<enc.bits - 1

	for len(src) >= gl {
		var hold uint64
		for _, b := range src[:gl] {
			hold = hold<<8 | uint64(b)
		}

		shift := uint(gl * 8)
		for range cl {
			shift -= enc.bits
			emit(enc.alphabet[(hold>>shift)&mask])
		}

		src = src[gl:]
	}

	if rem := len(src); rem != 0 {
		var hold uint64
		for _, b := range src {
			hold = hold<<8 | uint64(b)
		}
		hold <<= uint(gl-rem) * 8

		syms := (rem*8 + int(enc.bits) - 1) / int(enc.bits)
		shift := uint(gl * 8)
		for range syms {
			shift -= enc.bits
			emit(enc.alphabet[(hold>>shift)&mask])
		}
		for range cl - syms {
			emit(enc.padChar)
		}
	}

	return di
}

// EncodeWrap returns the encoded form of src with a newline appended
// after every wrapAt characters. Pad characters count toward the wrap
// column and the newline does not, so output whose character count is
// an exact multiple of wrapAt ends in a newline. A wrapAt of zero or
// less encodes without wrapping.
//
// It returns nil if src is empty.
func (enc *Encoding) EncodeWrap(src []byte, wrapAt int) []byte {
	if wrapAt <= 0 {
		return enc.Encode(src)
	}

	n := len(src)
	if n == 0 {
		return nil
	}

	cn := enc.encodedLen(n)
	dst := make([]byte, cn+cn/wrapAt)

	enc.encodeWrap(dst, src, wrapAt)

	return dst
}

// EncodeWrapString returns the encoded form of src with a newline
// appended after every wrapAt characters. It returns "" if src is
// empty.
func (enc *Encoding) EncodeWrapString(src string, wrapAt int) string {
	if wrapAt <= 0 {
		return enc.EncodeString(src)
	}

	n := len(src)
	if n == 0 {
		return ""
	}

	cn := enc.encodedLen(n)
	dst := make([]byte, cn+cn/wrapAt)

	enc.encodeWrap(dst, []byte(src), wrapAt)

	return string(dst)
}
