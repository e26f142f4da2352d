// FILE: github.com/jeffbi/brace/basen/decode.go

package basen

import (
	"slices"
	"unsafe"
)

// DecodedLen returns the maximum number of bytes that decoding n
// characters can produce. The decoded result may be shorter when the
// input contains padding or newline characters. It returns -1 if n
// is negative.
func (enc *Encoding) DecodedLen(n int) int {
	if n < 0 {
		return -1
	}

	return enc.decodedLenExpression(n)
}

func (enc *Encoding) decodedLenExpression(n int) int {
	return (n + enc.charLen - 1) / enc.charLen * enc.groupLen
}

// decodeState carries the scanner state of one decode session so that
// the in-memory and stream paths run the same engine.
type decodeState struct {
	enc      *Encoding
	hold     uint64
	leftover int
	padCount int
	line     int
	pos      int
	newline  bool
}

func (enc *Encoding) newDecodeState(handleNewline bool) decodeState {
	return decodeState{enc: enc, line: 1, pos: 1, newline: handleNewline}
}

// feed consumes src, writing decoded bytes to the front of dst. It
// returns the number of bytes written, which never exceeds
// (leftover+len(src))/charLen*groupLen.
func (d *decodeState) feed(dst, src []byte) (int, error) {
	enc := d.enc
	di := 0

	for _, c := range src {
		if v := enc.decodeTab[c]; v != invalidByte {
			// a symbol after padding began means the text was
			// stitched together badly
			if d.padCount > 0 {
				return di, badCharErr(d.line, d.pos)
			}

			d.hold = d.hold<<enc.bits | uint64(v)
			if d.leftover++; d.leftover == enc.charLen {
				shift := uint(enc.groupLen * 8)
				for range enc.groupLen {
					shift -= 8
					dst[di] = byte(d.hold >> shift)
					di++
				}
				d.hold = 0
				d.leftover = 0
			}
		} else if c == '\n' && d.newline {
			d.line++
			d.pos = 0
		} else if c == enc.padChar && enc.padChar != 0 {
			if d.padCount++; d.padCount > enc.maxPad {
				return di, badCharErr(d.line, d.pos)
			}
		} else {
			return di, badCharErr(d.line, d.pos)
		}

		d.pos++
	}

	return di, nil
}

// finish resolves the final partial group, if any, writing its bytes
// to the front of dst.
func (d *decodeState) finish(dst []byte) (int, error) {
	enc := d.enc

	if d.leftover == 0 {
		if d.padCount > 0 {
			return 0, enc.lengthErr(d.line, d.pos)
		}

		return 0, nil
	}

	n := int(enc.tailBytes[d.leftover])
	if n < 0 || (enc.exactPad && d.padCount != enc.charLen-d.leftover) {
		return 0, enc.lengthErr(d.line, d.pos)
	}

	hold := d.hold << (uint(enc.charLen-d.leftover) * enc.bits)
	shift := uint(enc.groupLen * 8)
	for i := range n {
		shift -= 8
		dst[i] = byte(hold >> shift)
	}

	return n, nil
}

// Decode returns the decoded form of src if src is not empty. If src
// is empty nil is returned.
//
// When handleNewline is true, newline characters in src are skipped,
// advancing the line count used for error positions. When false a
// newline is an invalid character.
//
// If the input is malformed the returned error is a *ParseError
// locating the offense, and the returned slice holds only the bytes
// decoded before it. Such a slice is not a completed result and must
// not be treated as one.
func (enc *Encoding) Decode(src []byte, handleNewline bool) ([]byte, error) {
	n := len(src)
	if n == 0 {
		return nil, nil
	}

	dst := make([]byte, enc.decodedLenExpression(n))

	d := enc.newDecodeState(handleNewline)
	di, err := d.feed(dst, src)
	if err != nil {
		return dst[:di], err
	}

	tn, err := d.finish(dst[di:])

	return dst[:di+tn], err
}

// DecodeString returns the decoded form of the text s. It behaves as
// Decode does.
func (enc *Encoding) DecodeString(s string, handleNewline bool) ([]byte, error) {
	return enc.Decode([]byte(s), handleNewline)
}

// AppendDecode returns the decoded form of src appended to dst if src
// is not empty. If src is empty dst is returned as-is.
//
// If the input is malformed the returned error is a *ParseError and
// the returned slice holds dst plus only the bytes decoded before the
// offense.
func (enc *Encoding) AppendDecode(dst, src []byte, handleNewline bool) ([]byte, error) {
	n := len(src)
	if n == 0 {
		return dst, nil
	}

	n = enc.decodedLenExpression(n)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	d := enc.newDecodeState(handleNewline)
	di, err := d.feed(dst[orig:], src)
	if err != nil {
		return dst[:orig+di], err
	}

	tn, err := d.finish(dst[orig+di:])

	return dst[:orig+di+tn], err
}

// UnsafeDecode fills dst with the decoded form of src without
// validating the symbols themselves.
//
// It is the fast path for text already known to be clean: src must
// consist only of alphabet symbols, with no padding, newline or other
// bytes, and must contain a whole number of symbol groups. Feeding
// anything else produces garbage output bytes, not an error.
//
// This function panics if the source is empty or not a whole number
// of groups, or if the destination does not have enough space for the
// decoded form of src.
//
// Knowing the length of the slice now occupied by the decoded form of
// src is the responsibility of the caller. It is the value returned
// by DecodedLen(len(src)).
//
// invariants:
//
// - len(src) > 0 and a multiple of the symbol group width
//
// - len(dst) >= DecodedLen(len(src))
//
// - src contains only alphabet symbols
func (enc *Encoding) UnsafeDecode(dst, src []byte) {
	// guard statements forcing panics rather than letting next call
	// lead to undefined behaviors

	n := len(src)
	if n == 0 || n%enc.charLen != 0 {
		panic(enc.name + ": invalid decode source length")
	}
	if len(dst) < n/enc.charLen*enc.groupLen {
		panic(enc.name + ": decode destination too short")
	}

	gl, cl := enc.groupLen, enc.charLen

	srcPtr := unsafe.Pointer(&src[0])
	dstPtr := unsafe.Pointer(&dst[0])

	for range n / cl {
		var hold uint64
		for i := range cl {
			hold = hold<<enc.bits | uint64(enc.decodeTab[*(*byte)(unsafe.Add(srcPtr, i))])
		}

		shift := uint(gl * 8)
		for i := range gl {
			shift -= 8
			*(*byte)(unsafe.Add(dstPtr, i)) = byte(hold >> shift)
		}

		srcPtr = unsafe.Add(srcPtr, cl)
		dstPtr = unsafe.Add(dstPtr, gl)
	}
}
