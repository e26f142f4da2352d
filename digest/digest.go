// FILE: github.com/jeffbi/brace/digest/digest.go

// Package digest implements the MD5, SHA-1 and SHA-2 family of
// message digests behind a single incremental contract, with chunked
// convenience entry points for byte slices and streams.
package digest

import (
	"io"
	"math"
	"math/bits"
)

// readChunkSize is how much SumReader and SumReaderN pull from their
// source per read.
const readChunkSize = 4096

// Algorithm is the incremental contract shared by every digest in
// this package.
//
// Write absorbs message bytes and never returns an error. Finalize
// pads and processes whatever remains, returns the digest, and resets
// the value, so one Algorithm can digest independent messages back to
// back without an explicit Reset.
//
// Values are not safe for concurrent use. Give each goroutine its
// own.
type Algorithm interface {
	io.Writer

	// Size returns the digest length in bytes.
	Size() int
	// BlockSize returns the compression block length in bytes.
	BlockSize() int
	// Finalize completes the digest and resets the value.
	Finalize() []byte
	// Reset discards absorbed input, restoring the initial state.
	Reset()
}

const errMsgTooLong = "digest: maximum message length exceeded"

// bitCount64 counts message bits in one 64-bit word. MD5, SHA-1 and
// the narrow SHA-2 pair cap their messages at 2^64-1 bits; walking
// past the cap must fail loudly, never wrap.
type bitCount64 uint64

func (c *bitCount64) add(n int) {
	if uint64(n) > (math.MaxUint64-uint64(*c))>>3 {
		panic(errMsgTooLong)
	}

	*c += bitCount64(uint64(n) << 3)
}

func (c *bitCount64) reset() {
	*c = 0
}

// bitCount128 counts message bits in two 64-bit words for the wide
// SHA-2 pair, capped at 2^128-1 bits.
type bitCount128 struct {
	hi, lo uint64
}

func (c *bitCount128) add(n int) {
	lo, carry := bits.Add64(c.lo, uint64(n)<<3, 0)
	hi, carry := bits.Add64(c.hi, uint64(n)>>61, carry)
	if carry != 0 {
		panic(errMsgTooLong)
	}

	c.hi, c.lo = hi, lo
}

func (c *bitCount128) reset() {
	c.hi, c.lo = 0, 0
}

//
// the SHA word combiners, shared across SHA-1 and SHA-2
//

func shaCh32(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

func shaMaj32(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

func shaParity32(x, y, z uint32) uint32 {
	return x ^ y ^ z
}

func shaCh64(x, y, z uint64) uint64 {
	return (x & y) ^ (^x & z)
}

func shaMaj64(x, y, z uint64) uint64 {
	return (x & y) ^ (x & z) ^ (y & z)
}

// Sum feeds data to a and finalizes, returning the digest.
func Sum(a Algorithm, data []byte) []byte {
	a.Write(data)

	return a.Finalize()
}

// SumString feeds data to a and finalizes, returning the digest
// rendered as uppercase hex.
func SumString(a Algorithm, data []byte) string {
	return ToString(Sum(a, data))
}

// SumReader absorbs r in 4096-byte chunks until exhaustion and
// finalizes. On a read failure the partial state is discarded and the
// reader's error returned.
func SumReader(a Algorithm, r io.Reader) ([]byte, error) {
	buf := make([]byte, readChunkSize)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			a.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			a.Reset()

			return nil, err
		}
	}

	return a.Finalize(), nil
}

// SumReaderN absorbs at most limit bytes of r in 4096-byte chunks and
// finalizes. The source running out before limit bytes arrive is not
// an error; the digest covers what arrived.
func SumReaderN(a Algorithm, r io.Reader, limit int64) ([]byte, error) {
	buf := make([]byte, readChunkSize)

	for limit > 0 {
		n := readChunkSize
		if limit < int64(n) {
			n = int(limit)
		}

		got, err := r.Read(buf[:n])
		if got > 0 {
			a.Write(buf[:got])
			limit -= int64(got)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			a.Reset()

			return nil, err
		}
	}

	return a.Finalize(), nil
}

const hexDigits = "0123456789ABCDEF"

// ToString renders a digest as uppercase hex, two characters per
// byte, no separators.
func ToString(sum []byte) string {
	out := make([]byte, 0, len(sum)*2)
	for _, b := range sum {
		out = append(out, hexDigits[b>>4], hexDigits[b&0x0F])
	}

	return string(out)
}
