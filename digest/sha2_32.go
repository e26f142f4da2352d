// FILE: github.com/jeffbi/brace/digest/sha2_32.go

package digest

import (
	"encoding/binary"
	"math/bits"
)

const (
	sha256BlockSize = 64
	sha224Size      = 28
	sha256Size      = 32
)

// NewSHA224 returns an Algorithm computing the FIPS 180-2 SHA-224
// digest.
func NewSHA224() Algorithm {
	d := &digest32{is224: true}
	d.Reset()

	return d
}

// NewSHA256 returns an Algorithm computing the FIPS 180-2 SHA-256
// digest.
func NewSHA256() Algorithm {
	d := &digest32{}
	d.Reset()

	return d
}

// digest32 is the shared 32-bit word core behind SHA-224 and SHA-256.
// The two differ only in initial state and in how many digest bytes
// Finalize emits.
type digest32 struct {
	h     [8]uint32
	x     [sha256BlockSize]byte
	nx    int
	count bitCount64
	is224 bool
}

func (d *digest32) Size() int {
	if d.is224 {
		return sha224Size
	}

	return sha256Size
}

func (d *digest32) BlockSize() int {
	return sha256BlockSize
}

func (d *digest32) Reset() {
	if d.is224 {
		d.h = [8]uint32{
			0xC1059ED8, 0x367CD507, 0x3070DD17, 0xF70E5939,
			0xFFC00B31, 0x68581511, 0x64F98FA7, 0xBEFA4FA4,
		}
	} else {
		d.h = [8]uint32{
			0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
			0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
		}
	}

	d.x = [sha256BlockSize]byte{}
	d.nx = 0
	d.count.reset()
}

func (d *digest32) Write(p []byte) (int, error) {
	d.count.add(len(p))

	n := len(p)

	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		if d.nx == sha256BlockSize {
			sha256Block(d, d.x[:])
			d.nx = 0
		}

		p = p[c:]
	}

	if len(p) >= sha256BlockSize {
		nn := len(p) &^ (sha256BlockSize - 1)
		sha256Block(d, p[:nn])
		p = p[nn:]
	}

	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}

	return n, nil
}

func (d *digest32) Finalize() []byte {
	msgBits := uint64(d.count)

	d.x[d.nx] = 0x80
	d.nx++

	if d.nx > sha256BlockSize-8 {
		for i := d.nx; i < sha256BlockSize; i++ {
			d.x[i] = 0
		}

		sha256Block(d, d.x[:])
		d.nx = 0
	}

	for i := d.nx; i < sha256BlockSize-8; i++ {
		d.x[i] = 0
	}

	binary.BigEndian.PutUint64(d.x[sha256BlockSize-8:], msgBits)
	sha256Block(d, d.x[:])

	sum := make([]byte, d.Size())
	for i := 0; i < len(sum); i += 4 {
		binary.BigEndian.PutUint32(sum[i:], d.h[i/4])
	}

	d.Reset()

	return sum
}

var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

func sha256Block(dig *digest32, p []byte) {
	var w [64]uint32

	h0, h1, h2, h3, h4, h5, h6, h7 := dig.h[0], dig.h[1], dig.h[2], dig.h[3], dig.h[4], dig.h[5], dig.h[6], dig.h[7]

	for len(p) >= sha256BlockSize {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(p[i*4:])
		}
		for i := 16; i < 64; i++ {
			v1 := w[i-2]
			t1 := bits.RotateLeft32(v1, -17) ^ bits.RotateLeft32(v1, -19) ^ (v1 >> 10)
			v2 := w[i-15]
			t2 := bits.RotateLeft32(v2, -7) ^ bits.RotateLeft32(v2, -18) ^ (v2 >> 3)
			w[i] = t1 + w[i-7] + t2 + w[i-16]
		}

		a, b, c, d, e, f, g, h := h0, h1, h2, h3, h4, h5, h6, h7

		for i := 0; i < 64; i++ {
			t1 := h + (bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)) + shaCh32(e, f, g) + sha256K[i] + w[i]
			t2 := (bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)) + shaMaj32(a, b, c)

			h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e
		h5 += f
		h6 += g
		h7 += h

		p = p[sha256BlockSize:]
	}

	dig.h[0], dig.h[1], dig.h[2], dig.h[3], dig.h[4], dig.h[5], dig.h[6], dig.h[7] = h0, h1, h2, h3, h4, h5, h6, h7
}
