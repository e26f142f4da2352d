// FILE: github.com/jeffbi/brace/digest/sha1.go

package digest

import (
	"encoding/binary"
	"math/bits"
)

const (
	sha1BlockSize = 64
	sha1Size      = 20
)

const (
	sha1K0 = 0x5A827999
	sha1K1 = 0x6ED9EBA1
	sha1K2 = 0x8F1BBCDC
	sha1K3 = 0xCA62C1D6
)

// NewSHA1 returns an Algorithm computing the FIPS 180-2 SHA-1 digest.
func NewSHA1() Algorithm {
	d := &sha1Digest{}
	d.Reset()

	return d
}

type sha1Digest struct {
	s     [5]uint32
	x     [sha1BlockSize]byte
	nx    int
	count bitCount64
}

func (d *sha1Digest) Size() int {
	return sha1Size
}

func (d *sha1Digest) BlockSize() int {
	return sha1BlockSize
}

func (d *sha1Digest) Reset() {
	d.s = [5]uint32{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0}
	d.x = [sha1BlockSize]byte{}
	d.nx = 0
	d.count.reset()
}

func (d *sha1Digest) Write(p []byte) (int, error) {
	d.count.add(len(p))

	n := len(p)

	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		if d.nx == sha1BlockSize {
			sha1Block(d, d.x[:])
			d.nx = 0
		}

		p = p[c:]
	}

	if len(p) >= sha1BlockSize {
		nn := len(p) &^ (sha1BlockSize - 1)
		sha1Block(d, p[:nn])
		p = p[nn:]
	}

	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}

	return n, nil
}

func (d *sha1Digest) Finalize() []byte {
	msgBits := uint64(d.count)

	d.x[d.nx] = 0x80
	d.nx++

	if d.nx > sha1BlockSize-8 {
		for i := d.nx; i < sha1BlockSize; i++ {
			d.x[i] = 0
		}

		sha1Block(d, d.x[:])
		d.nx = 0
	}

	for i := d.nx; i < sha1BlockSize-8; i++ {
		d.x[i] = 0
	}

	binary.BigEndian.PutUint64(d.x[sha1BlockSize-8:], msgBits)
	sha1Block(d, d.x[:])

	var sum [sha1Size]byte
	for i, w := range d.s {
		binary.BigEndian.PutUint32(sum[i*4:], w)
	}

	d.Reset()

	return sum[:]
}

func sha1Block(dig *sha1Digest, p []byte) {
	var w [80]uint32

	h0, h1, h2, h3, h4 := dig.s[0], dig.s[1], dig.s[2], dig.s[3], dig.s[4]

	for len(p) >= sha1BlockSize {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(p[i*4:])
		}
		for i := 16; i < 80; i++ {
			w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
		}

		a, b, c, d, e := h0, h1, h2, h3, h4

		for i := 0; i < 20; i++ {
			t := bits.RotateLeft32(a, 5) + shaCh32(b, c, d) + e + w[i] + sha1K0
			e, d, c, b, a = d, c, bits.RotateLeft32(b, 30), a, t
		}
		for i := 20; i < 40; i++ {
			t := bits.RotateLeft32(a, 5) + shaParity32(b, c, d) + e + w[i] + sha1K1
			e, d, c, b, a = d, c, bits.RotateLeft32(b, 30), a, t
		}
		for i := 40; i < 60; i++ {
			t := bits.RotateLeft32(a, 5) + shaMaj32(b, c, d) + e + w[i] + sha1K2
			e, d, c, b, a = d, c, bits.RotateLeft32(b, 30), a, t
		}
		for i := 60; i < 80; i++ {
			t := bits.RotateLeft32(a, 5) + shaParity32(b, c, d) + e + w[i] + sha1K3
			e, d, c, b, a = d, c, bits.RotateLeft32(b, 30), a, t
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e

		p = p[sha1BlockSize:]
	}

	dig.s[0], dig.s[1], dig.s[2], dig.s[3], dig.s[4] = h0, h1, h2, h3, h4
}
