// FILE: github.com/jeffbi/brace/digest/sha2_64.go

package digest

import (
	"encoding/binary"
	"math/bits"
)

const (
	sha512BlockSize = 128
	sha384Size      = 48
	sha512Size      = 64
)

// NewSHA384 returns an Algorithm computing the FIPS 180-2 SHA-384
// digest.
func NewSHA384() Algorithm {
	d := &digest64{is384: true}
	d.Reset()

	return d
}

// NewSHA512 returns an Algorithm computing the FIPS 180-2 SHA-512
// digest.
func NewSHA512() Algorithm {
	d := &digest64{}
	d.Reset()

	return d
}

// digest64 is the shared 64-bit word core behind SHA-384 and SHA-512.
// Message length runs on the two-word counter because these digests
// admit up to 2^128-1 message bits.
type digest64 struct {
	h     [8]uint64
	x     [sha512BlockSize]byte
	nx    int
	count bitCount128
	is384 bool
}

func (d *digest64) Size() int {
	if d.is384 {
		return sha384Size
	}

	return sha512Size
}

func (d *digest64) BlockSize() int {
	return sha512BlockSize
}

func (d *digest64) Reset() {
	if d.is384 {
		d.h = [8]uint64{
			0xCBBB9D5DC1059ED8, 0x629A292A367CD507, 0x9159015A3070DD17, 0x152FECD8F70E5939,
			0x67332667FFC00B31, 0x8EB44A8768581511, 0xDB0C2E0D64F98FA7, 0x47B5481DBEFA4FA4,
		}
	} else {
		d.h = [8]uint64{
			0x6A09E667F3BCC908, 0xBB67AE8584CAA73B, 0x3C6EF372FE94F82B, 0xA54FF53A5F1D36F1,
			0x510E527FADE682D1, 0x9B05688C2B3E6C1F, 0x1F83D9ABFB41BD6B, 0x5BE0CD19137E2179,
		}
	}

	d.x = [sha512BlockSize]byte{}
	d.nx = 0
	d.count.reset()
}

func (d *digest64) Write(p []byte) (int, error) {
	d.count.add(len(p))

	n := len(p)

	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		if d.nx == sha512BlockSize {
			sha512Block(d, d.x[:])
			d.nx = 0
		}

		p = p[c:]
	}

	if len(p) >= sha512BlockSize {
		nn := len(p) &^ (sha512BlockSize - 1)
		sha512Block(d, p[:nn])
		p = p[nn:]
	}

	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}

	return n, nil
}

func (d *digest64) Finalize() []byte {
	msgBitsHi, msgBitsLo := d.count.hi, d.count.lo

	d.x[d.nx] = 0x80
	d.nx++

	if d.nx > sha512BlockSize-16 {
		for i := d.nx; i < sha512BlockSize; i++ {
			d.x[i] = 0
		}

		sha512Block(d, d.x[:])
		d.nx = 0
	}

	for i := d.nx; i < sha512BlockSize-16; i++ {
		d.x[i] = 0
	}

	binary.BigEndian.PutUint64(d.x[sha512BlockSize-16:], msgBitsHi)
	binary.BigEndian.PutUint64(d.x[sha512BlockSize-8:], msgBitsLo)
	sha512Block(d, d.x[:])

	sum := make([]byte, d.Size())
	for i := 0; i < len(sum); i += 8 {
		binary.BigEndian.PutUint64(sum[i:], d.h[i/8])
	}

	d.Reset()

	return sum
}

var sha512K = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

func sha512Block(dig *digest64, p []byte) {
	var w [80]uint64

	h0, h1, h2, h3, h4, h5, h6, h7 := dig.h[0], dig.h[1], dig.h[2], dig.h[3], dig.h[4], dig.h[5], dig.h[6], dig.h[7]

	for len(p) >= sha512BlockSize {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint64(p[i*8:])
		}
		for i := 16; i < 80; i++ {
			v1 := w[i-2]
			t1 := bits.RotateLeft64(v1, -19) ^ bits.RotateLeft64(v1, -61) ^ (v1 >> 6)
			v2 := w[i-15]
			t2 := bits.RotateLeft64(v2, -1) ^ bits.RotateLeft64(v2, -8) ^ (v2 >> 7)
			w[i] = t1 + w[i-7] + t2 + w[i-16]
		}

		a, b, c, d, e, f, g, h := h0, h1, h2, h3, h4, h5, h6, h7

		for i := 0; i < 80; i++ {
			t1 := h + (bits.RotateLeft64(e, -14) ^ bits.RotateLeft64(e, -18) ^ bits.RotateLeft64(e, -41)) + shaCh64(e, f, g) + sha512K[i] + w[i]
			t2 := (bits.RotateLeft64(a, -28) ^ bits.RotateLeft64(a, -34) ^ bits.RotateLeft64(a, -39)) + shaMaj64(a, b, c)

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

		p = p[sha512BlockSize:]
	}

	dig.h[0], dig.h[1], dig.h[2], dig.h[3], dig.h[4], dig.h[5], dig.h[6], dig.h[7] = h0, h1, h2, h3, h4, h5, h6, h7
}
