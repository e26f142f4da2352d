// FILE: github.com/jeffbi/brace/digest/md5.go

package digest

import (
	"encoding/binary"
	"math/bits"
)

const (
	md5BlockSize = 64
	md5Size      = 16
)

// NewMD5 returns an Algorithm computing the RFC 1321 MD5 digest.
func NewMD5() Algorithm {
	d := &md5Digest{}
	d.Reset()

	return d
}

type md5Digest struct {
	s     [4]uint32
	x     [md5BlockSize]byte
	nx    int
	count bitCount64
}

func (d *md5Digest) Size() int {
	return md5Size
}

func (d *md5Digest) BlockSize() int {
	return md5BlockSize
}

func (d *md5Digest) Reset() {
	d.s = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}
	d.x = [md5BlockSize]byte{}
	d.nx = 0
	d.count.reset()
}

func (d *md5Digest) Write(p []byte) (int, error) {
	d.count.add(len(p))

	n := len(p)

	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		if d.nx == md5BlockSize {
			md5Block(d, d.x[:])
			d.nx = 0
		}

		p = p[c:]
	}

	if len(p) >= md5BlockSize {
		nn := len(p) &^ (md5BlockSize - 1)
		md5Block(d, p[:nn])
		p = p[nn:]
	}

	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}

	return n, nil
}

func (d *md5Digest) Finalize() []byte {
	msgBits := uint64(d.count)

	d.x[d.nx] = 0x80
	d.nx++

	if d.nx > md5BlockSize-8 {
		for i := d.nx; i < md5BlockSize; i++ {
			d.x[i] = 0
		}

		md5Block(d, d.x[:])
		d.nx = 0
	}

	for i := d.nx; i < md5BlockSize-8; i++ {
		d.x[i] = 0
	}

	binary.LittleEndian.PutUint64(d.x[md5BlockSize-8:], msgBits)
	md5Block(d, d.x[:])

	var sum [md5Size]byte
	binary.LittleEndian.PutUint32(sum[0:], d.s[0])
	binary.LittleEndian.PutUint32(sum[4:], d.s[1])
	binary.LittleEndian.PutUint32(sum[8:], d.s[2])
	binary.LittleEndian.PutUint32(sum[12:], d.s[3])

	d.Reset()

	return sum[:]
}

//
// the four RFC 1321 round operations
//

func md5FF(a, b, c, d, x, ac uint32, s int) uint32 {
	return b + bits.RotateLeft32(a+(b&c|^b&d)+x+ac, s)
}

func md5GG(a, b, c, d, x, ac uint32, s int) uint32 {
	return b + bits.RotateLeft32(a+(b&d|c&^d)+x+ac, s)
}

func md5HH(a, b, c, d, x, ac uint32, s int) uint32 {
	return b + bits.RotateLeft32(a+(b^c^d)+x+ac, s)
}

func md5II(a, b, c, d, x, ac uint32, s int) uint32 {
	return b + bits.RotateLeft32(a+(c^(b|^d))+x+ac, s)
}

func md5Block(dig *md5Digest, p []byte) {
	a, b, c, d := dig.s[0], dig.s[1], dig.s[2], dig.s[3]

	var m [16]uint32

	for len(p) >= md5BlockSize {
		for i := range m {
			m[i] = binary.LittleEndian.Uint32(p[i*4:])
		}

		aa, bb, cc, dd := a, b, c, d

		// round 1
		a = md5FF(a, b, c, d, m[0], 0xd76aa478, 7)
		d = md5FF(d, a, b, c, m[1], 0xe8c7b756, 12)
		c = md5FF(c, d, a, b, m[2], 0x242070db, 17)
		b = md5FF(b, c, d, a, m[3], 0xc1bdceee, 22)
		a = md5FF(a, b, c, d, m[4], 0xf57c0faf, 7)
		d = md5FF(d, a, b, c, m[5], 0x4787c62a, 12)
		c = md5FF(c, d, a, b, m[6], 0xa8304613, 17)
		b = md5FF(b, c, d, a, m[7], 0xfd469501, 22)
		a = md5FF(a, b, c, d, m[8], 0x698098d8, 7)
		d = md5FF(d, a, b, c, m[9], 0x8b44f7af, 12)
		c = md5FF(c, d, a, b, m[10], 0xffff5bb1, 17)
		b = md5FF(b, c, d, a, m[11], 0x895cd7be, 22)
		a = md5FF(a, b, c, d, m[12], 0x6b901122, 7)
		d = md5FF(d, a, b, c, m[13], 0xfd987193, 12)
		c = md5FF(c, d, a, b, m[14], 0xa679438e, 17)
		b = md5FF(b, c, d, a, m[15], 0x49b40821, 22)

		// round 2
		a = md5GG(a, b, c, d, m[1], 0xf61e2562, 5)
		d = md5GG(d, a, b, c, m[6], 0xc040b340, 9)
		c = md5GG(c, d, a, b, m[11], 0x265e5a51, 14)
		b = md5GG(b, c, d, a, m[0], 0xe9b6c7aa, 20)
		a = md5GG(a, b, c, d, m[5], 0xd62f105d, 5)
		d = md5GG(d, a, b, c, m[10], 0x02441453, 9)
		c = md5GG(c, d, a, b, m[15], 0xd8a1e681, 14)
		b = md5GG(b, c, d, a, m[4], 0xe7d3fbc8, 20)
		a = md5GG(a, b, c, d, m[9], 0x21e1cde6, 5)
		d = md5GG(d, a, b, c, m[14], 0xc33707d6, 9)
		c = md5GG(c, d, a, b, m[3], 0xf4d50d87, 14)
		b = md5GG(b, c, d, a, m[8], 0x455a14ed, 20)
		a = md5GG(a, b, c, d, m[13], 0xa9e3e905, 5)
		d = md5GG(d, a, b, c, m[2], 0xfcefa3f8, 9)
		c = md5GG(c, d, a, b, m[7], 0x676f02d9, 14)
		b = md5GG(b, c, d, a, m[12], 0x8d2a4c8a, 20)

		// round 3
		a = md5HH(a, b, c, d, m[5], 0xfffa3942, 4)
		d = md5HH(d, a, b, c, m[8], 0x8771f681, 11)
		c = md5HH(c, d, a, b, m[11], 0x6d9d6122, 16)
		b = md5HH(b, c, d, a, m[14], 0xfde5380c, 23)
		a = md5HH(a, b, c, d, m[1], 0xa4beea44, 4)
		d = md5HH(d, a, b, c, m[4], 0x4bdecfa9, 11)
		c = md5HH(c, d, a, b, m[7], 0xf6bb4b60, 16)
		b = md5HH(b, c, d, a, m[10], 0xbebfbc70, 23)
		a = md5HH(a, b, c, d, m[13], 0x289b7ec6, 4)
		d = md5HH(d, a, b, c, m[0], 0xeaa127fa, 11)
		c = md5HH(c, d, a, b, m[3], 0xd4ef3085, 16)
		b = md5HH(b, c, d, a, m[6], 0x04881d05, 23)
		a = md5HH(a, b, c, d, m[9], 0xd9d4d039, 4)
		d = md5HH(d, a, b, c, m[12], 0xe6db99e5, 11)
		c = md5HH(c, d, a, b, m[15], 0x1fa27cf8, 16)
		b = md5HH(b, c, d, a, m[2], 0xc4ac5665, 23)

		// round 4
		a = md5II(a, b, c, d, m[0], 0xf4292244, 6)
		d = md5II(d, a, b, c, m[7], 0x432aff97, 10)
		c = md5II(c, d, a, b, m[14], 0xab9423a7, 15)
		b = md5II(b, c, d, a, m[5], 0xfc93a039, 21)
		a = md5II(a, b, c, d, m[12], 0x655b59c3, 6)
		d = md5II(d, a, b, c, m[3], 0x8f0ccc92, 10)
		c = md5II(c, d, a, b, m[10], 0xffeff47d, 15)
		b = md5II(b, c, d, a, m[1], 0x85845dd1, 21)
		a = md5II(a, b, c, d, m[8], 0x6fa87e4f, 6)
		d = md5II(d, a, b, c, m[15], 0xfe2ce6e0, 10)
		c = md5II(c, d, a, b, m[6], 0xa3014314, 15)
		b = md5II(b, c, d, a, m[13], 0x4e0811a1, 21)
		a = md5II(a, b, c, d, m[4], 0xf7537e82, 6)
		d = md5II(d, a, b, c, m[11], 0xbd3af235, 10)
		c = md5II(c, d, a, b, m[2], 0x2ad7d2bb, 15)
		b = md5II(b, c, d, a, m[9], 0xeb86d391, 21)

		a += aa
		b += bb
		c += cc
		d += dd

		p = p[md5BlockSize:]
	}

	dig.s[0], dig.s[1], dig.s[2], dig.s[3] = a, b, c, d
}
