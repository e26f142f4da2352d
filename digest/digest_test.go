package digest

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

// Vectors from RFC 1321 and the FIPS 180-2 appendices.
var digestVectors = []struct {
	name string
	alg  func() Algorithm
	msg  string
	exp  string
}{
	{"md5 empty", NewMD5, "", "D41D8CD98F00B204E9800998ECF8427E"},
	{"md5 a", NewMD5, "a", "0CC175B9C0F1B6A831C399E269772661"},
	{"md5 abc", NewMD5, "abc", "900150983CD24FB0D6963F7D28E17F72"},
	{"md5 message digest", NewMD5, "message digest", "F96B697D7CB7938D525A2F31AAF161D0"},
	{"md5 lowercase alphabet", NewMD5, "abcdefghijklmnopqrstuvwxyz", "C3FCD3D76192E4007DFB496CCA67E13B"},
	{"md5 alphanumerics", NewMD5, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", "D174AB98D277D9F5A5611C2C9F419D9F"},
	{"md5 eighty digits", NewMD5, "12345678901234567890123456789012345678901234567890123456789012345678901234567890", "57EDF4A22BE3C955AC49DA2E2107B67A"},
	{"sha1 empty", NewSHA1, "", "DA39A3EE5E6B4B0D3255BFEF95601890AFD80709"},
	{"sha1 abc", NewSHA1, "abc", "A9993E364706816ABA3E25717850C26C9CD0D89D"},
	{"sha1 two blocks", NewSHA1, "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "84983E441C3BD26EBAAE4AA1F95129E5E54670F1"},
	{"sha224 empty", NewSHA224, "", "D14A028C2A3A2BC9476102BB288234C415A2B01F828EA62AC5B3E42F"},
	{"sha224 abc", NewSHA224, "abc", "23097D223405D8228642A477BDA255B32AADBCE4BDA0B3F7E36C9DA7"},
	{"sha224 two blocks", NewSHA224, "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "75388B16512776CC5DBA5DA1FD890150B0C6455CB4F58B1952522525"},
	{"sha256 empty", NewSHA256, "", "E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855"},
	{"sha256 abc", NewSHA256, "abc", "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD"},
	{"sha256 two blocks", NewSHA256, "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "248D6A61D20638B8E5C026930C3E6039A33CE45964FF2167F6ECEDD419DB06C1"},
	{"sha384 empty", NewSHA384, "", "38B060A751AC96384CD9327EB1B1E36A21FDB71114BE07434C0CC7BF63F6E1DA274EDEBFE76F65FBD51AD2F14898B95B"},
	{"sha384 abc", NewSHA384, "abc", "CB00753F45A35E8BB5A03D699AC65007272C32AB0EDED1631A8B605A43FF5BED8086072BA1E7CC2358BAECA134C825A7"},
	{"sha384 two blocks", NewSHA384, "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu", "09330C33F71147E83D192FC782CD1B4753111B173B3B05D22FA08086E3B0F712FCC7C71A557E2DB966C3E9FA91746039"},
	{"sha512 empty", NewSHA512, "", "CF83E1357EEFB8BDF1542850D66D8007D620E4050B5715DC83F4A921D36CE9CE47D0D13C5D85F2B0FF8318D2877EEC2F63B931BD47417A81A538327AF927DA3E"},
	{"sha512 abc", NewSHA512, "abc", "DDAF35A193617ABACC417349AE20413112E6FA4E89A97EA20A9EEEE64B55D39A2192992A274FC1A836BA3C23A3FEEBBD454D4423643CE80E2A9AC94FA54CA49F"},
	{"sha512 two blocks", NewSHA512, "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu", "8E959B75DAE313DA8CF4F72814FC143F8F7779C6EB9F7FA17299AEADB6889018501D289E4900F7E4331B99DEC4B5433AC7D329EEB6DD26545E96E55B874BE909"},
}

func TestAlgorithmVectors(t *testing.T) {
	t.Parallel()

	for i, tc := range digestVectors {
		t.Run(fmt.Sprintf("%02d %s", i, tc.name), func(t *testing.T) {
			t.Parallel()

			is := assert.New(t)

			is.Equal(tc.exp, ToString(Sum(tc.alg(), []byte(tc.msg))))
			is.Equal(tc.exp, SumString(tc.alg(), []byte(tc.msg)))

			// Every split point must land on the same digest, and
			// finalizing must leave the value ready for the next round.
			a := tc.alg()
			for split := 0; split <= len(tc.msg); split++ {
				a.Write([]byte(tc.msg[:split]))
				a.Write([]byte(tc.msg[split:]))
				is.Equal(tc.exp, ToString(a.Finalize()), "split at %d", split)
			}

			for i := 0; i < len(tc.msg); i++ {
				a.Write([]byte{tc.msg[i]})
			}
			is.Equal(tc.exp, ToString(a.Finalize()))
		})
	}
}

func TestMillionRepetitions(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name string
		alg  func() Algorithm
		exp  string
	}{
		{"md5", NewMD5, "7707D6AE4E027C70EEA2A935C2296F21"},
		{"sha1", NewSHA1, "34AA973CD4C4DAA4F61EEB2BDBAD27316534016F"},
		{"sha224", NewSHA224, "20794655980C91D8BBB4C1EA97618A4BF03F42581948B2EE4EE7AD67"},
		{"sha256", NewSHA256, "CDC76E5C9914FB9281A1C7E284D73E67F1809A48A497200E046D39CCC7112CD0"},
		{"sha384", NewSHA384, "9D0E1809716474CB086E834E310A4A1CED149E9C00F248527972CEC5704C2A5B07B8B3DC38ECC4EBAE97DDD87F3D8985"},
		{"sha512", NewSHA512, "E718483D0CE769644E2E42C7BC15B4638E1F98B13B2044285632A803AFA973EBDE0FF244877EA60A4CB0432CE577C31BEB009C5C2C49AA2E4EADB217AD8CC09B"},
	}

	msg := bytes.Repeat([]byte{'a'}, 1000000)
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.exp, ToString(Sum(tc.alg(), msg)))
		})
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	a := NewSHA256()
	a.Write([]byte("residue that must vanish"))
	a.Reset()
	a.Write([]byte("abc"))
	is.Equal("BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD", ToString(a.Finalize()))

	// Finalize already reset the state for the next message.
	a.Write([]byte("abc"))
	is.Equal("BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD", ToString(a.Finalize()))
}

func TestAlgorithmSizes(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	tcs := []struct {
		alg             func() Algorithm
		size, blockSize int
	}{
		{NewMD5, 16, 64},
		{NewSHA1, 20, 64},
		{NewSHA224, 28, 64},
		{NewSHA256, 32, 64},
		{NewSHA384, 48, 128},
		{NewSHA512, 64, 128},
	}

	for _, tc := range tcs {
		a := tc.alg()
		is.Equal(tc.size, a.Size())
		is.Equal(tc.blockSize, a.BlockSize())
		is.Len(a.Finalize(), tc.size)
	}
}

func TestSumReader(t *testing.T) {
	t.Parallel()

	t.Run("matches a single write", func(t *testing.T) {
		t.Parallel()

		is := assert.New(t)

		msg := bytes.Repeat([]byte("abcdefg"), 1500)
		exp := Sum(NewSHA256(), msg)

		sum, err := SumReader(NewSHA256(), bytes.NewReader(msg))
		is.NoError(err)
		is.Equal(exp, sum)

		sum, err = SumReader(NewSHA256(), iotest.OneByteReader(strings.NewReader("abc")))
		is.NoError(err)
		is.Equal(Sum(NewSHA256(), []byte("abc")), sum)

		// Data delivered alongside io.EOF still counts.
		sum, err = SumReader(NewSHA1(), iotest.DataErrReader(strings.NewReader("abc")))
		is.NoError(err)
		is.Equal("A9993E364706816ABA3E25717850C26C9CD0D89D", ToString(sum))
	})

	t.Run("resets on a read failure", func(t *testing.T) {
		t.Parallel()

		is := assert.New(t)

		a := NewMD5()
		sum, err := SumReader(a, iotest.TimeoutReader(strings.NewReader("abc")))
		is.Nil(sum)
		is.ErrorIs(err, iotest.ErrTimeout)

		// The aborted run left no residue behind.
		is.Equal("900150983CD24FB0D6963F7D28E17F72", ToString(Sum(a, []byte("abc"))))
	})
}

func TestSumReaderN(t *testing.T) {
	t.Parallel()

	t.Run("stops at the limit", func(t *testing.T) {
		t.Parallel()

		is := assert.New(t)

		src := "abcdefghijklmnopqrstuvwxyz"

		sum, err := SumReaderN(NewSHA256(), strings.NewReader(src), 3)
		is.NoError(err)
		is.Equal(Sum(NewSHA256(), []byte("abc")), sum)

		sum, err = SumReaderN(NewSHA256(), strings.NewReader(src), int64(len(src)))
		is.NoError(err)
		is.Equal(Sum(NewSHA256(), []byte(src)), sum)

		msg := bytes.Repeat([]byte("abcdefg"), 1500)
		sum, err = SumReaderN(NewSHA512(), bytes.NewReader(msg), 5000)
		is.NoError(err)
		is.Equal(Sum(NewSHA512(), msg[:5000]), sum)
	})

	t.Run("a short source ends at io.EOF", func(t *testing.T) {
		t.Parallel()

		is := assert.New(t)

		sum, err := SumReaderN(NewSHA256(), strings.NewReader("abc"), 100)
		is.NoError(err)
		is.Equal(Sum(NewSHA256(), []byte("abc")), sum)
	})

	t.Run("a zero limit digests nothing", func(t *testing.T) {
		t.Parallel()

		is := assert.New(t)

		sum, err := SumReaderN(NewMD5(), strings.NewReader("abc"), 0)
		is.NoError(err)
		is.Equal("D41D8CD98F00B204E9800998ECF8427E", ToString(sum))
	})

	t.Run("resets on a read failure", func(t *testing.T) {
		t.Parallel()

		is := assert.New(t)

		a := NewSHA1()
		sum, err := SumReaderN(a, iotest.TimeoutReader(strings.NewReader("abc")), 10)
		is.Nil(sum)
		is.ErrorIs(err, iotest.ErrTimeout)

		is.Equal("A9993E364706816ABA3E25717850C26C9CD0D89D", ToString(Sum(a, []byte("abc"))))
	})
}

func TestToString(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	is.Equal("000FA5FF", ToString([]byte{0x00, 0x0F, 0xA5, 0xFF}))
	is.Equal("", ToString(nil))
}

func Test_bitCount64(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	c := bitCount64(math.MaxUint64 - 8)
	is.NotPanics(func() { c.add(1) })
	is.Equal(bitCount64(math.MaxUint64), c)
	is.PanicsWithValue("digest: maximum message length exceeded", func() { c.add(1) })

	d := &md5Digest{}
	d.Reset()
	d.count = math.MaxUint64
	is.PanicsWithValue("digest: maximum message length exceeded", func() { d.Write([]byte{0}) })
}

func Test_bitCount128(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	c := bitCount128{hi: math.MaxUint64, lo: math.MaxUint64 - 8}
	is.NotPanics(func() { c.add(1) })
	is.Equal(bitCount128{hi: math.MaxUint64, lo: math.MaxUint64}, c)
	is.PanicsWithValue("digest: maximum message length exceeded", func() { c.add(1) })

	d := &digest64{}
	d.Reset()
	d.count = bitCount128{hi: math.MaxUint64, lo: math.MaxUint64}
	is.PanicsWithValue("digest: maximum message length exceeded", func() { d.Write([]byte{0}) })
}
