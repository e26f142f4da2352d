// FILE: github.com/jeffbi/brace/basen/tables.go

package basen

const invalidByte = 0xFF

//
// alphabets follow RFC 4648. decode tables are exact inverses with no
// aliasing and no case folding.
//

const (
	base16Chars    = "0123456789ABCDEF"
	base32Chars    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	base32HexChars = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
	base64Chars    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	base64URLChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

func decodeTable(alphabet string) [256]byte {
	var dec [256]byte

	for i := range dec {
		dec[i] = invalidByte
	}

	for i := range alphabet {
		dec[alphabet[i]] = byte(i)
	}

	return dec
}

var (
	// Base16 is the uppercase hexadecimal encoding of RFC 4648
	// section 8. It has no pad character and rejects lowercase
	// digits on decode.
	Base16 = &Encoding{
		name:      "base16",
		alphabet:  base16Chars,
		decodeTab: decodeTable(base16Chars),
		bits:      4,
		groupLen:  1,
		charLen:   2,
		lengthMsg: msgLengthError,
		tailBytes: [8]int8{0, -1},
	}

	// Base32 is the standard base32 encoding of RFC 4648 section 6.
	Base32 = &Encoding{
		name:      "base32",
		alphabet:  base32Chars,
		decodeTab: decodeTable(base32Chars),
		bits:      5,
		groupLen:  5,
		charLen:   8,
		padChar:   '=',
		maxPad:    6,
		lengthMsg: msgInvalidLength,
		tailBytes: [8]int8{0, -1, 1, 2, 2, 3, 4, 4},
	}

	// Base32Hex is the "Extended Hex" base32 encoding of RFC 4648
	// section 7. It preserves bytewise sort order through encoding.
	Base32Hex = &Encoding{
		name:      "base32hex",
		alphabet:  base32HexChars,
		decodeTab: decodeTable(base32HexChars),
		bits:      5,
		groupLen:  5,
		charLen:   8,
		padChar:   '=',
		maxPad:    6,
		lengthMsg: msgInvalidLength,
		tailBytes: [8]int8{0, -1, 1, 2, 2, 3, 4, 4},
	}

	// Base64 is the standard base64 encoding of RFC 4648 section 4.
	Base64 = &Encoding{
		name:      "base64",
		alphabet:  base64Chars,
		decodeTab: decodeTable(base64Chars),
		bits:      6,
		groupLen:  3,
		charLen:   4,
		padChar:   '=',
		maxPad:    2,
		exactPad:  true,
		lengthMsg: msgInvalidLength,
		tailBytes: [8]int8{0, -1, 1, 2},
	}

	// Base64URL is the URL and filename safe base64 encoding of
	// RFC 4648 section 5.
	Base64URL = &Encoding{
		name:      "base64url",
		alphabet:  base64URLChars,
		decodeTab: decodeTable(base64URLChars),
		bits:      6,
		groupLen:  3,
		charLen:   4,
		padChar:   '=',
		maxPad:    2,
		exactPad:  true,
		lengthMsg: msgInvalidLength,
		tailBytes: [8]int8{0, -1, 1, 2},
	}
)
