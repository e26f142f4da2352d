// FILE: github.com/jeffbi/brace/basen/basen.go

// Package basen implements the RFC 4648 family of binary-to-text
// encodings: Base16, Base32, Base32Hex, Base64 and Base64Url. Each
// encoding is a fixed configuration value sharing one engine, with
// in-memory, appending, unchecked and stream entry points for both
// directions.
package basen

import (
	"errors"
	"strconv"
)

const (
	msgInvalidChar   = "Invalid character"
	msgInvalidLength = "Invalid length or padding"
	msgLengthError   = "Length error"
)

var (
	// ErrInvalidChar reports a byte that is neither an alphabet
	// symbol nor a pad or newline permitted at its position.
	ErrInvalidChar = errors.New("invalid encoding character")

	// ErrInvalidLength reports a final symbol group whose length or
	// padding cannot represent whole bytes.
	ErrInvalidLength = errors.New("invalid encoding length")
)

// ParseError describes where and why a decode rejected its input.
// It unwraps to ErrInvalidChar or ErrInvalidLength.
type ParseError struct {
	// Line is the 1-based line number of the offending character.
	// It only advances past 1 when newline handling is enabled.
	Line int
	// Pos is the 1-based character position within the line. For
	// errors detected at end of input it points one past the final
	// character.
	Pos int
	// Msg is the human readable reason.
	Msg string

	err error
}

func (e *ParseError) Error() string {
	return "basen: " + e.Msg + " at line " + strconv.Itoa(e.Line) + ", char " + strconv.Itoa(e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.err
}

// Encoding is an immutable base-N configuration. The exported
// package-level instances are the only useful values; the zero value
// is not a functional encoding.
//
// An Encoding carries no session state and is safe for concurrent
// use.
type Encoding struct {
	name      string
	alphabet  string
	decodeTab [256]byte
	bits      uint // symbol width in bits
	groupLen  int  // bytes per full group
	charLen   int  // symbols per full group
	padChar   byte // 0 when the encoding never pads
	maxPad    int
	// exactPad requires a partial final group to be completed by
	// exactly charLen-leftover pad characters.
	exactPad bool
	// tailBytes maps a partial final group's symbol count to its
	// decoded byte count, -1 marking counts that cannot represent
	// whole bytes.
	tailBytes [8]int8
	lengthMsg string
}

// Name returns the lowercase conventional name of the encoding, such
// as "base32hex".
func (enc *Encoding) Name() string {
	return enc.name
}

func (enc *Encoding) String() string {
	return enc.name
}

func badCharErr(line, pos int) *ParseError {
	return &ParseError{Line: line, Pos: pos, Msg: msgInvalidChar, err: ErrInvalidChar}
}

func (enc *Encoding) lengthErr(line, pos int) *ParseError {
	return &ParseError{Line: line, Pos: pos, Msg: enc.lengthMsg, err: ErrInvalidLength}
}
