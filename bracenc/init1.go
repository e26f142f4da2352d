// FILE: github.com/jeffbi/brace/bracenc/init1.go

package main

import (
	. "github.com/spf13/pflag"
	"os"
)

var pWrap, pNoCodesDefault = uint(0), false
var pBase = ""
var pHelp, pDecode, pNewlines, pNoCodes, pQuiet, pStrict, pString bool
var yell, purp, und, zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"

func init() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}

	BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	StringVarP(&pBase, "base", "b", "base64",
		purp+"select the encoding: base16, base32, base32hex, base64 or"+zero+
			n+purp+"base64url"+zero)

	BoolVarP(&pDecode, "decode", "d", false,
		purp+"decode targets back to their original bytes"+zero)

	BoolVarP(&pNewlines, "ignore-newlines", "i", false,
		purp+"permit newlines in encoded input while decoding, counting"+zero+
			n+purp+"lines for error reports"+zero)

	Bool("no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes or simplified"+zero+
			n+purp+"filepaths"+zero)

	Bool("quiet", false,
		purp+"suppress non-breaking errors and print ONLY codec output"+zero+
			n+"(enables --no-codes)")

	BoolVar(&pStrict, "strict", false,
		purp+"cause bracenc to panic on any error"+zero)

	BoolVarP(&pString, "string", "s", false,
		purp+"process arguments instead as UTF-8 strings to be coded"+zero)

	UintVarP(&pWrap, "wrap", "w", 0,
		purp+"insert a newline every this many encoded characters"+zero+
			n+"(0 disables wrapping)")

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	CommandLine.SortFlags = false
	Parse()
}
