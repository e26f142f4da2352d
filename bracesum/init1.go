// FILE: github.com/jeffbi/brace/bracesum/init1.go

package main

import (
	. "github.com/spf13/pflag"
	"os"
)

var pLimit, pNoCodesDefault = uint64(0), false
var pAlgorithm, pWrap = "", uint(0)
var pHelp, pBase64, pNoCodes, pQuiet, pStrict, pString, pTime bool
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

	StringVarP(&pAlgorithm, "algorithm", "a", "sha256",
		purp+"select the digest: md5, sha1, sha224, sha256, sha384 or"+zero+
			n+purp+"sha512"+zero)

	BoolVarP(&pBase64, "base64", "b", false,
		purp+"render digests in base64"+zero+" (default uppercase hex)")

	Uint64VarP(&pLimit, "limit", "l", 0,
		purp+"digest at most this many bytes of each target"+zero+
			n+"(0 means no limit)")

	Bool("no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes or simplified"+zero+
			n+purp+"filepaths"+zero)

	Bool("quiet", false,
		purp+"suppress non-breaking errors and print ONLY digests"+zero+
			n+"(enables --no-codes)")

	BoolVar(&pStrict, "strict", false,
		purp+"cause bracesum to panic on any error"+zero)

	BoolVarP(&pString, "string", "s", false,
		purp+"process arguments instead as UTF-8 strings to be hashed"+zero)

	BoolVarP(&pTime, "time", "t", false,
		purp+"print time taken to read and hash each message"+zero)

	UintVarP(&pWrap, "wrap", "w", 0,
		purp+"insert a newline every this many base64 characters"+zero+
			n+"(0 disables wrapping)")

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	CommandLine.SortFlags = false
	Parse()
}
