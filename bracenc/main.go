// FILE: github.com/jeffbi/brace/bracenc/main.go

package main

import (
	. "fmt"
	"github.com/jeffbi/brace/basen"
	"github.com/p7r0x7/vainpath"
	"github.com/pkg/errors"
	. "github.com/spf13/pflag"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const n = "\n"
const success, failure, invalid = 0, 1, 2

var warnings = 0

var encodings = map[string]*basen.Encoding{
	"base16":    basen.Base16,
	"base32":    basen.Base32,
	"base32hex": basen.Base32Hex,
	"base64":    basen.Base64,
	"base64url": basen.Base64URL,
}

func main() { os.Exit(program()) }

// help prints a usage menu and quietly exits if no non-flag arguments are given. To consistently
// correctly render this menu in most terminal windows, its content should be no wider than 80
// columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "bracenc" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "Base-N text codecs for files, streams and strings.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-di] [-b <name>] [-w <uint>] [--quiet|no-codes] [--strict] -|PATH..."+n,
		spaces, "[-di] [-b <name>] [-w <uint>] [--quiet|no-codes] [--strict] -s STRING..."+n+n+
			"Options:"+n)
	PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(os.Stderr, n+"Order of arguments placed after `", name, "` does not matter unless `--` is"+
		n+"specified, signaling the end of parsed flags. Long-form flag equivalents are"+n+
		"above. `-` is treated as a reference to ", os.Stdin.Name(), " on this platform."+n)
}

// This program is a command-line interface for the basen package: It encodes targets to standard
// output, or with --decode recovers the original bytes, reporting where malformed input failed.
func program() int {
	if pHelp || NArg() == 0 {
		help()
		return success
	}

	enc := encodings[strings.ToLower(pBase)]
	if enc == nil {
		Fprint(os.Stderr, purp, "Unknown encoding `", pBase, "`; see `--help`.", zero, n)
		return invalid
	}

	for _, target := range Args() {
		if pString {
			if pDecode {
				plain, err := enc.DecodeString(target, pNewlines)
				if err != nil {
					warn(err)
					continue
				}
				os.Stdout.Write(plain)
			} else {
				Print(enc.EncodeWrapString(target, int(pWrap)), n)
			}
			continue
		}

		src := os.Stdin
		if target != "-" && target != os.Stdin.Name() {
			file, err := os.Open(target)
			if err != nil {
				warn(errors.Wrap(err, "open target"))
				continue
			}
			src = file
		}

		var err error
		if pDecode {
			_, err = enc.DecodeStream(src, os.Stdout, pNewlines)
		} else {
			_, err = enc.EncodeStream(src, os.Stdout, int(pWrap))
			if err == nil {
				os.Stdout.WriteString(n)
			}
		}
		go src.Close() /* STDIN should not be reused. */
		if err != nil {
			warn(errors.Wrapf(err, "process %s", target))
			continue
		}
	}

	if warnings > 0 {
		return failure
	}
	return success
}

func warn(err error) {
	if pStrict {
		panic(err)
	}
	if !pQuiet {
		Fprint(os.Stderr, purp, err.Error(), zero, n)
	}
	warnings++
}
