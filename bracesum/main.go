// FILE: github.com/jeffbi/brace/bracesum/main.go

package main

import (
	. "fmt"
	"github.com/jeffbi/brace/basen"
	"github.com/jeffbi/brace/digest"
	"github.com/p7r0x7/vainpath"
	"github.com/pkg/errors"
	. "github.com/spf13/pflag"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
	"unsafe"
)

const n = "\n"
const success, failure, invalid = 0, 1, 2

var warnings = 0

var algorithms = map[string]func() digest.Algorithm{
	"md5":    digest.NewMD5,
	"sha1":   digest.NewSHA1,
	"sha224": digest.NewSHA224,
	"sha256": digest.NewSHA256,
	"sha384": digest.NewSHA384,
	"sha512": digest.NewSHA512,
}

func main() { os.Exit(program()) }

// help prints a usage menu and quietly exits if no non-flag arguments are given. To consistently
// correctly render this menu in most terminal windows, its content should be no wider than 80
// columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "bracesum" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "Classic message digests for files, streams and strings.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-bt] [-a <name>] [-l <uint>] [-w <uint>] [--quiet|no-codes] [--strict]"+n,
		spaces, "-|PATH..."+n,
		spaces, "[-bt] [-a <name>] [-w <uint>] [--quiet|no-codes] [--strict] -s STRING..."+n+n+
			"Options:"+n)
	PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(os.Stderr, n+"Order of arguments placed after `", name, "` does not matter unless `--` is"+
		n+"specified, signaling the end of parsed flags. Long-form flag equivalents are"+n+
		"above. `-` is treated as a reference to ", os.Stdin.Name(), " on this platform."+n)
}

// This program is a command-line interface for the digest package: It handles various flags and an
// unlimited number of arguments, processing files as required by the command-line operator.
func program() int {
	if pHelp || NArg() == 0 {
		help()
		return success
	} else if pLimit > math.MaxInt64 {
		panic("Limit too large.")
	}

	newAlg := algorithms[strings.ReplaceAll(strings.ToLower(pAlgorithm), "-", "")]
	if newAlg == nil {
		Fprint(os.Stderr, purp, "Unknown algorithm `", pAlgorithm, "`; see `--help`.", zero, n)
		return invalid
	}
	/* Finalizing resets the state, so one instance serves every target in turn. */
	alg := newAlg()

	for _, target := range Args() {
		start, delta := time.Now(), ""

		var sum []byte
		if pString {
			/* digest.Algorithm has no WriteString; alias the bytes instead of copying. */
			sum = digest.Sum(alg, strToBytes(target))
		} else if target == "-" || target == os.Stdin.Name() {
			var err error
			sum, err = sumAll(alg, os.Stdin)
			go os.Stdin.Close() /* STDIN should not be reused. */
			if err != nil {
				warn(errors.Wrap(err, "read standard input"))
				continue
			}
		} else if file, err := os.Open(target); err != nil {
			warn(errors.Wrap(err, "open target"))
			continue
		} else {
			sum, err = sumAll(alg, file)
			go file.Close()
			if err != nil {
				warn(errors.Wrapf(err, "read %s", target))
				continue
			}
		}

		if pTime {
			d := time.Since(start)
			if d.Microseconds() > 99 {
				d = d.Truncate(10 * time.Microsecond)
			}
			delta = " (" + d.String() + ")"
		}

		text := digest.ToString(sum)
		if pBase64 {
			text = string(basen.Base64.EncodeWrap(sum, int(pWrap)))
		}

		if !pQuiet {
			Print(yell)
		}
		Print(text)

		if pQuiet {
			os.Stdout.WriteString(n)
		} else if pString {
			Print(zero, `  "`, target, `"`, delta, n)
		} else if pNoCodes {
			Print(`  `, filepath.Clean(target), delta, n)
		} else {
			Print(zero, `  `, und, vainpath.Simplify(target), zero, delta, n)
		}
	}

	if !pQuiet {
		if warnings == 1 {
			Fprint(os.Stderr, "1 ", purp, "target is a directory or is otherwise inaccessible.", zero, n)
		} else if warnings > 1 {
			Fprint(os.Stderr, warnings, " ", purp, "targets are directories or are otherwise inaccessible.", zero, n)
		}
	}
	if warnings > 0 {
		return failure
	}
	return success
}

// sumAll digests r whole, or only its first pLimit bytes when a limit was given.
func sumAll(alg digest.Algorithm, r io.Reader) ([]byte, error) {
	if pLimit > 0 {
		return digest.SumReaderN(alg, r, int64(pLimit))
	}
	return digest.SumReader(alg, r)
}

// strToBytes aliases the bytes of s without allocating; the result must not be modified during its
// lifetime.
func strToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func warn(err error) {
	if pStrict {
		panic(err)
	}
	warnings++
}
