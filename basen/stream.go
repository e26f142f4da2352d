// FILE: github.com/jeffbi/brace/basen/stream.go

package basen

import (
	"io"
	"unsafe"
)

// streamBufSize is the read chunk size of the stream entry points.
const streamBufSize = 4096

var newline = []byte{'\n'}

// wrapWriter pushes encoded symbols to an io.Writer, appending a
// newline after every at symbols. Newlines count toward the total
// written but not toward the wrap column.
type wrapWriter struct {
	w   io.Writer
	at  int
	col int
	n   int64
}

func (ww *wrapWriter) writeSyms(p []byte) error {
	if ww.at <= 0 {
		n, err := ww.w.Write(p)
		ww.n += int64(n)

		return err
	}

	for len(p) > 0 {
		room := ww.at - ww.col
		if room > len(p) {
			room = len(p)
		}

		n, err := ww.w.Write(p[:room])
		ww.n += int64(n)
		if err != nil {
			return err
		}
		ww.col += room
		p = p[room:]

		if ww.col == ww.at {
			n, err := ww.w.Write(newline)
			ww.n += int64(n)
			if err != nil {
				return err
			}
			ww.col = 0
		}
	}

	return nil
}

// EncodeStream encodes r to w, appending a newline after every wrapAt
// characters when wrapAt is greater than zero. It returns the number
// of characters written, newlines included.
//
// A read or write failure ends the operation immediately with that
// error. Output already written stays written.
func (enc *Encoding) EncodeStream(r io.Reader, w io.Writer, wrapAt int) (int64, error) {
	ww := &wrapWriter{w: w, at: wrapAt}

	// in keeps room at the front for the carried partial group.
	in := make([]byte, streamBufSize+enc.groupLen)
	out := make([]byte, enc.encodedLenExpression(len(in)))
	pn := 0

	for {
		n, rerr := r.Read(in[pn : pn+streamBufSize])
		total := pn + n

		if whole := total - total%enc.groupLen; whole > 0 {
			enc.encode(unsafe.Pointer(&out[0]), unsafe.Pointer(&in[0]), whole)
			if err := ww.writeSyms(out[:whole/enc.groupLen*enc.charLen]); err != nil {
				return ww.n, err
			}
			copy(in, in[whole:total])
			pn = total - whole
		} else {
			pn = total
		}

		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return ww.n, rerr
		}
	}

	if pn > 0 {
		enc.encode(unsafe.Pointer(&out[0]), unsafe.Pointer(&in[0]), pn)
		if err := ww.writeSyms(out[:enc.charLen]); err != nil {
			return ww.n, err
		}
	}

	return ww.n, nil
}

// DecodeStream decodes r to w. When handleNewline is true newline
// characters in the input are skipped, advancing the line count used
// for error positions; when false a newline is an invalid character.
// It returns the number of bytes written.
//
// Malformed input surfaces as a *ParseError. A read or write failure
// surfaces as the reader's or writer's own error. In every case
// output already written stays written.
func (enc *Encoding) DecodeStream(r io.Reader, w io.Writer, handleNewline bool) (int64, error) {
	var written int64

	d := enc.newDecodeState(handleNewline)

	in := make([]byte, streamBufSize)
	out := make([]byte, enc.decodedLenExpression(streamBufSize)+enc.groupLen)

	for {
		n, rerr := r.Read(in)

		if n > 0 {
			dn, err := d.feed(out, in[:n])
			if dn > 0 {
				wn, werr := w.Write(out[:dn])
				written += int64(wn)
				if werr != nil {
					return written, werr
				}
			}
			if err != nil {
				return written, err
			}
		}

		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return written, rerr
		}
	}

	tn, err := d.finish(out)
	if tn > 0 {
		wn, werr := w.Write(out[:tn])
		written += int64(wn)
		if werr != nil {
			return written, werr
		}
	}

	return written, err
}
