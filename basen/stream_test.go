package basen

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

// failAfterWriter accepts room bytes and then fails every write with
// err.
type failAfterWriter struct {
	room int
	err  error
}

func (w *failAfterWriter) Write(p []byte) (int, error) {
	if len(p) > w.room {
		n := w.room
		w.room = 0
		return n, w.err
	}
	w.room -= len(p)
	return len(p), nil
}

func streamTestPattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i * 7)
	}
	return b
}

func TestEncodeStream(t *testing.T) {
	t.Parallel()

	t.Run("matches the in-memory form", func(t *testing.T) {
		t.Parallel()

		is := assert.New(t)

		big := string(streamTestPattern(10000))

		tcs := []struct {
			enc    *Encoding
			src    string
			wrapAt int
		}{
			{Base64, "foobar", 0},
			{Base64, "foob", 4},
			{Base64, big, 76},
			{Base32, "fooba", 0},
			{Base32, big, 64},
			{Base16, "foo", 3},
			{Base64URL, big, 0},
			{Base64, "", 4},
		}

		for _, tc := range tcs {
			exp := tc.enc.EncodeWrapString(tc.src, tc.wrapAt)

			var sink bytes.Buffer
			n, err := tc.enc.EncodeStream(strings.NewReader(tc.src), &sink, tc.wrapAt)

			is.NoError(err)
			is.Equal(int64(len(exp)), n)
			is.Equal(exp, sink.String())
		}
	})

	t.Run("carries partial groups across reads", func(t *testing.T) {
		t.Parallel()

		is := assert.New(t)

		var sink bytes.Buffer
		n, err := Base64.EncodeStream(iotest.OneByteReader(strings.NewReader("foobar")), &sink, 0)

		is.NoError(err)
		is.Equal(int64(8), n)
		is.Equal("Zm9vYmFy", sink.String())
	})

	t.Run("surfaces reader failures", func(t *testing.T) {
		t.Parallel()

		is := assert.New(t)

		var sink bytes.Buffer
		_, err := Base64.EncodeStream(iotest.TimeoutReader(strings.NewReader("foobar")), &sink, 0)

		is.ErrorIs(err, iotest.ErrTimeout)
	})

	t.Run("surfaces writer failures", func(t *testing.T) {
		t.Parallel()

		is := assert.New(t)

		errSinkFull := errors.New("sink full")
		w := &failAfterWriter{room: 2, err: errSinkFull}
		n, err := Base64.EncodeStream(strings.NewReader("foobar"), w, 0)

		is.ErrorIs(err, errSinkFull)
		is.Equal(int64(2), n)
	})
}

func TestDecodeStream(t *testing.T) {
	t.Parallel()

	t.Run("round trips the wrapped form", func(t *testing.T) {
		t.Parallel()

		is := assert.New(t)

		big := streamTestPattern(10000)
		wrapped := Base64.EncodeWrapString(string(big), 76)

		var sink bytes.Buffer
		n, err := Base64.DecodeStream(strings.NewReader(wrapped), &sink, true)

		is.NoError(err)
		is.Equal(int64(len(big)), n)
		is.Equal(big, sink.Bytes())
	})

	t.Run("persists group state across reads", func(t *testing.T) {
		t.Parallel()

		is := assert.New(t)

		var sink bytes.Buffer
		n, err := Base32.DecodeStream(iotest.OneByteReader(strings.NewReader("MZXW6YTBOI======")), &sink, false)

		is.NoError(err)
		is.Equal(int64(6), n)
		is.Equal("foobar", sink.String())
	})

	t.Run("writes an unpadded tail", func(t *testing.T) {
		t.Parallel()

		is := assert.New(t)

		var sink bytes.Buffer
		n, err := Base32.DecodeStream(strings.NewReader("MZXW6"), &sink, false)

		is.NoError(err)
		is.Equal(int64(3), n)
		is.Equal("foo", sink.String())
	})

	t.Run("reports the offending line and column", func(t *testing.T) {
		t.Parallel()

		is := assert.New(t)

		var sink bytes.Buffer
		n, err := Base64.DecodeStream(strings.NewReader("Zm9v\nYm*y"), &sink, true)

		is.EqualError(err, "basen: Invalid character at line 2, char 3")
		is.ErrorIs(err, ErrInvalidChar)
		is.Equal(int64(3), n)
		is.Equal("foo", sink.String())
	})

	t.Run("rejects a stray pad at end of input", func(t *testing.T) {
		t.Parallel()

		is := assert.New(t)

		var sink bytes.Buffer
		n, err := Base64.DecodeStream(strings.NewReader("Zm9vYmFy="), &sink, false)

		is.EqualError(err, "basen: Invalid length or padding at line 1, char 10")
		is.ErrorIs(err, ErrInvalidLength)
		is.Equal(int64(6), n)
		is.Equal("foobar", sink.String())
	})

	t.Run("surfaces writer failures", func(t *testing.T) {
		t.Parallel()

		is := assert.New(t)

		errSinkFull := errors.New("sink full")
		w := &failAfterWriter{room: 2, err: errSinkFull}
		n, err := Base64.DecodeStream(strings.NewReader("Zm9vYmFy"), w, false)

		is.ErrorIs(err, errSinkFull)
		is.Equal(int64(2), n)
	})

	t.Run("empty source", func(t *testing.T) {
		t.Parallel()

		is := assert.New(t)

		var sink bytes.Buffer
		n, err := Base64.DecodeStream(strings.NewReader(""), &sink, false)

		is.NoError(err)
		is.Zero(n)
		is.Zero(sink.Len())
	})
}
