package obf

import (
	"bytes"
	"io"
)

// screen is an unbounded byte keystream over the splitmix state walk.
// It produces the same sub-keys as KeystreamBytes for the same key, one byte per advance.
type screen struct {
	key   uint32
	state uint64
}

func newScreen(key uint32) *screen {
	return &screen{key: key, state: uint64(key)}
}

func (s *screen) apply(b byte) byte {
	s.state = Mix(s.state)
	return b ^ byte(s.state)
}

func (s *screen) reset() {
	s.state = uint64(s.key)
}

// Reader extends io.Reader, but also provides a way to reuse a key with a different source.
type Reader interface {
	io.Reader
	// Reset will use the provided io.Reader and rewind the keystream to its initial state.
	Reset(source io.Reader)
}

// Writer extends io.Writer, but also provides a way to reuse a key with a different target.
type Writer interface {
	io.Writer
	// Reset will use the provided io.Writer and rewind the keystream to its initial state.
	Reset(target io.Writer)
}

var _ Reader = (*reader)(nil)

type reader struct {
	source io.Reader
	scr    *screen
}

func (r *reader) Read(out []byte) (n int, err error) {
	n, err = r.source.Read(out)
	for i := 0; i < n; i++ {
		out[i] = r.scr.apply(out[i])
	}
	return n, err
}

func (r *reader) Reset(source io.Reader) {
	r.source = source
	r.scr.reset()
}

// NewReader constructs a Reader that XORs every byte read against the keystream expanded from key.
// Reading the exact bytes a Writer with the same key produced recovers the original data.
func NewReader(source io.Reader, key uint32) Reader {
	return &reader{
		source: source,
		scr:    newScreen(key),
	}
}

var _ Writer = (*writer)(nil)

type writer struct {
	target io.Writer
	scr    *screen
}

func (w *writer) Write(in []byte) (n int, err error) {
	var buf bytes.Buffer
	for i := 0; i < len(in); i++ {
		buf.WriteByte(w.scr.apply(in[i]))
	}
	return w.target.Write(buf.Bytes())
}

func (w *writer) Reset(target io.Writer) {
	w.target = target
	w.scr.reset()
}

// NewWriter constructs a Writer that XORs every byte written against the keystream expanded from key.
func NewWriter(target io.Writer, key uint32) Writer {
	return &writer{
		target: target,
		scr:    newScreen(key),
	}
}
