package render

import (
	"io"

	"tjs/value"
)

// flushThreshold: сколько байт копим перед записью в io.Writer.
const flushThreshold = 4096

type frame struct {
	dict bool
	n    int
}

// Writer accumulates canonical output. It implements value.Sink, so it can
// consume a tree through value.Walk or a live event stream from an encoder.
type Writer struct {
	buf      []byte
	stack    []frame
	afterKey bool

	out io.Writer
	err error
}

var _ value.Sink = (*Writer)(nil)

// NewWriter creates a writer that appends to dst.
func NewWriter(dst []byte) *Writer {
	return &Writer{buf: dst}
}

// NewStream creates a writer that forwards output to out in chunks. Call
// Flush when the value is complete.
func NewStream(out io.Writer) *Writer {
	return &Writer{buf: make([]byte, 0, flushThreshold), out: out}
}

// Bytes returns the accumulated output that has not been flushed.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Err returns the first write error of a stream.
func (w *Writer) Err() error {
	return w.err
}

// Flush writes buffered output to the underlying io.Writer. After the first
// write error the stream discards further output and Flush keeps returning
// that error.
func (w *Writer) Flush() error {
	if w.out == nil {
		return nil
	}
	if w.err != nil {
		w.buf = w.buf[:0]
		return w.err
	}
	if len(w.buf) > 0 {
		_, w.err = w.out.Write(w.buf)
		w.buf = w.buf[:0]
	}
	return w.err
}

func (w *Writer) maybeFlush() {
	if w.out == nil {
		return
	}
	// поток уже сломан: копить нечего
	if w.err != nil {
		w.buf = w.buf[:0]
		return
	}
	if len(w.buf) >= flushThreshold {
		_ = w.Flush()
	}
}

// beginValue ставит запятую перед элементом массива, если он не первый.
func (w *Writer) beginValue() {
	if w.afterKey {
		w.afterKey = false
		return
	}
	if n := len(w.stack); n > 0 {
		top := &w.stack[n-1]
		if top.n > 0 {
			w.buf = append(w.buf, ',')
		}
		top.n++
	}
}

func (w *Writer) Void() {
	w.beginValue()
	w.buf = append(w.buf, "void"...)
	w.maybeFlush()
}

func (w *Writer) Bool(b bool) {
	w.beginValue()
	if b {
		w.buf = append(w.buf, "true"...)
	} else {
		w.buf = append(w.buf, "false"...)
	}
	w.maybeFlush()
}

func (w *Writer) Int(i int64) {
	w.beginValue()
	w.buf = appendInt(w.buf, i)
	w.maybeFlush()
}

func (w *Writer) Real(f float64) {
	w.beginValue()
	w.buf = appendReal(w.buf, f)
	w.maybeFlush()
}

func (w *Writer) Str(s string) {
	w.beginValue()
	w.buf = appendQuoted(w.buf, s)
	w.maybeFlush()
}

func (w *Writer) Octet(b []byte) {
	w.beginValue()
	w.buf = appendOctet(w.buf, b)
	w.maybeFlush()
}

func (w *Writer) BeginArray() {
	w.beginValue()
	w.buf = append(w.buf, "const ["...)
	w.stack = append(w.stack, frame{})
	w.maybeFlush()
}

func (w *Writer) BeginDict() {
	w.beginValue()
	w.buf = append(w.buf, "const %["...)
	w.stack = append(w.stack, frame{dict: true})
	w.maybeFlush()
}

func (w *Writer) Key(k string) {
	n := len(w.stack)
	if n == 0 || !w.stack[n-1].dict {
		panic("render: Key outside of a dict")
	}
	top := &w.stack[n-1]
	if top.n > 0 {
		w.buf = append(w.buf, ',')
	}
	top.n++
	w.buf = appendQuoted(w.buf, k)
	w.buf = append(w.buf, "=>"...)
	w.afterKey = true
	w.maybeFlush()
}

func (w *Writer) End() {
	if len(w.stack) == 0 {
		panic("render: End without Begin")
	}
	w.stack = w.stack[:len(w.stack)-1]
	w.buf = append(w.buf, ']')
	w.maybeFlush()
}

// Append appends the canonical form of v to dst.
func Append(dst []byte, v value.Value) []byte {
	w := NewWriter(dst)
	value.Walk(v, w)
	return w.buf
}

// String returns the canonical form of v.
func String(v value.Value) string {
	return string(Append(nil, v))
}
