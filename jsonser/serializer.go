// Package jsonser implements the serializer: a walk over a value.Value
// tree that appends JSON text to a shared internal/scratch.Buffer and
// returns the accumulated bytes.
package jsonser

import (
	"strconv"

	"github.com/lattice-substrate/jsontree/internal/scratch"
	"github.com/lattice-substrate/jsontree/value"
)

// DefaultStackInitialBytes is the Scratch Buffer's initial size when
// Options.StringifyStackInitialBytes is left zero.
const DefaultStackInitialBytes = 256

// Options carries the serializer's sole compile-time knob.
type Options struct {
	// StringifyStackInitialBytes is the Scratch Buffer's initial
	// allocation. Zero means DefaultStackInitialBytes.
	StringifyStackInitialBytes int
}

func (o *Options) stackInitialBytes() int {
	if o == nil || o.StringifyStackInitialBytes <= 0 {
		return DefaultStackInitialBytes
	}
	return o.StringifyStackInitialBytes
}

// numberReserveBytes is the worst-case scratch region reserved for a
// formatted number before shrinking to its actual length (spec.md §4.3).
const numberReserveBytes = 32

// hexDigits is the uppercase table used for `\u00HH` control escapes.
const hexDigits = "0123456789ABCDEF"

type serializer struct {
	buf *scratch.Buffer
}

// Serialize walks v and returns its JSON text. A nil Options uses all
// defaults. The returned slice is a copy; the internal buffer is fully
// drained (top == 0) before returning, mirroring the parser's discipline.
func Serialize(v *value.Value, opts *Options) []byte {
	s := &serializer{buf: scratch.New(opts.stackInitialBytes())}
	s.writeValue(v)

	out := make([]byte, s.buf.Len())
	copy(out, s.buf.Bytes())
	s.buf.Pop(s.buf.Len())
	s.buf.AssertEmpty()
	return out
}

func (s *serializer) writeValue(v *value.Value) {
	switch v.GetType() {
	case value.Null:
		s.buf.PushBytes([]byte("null"))
	case value.False:
		s.buf.PushBytes([]byte("false"))
	case value.True:
		s.buf.PushBytes([]byte("true"))
	case value.Number:
		s.writeNumber(v.GetNumber())
	case value.String:
		s.writeString(v.GetString())
	case value.Array:
		s.writeArray(v)
	case value.Object:
		s.writeObject(v)
	}
}

// writeNumber reserves a 32-byte region, formats in place with 17
// significant digits (enough for exact double round-trip), then shrinks
// the buffer top back to the digits actually written.
func (s *serializer) writeNumber(n float64) {
	off := s.buf.Push(numberReserveBytes)
	region := s.buf.At(off, numberReserveBytes)
	out := strconv.AppendFloat(region[:0], n, 'g', 17, 64)
	s.buf.Truncate(off + len(out))
}

// writeString wraps bytes in quotes, reserving the 6*len+2 worst-case
// upper bound up front to avoid a growth check per byte.
func (s *serializer) writeString(b []byte) {
	reserve := 6*len(b) + 2
	off := s.buf.Push(reserve)
	out := s.buf.At(off, reserve)[:0]

	out = append(out, '"')
	for _, c := range b {
		switch c {
		case '"':
			out = append(out, '\\', '"')
		case '\\':
			out = append(out, '\\', '\\')
		case '\b':
			out = append(out, '\\', 'b')
		case '\f':
			out = append(out, '\\', 'f')
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\t':
			out = append(out, '\\', 't')
		default:
			if c < 0x20 {
				out = append(out, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
			} else {
				out = append(out, c)
			}
		}
	}
	out = append(out, '"')

	s.buf.Truncate(off + len(out))
}

func (s *serializer) writeArray(v *value.Value) {
	s.buf.PushByte('[')
	n := v.GetArraySize()
	for i := 0; i < n; i++ {
		if i > 0 {
			s.buf.PushByte(',')
		}
		s.writeValue(v.GetArrayElement(i))
	}
	s.buf.PushByte(']')
}

func (s *serializer) writeObject(v *value.Value) {
	s.buf.PushByte('{')
	n := v.GetObjectSize()
	for i := 0; i < n; i++ {
		if i > 0 {
			s.buf.PushByte(',')
		}
		s.writeString(v.GetObjectKey(i))
		s.buf.PushByte(':')
		s.writeValue(v.GetObjectValue(i))
	}
	s.buf.PushByte('}')
}
