package scratch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPopRoundTrip(t *testing.T) {
	b := New(0)

	off := b.PushBytes([]byte("hello"))
	assert.Equal(t, 5, b.Len())
	assert.Equal(t, []byte("hello"), b.At(off, 5))

	b.Pop(5)
	assert.Equal(t, 0, b.Len())
}

func TestGrowsGeometrically(t *testing.T) {
	b := New(0)

	off := b.Push(300)
	require.GreaterOrEqual(t, cap(b.data), 300)
	assert.Equal(t, 0, off)
	b.Pop(300)
	b.AssertEmpty()
}

func TestTruncateDiscardsPartialFrame(t *testing.T) {
	b := New(0)
	b.PushBytes([]byte("abc"))
	top := b.Len()
	b.PushBytes([]byte("def"))
	b.Truncate(top)
	assert.Equal(t, "abc", string(b.Bytes()))
}

func TestPopUnderflowPanics(t *testing.T) {
	b := New(0)
	assert.Panics(t, func() { b.Pop(1) })
}

func TestAssertEmptyPanicsWhenNotDrained(t *testing.T) {
	b := New(0)
	b.PushByte('x')
	assert.Panics(t, b.AssertEmpty)
}

func TestNestedPushPopLIFO(t *testing.T) {
	b := New(4)

	outerOff := b.PushBytes([]byte("outer"))
	innerOff := b.PushBytes([]byte("inner"))
	assert.Equal(t, "inner", string(b.At(innerOff, 5)))
	b.Pop(5)
	assert.Equal(t, "outer", string(b.At(outerOff, 5)))
	b.Pop(5)
	b.AssertEmpty()
}
