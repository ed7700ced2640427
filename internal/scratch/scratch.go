// Package scratch implements a growable byte stack shared across parser
// and serializer recursion levels. Children complete before parents, so
// a stack discipline suffices: a recursive call pushes its bytes, reads
// them back off the top, and pops exactly what it pushed before
// returning.
package scratch

// initSize is the default allocation when a Buffer first grows from zero.
const initSize = 256

// Buffer is a (base, size, top) byte stack. Reallocation on growth may
// move prior contents, so callers must not retain a region returned by
// Push/Pop across a later Push.
type Buffer struct {
	data []byte
	top  int
}

// New creates a Buffer, pre-allocating n bytes (0 defers to the default
// initial size on first growth).
func New(n int) *Buffer {
	b := &Buffer{}
	if n > 0 {
		b.data = make([]byte, n)
	}
	return b
}

// Len returns the number of bytes currently in use (top).
func (b *Buffer) Len() int { return b.top }

// Bytes returns the currently-used region. The slice is invalidated by
// the next Push that triggers a grow.
func (b *Buffer) Bytes() []byte { return b.data[:b.top] }

// At returns the byte region starting at offset off with length n. Used
// by callers that recorded an offset before a recursive call that may
// have reallocated the buffer — always index back through the current
// base, never retain a stale pointer.
func (b *Buffer) At(off, n int) []byte { return b.data[off : off+n] }

// grow ensures at least n more bytes are available past top.
func (b *Buffer) grow(n int) {
	need := b.top + n
	if need <= len(b.data) {
		return
	}
	size := len(b.data)
	if size == 0 {
		size = initSize
	}
	for size < need {
		size = size + size/2
	}
	nd := make([]byte, size)
	copy(nd, b.data[:b.top])
	b.data = nd
}

// Push reserves n contiguous bytes at the top, advances top by n, and
// returns the offset of the reserved region's start. Read the region
// back via At(off, n) rather than retaining a slice, since a later Push
// may reallocate.
func (b *Buffer) Push(n int) int {
	b.grow(n)
	off := b.top
	b.top += n
	return off
}

// PushByte appends a single byte and returns its offset.
func (b *Buffer) PushByte(c byte) int {
	off := b.Push(1)
	b.data[off] = c
	return off
}

// PushBytes appends p and returns the offset of its first byte.
func (b *Buffer) PushBytes(p []byte) int {
	off := b.Push(len(p))
	copy(b.data[off:], p)
	return off
}

// Pop requires top >= n, decrements top by n, and returns the offset of
// the just-released region. The bytes remain valid (readable) until the
// next Push.
func (b *Buffer) Pop(n int) int {
	if n > b.top {
		panic("scratch: pop underflow")
	}
	b.top -= n
	return b.top
}

// Truncate sets top back to a previously observed value, discarding
// everything pushed since then. Used to unwind a failed subtree.
func (b *Buffer) Truncate(top int) {
	if top > b.top {
		panic("scratch: truncate past top")
	}
	b.top = top
}

// AssertEmpty panics if top != 0. Callers invoke this on parse/serialize
// exit as a leaked-frame guard.
func (b *Buffer) AssertEmpty() {
	if b.top != 0 {
		panic("scratch: buffer not empty at call exit")
	}
}

// Stack is a generic growable LIFO shared across recursion levels for
// staging typed pending children (Array elements during array parsing,
// Object members during object parsing) before they are bulk-copied into
// a freshly allocated, owning slice.
//
// spec.md's Scratch Buffer packs pending children as raw struct bytes
// because its host language has no garbage collector to keep pointers
// reachable inside an untyped byte region. Go's collector requires
// pending *Value/Member pointers to live in a typed, GC-visible slice
// instead — so composite staging uses this generic stack, while the byte
// Buffer above remains exactly spec.md's component for string
// accumulation and number-formatting staging. Both share the same LIFO
// discipline: a recursive call pushes what it owns and pops exactly that
// much before returning, so Stack instances nest correctly across
// recursion exactly like Buffer does.
type Stack[T any] struct {
	data []T
}

// NewStack creates an empty Stack.
func NewStack[T any]() *Stack[T] { return &Stack[T]{} }

// Len returns the number of staged elements.
func (s *Stack[T]) Len() int { return len(s.data) }

// Push stages v on top of the stack.
func (s *Stack[T]) Push(v T) { s.data = append(s.data, v) }

// PopN removes and returns the top n elements in original (bottom-to-top)
// order, for bulk-copying into an owning slice.
func (s *Stack[T]) PopN(n int) []T {
	if n > len(s.data) {
		panic("scratch: stack pop underflow")
	}
	start := len(s.data) - n
	out := make([]T, n)
	copy(out, s.data[start:])
	s.data = s.data[:start]
	return out
}
