package value

// This file implements the Accessor API (spec.md §4.4): typed
// query/mutation operations on Value Tree nodes. Every getter asserts its
// kind precondition and panics on violation — the
// idiomatic Go rendering of "precondition failures abort via assertion in
// debug builds, undefined in release" (spec.md §7): a caller bug surfaces
// immediately rather than silently corrupting state.

// KeyNotExist is the sentinel returned by FindObjectIndex when the key is
// absent (spec.md's KEY_NOT_EXIST, "maximum representable unsigned
// integer" — rendered here as -1, the idiomatic Go not-found sentinel for
// a signed int index).
const KeyNotExist = -1

// --- booleans ---

// GetBoolean returns v's boolean payload. Precondition: v.GetType() is
// True or False.
func (v *Value) GetBoolean() bool {
	switch v.kind {
	case True:
		return true
	case False:
		return false
	default:
		panic("value: GetBoolean: not a boolean value")
	}
}

// SetBoolean releases v's current payload and sets it to True or False.
func (v *Value) SetBoolean(b bool) {
	v.Free()
	if b {
		v.kind = True
	} else {
		v.kind = False
	}
}

// --- numbers ---

// GetNumber returns v's double payload. Precondition: v.GetType() == Number.
func (v *Value) GetNumber() float64 {
	assertKind(v, Number)
	return v.num
}

// SetNumber releases v's current payload and sets it to Number(n).
func (v *Value) SetNumber(n float64) {
	v.Free()
	v.kind = Number
	v.num = n
}

// --- strings ---

// GetString returns v's owned string bytes. Precondition: v.GetType() == String.
func (v *Value) GetString() []byte {
	assertKind(v, String)
	return v.str
}

// GetStringLength returns len(v.GetString()).
func (v *Value) GetStringLength() int {
	assertKind(v, String)
	return len(v.str)
}

// SetString releases v's current payload and installs a fresh owned copy
// of s.
func (v *Value) SetString(s []byte) {
	cp := make([]byte, len(s))
	copy(cp, s)
	v.Free()
	v.kind = String
	v.str = cp
}

// --- arrays ---

// SetArray releases v's current payload and installs an empty array with
// the given capacity.
func (v *Value) SetArray(capacity int) {
	v.Free()
	v.kind = Array
	if capacity > 0 {
		v.elems = make([]*Value, 0, capacity)
	}
}

// GetArraySize returns the array's logical element count. Precondition:
// v.GetType() == Array.
func (v *Value) GetArraySize() int {
	assertKind(v, Array)
	return len(v.elems)
}

// GetArrayCapacity returns the array's allocated slot count.
func (v *Value) GetArrayCapacity() int {
	assertKind(v, Array)
	return cap(v.elems)
}

// ReserveArray grows the array's capacity to at least n, reallocating if
// needed. It never shrinks capacity.
func (v *Value) ReserveArray(n int) {
	assertKind(v, Array)
	if cap(v.elems) >= n {
		return
	}
	ne := make([]*Value, len(v.elems), n)
	copy(ne, v.elems)
	v.elems = ne
}

// ShrinkArray reallocates the array so capacity == size.
func (v *Value) ShrinkArray() {
	assertKind(v, Array)
	if cap(v.elems) == len(v.elems) {
		return
	}
	ne := make([]*Value, len(v.elems))
	copy(ne, v.elems)
	v.elems = ne
}

// ClearArray frees every element and sets size to 0; capacity is unchanged.
func (v *Value) ClearArray() {
	assertKind(v, Array)
	for _, e := range v.elems {
		e.Free()
	}
	v.elems = v.elems[:0]
}

// GetArrayElement returns the element at index i. Precondition: Array,
// i < size.
func (v *Value) GetArrayElement(i int) *Value {
	assertKind(v, Array)
	if i < 0 || i >= len(v.elems) {
		panic("value: GetArrayElement: index out of range")
	}
	return v.elems[i]
}

// PushbackArrayElement appends a new Null slot, doubling capacity if the
// array is full (capacity becomes 1 if it was 0), and returns a reference
// to the newly appended slot.
func (v *Value) PushbackArrayElement() *Value {
	assertKind(v, Array)
	if len(v.elems) == cap(v.elems) {
		newCap := cap(v.elems) * 2
		if newCap == 0 {
			newCap = 1
		}
		v.ReserveArray(newCap)
	}
	nv := New()
	v.elems = append(v.elems, nv)
	return nv
}

// PopbackArrayElement frees and discards the last element. Precondition:
// Array, size > 0.
func (v *Value) PopbackArrayElement() {
	assertKind(v, Array)
	n := len(v.elems)
	if n == 0 {
		panic("value: PopbackArrayElement: array is empty")
	}
	v.elems[n-1].Free()
	v.elems = v.elems[:n-1]
}

// InsertArrayElement shifts the tail right and inserts a new Null value
// at index i, returning a reference to it. Precondition: Array, i <= size.
func (v *Value) InsertArrayElement(i int) *Value {
	assertKind(v, Array)
	if i < 0 || i > len(v.elems) {
		panic("value: InsertArrayElement: index out of range")
	}
	nv := New()
	v.elems = append(v.elems, nil)
	copy(v.elems[i+1:], v.elems[i:])
	v.elems[i] = nv
	return nv
}

// EraseArrayElement frees elements [i, i+n) and shifts the tail left.
// Precondition: Array, i+n <= size.
func (v *Value) EraseArrayElement(i, n int) {
	assertKind(v, Array)
	if i < 0 || n < 0 || i+n > len(v.elems) {
		panic("value: EraseArrayElement: range out of bounds")
	}
	for j := i; j < i+n; j++ {
		v.elems[j].Free()
	}
	v.elems = append(v.elems[:i], v.elems[i+n:]...)
}

// SetArrayFromElements installs pre-built elements as v's array payload,
// taking ownership of them, with capacity == size == len(elems). Used by
// the parser when closing an array: elements accumulate on a staging
// stack and are bulk-installed in one step rather than one
// PushbackArrayElement call per element.
func (v *Value) SetArrayFromElements(elems []*Value) {
	v.Free()
	v.kind = Array
	v.elems = elems
}

// --- objects ---

// SetObject releases v's current payload and installs an empty object
// with the given capacity.
func (v *Value) SetObject(capacity int) {
	v.Free()
	v.kind = Object
	if capacity > 0 {
		v.mems = make([]Member, 0, capacity)
	}
}

// GetObjectSize returns the object's logical member count.
func (v *Value) GetObjectSize() int {
	assertKind(v, Object)
	return len(v.mems)
}

// GetObjectCapacity returns the object's allocated slot count.
func (v *Value) GetObjectCapacity() int {
	assertKind(v, Object)
	return cap(v.mems)
}

// ReserveObject grows capacity to at least n.
func (v *Value) ReserveObject(n int) {
	assertKind(v, Object)
	if cap(v.mems) >= n {
		return
	}
	nm := make([]Member, len(v.mems), n)
	copy(nm, v.mems)
	v.mems = nm
}

// ShrinkObject reallocates so capacity == size.
func (v *Value) ShrinkObject() {
	assertKind(v, Object)
	if cap(v.mems) == len(v.mems) {
		return
	}
	nm := make([]Member, len(v.mems))
	copy(nm, v.mems)
	v.mems = nm
}

// ClearObject frees every member's value and sets size to 0; capacity is
// unchanged.
func (v *Value) ClearObject() {
	assertKind(v, Object)
	for i := range v.mems {
		v.mems[i].Value.Free()
	}
	v.mems = v.mems[:0]
}

// GetObjectKey returns the key bytes of member i.
func (v *Value) GetObjectKey(i int) []byte {
	assertKind(v, Object)
	if i < 0 || i >= len(v.mems) {
		panic("value: GetObjectKey: index out of range")
	}
	return v.mems[i].Key
}

// GetObjectKeyLength returns len(v.GetObjectKey(i)).
func (v *Value) GetObjectKeyLength(i int) int {
	return len(v.GetObjectKey(i))
}

// GetObjectValue returns the value of member i.
func (v *Value) GetObjectValue(i int) *Value {
	assertKind(v, Object)
	if i < 0 || i >= len(v.mems) {
		panic("value: GetObjectValue: index out of range")
	}
	return v.mems[i].Value
}

// FindObjectIndex returns the index of the first member with the given
// key (linear scan), or KeyNotExist.
func (v *Value) FindObjectIndex(key []byte) int {
	assertKind(v, Object)
	for i := range v.mems {
		if string(v.mems[i].Key) == string(key) {
			return i
		}
	}
	return KeyNotExist
}

// FindObjectValue returns the value of the first member with the given
// key, or nil if absent.
func (v *Value) FindObjectValue(key []byte) *Value {
	i := v.FindObjectIndex(key)
	if i == KeyNotExist {
		return nil
	}
	return v.mems[i].Value
}

// SetObjectValue returns the value reference for key, appending a new
// Null-valued member with a freshly copied key if the key is not already
// present. The returned reference is live: mutating it mutates the
// object's member in place.
func (v *Value) SetObjectValue(key []byte) *Value {
	assertKind(v, Object)
	if i := v.FindObjectIndex(key); i != KeyNotExist {
		return v.mems[i].Value
	}
	kc := make([]byte, len(key))
	copy(kc, key)
	nv := New()
	v.mems = append(v.mems, Member{Key: kc, Value: nv})
	return nv
}

// RemoveObjectValue frees member i's key and value and shifts the tail left.
func (v *Value) RemoveObjectValue(i int) {
	assertKind(v, Object)
	if i < 0 || i >= len(v.mems) {
		panic("value: RemoveObjectValue: index out of range")
	}
	v.mems[i].Value.Free()
	v.mems = append(v.mems[:i], v.mems[i+1:]...)
}

// SetObjectFromMembers installs pre-built members as v's object payload,
// taking ownership of them, with capacity == size == len(mems). Used by
// the parser when closing an object; see SetArrayFromElements.
func (v *Value) SetObjectFromMembers(mems []Member) {
	v.Free()
	v.kind = Object
	v.mems = mems
}

// --- equality, copy, move, swap ---

// Equal reports whether a and b are structurally equal: same kind,
// numbers compared by ==, strings by length then bytes, arrays
// element-wise by index, and objects by size plus order-independent
// key-wise comparison (every key of a found in b with an equal value).
func Equal(a, b *Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Null, True, False:
		return true
	case Number:
		return a.num == b.num
	case String:
		return string(a.str) == string(b.str)
	case Array:
		if len(a.elems) != len(b.elems) {
			return false
		}
		for i := range a.elems {
			if !Equal(a.elems[i], b.elems[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(a.mems) != len(b.mems) {
			return false
		}
		for i := range a.mems {
			bv := b.FindObjectValue(a.mems[i].Key)
			if bv == nil || !Equal(a.mems[i].Value, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Copy performs a deep clone of src into dst: dst becomes structurally
// equal to src with entirely disjoint storage. dst and src must be
// distinct Values.
func Copy(dst, src *Value) {
	if dst == src {
		panic("value: Copy: dst and src must be distinct")
	}
	dst.Free()
	switch src.kind {
	case Null:
		// dst is already Null after Free.
	case True, False:
		dst.kind = src.kind
	case Number:
		dst.SetNumber(src.num)
	case String:
		dst.SetString(src.str)
	case Array:
		dst.SetArray(len(src.elems))
		for _, e := range src.elems {
			ne := New()
			Copy(ne, e)
			dst.elems = append(dst.elems, ne)
		}
	case Object:
		dst.SetObject(len(src.mems))
		for _, m := range src.mems {
			nv := New()
			Copy(nv, m.Value)
			kc := make([]byte, len(m.Key))
			copy(kc, m.Key)
			dst.mems = append(dst.mems, Member{Key: kc, Value: nv})
		}
	}
}

// Move frees dst, transfers src's payload to dst bit-for-bit (no
// allocation), and resets src to Null. dst and src must be distinct.
func Move(dst, src *Value) {
	if dst == src {
		panic("value: Move: dst and src must be distinct")
	}
	dst.Free()
	dst.kind = src.kind
	dst.num = src.num
	dst.str = src.str
	dst.elems = src.elems
	dst.mems = src.mems

	src.kind = Null
	src.num = 0
	src.str = nil
	src.elems = nil
	src.mems = nil
}

// Swap exchanges a and b's payloads bit-for-bit.
func Swap(a, b *Value) {
	*a, *b = *b, *a
}
