package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooleanRoundTrip(t *testing.T) {
	v := New()
	v.SetBoolean(true)
	assert.Equal(t, True, v.GetType())
	assert.True(t, v.GetBoolean())

	v.SetBoolean(false)
	assert.Equal(t, False, v.GetType())
	assert.False(t, v.GetBoolean())
}

func TestNumberRoundTrip(t *testing.T) {
	v := New()
	v.SetNumber(-50.0)
	assert.Equal(t, Number, v.GetType())
	assert.Equal(t, -50.0, v.GetNumber())
}

func TestStringRoundTripIsOwnedCopy(t *testing.T) {
	v := New()
	src := []byte("hello")
	v.SetString(src)
	src[0] = 'H' // mutate caller's slice after the fact

	assert.Equal(t, "hello", string(v.GetString()))
	assert.Equal(t, 5, v.GetStringLength())
}

func TestGetterPanicsOnWrongKind(t *testing.T) {
	v := New()
	v.SetNumber(1)
	assert.Panics(t, func() { v.GetString() })
	assert.Panics(t, func() { v.GetBoolean() })
}

func TestArrayCapacityZeroHasNoBackingStorage(t *testing.T) {
	v := New()
	v.SetArray(0)
	assert.Equal(t, 0, v.GetArraySize())
	assert.Equal(t, 0, v.GetArrayCapacity())
}

func TestPushbackDoublesCapacityFromEmpty(t *testing.T) {
	v := New()
	v.SetArray(0)

	v.PushbackArrayElement()
	assert.Equal(t, 1, v.GetArraySize())
	assert.Equal(t, 1, v.GetArrayCapacity())

	v.PushbackArrayElement()
	assert.Equal(t, 2, v.GetArraySize())
	assert.Equal(t, 2, v.GetArrayCapacity())

	v.PushbackArrayElement()
	assert.Equal(t, 3, v.GetArraySize())
	assert.Equal(t, 4, v.GetArrayCapacity())
}

func TestPushbackThenPopbackRestoresSize(t *testing.T) {
	v := New()
	v.SetArray(0)
	v.PushbackArrayElement().SetNumber(1)
	sizeBefore, capBefore := v.GetArraySize(), v.GetArrayCapacity()

	v.PushbackArrayElement().SetNumber(2)
	v.PopbackArrayElement()

	assert.Equal(t, sizeBefore, v.GetArraySize())
	assert.GreaterOrEqual(t, v.GetArrayCapacity(), capBefore)
}

func TestInsertAndEraseArrayElement(t *testing.T) {
	v := New()
	v.SetArray(0)
	v.PushbackArrayElement().SetNumber(1)
	v.PushbackArrayElement().SetNumber(3)

	v.InsertArrayElement(1).SetNumber(2)
	require.Equal(t, 3, v.GetArraySize())
	assert.Equal(t, 1.0, v.GetArrayElement(0).GetNumber())
	assert.Equal(t, 2.0, v.GetArrayElement(1).GetNumber())
	assert.Equal(t, 3.0, v.GetArrayElement(2).GetNumber())

	v.EraseArrayElement(1, 1)
	require.Equal(t, 2, v.GetArraySize())
	assert.Equal(t, 1.0, v.GetArrayElement(0).GetNumber())
	assert.Equal(t, 3.0, v.GetArrayElement(1).GetNumber())
}

func TestClearArrayKeepsCapacity(t *testing.T) {
	v := New()
	v.SetArray(4)
	v.PushbackArrayElement()
	v.PushbackArrayElement()
	cap0 := v.GetArrayCapacity()

	v.ClearArray()
	assert.Equal(t, 0, v.GetArraySize())
	assert.Equal(t, cap0, v.GetArrayCapacity())
}

func TestShrinkArray(t *testing.T) {
	v := New()
	v.SetArray(8)
	v.PushbackArrayElement()
	v.ShrinkArray()
	assert.Equal(t, 1, v.GetArrayCapacity())
}

func TestSetObjectValueAppendsOrReturnsExisting(t *testing.T) {
	v := New()
	v.SetObject(0)

	first := v.SetObjectValue([]byte("k"))
	first.SetNumber(1)

	second := v.SetObjectValue([]byte("k"))
	assert.Same(t, first, second)
	assert.Equal(t, 1, v.GetObjectSize())
}

func TestFindObjectValueAndIndex(t *testing.T) {
	v := New()
	v.SetObject(0)
	v.SetObjectValue([]byte("k")).SetNumber(1)
	v.SetObjectValue([]byte("s")).SetString([]byte("v"))

	assert.Equal(t, 0, v.FindObjectIndex([]byte("k")))
	assert.Equal(t, KeyNotExist, v.FindObjectIndex([]byte("missing")))

	fv := v.FindObjectValue([]byte("s"))
	require.NotNil(t, fv)
	assert.Equal(t, "v", string(fv.GetString()))

	assert.Nil(t, v.FindObjectValue([]byte("missing")))
}

func TestRemoveObjectValue(t *testing.T) {
	v := New()
	v.SetObject(0)
	v.SetObjectValue([]byte("a")).SetNumber(1)
	v.SetObjectValue([]byte("b")).SetNumber(2)

	v.RemoveObjectValue(0)
	require.Equal(t, 1, v.GetObjectSize())
	assert.Equal(t, "b", string(v.GetObjectKey(0)))
}

func TestEqualScalars(t *testing.T) {
	a := New()
	a.SetNumber(1)
	b := New()
	b.SetNumber(1)
	assert.True(t, Equal(a, b))

	b.SetNumber(2)
	assert.False(t, Equal(a, b))
}

func TestEqualObjectIsOrderIndependent(t *testing.T) {
	a := New()
	a.SetObject(0)
	a.SetObjectValue([]byte("k")).SetNumber(1)
	a.SetObjectValue([]byte("s")).SetString([]byte("v"))

	b := New()
	b.SetObject(0)
	b.SetObjectValue([]byte("s")).SetString([]byte("v"))
	b.SetObjectValue([]byte("k")).SetNumber(1)

	assert.True(t, Equal(a, b))
}

func TestEqualArrayIsOrderDependent(t *testing.T) {
	a := New()
	a.SetArray(0)
	a.PushbackArrayElement().SetNumber(1)
	a.PushbackArrayElement().SetNumber(2)

	b := New()
	b.SetArray(0)
	b.PushbackArrayElement().SetNumber(2)
	b.PushbackArrayElement().SetNumber(1)

	assert.False(t, Equal(a, b))
}

func TestCopyProducesDisjointStorage(t *testing.T) {
	src := New()
	src.SetArray(0)
	src.PushbackArrayElement().SetString([]byte("x"))

	dst := New()
	Copy(dst, src)

	assert.True(t, Equal(dst, src))

	dst.GetArrayElement(0).SetString([]byte("mutated"))
	assert.False(t, Equal(dst, src))
	assert.Equal(t, "x", string(src.GetArrayElement(0).GetString()))
}

func TestMoveTransfersAndResetsSource(t *testing.T) {
	src := New()
	src.SetString([]byte("hi"))

	dst := New()
	Move(dst, src)

	assert.Equal(t, "hi", string(dst.GetString()))
	assert.Equal(t, Null, src.GetType())
}

func TestSwapExchangesPayloads(t *testing.T) {
	a := New()
	a.SetNumber(1)
	b := New()
	b.SetString([]byte("s"))

	Swap(a, b)
	assert.Equal(t, String, a.GetType())
	assert.Equal(t, Number, b.GetType())
}
