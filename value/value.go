// Package value implements the JSON value tree: a tagged variant over the
// seven JSON kinds, with owning storage for strings, arrays, and
// objects, plus the typed accessor/mutation surface over it.
//
// A Value is always in exactly one of the seven kinds. Every mutator
// first releases the current payload (resetting to Null), then installs
// the new one, so a Value never straddles two kinds. There is no shared
// ownership and no cycles: destroying a Value recursively destroys
// everything it owns.
package value

// Kind identifies which of the seven JSON variants a Value currently holds.
type Kind int

const (
	// Null is the zero value of Kind: every newly constructed Value is Null.
	Null Kind = iota
	False
	True
	Number
	String
	Array
	Object
)

// String renders the Kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case Null:
		return "Null"
	case False:
		return "False"
	case True:
		return "True"
	case Number:
		return "Number"
	case String:
		return "String"
	case Array:
		return "Array"
	case Object:
		return "Object"
	default:
		return "Unknown"
	}
}

// Member is a (key, value) pair inside an Object. Keys are owned byte
// sequences and may contain embedded zeros.
type Member struct {
	Key   []byte
	Value *Value
}

// Value is the tagged JSON variant. Only the field(s) matching Kind are
// meaningful; accessors assert the kind precondition before reading.
type Value struct {
	kind Kind

	num float64

	str []byte // owned; for Kind == String

	elems []*Value // for Kind == Array; len(elems) <= cap(elems) gives size/capacity
	mems  []Member // for Kind == Object
}

// New returns a freshly constructed Null value, per spec.md §3's lifecycle
// rule ("a newly constructed Value is Null").
func New() *Value { return &Value{} }

// GetType returns v's current Kind.
func (v *Value) GetType() Kind { return v.kind }

// Free releases all owned storage transitively (array elements, object
// members, member keys, string bytes) and resets v to Null. Calling Free
// on an already-Null value is a no-op, so repeated calls are always safe.
func (v *Value) Free() {
	switch v.kind {
	case Array:
		for _, e := range v.elems {
			e.Free()
		}
	case Object:
		for i := range v.mems {
			v.mems[i].Value.Free()
		}
	}
	v.kind = Null
	v.num = 0
	v.str = nil
	v.elems = nil
	v.mems = nil
}

// SetNull is an alias for Free: it releases any owned payload and leaves
// v as Null.
func (v *Value) SetNull() { v.Free() }

func assertKind(v *Value, want Kind) {
	if v.kind != want {
		panic("value: precondition violated: expected kind " + want.String() + ", got " + v.kind.String())
	}
}
