package cv

import "fmt"

// Value is a dynamically typed document node holding exactly one of
// seven kinds: null, bool, 64-bit signed integer, 64-bit float, string,
// array, or ordered key/value object. The zero Value is Null and
// allocates on the heap; NewIn binds an Allocator instead.
type Value struct {
	kind  Kind
	alloc Allocator

	b   bool
	i   int64
	f   float64
	s   []byte
	arr []Value
	obj []Entry
}

// New returns a Null value using heap allocation.
func New() *Value {
	return &Value{}
}

// NewIn returns a Null value whose containers will be built from a.
// The allocator must outlive the value and everything cloned from it.
func NewIn(a Allocator) *Value {
	return &Value{alloc: a}
}

// Allocator returns the allocation context bound at construction, or
// nil for heap allocation.
func (v *Value) Allocator() Allocator {
	return v.alloc
}

func (v *Value) Kind() Kind     { return v.kind }
func (v *Value) IsNull() bool   { return v.kind == NullKind }
func (v *Value) IsBool() bool   { return v.kind == BoolKind }
func (v *Value) IsInt() bool    { return v.kind == IntKind }
func (v *Value) IsFloat() bool  { return v.kind == FloatKind }
func (v *Value) IsString() bool { return v.kind == StringKind }
func (v *Value) IsArray() bool  { return v.kind == ArrayKind }
func (v *Value) IsObject() bool { return v.kind == ObjectKind }

// clearPayload drops every payload arm. Kind is set by the caller.
func (v *Value) clearPayload() {
	v.b = false
	v.i = 0
	v.f = 0
	v.s = nil
	v.arr = nil
	v.obj = nil
}

// SetNull transitions the value to Null, discarding any prior payload.
func (v *Value) SetNull() {
	v.clearPayload()
	v.kind = NullKind
}

func (v *Value) SetBool(b bool) {
	v.clearPayload()
	v.kind = BoolKind
	v.b = b
}

func (v *Value) SetInt(i int64) {
	v.clearPayload()
	v.kind = IntKind
	v.i = i
}

func (v *Value) SetFloat(f float64) {
	v.clearPayload()
	v.kind = FloatKind
	v.f = f
}

// SetString copies s into the bound allocator's storage.
func (v *Value) SetString(s string) {
	v.clearPayload()
	v.kind = StringKind
	v.s = copyString(v.alloc, s)
}

// SetArray transitions to an empty array.
func (v *Value) SetArray() {
	v.clearPayload()
	v.kind = ArrayKind
	v.arr = allocValues(v.alloc, 0)
}

// SetObject transitions to an empty object.
func (v *Value) SetObject() {
	v.clearPayload()
	v.kind = ObjectKind
	v.obj = allocEntries(v.alloc, 0)
}

// AsBool is the exact accessor for Bool storage. It never converts.
func (v *Value) AsBool() (bool, error) {
	if v.kind != BoolKind {
		return false, kindErr(BoolKind, v.kind)
	}
	return v.b, nil
}

func (v *Value) AsInt() (int64, error) {
	if v.kind != IntKind {
		return 0, kindErr(IntKind, v.kind)
	}
	return v.i, nil
}

func (v *Value) AsFloat() (float64, error) {
	if v.kind != FloatKind {
		return 0, kindErr(FloatKind, v.kind)
	}
	return v.f, nil
}

func (v *Value) AsString() (string, error) {
	if v.kind != StringKind {
		return "", kindErr(StringKind, v.kind)
	}
	return string(v.s), nil
}

// AsArray returns a live handle onto the stored array. The handle stays
// valid until the value transitions to another kind.
func (v *Value) AsArray() (Array, error) {
	if v.kind != ArrayKind {
		return Array{}, kindErr(ArrayKind, v.kind)
	}
	return Array{v: v}, nil
}

// AsObject returns a live handle onto the stored object. The handle
// stays valid until the value transitions to another kind.
func (v *Value) AsObject() (Object, error) {
	if v.kind != ObjectKind {
		return Object{}, kindErr(ObjectKind, v.kind)
	}
	return Object{v: v}, nil
}

// Assign dispatches on the dynamic type of x: nil, bool, any builtin
// integer width (normalized to int64), float32/float64 (normalized to
// float64), string, []byte, or another Value (deep copy carrying the
// source's allocator). Anything else fails with ErrTypeMismatch and
// leaves the value unchanged.
func (v *Value) Assign(x any) error {
	switch t := x.(type) {
	case nil:
		v.SetNull()
	case bool:
		v.SetBool(t)
	case int:
		v.SetInt(int64(t))
	case int8:
		v.SetInt(int64(t))
	case int16:
		v.SetInt(int64(t))
	case int32:
		v.SetInt(int64(t))
	case int64:
		v.SetInt(t)
	case uint:
		v.SetInt(int64(t))
	case uint8:
		v.SetInt(int64(t))
	case uint16:
		v.SetInt(int64(t))
	case uint32:
		v.SetInt(int64(t))
	case uint64:
		v.SetInt(int64(t))
	case float32:
		v.SetFloat(float64(t))
	case float64:
		v.SetFloat(t)
	case string:
		v.SetString(t)
	case []byte:
		v.SetString(string(t))
	case *Value:
		t.CloneTo(v)
	case Value:
		t.CloneTo(v)
	default:
		return fmt.Errorf("cannot assign %T: %w", x, ErrTypeMismatch)
	}
	return nil
}

// MoveFrom transfers src's payload and allocator to v without a deep
// copy, and resets src to Null. src stays valid and keeps its allocator
// binding.
func (v *Value) MoveFrom(src *Value) {
	if v == src {
		return
	}
	*v = *src
	src.clearPayload()
	src.kind = NullKind
}

func kindErr(want, have Kind) error {
	return fmt.Errorf("have %s, want %s: %w", have, want, ErrTypeMismatch)
}
