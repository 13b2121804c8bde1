package cv

import "fmt"

// Entry is one key/value pair of an object. The key bytes live in the
// owning value's allocator storage.
type Entry struct {
	key []byte
	val Value
}

func (e *Entry) Key() string {
	return string(e.key)
}

func (e *Entry) Value() *Value {
	return &e.val
}

// Object is a live handle onto a Value holding object storage. Objects
// are insertion-ordered sequences of key/value pairs with linear-scan
// lookup; they are not hash maps, and iteration order is part of the
// contract. The handle stays valid across insertions, but pointers
// obtained from it may be invalidated when the object grows.
type Object struct {
	v *Value
}

func (o Object) Len() int {
	return len(o.v.obj)
}

// Entry returns the i-th pair in insertion order. Like slice indexing,
// it panics when i is out of bounds.
func (o Object) Entry(i int) *Entry {
	return &o.v.obj[i]
}

func (o Object) Keys() []string {
	keys := make([]string, len(o.v.obj))
	for i := range o.v.obj {
		keys[i] = string(o.v.obj[i].key)
	}
	return keys
}

// Find scans for key and returns its value, or nil when absent.
func (o Object) Find(key string) *Value {
	if i := o.v.findEntry(key); i >= 0 {
		return &o.v.obj[i].val
	}
	return nil
}

// findEntry is the linear scan behind every keyed lookup. Objects
// preserve insertion order, so the first exact match wins.
func (v *Value) findEntry(key string) int {
	for i := range v.obj {
		if string(v.obj[i].key) == key {
			return i
		}
	}
	return -1
}

// EnsureObject transitions the value to an empty object unless it
// already is one, and returns the object handle.
func (v *Value) EnsureObject() Object {
	if v.kind != ObjectKind {
		v.SetObject()
	}
	return Object{v: v}
}

// Contains reports whether the value is an object with an entry for
// key. It is false on any non-object value.
func (v *Value) Contains(key string) bool {
	if v.kind != ObjectKind {
		return false
	}
	return v.findEntry(key) >= 0
}

// Find returns the value stored under key, or nil when the key is
// absent or the value is not an object. nil is the only not-found
// sentinel; no shared empty object is involved.
func (v *Value) Find(key string) *Value {
	if v.kind != ObjectKind {
		return nil
	}
	return Object{v: v}.Find(key)
}

// Index is map-like access with auto-vivification: a non-object value
// is first converted to an empty object, and an absent key is inserted
// at the end with a Null value built from the bound allocator. It never
// fails.
//
// The returned pointer is valid until the object grows again or the
// value transitions kind.
func (v *Value) Index(key string) *Value {
	v.EnsureObject()
	if i := v.findEntry(key); i >= 0 {
		return &v.obj[i].val
	}
	v.obj = appendEntry(v.alloc, v.obj, Entry{
		key: copyString(v.alloc, key),
		val: Value{alloc: v.alloc},
	})
	return &v.obj[len(v.obj)-1].val
}

// At is bounds-checked object access: it fails with ErrTypeMismatch on
// a non-object value and with ErrKeyNotFound on an absent key. It never
// auto-vivifies.
func (v *Value) At(key string) (*Value, error) {
	if v.kind != ObjectKind {
		return nil, fmt.Errorf("at %q: value is %s, not %s: %w",
			key, v.kind, ObjectKind, ErrTypeMismatch)
	}
	if i := v.findEntry(key); i >= 0 {
		return &v.obj[i].val, nil
	}
	return nil, fmt.Errorf("at %q: %w", key, ErrKeyNotFound)
}
