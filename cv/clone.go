package cv

// Clone returns a deep copy of the value and its whole subtree. The
// copy shares the source's allocator handle, so clones of arena-bound
// values land in the same arena.
func (v *Value) Clone() *Value {
	dst := &Value{}
	return v.CloneTo(dst)
}

// CloneTo deep-copies v into dst, replacing dst's payload and allocator
// binding, and returns dst.
func (v *Value) CloneTo(dst *Value) *Value {
	if v == dst {
		return dst
	}
	dst.clearPayload()
	dst.kind = v.kind
	dst.alloc = v.alloc
	dst.b = v.b
	dst.i = v.i
	dst.f = v.f
	switch v.kind {
	case StringKind:
		dst.s = copyString(v.alloc, string(v.s))
	case ArrayKind:
		dst.arr = allocValues(v.alloc, len(v.arr))
		for i := range v.arr {
			dst.arr = append(dst.arr, Value{})
			v.arr[i].CloneTo(&dst.arr[i])
		}
	case ObjectKind:
		dst.obj = allocEntries(v.alloc, len(v.obj))
		for i := range v.obj {
			e := &v.obj[i]
			dst.obj = append(dst.obj, Entry{key: copyString(v.alloc, string(e.key))})
			e.val.CloneTo(&dst.obj[i].val)
		}
	}
	return dst
}
