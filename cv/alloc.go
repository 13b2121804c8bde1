package cv

// Allocator supplies backing storage for a Value's owned containers:
// string payload bytes, object keys, array element storage, and object
// entry storage. A Value propagates its Allocator to every container it
// creates, including auto-vivified children, so a whole tree lives in
// one region.
//
// All three methods return a slice with length 0 and capacity of at
// least the requested capacity. The Allocator must outlive every Value
// built from it; the core never frees what an Allocator hands out.
//
// A nil Allocator means ordinary heap allocation.
type Allocator interface {
	Values(capacity int) []Value
	Entries(capacity int) []Entry
	Bytes(capacity int) []byte
}

func allocValues(a Allocator, capacity int) []Value {
	if a == nil {
		return make([]Value, 0, capacity)
	}
	return a.Values(capacity)
}

func allocEntries(a Allocator, capacity int) []Entry {
	if a == nil {
		return make([]Entry, 0, capacity)
	}
	return a.Entries(capacity)
}

func allocBytes(a Allocator, capacity int) []byte {
	if a == nil {
		return make([]byte, 0, capacity)
	}
	return a.Bytes(capacity)
}

// copyString places a copy of s in the allocator's storage.
func copyString(a Allocator, s string) []byte {
	return append(allocBytes(a, len(s)), s...)
}

// appendValue appends through the allocator: when the slice is full, a
// larger one is requested and the contents copied over.
func appendValue(a Allocator, s []Value, v Value) []Value {
	if a == nil || len(s) < cap(s) {
		return append(s, v)
	}
	grown := allocValues(a, growCap(len(s)+1))
	grown = append(grown, s...)
	return append(grown, v)
}

func appendEntry(a Allocator, s []Entry, e Entry) []Entry {
	if a == nil || len(s) < cap(s) {
		return append(s, e)
	}
	grown := allocEntries(a, growCap(len(s)+1))
	grown = append(grown, s...)
	return append(grown, e)
}

func growCap(need int) int {
	c := need * 2
	if c < 4 {
		c = 4
	}
	return c
}
