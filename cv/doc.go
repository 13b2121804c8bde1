// Package cv provides the dynamically typed configuration value at the
// center of this module.
//
// # Overview
//
// A Value is a recursive tagged union over seven kinds: null, bool,
// 64-bit signed integer, 64-bit float, string, array, and object.
// Objects are insertion-ordered sequences of key/value pairs with
// linear-scan lookup, not hash maps; iteration order is observable and
// part of the contract. Children are exclusively owned by their parent,
// so every Value is the root of a tree.
//
// # Lifecycle
//
// A Value is born Null. Every Set* call and Assign is an atomic kind
// transition that discards the prior payload; container kinds rebuild
// their storage from the bound Allocator. Clone deep-copies a subtree,
// MoveFrom transfers one without copying and leaves the source Null.
//
// # Allocation
//
// The Allocator bound at construction (NewIn) is propagated to every
// container the value creates internally, including auto-vivified
// children, so a whole document can live in a caller-owned arena and be
// released in one drop. A nil Allocator means plain heap allocation.
// The core never manages allocator lifetime: the owner must keep it
// alive at least as long as every Value built from it.
//
// # Access
//
// Three access families share one conversion engine (package convert):
//
//   - exact: Kind, Is*, As*. No conversion, ErrTypeMismatch on any
//     kind mismatch. AsArray and AsObject return live handles.
//   - converting: Get, GetTo. Numeric conversion from Int, Float, or
//     Bool storage, failing with the convert taxonomy.
//   - coercing: Coerce. The converting path extended to parse numerics
//     out of String storage.
//
// All of these return (value, error) and never modify the receiver;
// MustGet and MustCoerce are thin panicking unwraps for callers that
// treat failure as a bug.
//
// # Navigation
//
//	root := cv.New()
//	root.Index("server").Index("port").Assign(8080)
//	port, err := cv.Get[int](root.Index("server").Index("port"))
//
// Index auto-vivifies: a non-object value becomes an empty object and
// missing keys are inserted with a Null placeholder. At never
// vivifies and distinguishes a missing key (ErrKeyNotFound) from a
// non-object receiver (ErrTypeMismatch). Find returns nil for
// not-found.
//
// # Thread safety
//
// Values are not safe for concurrent mutation. Synchronize externally
// or Clone per goroutine.
package cv
