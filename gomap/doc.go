// Package gomap bridges native Go values and cv value trees.
//
// From builds a cv tree from scalars, strings, []byte, slices, arrays,
// string-keyed maps (keys sorted for a deterministic entry order), and
// structs; To walks a tree back into a pointer target. Struct fields
// are renamed, skipped, or made optional with the `cv` tag:
//
//	type Server struct {
//	    Host string `cv:"host"`
//	    Port int    `cv:"port,omitempty"`
//	    Note string `cv:"-"`
//	}
//
// Scalar targets of To run through the cv coercion rules, so numeric
// widths are range-checked and string-encoded numbers land in numeric
// fields.
//
// From with WithAllocator places the whole resulting tree in a
// caller-owned allocator such as an arena.Arena.
package gomap
