// Package arena provides a region allocator for cv value trees.
//
// An Arena implements cv.Allocator with chunked slabs, one per element
// type. Allocation is a bump of the current chunk; nothing is freed
// individually, and dropping the Arena releases every tree built from
// it at once. Arenas are not safe for concurrent use and must outlive
// all Values bound to them.
//
//	a := arena.New()
//	root := cv.NewIn(a)
//	root.Index("host").Assign("localhost")
package arena

import "github.com/nfrr/confval/go-confval/cv"

// DefaultChunkSize is the number of elements carved per slab chunk.
const DefaultChunkSize = 1024

// Arena allocates cv container storage from chunked slabs.
type Arena struct {
	chunkSize int
	values    slab[cv.Value]
	entries   slab[cv.Entry]
	bytes     slab[byte]
}

// New returns an Arena with DefaultChunkSize.
func New() *Arena {
	return NewSize(DefaultChunkSize)
}

// NewSize returns an Arena carving chunks of the given element count.
// Sizes below 1 fall back to DefaultChunkSize.
func NewSize(chunkSize int) *Arena {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	return &Arena{chunkSize: chunkSize}
}

// NewValue returns a Null value bound to the arena.
func (a *Arena) NewValue() *cv.Value {
	return cv.NewIn(a)
}

func (a *Arena) Values(capacity int) []cv.Value {
	return a.values.take(a.chunkSize, capacity)
}

func (a *Arena) Entries(capacity int) []cv.Entry {
	return a.entries.take(a.chunkSize, capacity)
}

func (a *Arena) Bytes(capacity int) []byte {
	return a.bytes.take(a.chunkSize, capacity)
}

// Stats reports how many elements of each type the arena has handed
// out, and how many chunks back them.
type Stats struct {
	Values  int
	Entries int
	Bytes   int
	Chunks  int
}

func (a *Arena) Stats() Stats {
	return Stats{
		Values:  a.values.used,
		Entries: a.entries.used,
		Bytes:   a.bytes.used,
		Chunks:  a.values.chunks + a.entries.chunks + a.bytes.chunks,
	}
}

// slab bump-allocates fixed-type element runs. The tail of the newest
// chunk is the free space; requests that do not fit start a new chunk,
// stranding the remainder of the old one.
type slab[T any] struct {
	free   []T
	chunks int
	used   int
}

func (s *slab[T]) take(chunkSize, capacity int) []T {
	if capacity < 0 {
		capacity = 0
	}
	if capacity > len(s.free) {
		n := chunkSize
		if capacity > n {
			n = capacity
		}
		s.free = make([]T, n)
		s.chunks++
	}
	out := s.free[0:0:capacity]
	s.free = s.free[capacity:]
	s.used += capacity
	return out
}
