package gomap

import "github.com/nfrr/confval/go-confval/cv"

type Options struct {
	alloc cv.Allocator
}

type Option func(*Options)

// WithAllocator places the tree built by From in the given allocator.
func WithAllocator(a cv.Allocator) Option {
	return func(o *Options) {
		o.alloc = a
	}
}

func buildOptions(opts []Option) *Options {
	res := &Options{}
	for _, opt := range opts {
		opt(res)
	}
	return res
}
