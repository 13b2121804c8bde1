// Package eval runs expressions against config value trees.
//
// A tree is projected to an expression environment with EnvOf, and
// Eval compiles and runs an expr-lang expression in that environment,
// returning the result as a new tree. Expand interpolates $[expr]
// references inside plain strings.
//
// # Related Packages
//
//   - github.com/nfrr/confval/go-confval/cv - Value trees
//   - github.com/nfrr/confval/go-confval/gomap - Go value bridging
package eval
