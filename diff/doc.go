// Package diff computes structural differences between two config
// value trees.
//
// Object entries are aligned with a sequence diff over their keys, so
// an insertion in the middle of an object does not report every
// following entry as changed. Arrays are compared by index. Each
// difference is reported as a Change holding the path, the operation,
// and the values on either side.
package diff
