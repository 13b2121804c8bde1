// Package debug gates diagnostic tracing behind environment variables,
// read once at init. Setting CONFVAL_DEBUG_EVAL, CONFVAL_DEBUG_DIFF, or
// CONFVAL_DEBUG_GOMAP to a truthy value turns on stderr tracing in the
// corresponding package.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Eval  bool
	Diff  bool
	Gomap bool
}

var d *debug

func init() {
	d = &debug{}
	d.Eval = boolEnv("CONFVAL_DEBUG_EVAL")
	d.Diff = boolEnv("CONFVAL_DEBUG_DIFF")
	d.Gomap = boolEnv("CONFVAL_DEBUG_GOMAP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Eval() bool {
	return d.Eval
}
func Diff() bool {
	return d.Diff
}
func Gomap() bool {
	return d.Gomap
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
