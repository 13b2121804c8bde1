package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/nfrr/confval/go-confval/cv"
	"github.com/nfrr/confval/go-confval/debug"
	"github.com/nfrr/confval/go-confval/gomap"
)

// Env is the variable environment an expression runs in.
type Env map[string]any

// EnvOf projects an object tree to an environment whose variables are
// the object's top level keys.
func EnvOf(root *cv.Value) (Env, error) {
	if root == nil {
		return Env{}, nil
	}
	obj, err := root.AsObject()
	if err != nil {
		return nil, fmt.Errorf("environment root: %w", err)
	}
	env := make(Env, obj.Len())
	for i := 0; i < obj.Len(); i++ {
		e := obj.Entry(i)
		env[e.Key()] = gomap.ToAny(e.Value())
	}
	return env, nil
}

// Eval compiles and runs src against the root tree and returns the
// result as a fresh tree.
func Eval(src string, root *cv.Value) (*cv.Value, error) {
	env, err := EnvOf(root)
	if err != nil {
		return nil, err
	}
	x, err := run(src, env)
	if err != nil {
		return nil, err
	}
	res, err := gomap.From(x)
	if err != nil {
		return nil, fmt.Errorf("result of %q: %w", src, err)
	}
	return res, nil
}

// EvalBool runs src and coerces the result to a bool, so numeric and
// string results follow the usual coercion rules.
func EvalBool(src string, root *cv.Value) (bool, error) {
	res, err := Eval(src, root)
	if err != nil {
		return false, err
	}
	return cv.Coerce[bool](res)
}

func run(src string, env Env) (any, error) {
	program, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	x, err := vm.Run(program, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", src, x)
	}
	return x, nil
}
