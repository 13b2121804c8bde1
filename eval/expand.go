package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nfrr/confval/go-confval/cv"
	"github.com/nfrr/confval/go-confval/dump"
	"github.com/nfrr/confval/go-confval/gomap"
)

// Expand interpolates $[expr] references in v, evaluating each
// expression against env. Inside the brackets a backslash escapes the
// next character, so \] produces a literal ]. Text without a complete
// $[...] form passes through unchanged.
func Expand(v string, env Env) (string, error) {
	if len(v) < 3 {
		return v, nil
	}
	// $[x] with backslash escaping: \] -> ], \\ -> \
	exprStart := -1 // position of the $ that starts the expression
	i := 0
	n := len(v)
	var outBuf []byte // accumulates the final output
	var keyBuf []byte // accumulates the current expression content

	for i < n-1 {
		c, next := v[i], v[i+1]
		i++
		switch c {
		case '$':
			if next == '[' && exprStart == -1 {
				exprStart = i - 1
				keyBuf = keyBuf[:0]
				i++
				continue
			}
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		case '\\':
			if exprStart != -1 {
				keyBuf = append(keyBuf, next)
				i++
				continue
			}
			outBuf = append(outBuf, c)
		case ']':
			if exprStart != -1 {
				s, err := evalKey(keyBuf, env)
				if err != nil {
					return "", err
				}
				outBuf = append(outBuf, s...)
				exprStart = -1
				continue
			}
			outBuf = append(outBuf, c)
		default:
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		}
	}

	if exprStart == -1 {
		if i < n {
			outBuf = append(outBuf, v[n-1])
		}
		return string(outBuf), nil
	}
	// Still inside an expression. If the last char does not close it,
	// emit the whole thing literally.
	if i >= n || v[n-1] != ']' {
		outBuf = append(outBuf, v[exprStart:n]...)
		return string(outBuf), nil
	}
	s, err := evalKey(keyBuf, env)
	if err != nil {
		return "", err
	}
	outBuf = append(outBuf, s...)
	return string(outBuf), nil
}

func evalKey(keyBuf []byte, env Env) (string, error) {
	key := strings.TrimSpace(string(keyBuf))
	x, err := run(key, env)
	if err != nil {
		return "", err
	}
	s, err := anyToString(x)
	if err != nil {
		return "", fmt.Errorf("could not render result of %q: %w", key, err)
	}
	return s, nil
}

func anyToString(x any) (string, error) {
	switch t := x.(type) {
	case nil:
		return "null", nil
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), nil
	default:
		v, err := gomap.From(x)
		if err != nil {
			return "", err
		}
		return dump.String(v), nil
	}
}

// ExpandTree rewrites every string leaf of the tree in place,
// interpolating $[expr] references against env.
func ExpandTree(v *cv.Value, env Env) error {
	switch v.Kind() {
	case cv.StringKind:
		s, _ := v.AsString()
		res, err := Expand(s, env)
		if err != nil {
			return err
		}
		if res != s {
			v.SetString(res)
		}
	case cv.ArrayKind:
		arr, _ := v.AsArray()
		for i := 0; i < arr.Len(); i++ {
			elem, _ := arr.At(i)
			if err := ExpandTree(elem, env); err != nil {
				return err
			}
		}
	case cv.ObjectKind:
		obj, _ := v.AsObject()
		for i := 0; i < obj.Len(); i++ {
			if err := ExpandTree(obj.Entry(i).Value(), env); err != nil {
				return err
			}
		}
	}
	return nil
}
