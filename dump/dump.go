// Package dump renders cv value trees for humans: an indented,
// optionally colored diagnostic listing. The output is never parsed
// back; it exists for logs, debugging sessions, and test failures.
//
// Color is applied only when the destination is a terminal, and is
// suppressed by the NO_COLOR convention; WithColor forces it either
// way.
package dump

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nfrr/confval/go-confval/cv"

	"github.com/mattn/go-isatty"
)

type Options struct {
	color  *bool
	colors *Colors
	indent string
}

type Option func(*Options)

// WithColor forces color on or off, overriding terminal detection.
func WithColor(on bool) Option {
	return func(o *Options) { o.color = &on }
}

// WithColors substitutes a custom color table.
func WithColors(c *Colors) Option {
	return func(o *Options) { o.colors = c }
}

// WithIndent sets the per-level indentation, two spaces by default.
func WithIndent(indent string) Option {
	return func(o *Options) { o.indent = indent }
}

// Fprint writes the rendering of v to w, ending with a newline.
func Fprint(w io.Writer, v *cv.Value, opts ...Option) error {
	o := &Options{indent: "  "}
	for _, opt := range opts {
		opt(o)
	}
	useColor := wantColor(w)
	if o.color != nil {
		useColor = *o.color
	}
	p := &printer{w: w, indent: o.indent}
	if useColor {
		p.colors = o.colors
		if p.colors == nil {
			p.colors = NewColors()
		}
	}
	p.value(v, 0)
	p.write("\n")
	return p.err
}

// String renders v without color.
func String(v *cv.Value) string {
	buf := bytes.NewBuffer(nil)
	_ = Fprint(buf, v, WithColor(false))
	return strings.TrimSuffix(buf.String(), "\n")
}

func wantColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type printer struct {
	w      io.Writer
	colors *Colors
	indent string
	err    error
}

func (p *printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) color(k cv.Kind, a ColorAttr, s string) {
	if p.colors == nil {
		p.write(s)
		return
	}
	p.write(p.colors.Color(k, a, s))
}

func (p *printer) value(v *cv.Value, depth int) {
	switch v.Kind() {
	case cv.NullKind:
		p.color(cv.NullKind, ValueColor, "null")
	case cv.BoolKind:
		b, _ := v.AsBool()
		p.color(cv.BoolKind, ValueColor, strconv.FormatBool(b))
	case cv.IntKind:
		i, _ := v.AsInt()
		p.color(cv.IntKind, ValueColor, strconv.FormatInt(i, 10))
	case cv.FloatKind:
		f, _ := v.AsFloat()
		p.color(cv.FloatKind, ValueColor, formatFloat(f))
	case cv.StringKind:
		s, _ := v.AsString()
		p.color(cv.StringKind, ValueColor, strconv.Quote(s))
	case cv.ArrayKind:
		arr, _ := v.AsArray()
		p.array(arr, depth)
	case cv.ObjectKind:
		obj, _ := v.AsObject()
		p.object(obj, depth)
	}
}

func (p *printer) array(arr cv.Array, depth int) {
	if arr.Len() == 0 {
		p.color(cv.ArrayKind, SepColor, "[]")
		return
	}
	p.color(cv.ArrayKind, SepColor, "[")
	for i := 0; i < arr.Len(); i++ {
		p.write("\n")
		p.pad(depth + 1)
		elem, _ := arr.At(i)
		p.value(elem, depth+1)
	}
	p.write("\n")
	p.pad(depth)
	p.color(cv.ArrayKind, SepColor, "]")
}

func (p *printer) object(obj cv.Object, depth int) {
	if obj.Len() == 0 {
		p.color(cv.ObjectKind, SepColor, "{}")
		return
	}
	p.color(cv.ObjectKind, SepColor, "{")
	for i := 0; i < obj.Len(); i++ {
		e := obj.Entry(i)
		p.write("\n")
		p.pad(depth + 1)
		p.color(cv.ObjectKind, FieldColor, e.Key())
		p.color(cv.ObjectKind, SepColor, ": ")
		p.value(e.Value(), depth+1)
	}
	p.write("\n")
	p.pad(depth)
	p.color(cv.ObjectKind, SepColor, "}")
}

func (p *printer) pad(depth int) {
	for i := 0; i < depth; i++ {
		p.write(p.indent)
	}
}

// formatFloat keeps whole floats visually distinct from integers.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !strings.Contains(s, "Inf") && !strings.Contains(s, "NaN") {
		s += ".0"
	}
	return s
}
