package diff

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/nfrr/confval/go-confval/cv"
	"github.com/nfrr/confval/go-confval/debug"
	"github.com/nfrr/confval/go-confval/dump"
)

// Op is the kind of a single change.
type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (op Op) String() string {
	switch op {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Change is one difference between two trees. From is nil for an
// Insert, To is nil for a Delete. Both point into the compared trees,
// they are not copies.
type Change struct {
	Path string
	Op   Op
	From *cv.Value
	To   *cv.Value
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("+ %s: %s", c.Path, dump.String(c.To))
	case Delete:
		return fmt.Sprintf("- %s: %s", c.Path, dump.String(c.From))
	default:
		if bothMultiline(c.From, c.To) {
			from, _ := c.From.AsString()
			to, _ := c.To.AsString()
			return fmt.Sprintf("~ %s:\n%s", c.Path, Lines(from, to))
		}
		return fmt.Sprintf("~ %s: %s -> %s", c.Path, dump.String(c.From), dump.String(c.To))
	}
}

func bothMultiline(from, to *cv.Value) bool {
	if !from.IsString() || !to.IsString() {
		return false
	}
	f, _ := from.AsString()
	t, _ := to.AsString()
	return strings.Contains(f, "\n") && strings.Contains(t, "\n")
}

// Diff walks both trees and returns every difference, in tree order.
// A nil result means the trees are equal.
func Diff(from, to *cv.Value) []Change {
	d := &differ{dmp: diffpatch.New()}
	d.value("$", from, to)
	if debug.Diff() {
		debug.Logf("diff found %d changes\n", len(d.changes))
	}
	return d.changes
}

// Equal reports whether two trees hold the same values in the same
// entry order.
func Equal(from, to *cv.Value) bool {
	return len(Diff(from, to)) == 0
}

type differ struct {
	dmp     *diffpatch.DiffMatchPatch
	changes []Change
}

func (d *differ) emit(c Change) {
	d.changes = append(d.changes, c)
}

func (d *differ) value(path string, from, to *cv.Value) {
	if from.Kind() != to.Kind() {
		d.emit(Change{Path: path, Op: Replace, From: from, To: to})
		return
	}
	switch from.Kind() {
	case cv.NullKind:
	case cv.BoolKind:
		f, _ := from.AsBool()
		t, _ := to.AsBool()
		if f != t {
			d.emit(Change{Path: path, Op: Replace, From: from, To: to})
		}
	case cv.IntKind:
		f, _ := from.AsInt()
		t, _ := to.AsInt()
		if f != t {
			d.emit(Change{Path: path, Op: Replace, From: from, To: to})
		}
	case cv.FloatKind:
		f, _ := from.AsFloat()
		t, _ := to.AsFloat()
		if f != t {
			d.emit(Change{Path: path, Op: Replace, From: from, To: to})
		}
	case cv.StringKind:
		f, _ := from.AsString()
		t, _ := to.AsString()
		if f != t {
			d.emit(Change{Path: path, Op: Replace, From: from, To: to})
		}
	case cv.ArrayKind:
		d.array(path, from, to)
	case cv.ObjectKind:
		d.object(path, from, to)
	}
}

func (d *differ) array(path string, from, to *cv.Value) {
	fa, _ := from.AsArray()
	ta, _ := to.AsArray()
	n := min(fa.Len(), ta.Len())
	for i := 0; i < n; i++ {
		fv, _ := fa.At(i)
		tv, _ := ta.At(i)
		d.value(elemPath(path, i), fv, tv)
	}
	for i := n; i < fa.Len(); i++ {
		fv, _ := fa.At(i)
		d.emit(Change{Path: elemPath(path, i), Op: Delete, From: fv})
	}
	for i := n; i < ta.Len(); i++ {
		tv, _ := ta.At(i)
		d.emit(Change{Path: elemPath(path, i), Op: Insert, To: tv})
	}
}

// object aligns the two key sequences with a rune-level diff so that
// inserting or deleting an entry does not shift every following entry
// into a spurious change.
func (d *differ) object(path string, from, to *cv.Value) {
	keyMap := map[string]rune{}
	runeMap := map[rune]string{}
	fo, _ := from.AsObject()
	to2, _ := to.AsObject()
	fromRunes := keyRunes(keyMap, runeMap, fo)
	toRunes := keyRunes(keyMap, runeMap, to2)
	diffs := d.dmp.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		df := &diffs[i]
		switch df.Type {
		case diffpatch.DiffDelete:
			for range df.Text {
				e := fo.Entry(fi)
				d.emit(Change{Path: fieldPath(path, e.Key()), Op: Delete, From: e.Value()})
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range df.Text {
				d.value(fieldPath(path, runeMap[r]), fo.Entry(fi).Value(), to2.Entry(ti).Value())
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range df.Text {
				e := to2.Entry(ti)
				d.emit(Change{Path: fieldPath(path, e.Key()), Op: Insert, To: e.Value()})
				ti++
			}
		}
	}
}

func keyRunes(m map[string]rune, im map[rune]string, obj cv.Object) []rune {
	rs := make([]rune, obj.Len())
	for i := 0; i < obj.Len(); i++ {
		k := obj.Entry(i).Key()
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
			im[r] = k
		}
		rs[i] = r
	}
	return rs
}

func fieldPath(path, key string) string {
	return path + "." + key
}

func elemPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
