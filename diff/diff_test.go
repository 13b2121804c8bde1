package diff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nfrr/confval/go-confval/cv"
	"github.com/nfrr/confval/go-confval/gomap"
)

func tree(t *testing.T, x any) *cv.Value {
	t.Helper()
	v, err := gomap.From(x)
	if err != nil {
		t.Fatalf("From: %v", err)
	}
	return v
}

type changeKey struct {
	Path string
	Op   Op
}

func keysOf(changes []Change) []changeKey {
	if len(changes) == 0 {
		return nil
	}
	res := make([]changeKey, len(changes))
	for i, c := range changes {
		res[i] = changeKey{Path: c.Path, Op: c.Op}
	}
	return res
}

func TestDiffScalars(t *testing.T) {
	tests := []struct {
		name     string
		from, to any
		want     []changeKey
	}{
		{"equal-int", 1, 1, nil},
		{"equal-string", "x", "x", nil},
		{"replace-int", 1, 2, []changeKey{{"$", Replace}}},
		{"kind-change", 1, "1", []changeKey{{"$", Replace}}},
		{"null-to-bool", nil, true, []changeKey{{"$", Replace}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Diff(tree(t, tc.from), tree(t, tc.to))
			if d := cmp.Diff(tc.want, keysOf(got)); d != "" {
				t.Errorf("changes (-want +got):\n%s", d)
			}
		})
	}
}

func TestDiffArrays(t *testing.T) {
	tests := []struct {
		name     string
		from, to any
		want     []changeKey
	}{
		{"append", []int{1}, []int{1, 2}, []changeKey{{"$[1]", Insert}}},
		{"truncate", []int{1, 2, 3}, []int{1}, []changeKey{{"$[1]", Delete}, {"$[2]", Delete}}},
		{"replace-elem", []int{1, 2}, []int{1, 9}, []changeKey{{"$[1]", Replace}}},
		{
			"nested",
			[]any{map[string]int{"a": 1}},
			[]any{map[string]int{"a": 2}},
			[]changeKey{{"$[0].a", Replace}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Diff(tree(t, tc.from), tree(t, tc.to))
			if d := cmp.Diff(tc.want, keysOf(got)); d != "" {
				t.Errorf("changes (-want +got):\n%s", d)
			}
		})
	}
}

func buildObject(t *testing.T, pairs ...any) *cv.Value {
	t.Helper()
	v := cv.New()
	v.SetObject()
	for i := 0; i < len(pairs); i += 2 {
		if err := v.Index(pairs[i].(string)).Assign(pairs[i+1]); err != nil {
			t.Fatalf("Assign: %v", err)
		}
	}
	return v
}

func TestDiffObjectKeyAlignment(t *testing.T) {
	from := buildObject(t, "a", 1, "b", 2, "c", 3)
	to := buildObject(t, "a", 1, "x", 9, "b", 2, "c", 3)
	got := Diff(from, to)
	want := []changeKey{{"$.x", Insert}}
	if d := cmp.Diff(want, keysOf(got)); d != "" {
		t.Errorf("insertion shifted following entries (-want +got):\n%s", d)
	}
}

func TestDiffObjectDeleteAndReplace(t *testing.T) {
	from := buildObject(t, "host", "a", "port", 80, "old", true)
	to := buildObject(t, "host", "a", "port", 443)
	got := Diff(from, to)
	want := []changeKey{{"$.port", Replace}, {"$.old", Delete}}
	if d := cmp.Diff(want, keysOf(got)); d != "" {
		t.Errorf("changes (-want +got):\n%s", d)
	}
}

func TestDiffNestedPath(t *testing.T) {
	from := tree(t, map[string]any{"limits": map[string]any{"cpu": 0.5, "mem": "512Mi"}})
	to := tree(t, map[string]any{"limits": map[string]any{"cpu": 2.0, "mem": "512Mi"}})
	got := Diff(from, to)
	if len(got) != 1 || got[0].Path != "$.limits.cpu" {
		t.Fatalf("got %v, want one change at $.limits.cpu", keysOf(got))
	}
	f, _ := got[0].From.AsFloat()
	if f != 0.5 {
		t.Errorf("From = %v, want 0.5", f)
	}
}

func TestEqual(t *testing.T) {
	a := tree(t, map[string]any{"x": []int{1, 2}})
	b := tree(t, map[string]any{"x": []int{1, 2}})
	if !Equal(a, b) {
		t.Errorf("equal trees reported different")
	}
	c := tree(t, map[string]any{"x": []int{2, 1}})
	if Equal(a, c) {
		t.Errorf("different trees reported equal")
	}
}

func TestChangeString(t *testing.T) {
	from := buildObject(t, "port", 80, "old", true)
	to := buildObject(t, "port", 443)
	changes := Diff(from, to)
	if len(changes) != 2 {
		t.Fatalf("got %d changes, want 2", len(changes))
	}
	if got := changes[0].String(); got != "~ $.port: 80 -> 443" {
		t.Errorf("replace rendering = %q", got)
	}
	if got := changes[1].String(); got != "- $.old: true" {
		t.Errorf("delete rendering = %q", got)
	}
}

func TestChangeStringMultiline(t *testing.T) {
	from := cv.New()
	from.SetString("a\nb\nc\n")
	to := cv.New()
	to.SetString("a\nB\nc\n")
	changes := Diff(from, to)
	if len(changes) != 1 {
		t.Fatalf("got %d changes, want 1", len(changes))
	}
	s := changes[0].String()
	for _, want := range []string{"- b", "+ B", "  c"} {
		if !strings.Contains(s, want) {
			t.Errorf("rendering %q missing %q", s, want)
		}
	}
}

func TestLines(t *testing.T) {
	got := Lines("one\ntwo\nthree\n", "one\n2\nthree\n")
	want := "  one\n- two\n+ 2\n  three"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
