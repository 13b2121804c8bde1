package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nfrr/confval/go-confval/cv"
	"github.com/nfrr/confval/go-confval/gomap"
)

func testRoot(t *testing.T) *cv.Value {
	t.Helper()
	root, err := gomap.From(map[string]any{
		"replicas": 3,
		"name":     "api",
		"limits":   map[string]any{"cpu": 0.5, "mem": "512Mi"},
		"ports":    []int{80, 443},
	})
	if err != nil {
		t.Fatalf("building root: %v", err)
	}
	return root
}

func TestEval(t *testing.T) {
	root := testRoot(t)
	tests := []struct {
		src  string
		want any
	}{
		{"replicas * 2", int64(6)},
		{"name + '-0'", "api-0"},
		{"limits.cpu * 4", 2.0},
		{"ports[1]", int64(443)},
		{"len(ports)", int64(2)},
		{"map(ports, # + 1)", []any{int64(81), int64(444)}},
		{"replicas > 1 ? 'ha' : 'single'", "ha"},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			res, err := Eval(tc.src, root)
			if err != nil {
				t.Fatalf("Eval: %v", err)
			}
			if d := cmp.Diff(tc.want, gomap.ToAny(res)); d != "" {
				t.Errorf("result (-want +got):\n%s", d)
			}
		})
	}
}

func TestEvalCompileError(t *testing.T) {
	if _, err := Eval("replicas +", testRoot(t)); err == nil {
		t.Fatal("expected a compile error")
	}
}

func TestEvalBool(t *testing.T) {
	root := testRoot(t)
	tests := []struct {
		src  string
		want bool
	}{
		{"replicas > 1", true},
		{"name == 'web'", false},
		{"replicas - 2", true},
		{"'true'", true},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			got, err := EvalBool(tc.src, root)
			if err != nil {
				t.Fatalf("EvalBool: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEnvOfRejectsScalars(t *testing.T) {
	v := cv.New()
	v.SetInt(1)
	if _, err := EnvOf(v); err == nil {
		t.Fatal("expected an error for a scalar root")
	}
}
