package dump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nfrr/confval/go-confval/cv"

	"github.com/fatih/color"
)

func TestStringScalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"int", 42, "42"},
		{"float", 3.5, "3.5"},
		{"whole float", 4.0, "4.0"},
		{"bool", true, "true"},
		{"string", "hi", `"hi"`},
		{"nil", nil, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := cv.New()
			if err := v.Assign(tt.in); err != nil {
				t.Fatal(err)
			}
			if got := String(v); got != tt.want {
				t.Errorf("String = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringTree(t *testing.T) {
	v := cv.New()
	v.Index("host").Assign("localhost")
	v.Index("port").Assign(8080)
	tags := v.Index("tags")
	tags.SetArray()
	arr, _ := tags.AsArray()
	arr.Append().Assign("a")
	arr.Append().Assign("b")
	v.Index("empty").SetObject()

	want := strings.Join([]string{
		"{",
		`  host: "localhost"`,
		"  port: 8080",
		"  tags: [",
		`    "a"`,
		`    "b"`,
		"  ]",
		"  empty: {}",
		"}",
	}, "\n")
	if got := String(v); got != want {
		t.Errorf("String =\n%s\nwant\n%s", got, want)
	}
}

func TestFprintNoColorOnBuffer(t *testing.T) {
	v := cv.New()
	v.Index("k").Assign(1)
	buf := bytes.NewBuffer(nil)
	if err := Fprint(buf, v); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("non-terminal writer got ANSI escapes: %q", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Errorf("Fprint output missing trailing newline")
	}
}

func TestFprintForcedColor(t *testing.T) {
	// The color library suppresses escapes globally off-terminal.
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	v := cv.New()
	v.Assign("green")
	buf := bytes.NewBuffer(nil)
	if err := Fprint(buf, v, WithColor(true)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("forced color produced no ANSI escapes: %q", buf.String())
	}
}
