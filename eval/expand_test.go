package eval

import (
	"testing"

	"github.com/nfrr/confval/go-confval/gomap"
)

type expandTest struct {
	in, out string
}

func TestExpand(t *testing.T) {
	tests := []expandTest{
		{
			in:  "abc",
			out: "abc",
		},
		{
			in:  "$[",
			out: "$[",
		},
		{
			in:  "$[x]",
			out: "X",
		},
		{
			in:  " $[x]",
			out: " X",
		},
		{
			in:  "$[x",
			out: "$[x",
		},
		{
			in:  "some $[stuff] $[here]",
			out: "some STUFF HERE",
		},
		{
			in:  "some $[stuff] $[here] trailing",
			out: "some STUFF HERE trailing",
		},
		{
			in:  "some $[ stuff ] $[here] trailing",
			out: "some STUFF HERE trailing",
		},
		{
			in:  "$abc",
			out: "$abc",
		},
		{
			in:  "n=$[port + 1]",
			out: "n=8081",
		},
		{
			in:  `literal $[ '\]' ] bracket`,
			out: "literal ] bracket",
		},
	}
	env := Env{
		"x":     "X",
		"stuff": "STUFF",
		"here":  "HERE",
		"port":  8080,
	}
	for i := range tests {
		tc := &tests[i]
		got, err := Expand(tc.in, env)
		if err != nil {
			t.Error(err)
			continue
		}
		if got == tc.out {
			continue
		}
		t.Errorf("Expand(%q) got %q want %q", tc.in, got, tc.out)
	}
}

func TestExpandEvalError(t *testing.T) {
	if _, err := Expand("$[nope +]", Env{}); err == nil {
		t.Fatal("expected an error")
	}
}

func TestExpandTree(t *testing.T) {
	root, err := gomap.From(map[string]any{
		"url":  "http://$[host]:$[port]",
		"tags": []string{"$[x]", "plain"},
	})
	if err != nil {
		t.Fatalf("From: %v", err)
	}
	env := Env{"host": "example.com", "port": 8080, "x": "X"}
	if err := ExpandTree(root, env); err != nil {
		t.Fatalf("ExpandTree: %v", err)
	}
	want := map[string]any{
		"url":  "http://example.com:8080",
		"tags": []any{"X", "plain"},
	}
	got := gomap.ToAny(root)
	if u := got.(map[string]any)["url"]; u != want["url"] {
		t.Errorf("url = %q, want %q", u, want["url"])
	}
	if tag := got.(map[string]any)["tags"].([]any)[0]; tag != "X" {
		t.Errorf("tags[0] = %q, want %q", tag, "X")
	}
}
