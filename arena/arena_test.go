package arena

import (
	"fmt"
	"testing"

	"github.com/nfrr/confval/go-confval/cv"
)

func TestArenaBackedTree(t *testing.T) {
	a := New()
	root := a.NewValue()

	root.Index("host").Assign("localhost")
	root.Index("port").Assign(8080)
	nested := root.Index("limits")
	nested.Index("max").Assign(100)

	if got, err := root.Index("host").AsString(); err != nil || got != "localhost" {
		t.Errorf("host = %q, %v", got, err)
	}
	if got, err := cv.Get[int](root.Index("port")); err != nil || got != 8080 {
		t.Errorf("port = %d, %v", got, err)
	}
	if got, err := cv.Get[int](root.Index("limits").Index("max")); err != nil || got != 100 {
		t.Errorf("limits.max = %d, %v", got, err)
	}

	st := a.Stats()
	if st.Entries == 0 || st.Bytes == 0 {
		t.Errorf("arena unused: %+v", st)
	}
}

func TestArenaMatchesHeapBehavior(t *testing.T) {
	build := func(v *cv.Value) {
		v.Index("name").Assign("svc")
		ports := v.Index("ports")
		ports.SetArray()
		arr, _ := ports.AsArray()
		for i := 0; i < 20; i++ {
			arr.Append().Assign(8000 + i)
		}
	}

	heap := cv.New()
	build(heap)
	pooled := New().NewValue()
	build(pooled)

	ha, _ := heap.Index("ports").AsArray()
	pa, _ := pooled.Index("ports").AsArray()
	if ha.Len() != pa.Len() {
		t.Fatalf("len %d != %d", ha.Len(), pa.Len())
	}
	for i := 0; i < ha.Len(); i++ {
		he, _ := ha.At(i)
		pe, _ := pa.At(i)
		hn, _ := he.AsInt()
		pn, _ := pe.AsInt()
		if hn != pn {
			t.Errorf("ports[%d]: heap %d, arena %d", i, hn, pn)
		}
	}
}

func TestArenaGrowth(t *testing.T) {
	// Tiny chunks force repeated chunk turnover under append pressure.
	a := NewSize(4)
	root := a.NewValue()
	for i := 0; i < 100; i++ {
		root.Index(fmt.Sprintf("key-%02d", i)).Assign(i)
	}
	obj, err := root.AsObject()
	if err != nil {
		t.Fatal(err)
	}
	if obj.Len() != 100 {
		t.Fatalf("len = %d, want 100", obj.Len())
	}
	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("key-%02d", i)
		got, err := root.At(key)
		if err != nil {
			t.Fatalf("At(%s): %v", key, err)
		}
		if n, _ := got.AsInt(); n != int64(i) {
			t.Errorf("%s = %d, want %d", key, n, i)
		}
	}
	if st := a.Stats(); st.Chunks < 2 {
		t.Errorf("expected multiple chunks, got %+v", st)
	}
}

func TestCloneStaysInArena(t *testing.T) {
	a := New()
	root := a.NewValue()
	root.Index("k").Assign("v")

	before := a.Stats()
	clone := root.Clone()
	after := a.Stats()

	if clone.Allocator() != cv.Allocator(a) {
		t.Errorf("clone lost the arena binding")
	}
	if after.Bytes <= before.Bytes {
		t.Errorf("clone did not allocate from the arena: %+v -> %+v", before, after)
	}
	if got, err := clone.Index("k").AsString(); err != nil || got != "v" {
		t.Errorf("clone[k] = %q, %v", got, err)
	}
}
