package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-seq-utils/collections"
)

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// ─── Constructors & accessors ─────────────────────────────────────────────────

func TestNewCopiesInput(t *testing.T) {
	c := collections.New(1, 2, 3)
	assertSlice(t, c.All(), []int{1, 2, 3})
}

func TestFromCopiesInput(t *testing.T) {
	src := []string{"a", "b"}
	c := collections.From(src)
	src[0] = "mutated"
	assertSlice(t, c.All(), []string{"a", "b"})
}

func TestAllReturnsCopy(t *testing.T) {
	c := collections.New(1, 2, 3)
	out := c.All()
	out[0] = 99
	assertSlice(t, c.All(), []int{1, 2, 3})
}

func TestEmpty(t *testing.T) {
	c := collections.Empty[int]()
	if !c.IsEmpty() || c.Count() != 0 {
		t.Fatalf("Empty: IsEmpty=%v Count=%d", c.IsEmpty(), c.Count())
	}
}

func TestCount(t *testing.T) {
	if n := collections.New("a", "b", "c").Count(); n != 3 {
		t.Fatalf("Count = %d; want 3", n)
	}
}

func TestGet(t *testing.T) {
	c := collections.New(10, 20, 30)
	v, ok := c.Get(1)
	if !ok || v != 20 {
		t.Fatalf("Get(1) = %v, %v; want 20, true", v, ok)
	}
	if _, ok := c.Get(3); ok {
		t.Fatal("Get(3) should report out of range")
	}
	if _, ok := c.Get(-1); ok {
		t.Fatal("Get(-1) should report out of range")
	}
}

func TestString(t *testing.T) {
	if s := collections.New(1, 2, 3).String(); s != "[1,2,3]" {
		t.Fatalf("String = %q; want \"[1,2,3]\"", s)
	}
}

// ─── Transformation ───────────────────────────────────────────────────────────

func TestReverse(t *testing.T) {
	c := collections.New("a", "b", "c")
	r := c.Reverse()
	assertSlice(t, r.All(), []string{"c", "b", "a"})
	assertSlice(t, c.All(), []string{"a", "b", "c"})
}

func TestEachVisitsInOrder(t *testing.T) {
	var seen []int
	collections.New(5, 6, 7).Each(func(n, i int) { seen = append(seen, n) })
	assertSlice(t, seen, []int{5, 6, 7})
}

func TestTransform(t *testing.T) {
	c := collections.New(1, 2, 3)
	doubled := c.Transform(func(n int) int { return n * 2 })
	assertSlice(t, doubled.All(), []int{2, 4, 6})
	assertSlice(t, c.All(), []int{1, 2, 3})
}

func TestMap(t *testing.T) {
	lengths := collections.Map(collections.New("a", "bb", "ccc"),
		func(s string) int { return len(s) })
	assertSlice(t, lengths.All(), []int{1, 2, 3})
}

// ─── Joining ──────────────────────────────────────────────────────────────────

func TestImplode(t *testing.T) {
	got := collections.New(1, 2, 3).Implode(", ", func(n int) string {
		return string(rune('0' + n))
	})
	if got != "1, 2, 3" {
		t.Fatalf("Implode = %q; want \"1, 2, 3\"", got)
	}
}

func TestJoin(t *testing.T) {
	if got := collections.Join(collections.New("a", "b", "c"), "-"); got != "a-b-c" {
		t.Fatalf("Join = %q; want \"a-b-c\"", got)
	}
	if got := collections.Join(collections.Empty[string](), "-"); got != "" {
		t.Fatalf("Join of empty = %q; want \"\"", got)
	}
}
