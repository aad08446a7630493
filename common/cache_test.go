package common

import "testing"

func TestCacheEmitsOncePerMutation(t *testing.T) {
	c := NewCache(42)

	v, ok := c.Cache()
	if !ok || v != 42 {
		t.Fatalf("first Cache() = (%v, %v), expected (42, true)", v, ok)
	}
	for i := 0; i < 3; i++ {
		if _, ok := c.Cache(); ok {
			t.Fatalf("Cache() call %d after emission returned a value", i+2)
		}
	}

	*c.Get() = 7
	v, ok = c.Cache()
	if !ok || v != 7 {
		t.Fatalf("Cache() after Get = (%v, %v), expected (7, true)", v, ok)
	}
}

func TestCacheGetWithoutMutationStillEmits(t *testing.T) {
	c := NewCache("wall")
	c.Cache()

	_ = c.Get()
	if v, ok := c.Cache(); !ok || v != "wall" {
		t.Errorf("Cache() after untouched Get = (%q, %v), expected (\"wall\", true)", v, ok)
	}
}

func TestCachePeekKeepsState(t *testing.T) {
	c := NewCache(1)
	if c.Peek() != 1 {
		t.Fatal("Peek() returned the wrong value")
	}
	if _, ok := c.Cache(); !ok {
		t.Fatal("Peek() must not mark the value as emitted")
	}
	if c.Peek() != 1 {
		t.Fatal("Peek() returned the wrong value after emission")
	}
	if _, ok := c.Cache(); ok {
		t.Fatal("Peek() must not mark the value as dirty")
	}
}
