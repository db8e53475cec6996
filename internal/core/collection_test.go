package core

import (
	"sort"
	"testing"
)

func TestCollectionPushAt(t *testing.T) {
	c := NewCollection[Vec](0)
	c.Push(V(1, 1))
	c.Push(V(2, 2))

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", c.Len())
	}

	c.At(1).X = 9
	if got := *c.At(1); got != V(9, 2) {
		t.Errorf("At(1) after mutation = %v, expected (9,2)", got)
	}
}

func TestCollectionRemoveKeepsOthers(t *testing.T) {
	c := NewCollection[int](4)
	for i := 0; i < 5; i++ {
		c.Push(i)
	}

	c.Remove(1)
	c.Remove(0)

	got := c.Items()
	sort.Ints(got)
	want := []int{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("Items() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Items() = %v, expected %v", got, want)
		}
	}
}

func TestCollectionReverseIterationRemovesAll(t *testing.T) {
	c := NewCollection[int](0)
	for i := 0; i < 10; i++ {
		c.Push(i)
	}

	// Remove every even element while iterating high to low.
	visited := 0
	for i := c.Len() - 1; i >= 0; i-- {
		visited++
		if *c.At(i)%2 == 0 {
			c.Remove(i)
		}
	}

	if visited != 10 {
		t.Errorf("visited %d elements, expected 10", visited)
	}
	for _, v := range c.Items() {
		if v%2 == 0 {
			t.Errorf("even element %d survived", v)
		}
	}
	if c.Len() != 5 {
		t.Errorf("Len() = %d, expected 5", c.Len())
	}
}

func TestCollectionRemoveLast(t *testing.T) {
	c := NewCollection[int](0)
	c.Push(7)
	c.Remove(0)
	if c.Len() != 0 {
		t.Errorf("Len() = %d after removing only element", c.Len())
	}
}

func TestCollectionClear(t *testing.T) {
	c := NewCollection[int](0)
	c.Push(1)
	c.Push(2)
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear", c.Len())
	}
}
