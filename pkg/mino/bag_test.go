package mino

import (
	"math/rand"
	"testing"
)

func TestBag(t *testing.T) {
	b := NewSeededBag(0)

	taken := make(map[Kind]int)
	for i := 1; i < 4; i++ {
		for j := 0; j < len(AllKinds); j++ {
			taken[b.Take()]++
		}

		if len(taken) != len(AllKinds) {
			t.Errorf("kinds taken do not match kinds placed in bag - taken: %v", taken)
		}

		for _, k := range AllKinds {
			if taken[k] != i {
				t.Fatalf("kind %s taken %d times after %d bags, expected %d - taken: %v", k, taken[k], i, i, taken)
			}
		}
	}
}

func TestBagRefillsOnlyWhenEmpty(t *testing.T) {
	b := NewSeededBag(42)

	if b.Len() != 0 {
		t.Fatalf("expected new bag to be empty, got %d kinds", b.Len())
	}

	b.Take()
	for want := len(AllKinds) - 1; want >= 0; want-- {
		if b.Len() != want {
			t.Fatalf("expected %d kinds left in bag, got %d", want, b.Len())
		}

		seen := make(map[Kind]bool)
		for _, k := range b.Kinds {
			if seen[k] {
				t.Fatalf("kind %s appears twice in bag %v", k, b.Kinds)
			}
			seen[k] = true
		}

		if want > 0 {
			b.Take()
		}
	}

	b.Take()
	if b.Len() != len(AllKinds)-1 {
		t.Errorf("expected bag to refill after running out, got %d kinds", b.Len())
	}
}

func TestBagDeterministic(t *testing.T) {
	a := NewBag(rand.NewSource(7))
	b := NewBag(rand.NewSource(7))

	for i := 0; i < 21; i++ {
		if ka, kb := a.Take(), b.Take(); ka != kb {
			t.Fatalf("bags with equal seeds diverged at %d: %s != %s", i, ka, kb)
		}
	}
}

func TestQueue(t *testing.T) {
	for _, d := range []struct {
		Target   int
		Expected int
	}{{-3, MinPreview}, {0, MinPreview}, {1, 1}, {3, 3}, {6, 6}, {9, MaxPreview}} {
		q := NewQueue(NewSeededBag(1), d.Target)
		if q.Len() != d.Expected || q.Target() != d.Expected {
			t.Errorf("queue with target %d: expected length %d, got %d (target %d)", d.Target, d.Expected, q.Len(), q.Target())
		}

		for i := 0; i < 20; i++ {
			head := q.Peek()
			if k := q.Pop(); k != head {
				t.Fatalf("popped %s, expected head %s", k, head)
			}

			if q.Len() != d.Expected {
				t.Fatalf("queue length %d after pop, expected %d", q.Len(), d.Expected)
			}
		}
	}
}

func TestQueueFollowsBagOrder(t *testing.T) {
	q := NewQueue(NewSeededBag(3), 3)
	ref := NewSeededBag(3)

	for i := 0; i < 28; i++ {
		if k, expected := q.Pop(), ref.Take(); k != expected {
			t.Fatalf("queue popped %s at %d, expected %s", k, i, expected)
		}
	}
}
