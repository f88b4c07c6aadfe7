package spinlatch

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestLatchGroupIndependentKeys(t *testing.T) {
	g := NewLatchGroup[string](2)

	if err := g.CountDown("a"); err != nil {
		t.Fatal(err)
	}
	if err := g.CountDown("a"); err != nil {
		t.Fatal(err)
	}
	if err := g.CountDown("a"); !errors.Is(err, ErrAlreadyZero) {
		t.Fatalf("third CountDown(a) = %v, want ErrAlreadyZero", err)
	}

	g.Await("a")
	if c := g.Count("b"); c != 2 {
		t.Fatalf("Count(b) = %d, want 2", c)
	}
	if err := g.AwaitTimeout("b", 5*time.Millisecond); !errors.Is(err, ErrExpired) {
		t.Fatalf("AwaitTimeout(b) = %v, want ErrExpired", err)
	}
}

func TestLatchGroupSameLatch(t *testing.T) {
	g := NewLatchGroup[int](1)
	if g.Latch(1) != g.Latch(1) {
		t.Fatal("Latch(1) returned different latches")
	}
	if g.Latch(1) == g.Latch(2) {
		t.Fatal("Latch(1) and Latch(2) share a latch")
	}
}

func TestLatchGroupCountDoesNotCreate(t *testing.T) {
	g := NewLatchGroup[string](3)
	if c := g.Count("x"); c != 3 {
		t.Fatalf("Count(x) = %d, want 3", c)
	}
	l := g.Latch("x")
	if err := l.CountDown(); err != nil {
		t.Fatal(err)
	}
	if c := g.Count("x"); c != 2 {
		t.Fatalf("Count(x) = %d, want 2", c)
	}
}

func TestLatchGroupDelete(t *testing.T) {
	g := NewLatchGroup[string](1)
	if err := g.CountDown("k"); err != nil {
		t.Fatal(err)
	}
	old := g.Latch("k")
	if !old.Released() {
		t.Fatal("latch not released")
	}

	g.Delete("k")
	if c := g.Count("k"); c != 1 {
		t.Fatalf("Count(k) after Delete = %d, want 1", c)
	}
	if g.Latch("k") == old {
		t.Fatal("Latch(k) after Delete returned the old latch")
	}
}

func TestLatchGroupConcurrent(t *testing.T) {
	const keys = 16
	const goal = 8
	g := NewLatchGroup[int](goal)

	var waiters sync.WaitGroup
	waiters.Add(keys)
	for k := range keys {
		go func() {
			defer waiters.Done()
			g.Await(k)
		}()
	}

	var wg sync.WaitGroup
	wg.Add(keys * goal)
	for k := range keys {
		for range goal {
			go func() {
				defer wg.Done()
				if err := g.CountDown(k); err != nil {
					t.Errorf("CountDown(%d) = %v", k, err)
				}
			}()
		}
	}
	wg.Wait()

	done := make(chan struct{})
	go func() {
		waiters.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("waiters did not return")
	}
	for k := range keys {
		if c := g.Count(k); c != 0 {
			t.Errorf("Count(%d) = %d, want 0", k, c)
		}
	}
}

func TestLatchGroupNegativeGoal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewLatchGroup(-1) did not panic")
		}
	}()
	NewLatchGroup[string](-1)
}
