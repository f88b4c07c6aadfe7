package spinlatch

import (
	"math"
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"
)

const benchParties = 8

func BenchmarkCountdownLatch(b *testing.B) {
	for range b.N {
		l := NewCountdownLatch(benchParties)
		var g errgroup.Group
		for range benchParties {
			g.Go(l.CountDown)
		}
		l.Await()
		if err := g.Wait(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCountdownLatchBusySpin(b *testing.B) {
	for range b.N {
		l := NewCountdownLatch(benchParties, WithBusySpin())
		var g errgroup.Group
		for range benchParties {
			g.Go(l.CountDown)
		}
		l.Await()
		if err := g.Wait(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWaitGroup(b *testing.B) {
	for range b.N {
		var wg sync.WaitGroup
		wg.Add(benchParties)
		for range benchParties {
			go wg.Done()
		}
		wg.Wait()
	}
}

func BenchmarkCountDownContended(b *testing.B) {
	l := NewCountdownLatch(math.MaxInt)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = l.CountDown()
		}
	})
}

func BenchmarkBoxMutateContended(b *testing.B) {
	var box Box[int]
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			box.Mutate(func(v *int) { *v++ })
		}
	})
}
