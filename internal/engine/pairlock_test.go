package engine

import (
	"sync"
	"testing"
)

func TestPairLocksSerializeAndRelease(t *testing.T) {
	p := newPairLocks()
	var (
		wg      sync.WaitGroup
		inside  int
		maxSeen int
		mu      sync.Mutex
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := p.lock("a:b")
			defer unlock()
			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	if maxSeen != 1 {
		t.Errorf("expected one holder at a time, saw %d", maxSeen)
	}
	if n := p.size(); n != 0 {
		t.Errorf("expected no entries left, got %d", n)
	}
}

func TestPairLocksIndependentKeys(t *testing.T) {
	p := newPairLocks()
	unlockA := p.lock("a:b")
	done := make(chan struct{})
	go func() {
		unlock := p.lock("c:d")
		unlock()
		close(done)
	}()
	<-done
	unlockA()
}
