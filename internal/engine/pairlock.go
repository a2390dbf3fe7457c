package engine

import "sync"

// pairLocks is a keyed mutex. Entries are dropped once nobody holds or waits on them.
type pairLocks struct {
	mu sync.Mutex
	m  map[string]*pairLock
}

type pairLock struct {
	sync.Mutex
	refs int
}

func newPairLocks() *pairLocks {
	return &pairLocks{m: make(map[string]*pairLock)}
}

// lock blocks until key is free and returns the matching unlock.
func (p *pairLocks) lock(key string) func() {
	p.mu.Lock()
	l, ok := p.m[key]
	if !ok {
		l = &pairLock{}
		p.m[key] = l
	}
	l.refs++
	p.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		p.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(p.m, key)
		}
		p.mu.Unlock()
	}
}

func (p *pairLocks) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.m)
}
