// Package engine holds the matching and relationship rules: the swipe
// ledger, match detection, match-scoped messaging, tee time proposals and
// the discovery feed. Transports call it; it persists through store.Store.
package engine

import (
	"errors"
	"log"
	"strings"
	"time"

	"golf-match-api/internal/apperr"
	"golf-match-api/internal/store"
)

type Engine struct {
	store store.Store
	locks *pairLocks
	now   func() time.Time
}

type Option func(*Engine)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func New(st store.Store, opts ...Option) *Engine {
	e := &Engine{
		store: st,
		locks: newPairLocks(),
		now:   time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// fault logs an unexpected store failure and hides it behind an internal error.
func fault(op string, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	log.Printf("%s: %v", op, err)
	return apperr.Internal(op+" failed", err)
}

func requireActor(actorID string) error {
	if strings.TrimSpace(actorID) == "" {
		return apperr.Unauthenticated("authentication required")
	}
	return nil
}

func isNotFound(err error) bool { return errors.Is(err, store.ErrNotFound) }
