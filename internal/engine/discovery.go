package engine

import (
	"context"

	"golf-match-api/internal/model"
)

// CandidatesFor returns every actor that actorID has not decided on yet,
// in registration order, never including actorID.
func (e *Engine) CandidatesFor(ctx context.Context, actorID string) ([]model.Actor, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	decided, err := e.store.SwipedSubjects(ctx, actorID)
	if err != nil {
		return nil, fault("list swiped subjects", err)
	}
	excluded := make(map[string]struct{}, len(decided)+1)
	excluded[actorID] = struct{}{}
	for _, id := range decided {
		excluded[id] = struct{}{}
	}

	all, err := e.store.ListActors(ctx)
	if err != nil {
		return nil, fault("list actors", err)
	}
	out := make([]model.Actor, 0, len(all))
	for _, a := range all {
		if _, skip := excluded[a.ID]; skip {
			continue
		}
		out = append(out, public(a))
	}
	return out, nil
}

// public strips what must not leave the process.
func public(a model.Actor) model.Actor {
	a.PasswordHash = ""
	return a
}
