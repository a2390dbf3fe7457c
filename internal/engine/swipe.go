package engine

import (
	"context"
	"strings"

	"golf-match-api/internal/apperr"
	"golf-match-api/internal/model"
)

type SwipeResult struct {
	Swipe *model.Swipe
	// Match is set whenever the pair is matched, new or not.
	Match    *model.Match
	NewMatch bool
}

// RecordSwipe appends a decision to the ledger and runs match detection.
// Swipes are never deduplicated.
func (e *Engine) RecordSwipe(ctx context.Context, actorID, subjectID, direction string) (*SwipeResult, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return nil, apperr.Validation("subject is required")
	}
	if strings.TrimSpace(direction) == "" {
		return nil, apperr.Validation("direction is required")
	}
	dir, ok := model.ParseDirection(direction)
	if !ok {
		return nil, apperr.Validation("unknown direction %q", direction)
	}
	if subjectID == actorID {
		return nil, apperr.Validation("cannot swipe on yourself")
	}

	if _, err := e.store.GetActor(ctx, subjectID); err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("actor %s not found", subjectID)
		}
		return nil, fault("get subject", err)
	}

	sw := &model.Swipe{
		ActorID:   actorID,
		SubjectID: subjectID,
		Direction: dir,
		CreatedAt: e.now(),
	}
	if err := e.store.CreateSwipe(ctx, sw); err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("actor %s not found", actorID)
		}
		return nil, fault("record swipe", err)
	}

	m, created, err := e.evaluate(ctx, actorID, subjectID, dir)
	if err != nil {
		return nil, err
	}
	return &SwipeResult{Swipe: sw, Match: m, NewMatch: created}, nil
}
