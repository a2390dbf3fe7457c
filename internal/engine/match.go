package engine

import (
	"context"

	"golf-match-api/internal/apperr"
	"golf-match-api/internal/model"
)

// MatchView is a match as one participant sees it.
type MatchView struct {
	Match  model.Match
	Other  model.Actor
	Unread int
}

// EvaluateAndMaybeMatch returns the pair's match when dir is right and
// subjectID has already swiped right on actorID, or nil otherwise. A pair
// that already has a match gets that match back; a second one is never made.
func (e *Engine) EvaluateAndMaybeMatch(ctx context.Context, actorID, subjectID string, dir model.Direction) (*model.Match, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	m, _, err := e.evaluate(ctx, actorID, subjectID, dir)
	return m, err
}

func (e *Engine) evaluate(ctx context.Context, actorID, subjectID string, dir model.Direction) (*model.Match, bool, error) {
	if dir != model.DirectionRight {
		return nil, false, nil
	}
	if actorID == subjectID {
		return nil, false, apperr.Validation("cannot match with yourself")
	}

	key := model.PairKey(actorID, subjectID)
	unlock := e.locks.lock(key)
	defer unlock()

	mutual, err := e.store.HasSwiped(ctx, subjectID, actorID, model.DirectionRight)
	if err != nil {
		return nil, false, fault("check reverse swipe", err)
	}
	if !mutual {
		return nil, false, nil
	}

	m := &model.Match{
		ActorAID:  actorID,
		ActorBID:  subjectID,
		PairKey:   key,
		Status:    model.MatchActive,
		CreatedAt: e.now(),
	}
	created, err := e.store.CreateMatchIfAbsent(ctx, m)
	if err != nil {
		return nil, false, fault("create match", err)
	}
	return m, created, nil
}

// MatchesFor lists actorID's matches with the other participant attached.
func (e *Engine) MatchesFor(ctx context.Context, actorID string) ([]MatchView, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	ms, err := e.store.MatchesFor(ctx, actorID)
	if err != nil {
		return nil, fault("list matches", err)
	}

	out := make([]MatchView, 0, len(ms))
	for _, m := range ms {
		otherID, _ := m.Other(actorID)
		other, err := e.store.GetActor(ctx, otherID)
		if err != nil {
			return nil, fault("get match participant", err)
		}
		msgs, err := e.store.ListMessages(ctx, m.ID)
		if err != nil {
			return nil, fault("list messages", err)
		}
		v := MatchView{Match: m, Other: public(*other)}
		for _, msg := range msgs {
			if msg.ReceiverID == actorID && !msg.Read {
				v.Unread++
			}
		}
		out = append(out, v)
	}
	return out, nil
}
