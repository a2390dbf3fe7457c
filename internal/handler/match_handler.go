package handler

import (
	"context"

	"golf-match-api/internal/middleware"
	"golf-match-api/internal/wire"
)

func (h *Handler) RecordSwipe(ctx context.Context, req *wire.SwipeRequest) (*wire.SwipeResponse, error) {
	res, err := h.engine.RecordSwipe(ctx, middleware.ActorID(ctx), req.SubjectId, req.Direction)
	if err != nil {
		return nil, err
	}
	return &wire.SwipeResponse{
		Swipe:    toSwipe(res.Swipe),
		Match:    toMatch(res.Match),
		NewMatch: res.NewMatch,
	}, nil
}

func (h *Handler) ListCandidates(ctx context.Context, _ *wire.Empty) (*wire.ListCandidatesResponse, error) {
	actors, err := h.engine.CandidatesFor(ctx, middleware.ActorID(ctx))
	if err != nil {
		return nil, err
	}
	out := &wire.ListCandidatesResponse{}
	for i := range actors {
		out.Actors = append(out.Actors, toActor(&actors[i]))
	}
	return out, nil
}

func (h *Handler) ListMatches(ctx context.Context, _ *wire.Empty) (*wire.ListMatchesResponse, error) {
	views, err := h.engine.MatchesFor(ctx, middleware.ActorID(ctx))
	if err != nil {
		return nil, err
	}
	out := &wire.ListMatchesResponse{}
	for i := range views {
		out.Matches = append(out.Matches, toSummary(&views[i]))
	}
	return out, nil
}

func (h *Handler) ListMessages(ctx context.Context, req *wire.ListMessagesRequest) (*wire.ListMessagesResponse, error) {
	msgs, err := h.engine.ListMessages(ctx, req.MatchId, middleware.ActorID(ctx))
	if err != nil {
		return nil, err
	}
	out := &wire.ListMessagesResponse{}
	for i := range msgs {
		out.Messages = append(out.Messages, toMessage(&msgs[i]))
	}
	return out, nil
}

func (h *Handler) SendMessage(ctx context.Context, req *wire.SendMessageRequest) (*wire.ChatMessage, error) {
	msg, err := h.engine.SendMessage(ctx, req.MatchId, middleware.ActorID(ctx), req.Content)
	if err != nil {
		return nil, err
	}
	return toMessage(msg), nil
}
