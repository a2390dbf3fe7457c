package handler

import (
	"context"
	"time"

	"golf-match-api/internal/apperr"
	"golf-match-api/internal/engine"
	"golf-match-api/internal/middleware"
	"golf-match-api/internal/wire"
)

func (h *Handler) ProposeTeeTime(ctx context.Context, req *wire.ProposeTeeTimeRequest) (*wire.TeeTime, error) {
	when := ""
	if req.When != nil {
		if err := req.When.CheckValid(); err != nil {
			return nil, apperr.Validation("invalid when: %v", err)
		}
		when = req.When.AsTime().Format(time.RFC3339Nano)
	}
	p, err := h.engine.ProposeActivity(ctx, engine.ProposalInput{
		CreatedBy:    middleware.ActorID(ctx),
		VenueID:      req.VenueId,
		When:         when,
		Participants: req.Participants,
	})
	if err != nil {
		return nil, err
	}
	v, err := h.engine.GetVenue(ctx, p.VenueID)
	if err != nil {
		return nil, err
	}
	return toTeeTime(p, v), nil
}

func (h *Handler) ListTeeTimes(ctx context.Context, _ *wire.Empty) (*wire.ListTeeTimesResponse, error) {
	views, err := h.engine.ProposalsFor(ctx, middleware.ActorID(ctx))
	if err != nil {
		return nil, err
	}
	out := &wire.ListTeeTimesResponse{}
	for i := range views {
		out.TeeTimes = append(out.TeeTimes, toTeeTime(&views[i].Proposal, &views[i].Venue))
	}
	return out, nil
}

func (h *Handler) ListVenues(ctx context.Context, _ *wire.Empty) (*wire.ListVenuesResponse, error) {
	venues, err := h.engine.ListVenues(ctx)
	if err != nil {
		return nil, err
	}
	out := &wire.ListVenuesResponse{}
	for i := range venues {
		out.Venues = append(out.Venues, toVenue(&venues[i]))
	}
	return out, nil
}
