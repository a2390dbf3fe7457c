package engine

import (
	"context"
	"strings"
	"time"

	"golf-match-api/internal/apperr"
	"golf-match-api/internal/model"
)

var whenLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseWhen reads a tee time. Values without a zone are taken as UTC.
// Past times are accepted.
func ParseWhen(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, apperr.Validation("when is required")
	}
	for _, layout := range whenLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.Validation("unparseable date-time %q", s)
}

type ProposalInput struct {
	CreatedBy    string
	VenueID      string
	When         string
	Participants []string
}

type ProposalView struct {
	Proposal model.Proposal
	Venue    model.Venue
}

// ProposeActivity records a pending tee time at an existing venue.
func (e *Engine) ProposeActivity(ctx context.Context, in ProposalInput) (*model.Proposal, error) {
	if err := requireActor(in.CreatedBy); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.VenueID) == "" {
		return nil, apperr.Validation("venue is required")
	}
	when, err := ParseWhen(in.When)
	if err != nil {
		return nil, err
	}
	if _, err := e.store.GetVenue(ctx, in.VenueID); err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("venue %s not found", in.VenueID)
		}
		return nil, fault("get venue", err)
	}

	participants := make([]string, 0, len(in.Participants))
	seen := make(map[string]bool, len(in.Participants))
	for _, id := range in.Participants {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		if _, err := e.store.GetActor(ctx, id); err != nil {
			if isNotFound(err) {
				return nil, apperr.NotFound("actor %s not found", id)
			}
			return nil, fault("get participant", err)
		}
		participants = append(participants, id)
	}

	p := &model.Proposal{
		VenueID:      in.VenueID,
		When:         when,
		Status:       model.ProposalPending,
		CreatedBy:    in.CreatedBy,
		Participants: participants,
		CreatedAt:    e.now(),
	}
	if err := e.store.CreateProposal(ctx, p); err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("actor %s not found", in.CreatedBy)
		}
		return nil, fault("create proposal", err)
	}
	return p, nil
}

// ProposalsFor lists tee times actorID created or was invited to, soonest first.
func (e *Engine) ProposalsFor(ctx context.Context, actorID string) ([]ProposalView, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	ps, err := e.store.ProposalsFor(ctx, actorID)
	if err != nil {
		return nil, fault("list proposals", err)
	}

	venues := map[string]model.Venue{}
	out := make([]ProposalView, 0, len(ps))
	for _, p := range ps {
		v, ok := venues[p.VenueID]
		if !ok {
			got, err := e.store.GetVenue(ctx, p.VenueID)
			if err != nil {
				return nil, fault("get venue", err)
			}
			v = *got
			venues[p.VenueID] = v
		}
		out = append(out, ProposalView{Proposal: p, Venue: v})
	}
	return out, nil
}
