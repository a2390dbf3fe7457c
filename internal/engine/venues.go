package engine

import (
	"context"

	"golf-match-api/internal/apperr"
	"golf-match-api/internal/model"
)

func (e *Engine) ListVenues(ctx context.Context) ([]model.Venue, error) {
	vs, err := e.store.ListVenues(ctx)
	if err != nil {
		return nil, fault("list venues", err)
	}
	return vs, nil
}

func (e *Engine) GetVenue(ctx context.Context, id string) (*model.Venue, error) {
	v, err := e.store.GetVenue(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("venue %s not found", id)
		}
		return nil, fault("get venue", err)
	}
	return v, nil
}
