package handler

import (
	"context"

	"golf-match-api/internal/engine"
	"golf-match-api/internal/model"
	"golf-match-api/internal/wire"
)

func (h *Handler) Register(ctx context.Context, req *wire.RegisterRequest) (*wire.AuthResponse, error) {
	a, err := h.engine.Register(ctx, engine.RegisterInput{
		Username:   req.Username,
		Password:   req.Password,
		Name:       req.Name,
		Age:        intPtr(req.Age),
		Handicap:   intPtr(req.Handicap),
		SkillLevel: req.SkillLevel,
		Gender:     req.Gender,
		Bio:        req.Bio,
	})
	if err != nil {
		return nil, err
	}
	return h.startSession(ctx, a)
}

func (h *Handler) Login(ctx context.Context, req *wire.LoginRequest) (*wire.AuthResponse, error) {
	a, err := h.engine.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	return h.startSession(ctx, a)
}

func (h *Handler) startSession(ctx context.Context, a *model.Actor) (*wire.AuthResponse, error) {
	tok, err := h.sessions.Issue(ctx, a.ID)
	if err != nil {
		return nil, fail("issue session", err)
	}
	return &wire.AuthResponse{
		ActorId:      a.ID,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		Name:         a.Name,
	}, nil
}
