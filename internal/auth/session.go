package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"golf-match-api/internal/store"
)

// DefaultRefreshTTL is used when NewSessions gets a zero refresh ttl.
const DefaultRefreshTTL = 7 * 24 * time.Hour

// Tokens is what a client holds after login or refresh.
type Tokens struct {
	ActorID          string
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// Sessions issues access tokens and rotates the refresh tokens behind them.
type Sessions struct {
	store      store.TokenStore
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewSessions(ts store.TokenStore, secret string, accessTTL, refreshTTL time.Duration) *Sessions {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}
	return &Sessions{
		store:      ts,
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (s *Sessions) AccessTTL() time.Duration { return s.accessTTL }

// Verify returns the actor an access token was issued to.
func (s *Sessions) Verify(raw string) (string, error) {
	c, err := ParseToken(raw, s.secret)
	if err != nil {
		return "", ErrBadToken
	}
	return c.ActorID, nil
}

// Issue starts a new session for actorID.
func (s *Sessions) Issue(ctx context.Context, actorID string) (*Tokens, error) {
	access, err := MakeToken(actorID, s.secret, s.accessTTL)
	if err != nil {
		return nil, err
	}
	raw, hash, err := GenerateRefreshToken()
	if err != nil {
		return nil, err
	}
	exp := s.now().Add(s.refreshTTL)
	if _, err := s.store.CreateRefreshToken(ctx, actorID, hash, exp); err != nil {
		return nil, err
	}
	return &Tokens{ActorID: actorID, AccessToken: access, RefreshToken: raw, RefreshExpiresAt: exp}, nil
}

// Refresh trades a refresh token for a new pair. Presenting a token that was
// already rotated revokes every session of its owner.
func (s *Sessions) Refresh(ctx context.Context, raw string) (*Tokens, error) {
	if raw == "" {
		return nil, ErrBadToken
	}
	rt, err := s.store.RefreshTokenByHash(ctx, HashRefreshToken(raw))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBadToken
		}
		return nil, err
	}
	if rt.Revoked {
		// reuse of a rotated token: assume theft
		if rt.ReplacedBy != nil {
			log.Printf("refresh token reuse for actor %s, revoking sessions", rt.ActorID)
			if err := s.store.RevokeAllRefreshTokens(ctx, rt.ActorID); err != nil {
				return nil, err
			}
		}
		return nil, ErrBadToken
	}
	if s.now().After(rt.ExpiresAt) {
		return nil, ErrBadToken
	}

	next, hash, err := GenerateRefreshToken()
	if err != nil {
		return nil, err
	}
	exp := s.now().Add(s.refreshTTL)
	if _, err := s.store.RotateRefreshToken(ctx, rt.ID, rt.ActorID, hash, exp); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// lost a race with another refresh of the same token
			return nil, ErrBadToken
		}
		return nil, err
	}
	access, err := MakeToken(rt.ActorID, s.secret, s.accessTTL)
	if err != nil {
		return nil, err
	}
	return &Tokens{ActorID: rt.ActorID, AccessToken: access, RefreshToken: next, RefreshExpiresAt: exp}, nil
}

// Revoke ends every session of actorID.
func (s *Sessions) Revoke(ctx context.Context, actorID string) error {
	return s.store.RevokeAllRefreshTokens(ctx, actorID)
}
