package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"golf-match-api/internal/model"
	"golf-match-api/internal/store"
)

func (s *Store) CreateRefreshToken(ctx context.Context, actorID, tokenHash string, expiresAt time.Time) (string, error) {
	id := uuid.New().String()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO refresh_tokens (id, actor_id, token_hash, expires_at) VALUES ($1,$2,$3,$4)`,
		id, actorID, tokenHash, expiresAt,
	)
	if err != nil {
		return "", translate(err)
	}
	return id, nil
}

func (s *Store) RefreshTokenByHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
	rt := &model.RefreshToken{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, actor_id, token_hash, expires_at, revoked, replaced_by, created_at
		 FROM refresh_tokens WHERE token_hash = $1`, tokenHash,
	).Scan(&rt.ID, &rt.ActorID, &rt.TokenHash, &rt.ExpiresAt, &rt.Revoked, &rt.ReplacedBy, &rt.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return rt, nil
}

// rotate: revoke old token, create new one, link them
func (s *Store) RotateRefreshToken(ctx context.Context, oldID, actorID, newHash string, newExpiry time.Time) (string, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	next := uuid.New().String()

	// only a live token can be rotated; a second use of the same token finds nothing
	tag, err := tx.Exec(ctx,
		`UPDATE refresh_tokens SET revoked = true, replaced_by = $1
		 WHERE id = $2 AND actor_id = $3 AND revoked = false`,
		next, oldID, actorID,
	)
	if err != nil {
		return "", err
	}
	if tag.RowsAffected() == 0 {
		return "", store.ErrNotFound
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO refresh_tokens (id, actor_id, token_hash, expires_at) VALUES ($1,$2,$3,$4)`,
		next, actorID, newHash, newExpiry,
	)
	if err != nil {
		return "", translate(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return next, nil
}

// revoke all tokens for an actor (on logout or suspected theft)
func (s *Store) RevokeAllRefreshTokens(ctx context.Context, actorID string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE refresh_tokens SET revoked = true WHERE actor_id = $1 AND revoked = false`,
		actorID,
	)
	return err
}
