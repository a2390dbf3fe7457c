package postgres

import (
	"context"

	"github.com/google/uuid"

	"golf-match-api/internal/model"
)

const postCols = `id, actor_id, content, image_url, COALESCE(venue_id, ''), score, played_at, created_at`

func (s *Store) CreatePost(ctx context.Context, p *model.Post) error {
	var venueID *string
	if p.VenueID != "" {
		venueID = &p.VenueID
	}
	id := uuid.New().String()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO posts (id, actor_id, content, image_url, venue_id, score, played_at, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,COALESCE($8, NOW()))
		 RETURNING created_at`,
		id, p.ActorID, p.Content, p.ImageURL, venueID, p.Score, p.PlayedAt, nullTime(p.CreatedAt),
	).Scan(&p.CreatedAt)
	if err != nil {
		return translate(err)
	}
	p.ID = id
	return nil
}

func (s *Store) queryPosts(ctx context.Context, q string, args ...any) ([]model.Post, error) {
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Post
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.ActorID, &p.Content, &p.ImageURL, &p.VenueID,
			&p.Score, &p.PlayedAt, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) ListPosts(ctx context.Context) ([]model.Post, error) {
	return s.queryPosts(ctx, `SELECT `+postCols+` FROM posts ORDER BY created_at DESC, seq DESC`)
}

func (s *Store) PostsBy(ctx context.Context, actorID string) ([]model.Post, error) {
	return s.queryPosts(ctx,
		`SELECT `+postCols+` FROM posts WHERE actor_id = $1 ORDER BY created_at DESC, seq DESC`, actorID)
}
