package postgres

import (
	"context"

	"github.com/google/uuid"

	"golf-match-api/internal/model"
)

func (s *Store) CreateSwipe(ctx context.Context, sw *model.Swipe) error {
	id := uuid.New().String()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO swipes (id, actor_id, subject_id, direction, created_at)
		 VALUES ($1,$2,$3,$4,COALESCE($5, NOW()))
		 RETURNING created_at`,
		id, sw.ActorID, sw.SubjectID, string(sw.Direction), nullTime(sw.CreatedAt),
	).Scan(&sw.CreatedAt)
	if err != nil {
		return translate(err)
	}
	sw.ID = id
	return nil
}

func (s *Store) HasSwiped(ctx context.Context, actorID, subjectID string, dir model.Direction) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM swipes
			WHERE actor_id = $1 AND subject_id = $2 AND direction = $3)`,
		actorID, subjectID, string(dir),
	).Scan(&exists)
	return exists, err
}

func (s *Store) SwipedSubjects(ctx context.Context, actorID string) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT subject_id FROM swipes WHERE actor_id = $1`, actorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
