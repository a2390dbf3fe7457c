package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"golf-match-api/internal/model"
)

const matchCols = `id, actor_a_id, actor_b_id, pair_key, status, created_at`

func scanMatch(row pgx.Row, m *model.Match) error {
	return row.Scan(&m.ID, &m.ActorAID, &m.ActorBID, &m.PairKey, &m.Status, &m.CreatedAt)
}

// CreateMatchIfAbsent relies on the UNIQUE(pair_key) constraint, so two
// servers racing on the same pair still end up with one row.
func (s *Store) CreateMatchIfAbsent(ctx context.Context, m *model.Match) (bool, error) {
	if m.PairKey == "" {
		m.PairKey = model.PairKey(m.ActorAID, m.ActorBID)
	}
	id := uuid.New().String()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO matches (id, actor_a_id, actor_b_id, pair_key, status, created_at)
		 VALUES ($1,$2,$3,$4,$5,COALESCE($6, NOW()))
		 ON CONFLICT (pair_key) DO NOTHING
		 RETURNING created_at`,
		id, m.ActorAID, m.ActorBID, m.PairKey, m.Status, nullTime(m.CreatedAt),
	).Scan(&m.CreatedAt)
	if err == nil {
		m.ID = id
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, translate(err)
	}

	// conflict: hand back the row that won
	row := s.pool.QueryRow(ctx, `SELECT `+matchCols+` FROM matches WHERE pair_key = $1`, m.PairKey)
	if err := scanMatch(row, m); err != nil {
		return false, translate(err)
	}
	return false, nil
}

func (s *Store) GetMatch(ctx context.Context, id string) (*model.Match, error) {
	m := &model.Match{}
	row := s.pool.QueryRow(ctx, `SELECT `+matchCols+` FROM matches WHERE id = $1`, id)
	if err := scanMatch(row, m); err != nil {
		return nil, translate(err)
	}
	return m, nil
}

func (s *Store) MatchByPair(ctx context.Context, a, b string) (*model.Match, error) {
	m := &model.Match{}
	row := s.pool.QueryRow(ctx, `SELECT `+matchCols+` FROM matches WHERE pair_key = $1`, model.PairKey(a, b))
	if err := scanMatch(row, m); err != nil {
		return nil, translate(err)
	}
	return m, nil
}

func (s *Store) MatchesFor(ctx context.Context, actorID string) ([]model.Match, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+matchCols+` FROM matches
		 WHERE actor_a_id = $1 OR actor_b_id = $1
		 ORDER BY created_at, id`, actorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Match
	for rows.Next() {
		var m model.Match
		if err := scanMatch(rows, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
