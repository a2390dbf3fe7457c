package postgres

import (
	"context"

	"github.com/google/uuid"

	"golf-match-api/internal/model"
)

func (s *Store) CreateProposal(ctx context.Context, p *model.Proposal) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	id := uuid.New().String()
	err = tx.QueryRow(ctx,
		`INSERT INTO proposals (id, venue_id, starts_at, status, created_by, created_at)
		 VALUES ($1,$2,$3,$4,$5,COALESCE($6, NOW()))
		 RETURNING created_at`,
		id, p.VenueID, p.When, p.Status, p.CreatedBy, nullTime(p.CreatedAt),
	).Scan(&p.CreatedAt)
	if err != nil {
		return translate(err)
	}

	for i, actorID := range p.Participants {
		_, err = tx.Exec(ctx,
			`INSERT INTO proposal_participants (proposal_id, actor_id, position) VALUES ($1,$2,$3)`,
			id, actorID, i,
		)
		if err != nil {
			return translate(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (s *Store) GetProposal(ctx context.Context, id string) (*model.Proposal, error) {
	p := &model.Proposal{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, venue_id, starts_at, status, created_by, created_at
		 FROM proposals WHERE id = $1`, id,
	).Scan(&p.ID, &p.VenueID, &p.When, &p.Status, &p.CreatedBy, &p.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}

	// load roster
	rows, err := s.pool.Query(ctx,
		`SELECT actor_id FROM proposal_participants WHERE proposal_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	p.Participants = []string{}
	for rows.Next() {
		var actorID string
		if err := rows.Scan(&actorID); err != nil {
			return nil, err
		}
		p.Participants = append(p.Participants, actorID)
	}
	return p, rows.Err()
}

func (s *Store) ProposalsFor(ctx context.Context, actorID string) ([]model.Proposal, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT p.id, p.venue_id, p.starts_at, p.status, p.created_by, p.created_at,
		        COALESCE(array_agg(pp.actor_id ORDER BY pp.position)
		                 FILTER (WHERE pp.actor_id IS NOT NULL), '{}')
		 FROM proposals p
		 LEFT JOIN proposal_participants pp ON pp.proposal_id = p.id
		 WHERE p.created_by = $1
		    OR EXISTS (SELECT 1 FROM proposal_participants x
		               WHERE x.proposal_id = p.id AND x.actor_id = $1)
		 GROUP BY p.id
		 ORDER BY p.starts_at, p.created_at`, actorID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Proposal
	for rows.Next() {
		var p model.Proposal
		if err := rows.Scan(&p.ID, &p.VenueID, &p.When, &p.Status, &p.CreatedBy,
			&p.CreatedAt, &p.Participants); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
