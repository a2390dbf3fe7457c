package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"golf-match-api/internal/model"
	"golf-match-api/internal/store"
)

const actorCols = `id, username, password_hash, name, age, handicap,
	skill_level, gender, bio, profile_picture, created_at`

func scanActor(row pgx.Row, a *model.Actor) error {
	return row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Name, &a.Age, &a.Handicap,
		&a.SkillLevel, &a.Gender, &a.Bio, &a.ProfilePicture, &a.CreatedAt)
}

func (s *Store) CreateActor(ctx context.Context, a *model.Actor) error {
	id := uuid.New().String()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO actors (id, username, password_hash, name, age, handicap,
		                     skill_level, gender, bio, profile_picture)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 RETURNING created_at`,
		id, a.Username, a.PasswordHash, a.Name, a.Age, a.Handicap,
		a.SkillLevel, a.Gender, a.Bio, a.ProfilePicture,
	).Scan(&a.CreatedAt)
	if err != nil {
		return translate(err)
	}
	a.ID = id
	return nil
}

func (s *Store) GetActor(ctx context.Context, id string) (*model.Actor, error) {
	a := &model.Actor{}
	row := s.pool.QueryRow(ctx, `SELECT `+actorCols+` FROM actors WHERE id = $1`, id)
	if err := scanActor(row, a); err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func (s *Store) ActorByUsername(ctx context.Context, username string) (*model.Actor, error) {
	a := &model.Actor{}
	row := s.pool.QueryRow(ctx, `SELECT `+actorCols+` FROM actors WHERE username = $1`, username)
	if err := scanActor(row, a); err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func (s *Store) UpdateActor(ctx context.Context, a *model.Actor) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE actors
		 SET username=$1, password_hash=$2, name=$3, age=$4, handicap=$5,
		     skill_level=$6, gender=$7, bio=$8, profile_picture=$9
		 WHERE id=$10`,
		a.Username, a.PasswordHash, a.Name, a.Age, a.Handicap,
		a.SkillLevel, a.Gender, a.Bio, a.ProfilePicture, a.ID,
	)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) ListActors(ctx context.Context) ([]model.Actor, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+actorCols+` FROM actors ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Actor
	for rows.Next() {
		var a model.Actor
		if err := scanActor(rows, &a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
