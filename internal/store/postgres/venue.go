package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"golf-match-api/internal/model"
)

const venueCols = `id, name, location, description, image_url, price_range, rating`

func scanVenue(row pgx.Row, v *model.Venue) error {
	return row.Scan(&v.ID, &v.Name, &v.Location, &v.Description, &v.ImageURL, &v.PriceRange, &v.Rating)
}

func (s *Store) CreateVenue(ctx context.Context, v *model.Venue) error {
	id := uuid.New().String()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO venues (id, name, location, description, image_url, price_range, rating)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		id, v.Name, v.Location, v.Description, v.ImageURL, v.PriceRange, v.Rating,
	)
	if err != nil {
		return translate(err)
	}
	v.ID = id
	return nil
}

func (s *Store) GetVenue(ctx context.Context, id string) (*model.Venue, error) {
	v := &model.Venue{}
	row := s.pool.QueryRow(ctx, `SELECT `+venueCols+` FROM venues WHERE id = $1`, id)
	if err := scanVenue(row, v); err != nil {
		return nil, translate(err)
	}
	return v, nil
}

func (s *Store) ListVenues(ctx context.Context) ([]model.Venue, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+venueCols+` FROM venues ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Venue
	for rows.Next() {
		var v model.Venue
		if err := scanVenue(rows, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
