package postgres

import (
	"context"

	"github.com/google/uuid"

	"golf-match-api/internal/model"
)

func (s *Store) CreateMessage(ctx context.Context, m *model.Message) error {
	id := uuid.New().String()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO messages (id, match_id, sender_id, receiver_id, content, sent_at, is_read)
		 VALUES ($1,$2,$3,$4,$5,COALESCE($6, NOW()),$7)
		 RETURNING sent_at`,
		id, m.MatchID, m.SenderID, m.ReceiverID, m.Content, nullTime(m.SentAt), m.Read,
	).Scan(&m.SentAt)
	if err != nil {
		return translate(err)
	}
	m.ID = id
	return nil
}

func (s *Store) ListMessages(ctx context.Context, matchID string) ([]model.Message, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, match_id, sender_id, receiver_id, content, sent_at, is_read
		 FROM messages
		 WHERE match_id = $1
		 ORDER BY sent_at, seq`, matchID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Message{}
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.MatchID, &m.SenderID, &m.ReceiverID,
			&m.Content, &m.SentAt, &m.Read); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) MarkRead(ctx context.Context, matchID, receiverID string) (int, error) {
	tag, err := s.pool.Exec(ctx,
		`UPDATE messages SET is_read = TRUE
		 WHERE match_id = $1 AND receiver_id = $2 AND NOT is_read`,
		matchID, receiverID,
	)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
