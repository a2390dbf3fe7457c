package engine

import (
	"context"
	"strings"

	"golf-match-api/internal/apperr"
	"golf-match-api/internal/model"
)

// participantMatch loads matchID for actorID. A missing match and a match
// actorID is not part of are reported the same way.
func (e *Engine) participantMatch(ctx context.Context, matchID, actorID string) (*model.Match, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	m, err := e.store.GetMatch(ctx, matchID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.PermissionDenied("not a participant of match %s", matchID)
		}
		return nil, fault("get match", err)
	}
	if !m.HasActor(actorID) {
		return nil, apperr.PermissionDenied("not a participant of match %s", matchID)
	}
	return m, nil
}

// ListMessages returns the thread oldest first.
func (e *Engine) ListMessages(ctx context.Context, matchID, actorID string) ([]model.Message, error) {
	if _, err := e.participantMatch(ctx, matchID, actorID); err != nil {
		return nil, err
	}
	msgs, err := e.store.ListMessages(ctx, matchID)
	if err != nil {
		return nil, fault("list messages", err)
	}
	return msgs, nil
}

// SendMessage appends an unread message addressed to the other participant.
func (e *Engine) SendMessage(ctx context.Context, matchID, senderID, content string) (*model.Message, error) {
	m, err := e.participantMatch(ctx, matchID, senderID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperr.Validation("message content is required")
	}
	if m.Status != model.MatchActive {
		return nil, apperr.Validation("match %s is not active", matchID)
	}

	receiverID, _ := m.Other(senderID)
	msg := &model.Message{
		MatchID:    m.ID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		SentAt:     e.now(),
	}
	if err := e.store.CreateMessage(ctx, msg); err != nil {
		return nil, fault("send message", err)
	}
	return msg, nil
}

// MarkThreadRead flags every message addressed to actorID in the thread.
func (e *Engine) MarkThreadRead(ctx context.Context, matchID, actorID string) (int, error) {
	if _, err := e.participantMatch(ctx, matchID, actorID); err != nil {
		return 0, err
	}
	n, err := e.store.MarkRead(ctx, matchID, actorID)
	if err != nil {
		return 0, fault("mark read", err)
	}
	return n, nil
}
