// Package store defines the capability sets the engine persists through.
// Backends live in the memory and postgres subpackages.
package store

import (
	"context"
	"errors"
	"time"

	"golf-match-api/internal/model"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

type ActorStore interface {
	// CreateActor assigns a.ID and a.CreatedAt. Duplicate usernames return ErrConflict.
	CreateActor(ctx context.Context, a *model.Actor) error
	GetActor(ctx context.Context, id string) (*model.Actor, error)
	ActorByUsername(ctx context.Context, username string) (*model.Actor, error)
	UpdateActor(ctx context.Context, a *model.Actor) error
	// ListActors returns every actor in registration order.
	ListActors(ctx context.Context) ([]model.Actor, error)
}

type SwipeStore interface {
	// CreateSwipe appends to the ledger; entries are never updated.
	CreateSwipe(ctx context.Context, s *model.Swipe) error
	HasSwiped(ctx context.Context, actorID, subjectID string, dir model.Direction) (bool, error)
	// SwipedSubjects lists the subjects actorID decided on, duplicates included.
	SwipedSubjects(ctx context.Context, actorID string) ([]string, error)
}

type MatchStore interface {
	// CreateMatchIfAbsent inserts m unless a match with m.PairKey exists,
	// in which case m is overwritten with the stored match and created is false.
	CreateMatchIfAbsent(ctx context.Context, m *model.Match) (created bool, err error)
	GetMatch(ctx context.Context, id string) (*model.Match, error)
	MatchByPair(ctx context.Context, a, b string) (*model.Match, error)
	MatchesFor(ctx context.Context, actorID string) ([]model.Match, error)
}

type MessageStore interface {
	CreateMessage(ctx context.Context, m *model.Message) error
	// ListMessages is ordered by SentAt, ties broken by insertion.
	ListMessages(ctx context.Context, matchID string) ([]model.Message, error)
	// MarkRead flags unread messages addressed to receiverID and returns how many changed.
	MarkRead(ctx context.Context, matchID, receiverID string) (int, error)
}

type VenueStore interface {
	CreateVenue(ctx context.Context, v *model.Venue) error
	GetVenue(ctx context.Context, id string) (*model.Venue, error)
	ListVenues(ctx context.Context) ([]model.Venue, error)
}

type ProposalStore interface {
	CreateProposal(ctx context.Context, p *model.Proposal) error
	GetProposal(ctx context.Context, id string) (*model.Proposal, error)
	// ProposalsFor returns proposals actorID created or was invited to, soonest first.
	ProposalsFor(ctx context.Context, actorID string) ([]model.Proposal, error)
}

type PostStore interface {
	CreatePost(ctx context.Context, p *model.Post) error
	// ListPosts and PostsBy are newest first.
	ListPosts(ctx context.Context) ([]model.Post, error)
	PostsBy(ctx context.Context, actorID string) ([]model.Post, error)
}

type TokenStore interface {
	CreateRefreshToken(ctx context.Context, actorID, tokenHash string, expiresAt time.Time) (string, error)
	RefreshTokenByHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error)
	// RotateRefreshToken revokes oldID and records its replacement.
	RotateRefreshToken(ctx context.Context, oldID, actorID, newHash string, newExpiry time.Time) (string, error)
	RevokeAllRefreshTokens(ctx context.Context, actorID string) error
}

// Store is everything a running server needs.
type Store interface {
	ActorStore
	SwipeStore
	MatchStore
	MessageStore
	VenueStore
	ProposalStore
	PostStore
	TokenStore
}
