// Package memory is a map-backed store used for tests and local runs.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"golf-match-api/internal/model"
	"golf-match-api/internal/store"
)

type Store struct {
	mu sync.RWMutex

	actors     map[string]*model.Actor
	actorOrder []string
	usernames  map[string]string

	swipes      []model.Swipe
	swipesByAct map[string][]int

	matches     map[string]*model.Match
	matchOrder  []string
	matchByPair map[string]string

	messages map[string][]*model.Message

	venues     map[string]*model.Venue
	venueOrder []string

	proposals   map[string]*model.Proposal
	proposalSeq []string

	posts []*model.Post

	tokens      map[string]*model.RefreshToken
	tokenByHash map[string]string

	now func() time.Time
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		actors:      make(map[string]*model.Actor),
		usernames:   make(map[string]string),
		swipesByAct: make(map[string][]int),
		matches:     make(map[string]*model.Match),
		matchByPair: make(map[string]string),
		messages:    make(map[string][]*model.Message),
		venues:      make(map[string]*model.Venue),
		proposals:   make(map[string]*model.Proposal),
		tokens:      make(map[string]*model.RefreshToken),
		tokenByHash: make(map[string]string),
		now:         time.Now,
	}
}

func newID() string { return uuid.NewString() }

// ----- actors -----

func (s *Store) CreateActor(_ context.Context, a *model.Actor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.usernames[a.Username]; taken {
		return store.ErrConflict
	}
	a.ID = newID()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now()
	}
	cp := *a
	s.actors[a.ID] = &cp
	s.actorOrder = append(s.actorOrder, a.ID)
	s.usernames[a.Username] = a.ID
	return nil
}

// actorsExistLocked mirrors the foreign keys of the SQL schema.
func (s *Store) actorsExistLocked(ids ...string) bool {
	for _, id := range ids {
		if _, ok := s.actors[id]; !ok {
			return false
		}
	}
	return true
}

func (s *Store) GetActor(_ context.Context, id string) (*model.Actor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.actors[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *Store) ActorByUsername(ctx context.Context, username string) (*model.Actor, error) {
	s.mu.RLock()
	id, ok := s.usernames[username]
	s.mu.RUnlock()
	if !ok {
		return nil, store.ErrNotFound
	}
	return s.GetActor(ctx, id)
}

func (s *Store) UpdateActor(_ context.Context, a *model.Actor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.actors[a.ID]
	if !ok {
		return store.ErrNotFound
	}
	if a.Username != cur.Username {
		if _, taken := s.usernames[a.Username]; taken {
			return store.ErrConflict
		}
		delete(s.usernames, cur.Username)
		s.usernames[a.Username] = a.ID
	}
	cp := *a
	cp.CreatedAt = cur.CreatedAt
	s.actors[a.ID] = &cp
	return nil
}

func (s *Store) ListActors(_ context.Context) ([]model.Actor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Actor, 0, len(s.actorOrder))
	for _, id := range s.actorOrder {
		out = append(out, *s.actors[id])
	}
	return out, nil
}

// ----- swipes -----

func (s *Store) CreateSwipe(_ context.Context, sw *model.Swipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.actorsExistLocked(sw.ActorID, sw.SubjectID) {
		return store.ErrNotFound
	}
	sw.ID = newID()
	if sw.CreatedAt.IsZero() {
		sw.CreatedAt = s.now()
	}
	s.swipes = append(s.swipes, *sw)
	s.swipesByAct[sw.ActorID] = append(s.swipesByAct[sw.ActorID], len(s.swipes)-1)
	return nil
}

func (s *Store) HasSwiped(_ context.Context, actorID, subjectID string, dir model.Direction) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, i := range s.swipesByAct[actorID] {
		sw := s.swipes[i]
		if sw.SubjectID == subjectID && sw.Direction == dir {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) SwipedSubjects(_ context.Context, actorID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.swipesByAct[actorID]
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.swipes[i].SubjectID)
	}
	return out, nil
}

// ----- matches -----

func (s *Store) CreateMatchIfAbsent(_ context.Context, m *model.Match) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.actorsExistLocked(m.ActorAID, m.ActorBID) {
		return false, store.ErrNotFound
	}
	if m.PairKey == "" {
		m.PairKey = model.PairKey(m.ActorAID, m.ActorBID)
	}
	if id, ok := s.matchByPair[m.PairKey]; ok {
		*m = *s.matches[id]
		return false, nil
	}
	m.ID = newID()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.now()
	}
	cp := *m
	s.matches[m.ID] = &cp
	s.matchOrder = append(s.matchOrder, m.ID)
	s.matchByPair[m.PairKey] = m.ID
	return true, nil
}

func (s *Store) GetMatch(_ context.Context, id string) (*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (s *Store) MatchByPair(ctx context.Context, a, b string) (*model.Match, error) {
	s.mu.RLock()
	id, ok := s.matchByPair[model.PairKey(a, b)]
	s.mu.RUnlock()
	if !ok {
		return nil, store.ErrNotFound
	}
	return s.GetMatch(ctx, id)
}

func (s *Store) MatchesFor(_ context.Context, actorID string) ([]model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Match
	for _, id := range s.matchOrder {
		if m := s.matches[id]; m.HasActor(actorID) {
			out = append(out, *m)
		}
	}
	return out, nil
}

// ----- messages -----

func (s *Store) CreateMessage(_ context.Context, m *model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[m.MatchID]; !ok || !s.actorsExistLocked(m.SenderID, m.ReceiverID) {
		return store.ErrNotFound
	}
	m.ID = newID()
	if m.SentAt.IsZero() {
		m.SentAt = s.now()
	}
	cp := *m
	s.messages[m.MatchID] = append(s.messages[m.MatchID], &cp)
	return nil
}

func (s *Store) ListMessages(_ context.Context, matchID string) ([]model.Message, error) {
	s.mu.RLock()
	thread := s.messages[matchID]
	out := make([]model.Message, len(thread))
	for i, m := range thread {
		out[i] = *m
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SentAt.Before(out[j].SentAt)
	})
	return out, nil
}

func (s *Store) MarkRead(_ context.Context, matchID, receiverID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, m := range s.messages[matchID] {
		if m.ReceiverID == receiverID && !m.Read {
			m.Read = true
			n++
		}
	}
	return n, nil
}

// ----- venues -----

func (s *Store) CreateVenue(_ context.Context, v *model.Venue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = newID()
	cp := *v
	s.venues[v.ID] = &cp
	s.venueOrder = append(s.venueOrder, v.ID)
	return nil
}

func (s *Store) GetVenue(_ context.Context, id string) (*model.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.venues[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (s *Store) ListVenues(_ context.Context) ([]model.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Venue, 0, len(s.venueOrder))
	for _, id := range s.venueOrder {
		out = append(out, *s.venues[id])
	}
	return out, nil
}

// ----- proposals -----

func copyProposal(p *model.Proposal) model.Proposal {
	cp := *p
	cp.Participants = append([]string{}, p.Participants...)
	return cp
}

func (s *Store) CreateProposal(_ context.Context, p *model.Proposal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.venues[p.VenueID]; !ok || !s.actorsExistLocked(p.CreatedBy) || !s.actorsExistLocked(p.Participants...) {
		return store.ErrNotFound
	}
	p.ID = newID()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	cp := copyProposal(p)
	s.proposals[p.ID] = &cp
	s.proposalSeq = append(s.proposalSeq, p.ID)
	return nil
}

func (s *Store) GetProposal(_ context.Context, id string) (*model.Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.proposals[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := copyProposal(p)
	return &cp, nil
}

func (s *Store) ProposalsFor(_ context.Context, actorID string) ([]model.Proposal, error) {
	s.mu.RLock()
	var out []model.Proposal
	for _, id := range s.proposalSeq {
		if p := s.proposals[id]; p.Involves(actorID) {
			out = append(out, copyProposal(p))
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].When.Before(out[j].When)
	})
	return out, nil
}

// ----- posts -----

func (s *Store) CreatePost(_ context.Context, p *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.actorsExistLocked(p.ActorID) {
		return store.ErrNotFound
	}
	if _, ok := s.venues[p.VenueID]; p.VenueID != "" && !ok {
		return store.ErrNotFound
	}
	p.ID = newID()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	cp := *p
	s.posts = append(s.posts, &cp)
	return nil
}

func (s *Store) listPosts(keep func(*model.Post) bool) []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Post
	// newest first: walk insertion order backwards, then settle by timestamp
	for i := len(s.posts) - 1; i >= 0; i-- {
		if keep(s.posts[i]) {
			out = append(out, *s.posts[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Store) ListPosts(_ context.Context) ([]model.Post, error) {
	return s.listPosts(func(*model.Post) bool { return true }), nil
}

func (s *Store) PostsBy(_ context.Context, actorID string) ([]model.Post, error) {
	return s.listPosts(func(p *model.Post) bool { return p.ActorID == actorID }), nil
}

// ----- refresh tokens -----

func (s *Store) CreateRefreshToken(_ context.Context, actorID, tokenHash string, expiresAt time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.actorsExistLocked(actorID) {
		return "", store.ErrNotFound
	}
	return s.insertTokenLocked(actorID, tokenHash, expiresAt), nil
}

func (s *Store) insertTokenLocked(actorID, tokenHash string, expiresAt time.Time) string {
	id := newID()
	s.tokens[id] = &model.RefreshToken{
		ID:        id,
		ActorID:   actorID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: s.now(),
	}
	s.tokenByHash[tokenHash] = id
	return id
}

func (s *Store) RefreshTokenByHash(_ context.Context, tokenHash string) (*model.RefreshToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.tokenByHash[tokenHash]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *s.tokens[id]
	return &cp, nil
}

func (s *Store) RotateRefreshToken(_ context.Context, oldID, actorID, newHash string, newExpiry time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.tokens[oldID]
	if !ok || old.Revoked || old.ActorID != actorID {
		return "", store.ErrNotFound
	}
	next := s.insertTokenLocked(actorID, newHash, newExpiry)
	old.Revoked = true
	old.ReplacedBy = &next
	return next, nil
}

func (s *Store) RevokeAllRefreshTokens(_ context.Context, actorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tokens {
		if t.ActorID == actorID {
			t.Revoked = true
		}
	}
	return nil
}
