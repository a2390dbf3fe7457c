package engine

import (
	"context"
	"strings"

	"golf-match-api/internal/apperr"
	"golf-match-api/internal/model"
)

type PostInput struct {
	ActorID  string
	Content  string
	ImageURL string
	VenueID  string
	Score    *int
	PlayedAt string
}

// PostView is a feed entry with its author and, when tagged, its course.
type PostView struct {
	Post   model.Post
	Author model.Actor
	Venue  *model.Venue
}

func (e *Engine) CreatePost(ctx context.Context, in PostInput) (*model.Post, error) {
	if err := requireActor(in.ActorID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, apperr.Validation("post content is required")
	}
	if in.Score != nil && *in.Score <= 0 {
		return nil, apperr.Validation("score must be positive")
	}

	p := &model.Post{
		ActorID:   in.ActorID,
		Content:   in.Content,
		ImageURL:  strings.TrimSpace(in.ImageURL),
		VenueID:   strings.TrimSpace(in.VenueID),
		Score:     in.Score,
		CreatedAt: e.now(),
	}
	if in.PlayedAt != "" {
		t, err := ParseWhen(in.PlayedAt)
		if err != nil {
			return nil, err
		}
		p.PlayedAt = &t
	}
	if p.VenueID != "" {
		if _, err := e.GetVenue(ctx, p.VenueID); err != nil {
			return nil, err
		}
	}

	if err := e.store.CreatePost(ctx, p); err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("actor %s not found", in.ActorID)
		}
		return nil, fault("create post", err)
	}
	return p, nil
}

// ListPosts is the global feed, newest first.
func (e *Engine) ListPosts(ctx context.Context) ([]PostView, error) {
	ps, err := e.store.ListPosts(ctx)
	if err != nil {
		return nil, fault("list posts", err)
	}
	return e.decoratePosts(ctx, ps, nil)
}

// PostsBy returns actorID's posts, newest first.
func (e *Engine) PostsBy(ctx context.Context, actorID string) ([]PostView, error) {
	author, err := e.GetActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	ps, err := e.store.PostsBy(ctx, actorID)
	if err != nil {
		return nil, fault("list posts", err)
	}
	return e.decoratePosts(ctx, ps, author)
}

func (e *Engine) decoratePosts(ctx context.Context, ps []model.Post, author *model.Actor) ([]PostView, error) {
	actors := map[string]model.Actor{}
	if author != nil {
		actors[author.ID] = *author
	}
	venues := map[string]*model.Venue{}

	out := make([]PostView, 0, len(ps))
	for _, p := range ps {
		a, ok := actors[p.ActorID]
		if !ok {
			got, err := e.store.GetActor(ctx, p.ActorID)
			if err != nil {
				return nil, fault("get post author", err)
			}
			a = public(*got)
			actors[p.ActorID] = a
		}
		v := PostView{Post: p, Author: a}
		if p.VenueID != "" {
			venue, ok := venues[p.VenueID]
			if !ok {
				got, err := e.store.GetVenue(ctx, p.VenueID)
				if err != nil && !isNotFound(err) {
					return nil, fault("get post venue", err)
				}
				venue = got
				venues[p.VenueID] = venue
			}
			v.Venue = venue
		}
		out = append(out, v)
	}
	return out, nil
}
