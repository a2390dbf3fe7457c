package engine

import (
	"context"
	"errors"
	"strings"

	"golf-match-api/internal/apperr"
	"golf-match-api/internal/auth"
	"golf-match-api/internal/model"
	"golf-match-api/internal/store"
)

const minPasswordLen = 8

type RegisterInput struct {
	Username   string
	Password   string
	Name       string
	Age        *int
	Handicap   *int
	SkillLevel string
	Gender     string
	Bio        string
}

// ActorPatch holds the fields an actor may change about themself. Nil means unchanged.
type ActorPatch struct {
	Name           *string
	Age            *int
	Handicap       *int
	SkillLevel     *string
	Gender         *string
	Bio            *string
	ProfilePicture *string
}

func validateNumbers(age, handicap *int) error {
	if age != nil && (*age < 0 || *age > 130) {
		return apperr.Validation("age out of range")
	}
	// plus handicaps are stored as negatives
	if handicap != nil && (*handicap < -10 || *handicap > 54) {
		return apperr.Validation("handicap out of range")
	}
	return nil
}

func (e *Engine) Register(ctx context.Context, in RegisterInput) (*model.Actor, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return nil, apperr.Validation("username and password required")
	}
	if len(in.Password) < minPasswordLen {
		return nil, apperr.Validation("password too short")
	}
	if err := validateNumbers(in.Age, in.Handicap); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = in.Username
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fault("hash password", err)
	}
	a := &model.Actor{
		Username:     in.Username,
		PasswordHash: hash,
		Name:         name,
		Age:          in.Age,
		Handicap:     in.Handicap,
		SkillLevel:   in.SkillLevel,
		Gender:       in.Gender,
		Bio:          in.Bio,
		CreatedAt:    e.now(),
	}
	if err := e.store.CreateActor(ctx, a); err != nil {
		// don't reveal whether the username exists
		if errors.Is(err, store.ErrConflict) {
			return nil, apperr.Conflict("registration failed")
		}
		return nil, fault("create actor", err)
	}
	out := public(*a)
	return &out, nil
}

// Authenticate checks credentials and returns the actor they belong to.
func (e *Engine) Authenticate(ctx context.Context, username, password string) (*model.Actor, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, apperr.Validation("username and password required")
	}
	a, err := e.store.ActorByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.Unauthenticated("invalid credentials")
		}
		return nil, fault("find actor", err)
	}
	if !auth.CheckPassword(a.PasswordHash, password) {
		return nil, apperr.Unauthenticated("invalid credentials")
	}
	out := public(*a)
	return &out, nil
}

func (e *Engine) GetActor(ctx context.Context, id string) (*model.Actor, error) {
	a, err := e.store.GetActor(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("actor %s not found", id)
		}
		return nil, fault("get actor", err)
	}
	out := public(*a)
	return &out, nil
}

// UpdateActor applies a self-edit.
func (e *Engine) UpdateActor(ctx context.Context, actorID string, p ActorPatch) (*model.Actor, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	if err := validateNumbers(p.Age, p.Handicap); err != nil {
		return nil, err
	}
	a, err := e.store.GetActor(ctx, actorID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("actor %s not found", actorID)
		}
		return nil, fault("get actor", err)
	}

	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, apperr.Validation("name cannot be empty")
		}
		a.Name = name
	}
	if p.Age != nil {
		a.Age = p.Age
	}
	if p.Handicap != nil {
		a.Handicap = p.Handicap
	}
	if p.SkillLevel != nil {
		a.SkillLevel = *p.SkillLevel
	}
	if p.Gender != nil {
		a.Gender = *p.Gender
	}
	if p.Bio != nil {
		a.Bio = *p.Bio
	}
	if p.ProfilePicture != nil {
		a.ProfilePicture = *p.ProfilePicture
	}

	if err := e.store.UpdateActor(ctx, a); err != nil {
		return nil, fault("update actor", err)
	}
	out := public(*a)
	return &out, nil
}
