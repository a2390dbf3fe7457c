// Package handler implements the golfmatch.v1 gRPC service on top of the engine.
package handler

import (
	"log"

	"golf-match-api/internal/apperr"
	"golf-match-api/internal/auth"
	"golf-match-api/internal/engine"
	"golf-match-api/internal/wire"
)

type Handler struct {
	engine   *engine.Engine
	sessions *auth.Sessions
}

var _ wire.MatchServiceServer = (*Handler)(nil)

func New(e *engine.Engine, s *auth.Sessions) *Handler {
	return &Handler{engine: e, sessions: s}
}

func fail(op string, err error) error {
	log.Printf("%s: %v", op, err)
	return apperr.Internal(op, err)
}
