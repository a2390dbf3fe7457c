// Package httpapi serves the JSON API browsers use, next to the gRPC-Web bridge.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"slices"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"golf-match-api/internal/apperr"
	"golf-match-api/internal/auth"
	"golf-match-api/internal/engine"
	"golf-match-api/internal/grpcweb"
	"golf-match-api/internal/media"
	"golf-match-api/internal/middleware"
)

const maxBody = 1 << 20

// PhotoSigner hands out presigned profile picture URLs.
type PhotoSigner interface {
	UploadURL(ctx context.Context, actorID, contentType string) (*media.Upload, error)
	ReadURL(ctx context.Context, key string) (string, error)
}

type Options struct {
	// Photos is nil when no bucket is configured.
	Photos  PhotoSigner
	Limiter *middleware.RateLimiter
	// CORSOrigins empty allows same-origin requests only.
	CORSOrigins []string
	// GRPCWeb receives application/grpc-web requests when set.
	GRPCWeb http.Handler
}

type Server struct {
	engine   *engine.Engine
	sessions *auth.Sessions
	opts     Options
}

func New(e *engine.Engine, s *auth.Sessions, opts Options) *Server {
	return &Server{engine: e, sessions: s, opts: opts}
}

// Handler builds the router with CORS and authentication applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	if s.opts.GRPCWeb != nil {
		r.MatcherFunc(func(req *http.Request, _ *mux.RouteMatch) bool {
			return grpcweb.IsGRPCWeb(req)
		}).Handler(s.opts.GRPCWeb)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Authenticate(s.sessions))

	api.Handle("/auth/register", s.limit(s.register)).Methods(http.MethodPost)
	api.Handle("/auth/login", s.limit(s.login)).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", s.refresh).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", s.logout).Methods(http.MethodPost)

	api.HandleFunc("/me", s.getMe).Methods(http.MethodGet)
	api.HandleFunc("/me", s.updateMe).Methods(http.MethodPut)
	api.HandleFunc("/me/photo", s.photoUpload).Methods(http.MethodPost)
	api.HandleFunc("/me/photo", s.photoRead).Methods(http.MethodGet)

	api.HandleFunc("/profiles", s.listCandidates).Methods(http.MethodGet)
	api.HandleFunc("/swipe", s.swipe).Methods(http.MethodPost)
	api.HandleFunc("/matches", s.listMatches).Methods(http.MethodGet)
	api.HandleFunc("/matches/{matchId}/messages", s.listMessages).Methods(http.MethodGet)
	api.HandleFunc("/matches/{matchId}/messages", s.sendMessage).Methods(http.MethodPost)
	api.HandleFunc("/matches/{matchId}/read", s.markRead).Methods(http.MethodPost)

	api.HandleFunc("/courses", s.listVenues).Methods(http.MethodGet)
	api.HandleFunc("/courses/{id}", s.getVenue).Methods(http.MethodGet)
	api.HandleFunc("/tee-times", s.listTeeTimes).Methods(http.MethodGet)
	api.HandleFunc("/tee-times", s.proposeTeeTime).Methods(http.MethodPost)

	api.HandleFunc("/posts", s.listPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts", s.createPost).Methods(http.MethodPost)
	api.HandleFunc("/users/{userId}/posts", s.postsBy).Methods(http.MethodGet)

	return cors.New(corsOptions(s.opts.CORSOrigins)).Handler(r)
}

// corsOptions sends cookies only to listed origins. A wildcard still
// allows bearer-token calls from anywhere, without credentials.
func corsOptions(origins []string) cors.Options {
	o := cors.Options{
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Grpc-Web", "X-User-Agent"},
		ExposedHeaders:   []string{"Grpc-Status", "Grpc-Message"},
		AllowCredentials: true,
	}
	switch {
	case len(origins) == 0:
		// rs/cors treats an empty list as "*"
		o.AllowOriginFunc = func(string) bool { return false }
	case slices.Contains(origins, "*"):
		o.AllowedOrigins = []string{"*"}
		o.AllowCredentials = false
	default:
		o.AllowedOrigins = origins
	}
	return o
}

func (s *Server) limit(h http.HandlerFunc) http.Handler {
	if s.opts.Limiter == nil {
		return h
	}
	return middleware.RateLimitHTTP(s.opts.Limiter)(h)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// writeError hides internal causes; the engine has already logged them.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, apperr.HTTPStatus(err), map[string]string{"error": apperr.PublicMessage(err)})
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Validation("request body required")
		}
		return apperr.Validation("invalid request body")
	}
	return nil
}

// actor returns the caller or writes 401.
func actor(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := middleware.ActorID(r.Context())
	if id == "" {
		writeError(w, apperr.Unauthenticated("authentication required"))
		return "", false
	}
	return id, true
}
