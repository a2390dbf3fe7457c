package httpapi

import (
	"errors"
	"log"
	"net/http"
	"time"

	"golf-match-api/internal/apperr"
	"golf-match-api/internal/auth"
	"golf-match-api/internal/engine"
	"golf-match-api/internal/middleware"
	"golf-match-api/internal/model"
)

// RefreshCookie is scoped to the auth routes only.
const RefreshCookie = "refresh_token"

type registerRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	FullName   string `json:"fullName"`
	Age        *int   `json:"age"`
	Handicap   *int   `json:"handicap"`
	SkillLevel string `json:"skillLevel"`
	Gender     string `json:"gender"`
	Bio        string `json:"bio"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User  *actorJSON `json:"user,omitempty"`
	Token string     `json:"token"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	a, err := s.engine.Register(r.Context(), engine.RegisterInput{
		Username:   req.Username,
		Password:   req.Password,
		Name:       req.FullName,
		Age:        req.Age,
		Handicap:   req.Handicap,
		SkillLevel: req.SkillLevel,
		Gender:     req.Gender,
		Bio:        req.Bio,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	s.startSession(w, r, a, http.StatusCreated)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	a, err := s.engine.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	s.startSession(w, r, a, http.StatusOK)
}

func (s *Server) startSession(w http.ResponseWriter, r *http.Request, a *model.Actor, code int) {
	tok, err := s.sessions.Issue(r.Context(), a.ID)
	if err != nil {
		log.Printf("issue session: %v", err)
		writeError(w, apperr.Internal("issue session failed", err))
		return
	}
	s.setCookies(w, r, tok)
	u := toActor(*a)
	writeJSON(w, code, sessionResponse{User: &u, Token: tok.AccessToken})
}

// refresh rotates the refresh cookie and returns a new access token.
func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(RefreshCookie)
	if err != nil || c.Value == "" {
		writeError(w, apperr.Unauthenticated("refresh token required"))
		return
	}
	tok, err := s.sessions.Refresh(r.Context(), c.Value)
	if errors.Is(err, auth.ErrBadToken) {
		clearCookies(w)
		writeError(w, apperr.Unauthenticated("invalid refresh token"))
		return
	}
	if err != nil {
		log.Printf("refresh session: %v", err)
		writeError(w, apperr.Internal("refresh failed", err))
		return
	}
	s.setCookies(w, r, tok)
	writeJSON(w, http.StatusOK, sessionResponse{Token: tok.AccessToken})
}

// logout revokes every refresh token of the caller. Anonymous callers
// only get their cookies cleared.
func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if id := middleware.ActorID(r.Context()); id != "" {
		if err := s.sessions.Revoke(r.Context(), id); err != nil {
			log.Printf("revoke sessions: %v", err)
			writeError(w, apperr.Internal("logout failed", err))
			return
		}
	}
	clearCookies(w)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) setCookies(w http.ResponseWriter, r *http.Request, tok *auth.Tokens) {
	secure := r.TLS != nil
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessCookie,
		Value:    tok.AccessToken,
		Path:     "/",
		MaxAge:   int(s.sessions.AccessTTL() / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookie,
		Value:    tok.RefreshToken,
		Path:     "/api/auth",
		Expires:  tok.RefreshExpiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func clearCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: middleware.AccessCookie, Path: "/", MaxAge: -1, HttpOnly: true})
	http.SetCookie(w, &http.Cookie{Name: RefreshCookie, Path: "/api/auth", MaxAge: -1, HttpOnly: true})
}
