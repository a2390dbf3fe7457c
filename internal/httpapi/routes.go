package httpapi

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"golf-match-api/internal/apperr"
	"golf-match-api/internal/engine"
	"golf-match-api/internal/media"
)

func (s *Server) getMe(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(w, r)
	if !ok {
		return
	}
	a, err := s.engine.GetActor(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toActor(*a))
}

type updateMeRequest struct {
	FullName       *string `json:"fullName"`
	Age            *int    `json:"age"`
	Handicap       *int    `json:"handicap"`
	SkillLevel     *string `json:"skillLevel"`
	Gender         *string `json:"gender"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profilePicture"`
}

func (s *Server) updateMe(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(w, r)
	if !ok {
		return
	}
	var req updateMeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	a, err := s.engine.UpdateActor(r.Context(), id, engine.ActorPatch{
		Name:           req.FullName,
		Age:            req.Age,
		Handicap:       req.Handicap,
		SkillLevel:     req.SkillLevel,
		Gender:         req.Gender,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toActor(*a))
}

var errPhotosDisabled = apperr.NotFound("photo uploads are not configured")

func (s *Server) photoUpload(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(w, r)
	if !ok {
		return
	}
	if s.opts.Photos == nil {
		writeError(w, errPhotosDisabled)
		return
	}
	var req struct {
		ContentType string `json:"contentType"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	up, err := s.opts.Photos.UploadURL(r.Context(), id, req.ContentType)
	if errors.Is(err, media.ErrUnsupportedType) {
		writeError(w, apperr.Validation("unsupported image type %q", req.ContentType))
		return
	}
	if err != nil {
		log.Printf("photo upload url: %v", err)
		writeError(w, apperr.Internal("presign failed", err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"uploadUrl": up.URL,
		"key":       up.Key,
		"expiresAt": up.ExpiresAt,
	})
}

// photoRead resolves the caller's stored picture to a fetchable URL.
func (s *Server) photoRead(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(w, r)
	if !ok {
		return
	}
	a, err := s.engine.GetActor(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	pic := a.ProfilePicture
	if pic == "" {
		writeError(w, apperr.NotFound("no profile picture"))
		return
	}
	// bucket keys are signed; anything else is already a URL
	if strings.HasPrefix(pic, "profile-pics/") {
		if s.opts.Photos == nil {
			writeError(w, errPhotosDisabled)
			return
		}
		if pic, err = s.opts.Photos.ReadURL(r.Context(), pic); err != nil {
			log.Printf("photo read url: %v", err)
			writeError(w, apperr.Internal("presign failed", err))
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": pic})
}

func (s *Server) listCandidates(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(w, r)
	if !ok {
		return
	}
	as, err := s.engine.CandidatesFor(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]actorJSON, 0, len(as))
	for _, a := range as {
		out = append(out, toActor(a))
	}
	writeJSON(w, http.StatusOK, out)
}

type swipeRequest struct {
	SwipeeID  string `json:"swipeeId"`
	Direction string `json:"direction"`
}

func (s *Server) swipe(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(w, r)
	if !ok {
		return
	}
	var req swipeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.engine.RecordSwipe(r.Context(), id, req.SwipeeID, req.Direction)
	if err != nil {
		writeError(w, err)
		return
	}
	sw := res.Swipe
	writeJSON(w, http.StatusOK, map[string]any{
		"swipe": swipeJSON{
			ID:        sw.ID,
			SwiperID:  sw.ActorID,
			SwipeeID:  sw.SubjectID,
			Direction: string(sw.Direction),
			CreatedAt: sw.CreatedAt,
		},
		"match":    toMatch(res.Match),
		"newMatch": res.NewMatch,
	})
}

func (s *Server) listMatches(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(w, r)
	if !ok {
		return
	}
	views, err := s.engine.MatchesFor(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]matchViewJSON, 0, len(views))
	for _, v := range views {
		out = append(out, matchViewJSON{
			matchJSON: *toMatch(&v.Match),
			OtherUser: toActor(v.Other),
			Unread:    v.Unread,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) listMessages(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(w, r)
	if !ok {
		return
	}
	msgs, err := s.engine.ListMessages(r.Context(), mux.Vars(r)["matchId"], id)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]messageJSON, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessage(m))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) sendMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(w, r)
	if !ok {
		return
	}
	var req struct {
		Content string `json:"content"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	m, err := s.engine.SendMessage(r.Context(), mux.Vars(r)["matchId"], id, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMessage(*m))
}

func (s *Server) markRead(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(w, r)
	if !ok {
		return
	}
	n, err := s.engine.MarkThreadRead(r.Context(), mux.Vars(r)["matchId"], id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"updated": n})
}

func (s *Server) listVenues(w http.ResponseWriter, r *http.Request) {
	vs, err := s.engine.ListVenues(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]courseJSON, 0, len(vs))
	for _, v := range vs {
		out = append(out, toCourse(v))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getVenue(w http.ResponseWriter, r *http.Request) {
	v, err := s.engine.GetVenue(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCourse(*v))
}

func (s *Server) listTeeTimes(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(w, r)
	if !ok {
		return
	}
	views, err := s.engine.ProposalsFor(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]teeTimeJSON, 0, len(views))
	for i := range views {
		out = append(out, toTeeTime(views[i].Proposal, &views[i].Venue))
	}
	writeJSON(w, http.StatusOK, out)
}

type teeTimeRequest struct {
	CourseID     string   `json:"courseId"`
	Date         string   `json:"date"`
	Participants []string `json:"participants"`
}

func (s *Server) proposeTeeTime(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(w, r)
	if !ok {
		return
	}
	var req teeTimeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	p, err := s.engine.ProposeActivity(r.Context(), engine.ProposalInput{
		CreatedBy:    id,
		VenueID:      req.CourseID,
		When:         req.Date,
		Participants: req.Participants,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	v, err := s.engine.GetVenue(r.Context(), p.VenueID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTeeTime(*p, v))
}

func (s *Server) listPosts(w http.ResponseWriter, r *http.Request) {
	views, err := s.engine.ListPosts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostViews(views))
}

type postRequest struct {
	Content    string `json:"content"`
	ImageURL   string `json:"imageUrl"`
	CourseID   string `json:"courseId"`
	Score      *int   `json:"score"`
	PlayedDate string `json:"playedDate"`
}

func (s *Server) createPost(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(w, r)
	if !ok {
		return
	}
	var req postRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	p, err := s.engine.CreatePost(r.Context(), engine.PostInput{
		ActorID:  id,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		VenueID:  req.CourseID,
		Score:    req.Score,
		PlayedAt: req.PlayedDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPost(*p))
}

func (s *Server) postsBy(w http.ResponseWriter, r *http.Request) {
	views, err := s.engine.PostsBy(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostViews(views))
}

