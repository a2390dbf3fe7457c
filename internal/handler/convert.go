package handler

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"golf-match-api/internal/engine"
	"golf-match-api/internal/model"
	"golf-match-api/internal/wire"
)

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func int32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func toActor(a *model.Actor) *wire.Actor {
	return &wire.Actor{
		Id:             a.ID,
		Username:       a.Username,
		Name:           a.Name,
		Age:            int32Ptr(a.Age),
		Handicap:       int32Ptr(a.Handicap),
		SkillLevel:     a.SkillLevel,
		Gender:         a.Gender,
		Bio:            a.Bio,
		ProfilePicture: a.ProfilePicture,
		CreatedAt:      ts(a.CreatedAt),
	}
}

func toSwipe(s *model.Swipe) *wire.Swipe {
	return &wire.Swipe{
		Id:        s.ID,
		ActorId:   s.ActorID,
		SubjectId: s.SubjectID,
		Direction: string(s.Direction),
		CreatedAt: ts(s.CreatedAt),
	}
}

func toMatch(m *model.Match) *wire.Match {
	if m == nil {
		return nil
	}
	return &wire.Match{
		Id:        m.ID,
		ActorAId:  m.ActorAID,
		ActorBId:  m.ActorBID,
		Status:    m.Status,
		CreatedAt: ts(m.CreatedAt),
	}
}

func toSummary(v *engine.MatchView) *wire.MatchSummary {
	return &wire.MatchSummary{
		Match:  toMatch(&v.Match),
		Other:  toActor(&v.Other),
		Unread: uint32(v.Unread),
	}
}

func toMessage(m *model.Message) *wire.ChatMessage {
	return &wire.ChatMessage{
		Id:         m.ID,
		MatchId:    m.MatchID,
		SenderId:   m.SenderID,
		ReceiverId: m.ReceiverID,
		Content:    m.Content,
		SentAt:     ts(m.SentAt),
		Read:       m.Read,
	}
}

func toVenue(v *model.Venue) *wire.Venue {
	return &wire.Venue{
		Id:          v.ID,
		Name:        v.Name,
		Location:    v.Location,
		Description: v.Description,
		ImageUrl:    v.ImageURL,
		PriceRange:  v.PriceRange,
		Rating:      int32Ptr(v.Rating),
	}
}

func toTeeTime(p *model.Proposal, v *model.Venue) *wire.TeeTime {
	out := &wire.TeeTime{
		Id:           p.ID,
		VenueId:      p.VenueID,
		When:         ts(p.When),
		Status:       p.Status,
		CreatedBy:    p.CreatedBy,
		Participants: p.Participants,
		CreatedAt:    ts(p.CreatedAt),
	}
	if v != nil {
		out.Venue = toVenue(v)
	}
	return out
}
