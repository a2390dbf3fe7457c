package httpapi

import (
	"time"

	"golf-match-api/internal/engine"
	"golf-match-api/internal/model"
)

type actorJSON struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	FullName       string    `json:"fullName"`
	Age            *int      `json:"age,omitempty"`
	Handicap       *int      `json:"handicap,omitempty"`
	SkillLevel     string    `json:"skillLevel,omitempty"`
	Gender         string    `json:"gender,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toActor(a model.Actor) actorJSON {
	return actorJSON{
		ID:             a.ID,
		Username:       a.Username,
		FullName:       a.Name,
		Age:            a.Age,
		Handicap:       a.Handicap,
		SkillLevel:     a.SkillLevel,
		Gender:         a.Gender,
		Bio:            a.Bio,
		ProfilePicture: a.ProfilePicture,
		CreatedAt:      a.CreatedAt,
	}
}

type swipeJSON struct {
	ID        string    `json:"id"`
	SwiperID  string    `json:"swiperId"`
	SwipeeID  string    `json:"swipeeId"`
	Direction string    `json:"direction"`
	CreatedAt time.Time `json:"createdAt"`
}

type matchJSON struct {
	ID        string    `json:"id"`
	User1ID   string    `json:"user1Id"`
	User2ID   string    `json:"user2Id"`
	Status    string    `json:"status"`
	MatchedAt time.Time `json:"matchedAt"`
}

func toMatch(m *model.Match) *matchJSON {
	if m == nil {
		return nil
	}
	return &matchJSON{ID: m.ID, User1ID: m.ActorAID, User2ID: m.ActorBID, Status: m.Status, MatchedAt: m.CreatedAt}
}

type matchViewJSON struct {
	matchJSON
	OtherUser actorJSON `json:"otherUser"`
	Unread    int       `json:"unread"`
}

type messageJSON struct {
	ID         string    `json:"id"`
	MatchID    string    `json:"matchId"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sentAt"`
	IsRead     bool      `json:"isRead"`
}

func toMessage(m model.Message) messageJSON {
	return messageJSON{
		ID:         m.ID,
		MatchID:    m.MatchID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		SentAt:     m.SentAt,
		IsRead:     m.Read,
	}
}

type courseJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	PriceRange  string `json:"priceRange,omitempty"`
	Rating      *int   `json:"rating,omitempty"`
}

func toCourse(v model.Venue) courseJSON {
	return courseJSON{
		ID:          v.ID,
		Name:        v.Name,
		Location:    v.Location,
		Description: v.Description,
		ImageURL:    v.ImageURL,
		PriceRange:  v.PriceRange,
		Rating:      v.Rating,
	}
}

type teeTimeJSON struct {
	ID           string      `json:"id"`
	CourseID     string      `json:"courseId"`
	Date         time.Time   `json:"date"`
	Status       string      `json:"status"`
	CreatedBy    string      `json:"createdBy"`
	Participants []string    `json:"participants"`
	Course       *courseJSON `json:"course,omitempty"`
}

func toTeeTime(p model.Proposal, v *model.Venue) teeTimeJSON {
	out := teeTimeJSON{
		ID:           p.ID,
		CourseID:     p.VenueID,
		Date:         p.When,
		Status:       p.Status,
		CreatedBy:    p.CreatedBy,
		Participants: p.Participants,
	}
	if out.Participants == nil {
		out.Participants = []string{}
	}
	if v != nil {
		c := toCourse(*v)
		out.Course = &c
	}
	return out
}

type postJSON struct {
	ID         string      `json:"id"`
	UserID     string      `json:"userId"`
	Content    string      `json:"content"`
	ImageURL   string      `json:"imageUrl,omitempty"`
	CourseID   string      `json:"courseId,omitempty"`
	Score      *int        `json:"score,omitempty"`
	PlayedDate *time.Time  `json:"playedDate,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	User       *actorJSON  `json:"user,omitempty"`
	Course     *courseJSON `json:"course,omitempty"`
}

func toPost(p model.Post) postJSON {
	return postJSON{
		ID:         p.ID,
		UserID:     p.ActorID,
		Content:    p.Content,
		ImageURL:   p.ImageURL,
		CourseID:   p.VenueID,
		Score:      p.Score,
		PlayedDate: p.PlayedAt,
		CreatedAt:  p.CreatedAt,
	}
}

func toPostViews(vs []engine.PostView) []postJSON {
	out := make([]postJSON, 0, len(vs))
	for _, v := range vs {
		p := toPost(v.Post)
		u := toActor(v.Author)
		p.User = &u
		if v.Venue != nil {
			c := toCourse(*v.Venue)
			p.Course = &c
		}
		out = append(out, p)
	}
	return out
}
