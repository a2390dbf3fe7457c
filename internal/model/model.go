package model

import (
	"strings"
	"time"
)

type Actor struct {
	ID             string
	Username       string
	PasswordHash   string
	Name           string
	Age            *int
	Handicap       *int
	SkillLevel     string
	Gender         string
	Bio            string
	ProfilePicture string
	CreatedAt      time.Time
}

// Direction is a swipe decision. Right means interested.
type Direction string

const (
	DirectionRight Direction = "right"
	DirectionLeft  Direction = "left"
)

// ParseDirection accepts the wire spellings clients send for a swipe.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right", "interested", "like":
		return DirectionRight, true
	case "left", "not_interested", "not-interested", "pass":
		return DirectionLeft, true
	}
	return "", false
}

type Swipe struct {
	ID        string
	ActorID   string
	SubjectID string
	Direction Direction
	CreatedAt time.Time
}

const (
	MatchActive   = "active"
	MatchInactive = "inactive"
)

type Match struct {
	ID        string
	ActorAID  string
	ActorBID  string
	PairKey   string
	Status    string
	CreatedAt time.Time
}

// PairKey is the same for (a, b) and (b, a).
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + ":" + b
}

func (m *Match) HasActor(id string) bool {
	return id != "" && (m.ActorAID == id || m.ActorBID == id)
}

// Other returns the participant that is not id.
func (m *Match) Other(id string) (string, bool) {
	switch id {
	case m.ActorAID:
		return m.ActorBID, true
	case m.ActorBID:
		return m.ActorAID, true
	}
	return "", false
}

type Message struct {
	ID         string
	MatchID    string
	SenderID   string
	ReceiverID string
	Content    string
	SentAt     time.Time
	Read       bool
}

const (
	ProposalPending   = "pending"
	ProposalConfirmed = "confirmed"
	ProposalCancelled = "cancelled"
)

// Proposal is a proposed tee time.
type Proposal struct {
	ID           string
	VenueID      string
	When         time.Time
	Status       string
	CreatedBy    string
	Participants []string
	CreatedAt    time.Time
}

func (p *Proposal) Involves(actorID string) bool {
	if p.CreatedBy == actorID {
		return true
	}
	for _, id := range p.Participants {
		if id == actorID {
			return true
		}
	}
	return false
}

// Venue is a golf course.
type Venue struct {
	ID          string
	Name        string
	Location    string
	Description string
	ImageURL    string
	PriceRange  string
	Rating      *int
}

type Post struct {
	ID        string
	ActorID   string
	Content   string
	ImageURL  string
	VenueID   string
	Score     *int
	PlayedAt  *time.Time
	CreatedAt time.Time
}

type RefreshToken struct {
	ID         string
	ActorID    string
	TokenHash  string
	ExpiresAt  time.Time
	Revoked    bool
	ReplacedBy *string
	CreatedAt  time.Time
}
