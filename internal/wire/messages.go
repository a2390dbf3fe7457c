package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ----- shared records -----

type Actor struct {
	Id             string
	Username       string
	Name           string
	Age            *int32
	Handicap       *int32
	SkillLevel     string
	Gender         string
	Bio            string
	ProfilePicture string
	CreatedAt      *timestamppb.Timestamp
}

func (m *Actor) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Username)
	b = appendString(b, 3, m.Name)
	b = appendOptSint32(b, 4, m.Age)
	b = appendOptSint32(b, 5, m.Handicap)
	b = appendString(b, 6, m.SkillLevel)
	b = appendString(b, 7, m.Gender)
	b = appendString(b, 8, m.Bio)
	b = appendString(b, 9, m.ProfilePicture)
	return appendTimestamp(b, 10, m.CreatedAt)
}

func (m *Actor) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return str(typ, b, &m.Id)
		case 2:
			return str(typ, b, &m.Username)
		case 3:
			return str(typ, b, &m.Name)
		case 4:
			return optSint32(typ, b, &m.Age)
		case 5:
			return optSint32(typ, b, &m.Handicap)
		case 6:
			return str(typ, b, &m.SkillLevel)
		case 7:
			return str(typ, b, &m.Gender)
		case 8:
			return str(typ, b, &m.Bio)
		case 9:
			return str(typ, b, &m.ProfilePicture)
		case 10:
			return timestamp(typ, b, &m.CreatedAt)
		}
		return 0
	})
}

type Swipe struct {
	Id        string
	ActorId   string
	SubjectId string
	Direction string
	CreatedAt *timestamppb.Timestamp
}

func (m *Swipe) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.ActorId)
	b = appendString(b, 3, m.SubjectId)
	b = appendString(b, 4, m.Direction)
	return appendTimestamp(b, 5, m.CreatedAt)
}

func (m *Swipe) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return str(typ, b, &m.Id)
		case 2:
			return str(typ, b, &m.ActorId)
		case 3:
			return str(typ, b, &m.SubjectId)
		case 4:
			return str(typ, b, &m.Direction)
		case 5:
			return timestamp(typ, b, &m.CreatedAt)
		}
		return 0
	})
}

type Match struct {
	Id        string
	ActorAId  string
	ActorBId  string
	Status    string
	CreatedAt *timestamppb.Timestamp
}

func (m *Match) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.ActorAId)
	b = appendString(b, 3, m.ActorBId)
	b = appendString(b, 4, m.Status)
	return appendTimestamp(b, 5, m.CreatedAt)
}

func (m *Match) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return str(typ, b, &m.Id)
		case 2:
			return str(typ, b, &m.ActorAId)
		case 3:
			return str(typ, b, &m.ActorBId)
		case 4:
			return str(typ, b, &m.Status)
		case 5:
			return timestamp(typ, b, &m.CreatedAt)
		}
		return 0
	})
}

type MatchSummary struct {
	Match  *Match
	Other  *Actor
	Unread uint32
}

func (m *MatchSummary) AppendWire(b []byte) []byte {
	if m.Match != nil {
		b = appendMessage(b, 1, m.Match)
	}
	if m.Other != nil {
		b = appendMessage(b, 2, m.Other)
	}
	return appendUint32(b, 3, m.Unread)
}

func (m *MatchSummary) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			m.Match = &Match{}
			return nested(typ, b, m.Match)
		case 2:
			m.Other = &Actor{}
			return nested(typ, b, m.Other)
		case 3:
			return uint32Field(typ, b, &m.Unread)
		}
		return 0
	})
}

type ChatMessage struct {
	Id         string
	MatchId    string
	SenderId   string
	ReceiverId string
	Content    string
	SentAt     *timestamppb.Timestamp
	Read       bool
}

func (m *ChatMessage) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.MatchId)
	b = appendString(b, 3, m.SenderId)
	b = appendString(b, 4, m.ReceiverId)
	b = appendString(b, 5, m.Content)
	b = appendTimestamp(b, 6, m.SentAt)
	return appendBool(b, 7, m.Read)
}

func (m *ChatMessage) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return str(typ, b, &m.Id)
		case 2:
			return str(typ, b, &m.MatchId)
		case 3:
			return str(typ, b, &m.SenderId)
		case 4:
			return str(typ, b, &m.ReceiverId)
		case 5:
			return str(typ, b, &m.Content)
		case 6:
			return timestamp(typ, b, &m.SentAt)
		case 7:
			return boolean(typ, b, &m.Read)
		}
		return 0
	})
}

type Venue struct {
	Id          string
	Name        string
	Location    string
	Description string
	ImageUrl    string
	PriceRange  string
	Rating      *int32
}

func (m *Venue) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, m.Location)
	b = appendString(b, 4, m.Description)
	b = appendString(b, 5, m.ImageUrl)
	b = appendString(b, 6, m.PriceRange)
	return appendOptSint32(b, 7, m.Rating)
}

func (m *Venue) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return str(typ, b, &m.Id)
		case 2:
			return str(typ, b, &m.Name)
		case 3:
			return str(typ, b, &m.Location)
		case 4:
			return str(typ, b, &m.Description)
		case 5:
			return str(typ, b, &m.ImageUrl)
		case 6:
			return str(typ, b, &m.PriceRange)
		case 7:
			return optSint32(typ, b, &m.Rating)
		}
		return 0
	})
}

type TeeTime struct {
	Id           string
	VenueId      string
	When         *timestamppb.Timestamp
	Status       string
	CreatedBy    string
	Participants []string
	CreatedAt    *timestamppb.Timestamp
	Venue        *Venue
}

func (m *TeeTime) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.VenueId)
	b = appendTimestamp(b, 3, m.When)
	b = appendString(b, 4, m.Status)
	b = appendString(b, 5, m.CreatedBy)
	b = appendStrings(b, 6, m.Participants)
	b = appendTimestamp(b, 7, m.CreatedAt)
	if m.Venue != nil {
		b = appendMessage(b, 8, m.Venue)
	}
	return b
}

func (m *TeeTime) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return str(typ, b, &m.Id)
		case 2:
			return str(typ, b, &m.VenueId)
		case 3:
			return timestamp(typ, b, &m.When)
		case 4:
			return str(typ, b, &m.Status)
		case 5:
			return str(typ, b, &m.CreatedBy)
		case 6:
			return strs(typ, b, &m.Participants)
		case 7:
			return timestamp(typ, b, &m.CreatedAt)
		case 8:
			m.Venue = &Venue{}
			return nested(typ, b, m.Venue)
		}
		return 0
	})
}

// ----- auth -----

type RegisterRequest struct {
	Username   string
	Password   string
	Name       string
	Age        *int32
	Handicap   *int32
	SkillLevel string
	Gender     string
	Bio        string
}

func (m *RegisterRequest) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Username)
	b = appendString(b, 2, m.Password)
	b = appendString(b, 3, m.Name)
	b = appendOptSint32(b, 4, m.Age)
	b = appendOptSint32(b, 5, m.Handicap)
	b = appendString(b, 6, m.SkillLevel)
	b = appendString(b, 7, m.Gender)
	return appendString(b, 8, m.Bio)
}

func (m *RegisterRequest) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return str(typ, b, &m.Username)
		case 2:
			return str(typ, b, &m.Password)
		case 3:
			return str(typ, b, &m.Name)
		case 4:
			return optSint32(typ, b, &m.Age)
		case 5:
			return optSint32(typ, b, &m.Handicap)
		case 6:
			return str(typ, b, &m.SkillLevel)
		case 7:
			return str(typ, b, &m.Gender)
		case 8:
			return str(typ, b, &m.Bio)
		}
		return 0
	})
}

type LoginRequest struct {
	Username string
	Password string
}

func (m *LoginRequest) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Username)
	return appendString(b, 2, m.Password)
}

func (m *LoginRequest) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return str(typ, b, &m.Username)
		case 2:
			return str(typ, b, &m.Password)
		}
		return 0
	})
}

type AuthResponse struct {
	ActorId      string
	AccessToken  string
	RefreshToken string
	Name         string
}

func (m *AuthResponse) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.ActorId)
	b = appendString(b, 2, m.AccessToken)
	b = appendString(b, 3, m.RefreshToken)
	return appendString(b, 4, m.Name)
}

func (m *AuthResponse) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return str(typ, b, &m.ActorId)
		case 2:
			return str(typ, b, &m.AccessToken)
		case 3:
			return str(typ, b, &m.RefreshToken)
		case 4:
			return str(typ, b, &m.Name)
		}
		return 0
	})
}

// ----- swipes and matches -----

type SwipeRequest struct {
	SubjectId string
	Direction string
}

func (m *SwipeRequest) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.SubjectId)
	return appendString(b, 2, m.Direction)
}

func (m *SwipeRequest) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return str(typ, b, &m.SubjectId)
		case 2:
			return str(typ, b, &m.Direction)
		}
		return 0
	})
}

type SwipeResponse struct {
	Swipe    *Swipe
	Match    *Match
	NewMatch bool
}

func (m *SwipeResponse) AppendWire(b []byte) []byte {
	if m.Swipe != nil {
		b = appendMessage(b, 1, m.Swipe)
	}
	if m.Match != nil {
		b = appendMessage(b, 2, m.Match)
	}
	return appendBool(b, 3, m.NewMatch)
}

func (m *SwipeResponse) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			m.Swipe = &Swipe{}
			return nested(typ, b, m.Swipe)
		case 2:
			m.Match = &Match{}
			return nested(typ, b, m.Match)
		case 3:
			return boolean(typ, b, &m.NewMatch)
		}
		return 0
	})
}

// Empty is the request of the list calls that take no arguments.
type Empty struct{}

func (*Empty) AppendWire(b []byte) []byte { return b }

func (*Empty) UnmarshalWire(b []byte) error {
	return walk(b, func(protowire.Number, protowire.Type, []byte) int { return 0 })
}

type ListCandidatesResponse struct {
	Actors []*Actor
}

func (m *ListCandidatesResponse) AppendWire(b []byte) []byte {
	for _, a := range m.Actors {
		b = appendMessage(b, 1, a)
	}
	return b
}

func (m *ListCandidatesResponse) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num != 1 {
			return 0
		}
		a := &Actor{}
		n := nested(typ, b, a)
		if n > 0 {
			m.Actors = append(m.Actors, a)
		}
		return n
	})
}

type ListMatchesResponse struct {
	Matches []*MatchSummary
}

func (m *ListMatchesResponse) AppendWire(b []byte) []byte {
	for _, s := range m.Matches {
		b = appendMessage(b, 1, s)
	}
	return b
}

func (m *ListMatchesResponse) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num != 1 {
			return 0
		}
		s := &MatchSummary{}
		n := nested(typ, b, s)
		if n > 0 {
			m.Matches = append(m.Matches, s)
		}
		return n
	})
}

// ----- messaging -----

type ListMessagesRequest struct {
	MatchId string
}

func (m *ListMessagesRequest) AppendWire(b []byte) []byte {
	return appendString(b, 1, m.MatchId)
}

func (m *ListMessagesRequest) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return str(typ, b, &m.MatchId)
		}
		return 0
	})
}

type ListMessagesResponse struct {
	Messages []*ChatMessage
}

func (m *ListMessagesResponse) AppendWire(b []byte) []byte {
	for _, msg := range m.Messages {
		b = appendMessage(b, 1, msg)
	}
	return b
}

func (m *ListMessagesResponse) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num != 1 {
			return 0
		}
		msg := &ChatMessage{}
		n := nested(typ, b, msg)
		if n > 0 {
			m.Messages = append(m.Messages, msg)
		}
		return n
	})
}

type SendMessageRequest struct {
	MatchId string
	Content string
}

func (m *SendMessageRequest) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.MatchId)
	return appendString(b, 2, m.Content)
}

func (m *SendMessageRequest) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return str(typ, b, &m.MatchId)
		case 2:
			return str(typ, b, &m.Content)
		}
		return 0
	})
}

// ----- scheduling and venues -----

type ProposeTeeTimeRequest struct {
	VenueId      string
	When         *timestamppb.Timestamp
	Participants []string
}

func (m *ProposeTeeTimeRequest) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.VenueId)
	b = appendTimestamp(b, 2, m.When)
	return appendStrings(b, 3, m.Participants)
}

func (m *ProposeTeeTimeRequest) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return str(typ, b, &m.VenueId)
		case 2:
			return timestamp(typ, b, &m.When)
		case 3:
			return strs(typ, b, &m.Participants)
		}
		return 0
	})
}

type ListTeeTimesResponse struct {
	TeeTimes []*TeeTime
}

func (m *ListTeeTimesResponse) AppendWire(b []byte) []byte {
	for _, t := range m.TeeTimes {
		b = appendMessage(b, 1, t)
	}
	return b
}

func (m *ListTeeTimesResponse) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num != 1 {
			return 0
		}
		t := &TeeTime{}
		n := nested(typ, b, t)
		if n > 0 {
			m.TeeTimes = append(m.TeeTimes, t)
		}
		return n
	})
}

type ListVenuesResponse struct {
	Venues []*Venue
}

func (m *ListVenuesResponse) AppendWire(b []byte) []byte {
	for _, v := range m.Venues {
		b = appendMessage(b, 1, v)
	}
	return b
}

func (m *ListVenuesResponse) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num != 1 {
			return 0
		}
		v := &Venue{}
		n := nested(typ, b, v)
		if n > 0 {
			m.Venues = append(m.Venues, v)
		}
		return n
	})
}
