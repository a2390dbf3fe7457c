package wire_test

import (
	"testing"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	"golf-match-api/internal/wire"
)

func i32(v int32) *int32 { return &v }

func TestNestedAndRepeatedFields(t *testing.T) {
	when := timestamppb.New(time.Date(2025, 7, 4, 9, 30, 0, 0, time.UTC))
	in := &wire.ListTeeTimesResponse{TeeTimes: []*wire.TeeTime{
		{
			Id:           "t1",
			VenueId:      "v1",
			When:         when,
			Status:       "pending",
			Participants: []string{"a", "b"},
			Venue:        &wire.Venue{Id: "v1", Name: "Links", Rating: i32(0)},
		},
		{Id: "t2"},
	}}

	var out wire.ListTeeTimesResponse
	if err := out.UnmarshalWire(in.AppendWire(nil)); err != nil {
		t.Fatal(err)
	}
	if len(out.TeeTimes) != 2 {
		t.Fatalf("expected 2 tee times, got %d", len(out.TeeTimes))
	}
	got := out.TeeTimes[0]
	if !got.When.AsTime().Equal(when.AsTime()) {
		t.Errorf("when: %v", got.When.AsTime())
	}
	if len(got.Participants) != 2 || got.Participants[1] != "b" {
		t.Errorf("participants: %v", got.Participants)
	}
	// an explicit zero survives because the field is optional
	if got.Venue == nil || got.Venue.Rating == nil || *got.Venue.Rating != 0 {
		t.Errorf("venue: %+v", got.Venue)
	}
	if out.TeeTimes[1].Venue != nil {
		t.Error("absent venue decoded as present")
	}
}

func TestNegativeHandicap(t *testing.T) {
	in := &wire.RegisterRequest{Username: "pro", Handicap: i32(-3)}
	var out wire.RegisterRequest
	if err := out.UnmarshalWire(in.AppendWire(nil)); err != nil {
		t.Fatal(err)
	}
	if out.Handicap == nil || *out.Handicap != -3 {
		t.Errorf("handicap: %v", out.Handicap)
	}
	if out.Age != nil {
		t.Error("unset age decoded as present")
	}
}

func TestUnknownFieldsSkipped(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 99, protowire.VarintType)
	b = protowire.AppendVarint(b, 7)
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, "m1")

	var req wire.ListMessagesRequest
	if err := req.UnmarshalWire(b); err != nil {
		t.Fatal(err)
	}
	if req.MatchId != "m1" {
		t.Errorf("match id: %q", req.MatchId)
	}
}

func TestTruncatedInput(t *testing.T) {
	b := (&wire.SendMessageRequest{MatchId: "m1", Content: "hello"}).AppendWire(nil)
	var req wire.SendMessageRequest
	if err := req.UnmarshalWire(b[:len(b)-2]); err == nil {
		t.Error("expected parse error")
	}
}

// The hand encoding must agree with the real Timestamp message.
func TestTimestampMatchesProto(t *testing.T) {
	ts := timestamppb.New(time.Date(2025, 1, 2, 3, 4, 5, 600, time.UTC))
	want, err := proto.Marshal(ts)
	if err != nil {
		t.Fatal(err)
	}

	b := (&wire.ChatMessage{SentAt: ts}).AppendWire(nil)
	num, typ, n := protowire.ConsumeTag(b)
	if num != 6 || typ != protowire.BytesType {
		t.Fatalf("unexpected tag %d/%d", num, typ)
	}
	got, _ := protowire.ConsumeBytes(b[n:])
	if string(got) != string(want) {
		t.Errorf("timestamp bytes differ: %x vs %x", got, want)
	}
}

func TestCodecRejectsForeignTypes(t *testing.T) {
	var c wire.Codec
	if _, err := c.Marshal("nope"); err == nil {
		t.Error("expected marshal error")
	}
	if err := c.Unmarshal(nil, new(int)); err == nil {
		t.Error("expected unmarshal error")
	}
	b, err := c.Marshal(&wire.LoginRequest{Username: "u", Password: "p"})
	if err != nil {
		t.Fatal(err)
	}
	var out wire.LoginRequest
	if err := c.Unmarshal(b, &out); err != nil || out.Username != "u" || out.Password != "p" {
		t.Errorf("codec round trip: %+v %v", out, err)
	}
}
