package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"golf-match-api/internal/model"
	"golf-match-api/internal/store"
	"golf-match-api/internal/store/postgres"
)

func setup(t *testing.T) *postgres.Store {
	t.Helper()
	_ = godotenv.Load("../../../.env")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(pool.Close)

	st := postgres.New(pool)
	if err := st.Migrate(ctx, "../../../db/migrations/001_init.sql"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return st
}

func newActor(t *testing.T, st *postgres.Store) *model.Actor {
	t.Helper()
	a := &model.Actor{
		Username:     fmt.Sprintf("golfer-%s", uuid.New().String()[:8]),
		PasswordHash: "x",
		Name:         "Test Golfer",
	}
	if err := st.CreateActor(context.Background(), a); err != nil {
		t.Fatalf("create actor: %v", err)
	}
	return a
}

func TestDuplicateUsername(t *testing.T) {
	st := setup(t)
	a := newActor(t, st)

	dup := &model.Actor{Username: a.Username, PasswordHash: "x", Name: "Other"}
	err := st.CreateActor(context.Background(), dup)
	if !errors.Is(err, store.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestGetActorMissing(t *testing.T) {
	st := setup(t)
	_, err := st.GetActor(context.Background(), uuid.New().String())
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSwipeLedgerKeepsDuplicates(t *testing.T) {
	st := setup(t)
	ctx := context.Background()
	a, b := newActor(t, st), newActor(t, st)

	for _, dir := range []model.Direction{model.DirectionLeft, model.DirectionRight} {
		if err := st.CreateSwipe(ctx, &model.Swipe{ActorID: a.ID, SubjectID: b.ID, Direction: dir}); err != nil {
			t.Fatalf("swipe: %v", err)
		}
	}

	subjects, err := st.SwipedSubjects(ctx, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(subjects) != 2 {
		t.Errorf("expected 2 ledger entries, got %d", len(subjects))
	}
	ok, _ := st.HasSwiped(ctx, a.ID, b.ID, model.DirectionRight)
	if !ok {
		t.Error("right swipe not found")
	}
	ok, _ = st.HasSwiped(ctx, b.ID, a.ID, model.DirectionRight)
	if ok {
		t.Error("reverse swipe should not exist")
	}
}

func TestConcurrentMatchInsertCreatesOne(t *testing.T) {
	st := setup(t)
	ctx := context.Background()
	a, b := newActor(t, st), newActor(t, st)

	const n = 10
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		ids     = map[string]bool{}
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m := &model.Match{ActorAID: a.ID, ActorBID: b.ID, Status: model.MatchActive}
			if i%2 == 1 {
				m.ActorAID, m.ActorBID = b.ID, a.ID
			}
			ok, err := st.CreateMatchIfAbsent(ctx, m)
			if err != nil {
				t.Errorf("insert: %v", err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if ok {
				created++
			}
			ids[m.ID] = true
		}(i)
	}
	wg.Wait()

	if created != 1 {
		t.Errorf("expected exactly one insert, got %d", created)
	}
	if len(ids) != 1 {
		t.Errorf("expected one match id, got %d", len(ids))
	}
}

func TestMessagesOrderedAndMarkRead(t *testing.T) {
	st := setup(t)
	ctx := context.Background()
	a, b := newActor(t, st), newActor(t, st)

	m := &model.Match{ActorAID: a.ID, ActorBID: b.ID, Status: model.MatchActive}
	if _, err := st.CreateMatchIfAbsent(ctx, m); err != nil {
		t.Fatal(err)
	}

	base := time.Now().UTC().Truncate(time.Millisecond)
	msgs := []model.Message{
		{MatchID: m.ID, SenderID: a.ID, ReceiverID: b.ID, Content: "second", SentAt: base.Add(time.Second)},
		{MatchID: m.ID, SenderID: b.ID, ReceiverID: a.ID, Content: "first", SentAt: base},
		{MatchID: m.ID, SenderID: a.ID, ReceiverID: b.ID, Content: "third", SentAt: base.Add(2 * time.Second)},
	}
	for i := range msgs {
		if err := st.CreateMessage(ctx, &msgs[i]); err != nil {
			t.Fatalf("message: %v", err)
		}
	}

	got, err := st.ListMessages(ctx, m.ID)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if got[i].Content != w {
			t.Errorf("position %d: want %q, got %q", i, w, got[i].Content)
		}
	}

	n, err := st.MarkRead(ctx, m.ID, b.ID)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("expected 2 flipped for receiver, got %d", n)
	}
	got, _ = st.ListMessages(ctx, m.ID)
	for _, msg := range got {
		if msg.ReceiverID == a.ID && msg.Read {
			t.Error("message to the other participant should stay unread")
		}
	}
}

func TestProposalRoundTrip(t *testing.T) {
	st := setup(t)
	ctx := context.Background()
	a, b := newActor(t, st), newActor(t, st)

	v := &model.Venue{Name: "Test Links", Location: "Nowhere"}
	if err := st.CreateVenue(ctx, v); err != nil {
		t.Fatal(err)
	}

	when := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	p := &model.Proposal{
		VenueID:      v.ID,
		When:         when,
		Status:       model.ProposalPending,
		CreatedBy:    a.ID,
		Participants: []string{a.ID, b.ID},
	}
	if err := st.CreateProposal(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := st.GetProposal(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Participants) != 2 || got.Participants[1] != b.ID {
		t.Errorf("participants not preserved: %v", got.Participants)
	}
	if !got.When.Equal(when) {
		t.Errorf("when: want %v, got %v", when, got.When)
	}

	list, err := st.ProposalsFor(ctx, b.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != p.ID {
		t.Errorf("invitee should see the proposal, got %+v", list)
	}
}

func TestRotateRefreshToken(t *testing.T) {
	st := setup(t)
	ctx := context.Background()
	a := newActor(t, st)
	exp := time.Now().Add(time.Hour)

	h1, h2 := uuid.New().String(), uuid.New().String()
	oldID, err := st.CreateRefreshToken(ctx, a.ID, h1, exp)
	if err != nil {
		t.Fatal(err)
	}
	next, err := st.RotateRefreshToken(ctx, oldID, a.ID, h2, exp)
	if err != nil {
		t.Fatalf("rotate: %v", err)
	}

	old, _ := st.RefreshTokenByHash(ctx, h1)
	if !old.Revoked || old.ReplacedBy == nil || *old.ReplacedBy != next {
		t.Errorf("old token not linked: %+v", old)
	}
	if _, err := st.RotateRefreshToken(ctx, oldID, a.ID, uuid.New().String(), exp); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("reusing a rotated token: want ErrNotFound, got %v", err)
	}
}
