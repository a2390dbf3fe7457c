package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"golf-match-api/internal/auth"
)

const secret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	tok, err := auth.MakeToken("actor-1", secret, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	c, err := auth.ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.ActorID != "actor-1" {
		t.Errorf("expected actor-1, got %s", c.ActorID)
	}
}

func TestTokenRejected(t *testing.T) {
	good, _ := auth.MakeToken("actor-1", secret, time.Minute)

	// "none" alg must never be accepted
	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, auth.Claims{ActorID: "actor-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)

	sign := func(c auth.Claims) string {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
		if err != nil {
			t.Fatal(err)
		}
		return raw
	}
	exp := jwt.NewNumericDate(time.Now().Add(time.Minute))
	noExpiry := sign(auth.Claims{ActorID: "actor-1", RegisteredClaims: jwt.RegisteredClaims{Subject: "actor-1"}})
	mismatch := sign(auth.Claims{ActorID: "actor-1", RegisteredClaims: jwt.RegisteredClaims{Subject: "actor-2", ExpiresAt: exp}})
	expired := sign(auth.Claims{ActorID: "actor-1", RegisteredClaims: jwt.RegisteredClaims{
		Subject: "actor-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}})

	tests := []struct {
		name   string
		raw    string
		secret string
	}{
		{"wrong secret", good, "other"},
		{"garbage", "not-a-jwt", secret},
		{"alg none", none, secret},
		{"no expiry", noExpiry, secret},
		{"subject mismatch", mismatch, secret},
		{"expired", expired, secret},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := auth.ParseToken(tt.raw, tt.secret); !errors.Is(err, auth.ErrBadToken) {
				t.Errorf("expected ErrBadToken, got %v", err)
			}
		})
	}
}

func TestPasswordHash(t *testing.T) {
	h, err := auth.HashPassword("hunter22")
	if err != nil {
		t.Fatal(err)
	}
	if !auth.CheckPassword(h, "hunter22") {
		t.Error("correct password rejected")
	}
	if auth.CheckPassword(h, "hunter23") {
		t.Error("wrong password accepted")
	}
}

func TestRefreshTokenHash(t *testing.T) {
	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(raw))
	}
	if auth.HashRefreshToken(raw) != hash {
		t.Error("hash mismatch")
	}
}
