// Package auth signs access tokens, hashes passwords and manages the
// refresh tokens that keep a session alive.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrBadToken covers every rejected access or refresh token.
var ErrBadToken = errors.New("invalid token")

// DefaultAccessTTL is used when a caller passes a zero ttl.
const DefaultAccessTTL = 15 * time.Minute

const refreshTokenBytes = 32

// only HS256, and an expiry is mandatory
var tokenParser = jwt.NewParser(
	jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	jwt.WithExpirationRequired(),
	jwt.WithIssuedAt(),
)

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// Claims names the actor an access token speaks for. Subject mirrors ActorID.
type Claims struct {
	ActorID string `json:"uid"`
	jwt.RegisteredClaims
}

// Validate is called by the parser after the registered claims pass.
func (c Claims) Validate() error {
	if c.ActorID == "" || c.Subject != c.ActorID {
		return ErrBadToken
	}
	return nil
}

func MakeToken(actorID, secret string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultAccessTTL
	}
	issued := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		ActorID: actorID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actorID,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(ttl)),
		},
	})
	return tok.SignedString([]byte(secret))
}

// ParseToken verifies raw against secret. Every failure wraps ErrBadToken.
func ParseToken(raw, secret string) (*Claims, error) {
	var c Claims
	_, err := tokenParser.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadToken, err)
	}
	return &c, nil
}

// GenerateRefreshToken returns the opaque value handed to the client and
// the digest that is stored in its place.
func GenerateRefreshToken() (raw, hash string, err error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("refresh token: %w", err)
	}
	raw = hex.EncodeToString(b)
	return raw, HashRefreshToken(raw), nil
}

func HashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
