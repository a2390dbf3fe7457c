package middleware

import (
	"context"
	"net/http"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"golf-match-api/internal/apperr"
	"golf-match-api/internal/wire"
)

type ctxKey string

const ActorIDKey ctxKey = "uid"

// AccessCookie carries the access token for browser clients.
const AccessCookie = "access_token"

// Verifier resolves an access token to an actor id.
type Verifier interface {
	Verify(raw string) (string, error)
}

// WithActor stores the authenticated actor on ctx.
func WithActor(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, ActorIDKey, actorID)
}

// ActorID returns the authenticated actor, or "" when there is none.
func ActorID(ctx context.Context) string {
	id, _ := ctx.Value(ActorIDKey).(string)
	return id
}

// skip auth for these
var open = map[string]bool{
	wire.FullMethod("Register"):   true,
	wire.FullMethod("Login"):      true,
	wire.FullMethod("ListVenues"): true,
}

func bearer(h string) string {
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func Auth(v Verifier) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if open[info.FullMethod] {
			return next(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, apperr.Unauthenticated("missing metadata")
		}

		// token from Authorization: Bearer <jwt>
		raw := ""
		if vals := md.Get("authorization"); len(vals) > 0 {
			raw = bearer(vals[0])
		}
		if raw == "" {
			return nil, apperr.Unauthenticated("no token")
		}

		actorID, err := v.Verify(raw)
		if err != nil {
			return nil, apperr.Unauthenticated("bad token")
		}
		return next(WithActor(ctx, actorID), req)
	}
}

// Authenticate is the HTTP counterpart of Auth. It accepts a bearer header
// or the access cookie. Requests without a valid token pass through
// anonymous; handlers decide whether identity is required.
func Authenticate(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearer(r.Header.Get("Authorization"))
			if raw == "" {
				if c, err := r.Cookie(AccessCookie); err == nil {
					raw = c.Value
				}
			}
			if raw != "" {
				if actorID, err := v.Verify(raw); err == nil {
					r = r.WithContext(WithActor(r.Context(), actorID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
