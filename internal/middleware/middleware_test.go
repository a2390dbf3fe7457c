package middleware_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"golf-match-api/internal/middleware"
	"golf-match-api/internal/wire"
)

type stubVerifier map[string]string

func (s stubVerifier) Verify(raw string) (string, error) {
	if id, ok := s[raw]; ok {
		return id, nil
	}
	return "", errors.New("bad token")
}

var verifier = stubVerifier{"good": "actor-1"}

func echoActor(ctx context.Context, _ any) (any, error) {
	return middleware.ActorID(ctx), nil
}

func callAuth(ctx context.Context, method string) (any, error) {
	info := &grpc.UnaryServerInfo{FullMethod: wire.FullMethod(method)}
	return middleware.Auth(verifier)(ctx, nil, info, echoActor)
}

func withAuth(value string) context.Context {
	md := metadata.New(map[string]string{"authorization": value})
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestAuthInterceptor(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		method string
		want   string
		code   codes.Code
	}{
		{"valid bearer", withAuth("Bearer good"), "ListMatches", "actor-1", codes.OK},
		{"lowercase scheme", withAuth("bearer good"), "ListMatches", "actor-1", codes.OK},
		{"bad token", withAuth("Bearer forged"), "ListMatches", "", codes.Unauthenticated},
		{"no scheme", withAuth("good"), "ListMatches", "", codes.Unauthenticated},
		{"no metadata", context.Background(), "RecordSwipe", "", codes.Unauthenticated},
		{"open method", context.Background(), "ListVenues", "", codes.OK},
		{"login is open", context.Background(), "Login", "", codes.OK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := callAuth(tt.ctx, tt.method)
			if status.Code(err) != tt.code {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}
			if err == nil && got != tt.want {
				t.Errorf("expected actor %q, got %q", tt.want, got)
			}
		})
	}
}

func TestHTTPAuthenticate(t *testing.T) {
	h := middleware.Authenticate(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(middleware.ActorID(r.Context())))
	}))

	tests := []struct {
		name  string
		setup func(r *http.Request)
		want  string
	}{
		{"header", func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") }, "actor-1"},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: middleware.AccessCookie, Value: "good"}) }, "actor-1"},
		{"bad cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: middleware.AccessCookie, Value: "x"}) }, ""},
		{"anonymous", func(*http.Request) {}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(r)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, r)
			if got := rr.Body.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRateLimitInterceptor(t *testing.T) {
	rl := middleware.NewRateLimiter(0.001, 2)
	t.Cleanup(rl.Stop)
	interceptor := middleware.RateLimit(rl)

	ctx := peer.NewContext(context.Background(), &peer.Peer{
		Addr: &net.TCPAddr{IP: net.ParseIP("10.0.0.1"), Port: 4000},
	})
	ok := func(context.Context, any) (any, error) { return nil, nil }

	login := &grpc.UnaryServerInfo{FullMethod: wire.FullMethod("Login")}
	for i := 0; i < 2; i++ {
		if _, err := interceptor(ctx, nil, login, ok); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if _, err := interceptor(ctx, nil, login, ok); status.Code(err) != codes.ResourceExhausted {
		t.Fatalf("expected ResourceExhausted, got %v", err)
	}

	// unlimited methods are never throttled
	swipe := &grpc.UnaryServerInfo{FullMethod: wire.FullMethod("RecordSwipe")}
	for i := 0; i < 5; i++ {
		if _, err := interceptor(ctx, nil, swipe, ok); err != nil {
			t.Fatalf("swipe %d throttled: %v", i, err)
		}
	}
}

func TestRateLimitForwardedClient(t *testing.T) {
	rl := middleware.NewRateLimiter(0.001, 1)
	t.Cleanup(rl.Stop)
	interceptor := middleware.RateLimit(rl)
	login := &grpc.UnaryServerInfo{FullMethod: wire.FullMethod("Login")}
	ok := func(context.Context, any) (any, error) { return nil, nil }

	call := func(peerIP, forwarded string) error {
		ctx := peer.NewContext(context.Background(), &peer.Peer{
			Addr: &net.TCPAddr{IP: net.ParseIP(peerIP), Port: 4000},
		})
		ctx = metadata.NewIncomingContext(ctx, metadata.Pairs(middleware.ForwardedFor, forwarded))
		_, err := interceptor(ctx, nil, login, ok)
		return err
	}

	tests := []struct {
		name      string
		peer      string
		forwarded string
		want      codes.Code
	}{
		{"bridge relays first browser", "127.0.0.1", "203.0.113.1", codes.OK},
		{"bridge relays second browser", "127.0.0.1", "198.51.100.7", codes.OK},
		{"first browser again", "::1", "203.0.113.1", codes.ResourceExhausted},
		{"remote peer", "10.0.0.9", "192.0.2.50", codes.OK},
		// a remote peer cannot pick a fresh bucket by spoofing the header
		{"remote peer spoofing", "10.0.0.9", "192.0.2.51", codes.ResourceExhausted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := status.Code(call(tt.peer, tt.forwarded)); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestRateLimitHTTP(t *testing.T) {
	rl := middleware.NewRateLimiter(0.001, 1)
	t.Cleanup(rl.Stop)
	h := middleware.RateLimitHTTP(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	codesSeen := []int{}
	for i := 0; i < 2; i++ {
		r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		r.RemoteAddr = "10.0.0.2:5000"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, r)
		codesSeen = append(codesSeen, rr.Code)
	}
	if codesSeen[0] != http.StatusNoContent || codesSeen[1] != http.StatusTooManyRequests {
		t.Errorf("unexpected statuses %v", codesSeen)
	}
}
