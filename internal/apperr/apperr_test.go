package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"golf-match-api/internal/apperr"
)

func TestKindMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
		http int
	}{
		{"validation", apperr.Validation("bad %s", "x"), codes.InvalidArgument, http.StatusBadRequest},
		{"not found", apperr.NotFound("match"), codes.NotFound, http.StatusNotFound},
		{"unauthenticated", apperr.Unauthenticated("no token"), codes.Unauthenticated, http.StatusUnauthorized},
		{"permission", apperr.PermissionDenied("not yours"), codes.PermissionDenied, http.StatusForbidden},
		{"conflict", apperr.Conflict("taken"), codes.AlreadyExists, http.StatusConflict},
		{"internal", apperr.Internal("store", errors.New("boom")), codes.Internal, http.StatusInternalServerError},
		{"plain error", errors.New("boom"), codes.Internal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apperr.KindOf(tt.err).GRPCCode(); got != tt.code {
				t.Errorf("grpc code: got %v, want %v", got, tt.code)
			}
			if got := apperr.HTTPStatus(tt.err); got != tt.http {
				t.Errorf("http status: got %d, want %d", got, tt.http)
			}
		})
	}
}

func TestWrappedKindSurvives(t *testing.T) {
	err := fmt.Errorf("send: %w", apperr.PermissionDenied("not a participant"))
	if !apperr.IsAuthorization(err) {
		t.Fatal("expected authorization error through wrap")
	}
	if !errors.Is(err, &apperr.Error{Kind: apperr.KindPermissionDenied}) {
		t.Error("errors.Is should match by kind")
	}
	if errors.Is(err, &apperr.Error{Kind: apperr.KindNotFound}) {
		t.Error("errors.Is matched the wrong kind")
	}
}

func TestInternalHidesCause(t *testing.T) {
	err := apperr.Internal("create swipe", errors.New("connection reset"))
	if got := apperr.PublicMessage(err); got != "internal error" {
		t.Errorf("public message leaked: %q", got)
	}
	s, _ := status.FromError(err)
	if s.Message() != "internal error" {
		t.Errorf("status message leaked: %q", s.Message())
	}
}

func TestGRPCStatusDetails(t *testing.T) {
	s, ok := status.FromError(apperr.Validation("content required"))
	if !ok {
		t.Fatal("expected status")
	}
	if s.Code() != codes.InvalidArgument {
		t.Errorf("code: %v", s.Code())
	}
	var found bool
	for _, d := range s.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			found = true
			if info.Reason != "validation" {
				t.Errorf("reason: %s", info.Reason)
			}
		}
	}
	if !found {
		t.Error("missing ErrorInfo detail")
	}
}
