package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret, sub, actorType string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Add(-time.Minute).Unix(),
	}
	if sub != "" {
		claims["sub"] = sub
	}
	if actorType != "" {
		claims["actor_type"] = actorType
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestParseActor(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")

	actor, err := verifier.ParseActor(signToken(t, "test-secret", "player-1", "player"))
	if err != nil {
		t.Fatalf("parse actor: %v", err)
	}
	if actor.ID != "player-1" || actor.Type != "player" {
		t.Fatalf("unexpected actor: %+v", actor)
	}

	if _, err := verifier.ParseActor(signToken(t, "wrong-secret", "player-1", "player")); err == nil {
		t.Fatalf("token signed with the wrong secret must be rejected")
	}
	if _, err := verifier.ParseActor(signToken(t, "test-secret", "", "player")); err == nil {
		t.Fatalf("token without sub must be rejected")
	}
	if _, err := verifier.ParseActor(signToken(t, "test-secret", "player-1", "")); err == nil {
		t.Fatalf("token without actor_type must be rejected")
	}
}

func TestHTTPJWTMiddleware(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")
	var seen Actor
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ActorFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := HTTPJWTMiddleware(verifier, next, []string{"/api/health"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/accounts/p1/balance", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: status %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("skip path blocked: status %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/p1/balance", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "svc-game", "service"))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token rejected: status %d", rec.Code)
	}
	if seen.ID != "svc-game" || seen.Type != "service" {
		t.Fatalf("actor not bound to context: %+v", seen)
	}
}
