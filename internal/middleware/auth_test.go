package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/genvault/genvault-go/internal/crypto"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func newAuthRouter() http.Handler {
	r := chi.NewRouter()
	r.With(JWTAuth(testSecret)).Get("/api/entries/{userId}", func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(id))
	})
	return r
}

func mustToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := crypto.GenerateToken(userID, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	return token
}

// tokenWithoutUser signs an otherwise valid token that names no vault.
func tokenWithoutUser(t *testing.T) string {
	t.Helper()
	now := time.Now()
	claims := crypto.Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "genvault",
		Audience:  jwt.ClaimStrings{"genvault-api"},
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}
	return token
}

func TestJWTAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			header:     "Bearer not-a-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token for another user",
			header:     "Bearer " + mustToken(t, "bob"),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "token without user",
			header:     "Bearer " + tokenWithoutUser(t),
			wantStatus: http.StatusUnauthorized,
			wantBody:   "token carries no user id",
		},
		{
			name:       "valid token",
			header:     "Bearer " + mustToken(t, "alice"),
			wantStatus: http.StatusOK,
		},
	}

	h := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/entries/alice", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %q)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantBody != "" && !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %q, want it to contain %q", rec.Body.String(), tt.wantBody)
			}
			if tt.wantStatus == http.StatusOK && rec.Body.String() != "alice" {
				t.Errorf("context user = %q, want %q", rec.Body.String(), "alice")
			}
		})
	}
}
