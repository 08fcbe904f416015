package crypto

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testTokenSecret = "test-secret"

// signClaims signs claims as GenerateToken would, so individual fields can be
// made invalid.
func signClaims(t *testing.T, claims Claims, method jwt.SigningMethod, key any) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}
	return token
}

func validClaims(userID string) Claims {
	now := time.Now()
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   userID,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		secret  string
		wantErr error
	}{
		{"valid", "user-42", testTokenSecret, nil},
		{"empty user", "", testTokenSecret, ErrTokenUserMissing},
		{"empty secret", "user-42", "", ErrEmptySecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken(tt.userID, tt.secret, time.Hour)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("GenerateToken() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && token == "" {
				t.Error("GenerateToken() returned empty string")
			}
		})
	}
}

func TestValidateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-42", testTokenSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	claims, err := ValidateToken(token, testTokenSecret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.UserID != "user-42" {
		t.Errorf("ValidateToken() UserID = %q, want %q", claims.UserID, "user-42")
	}
	if claims.ID == "" {
		t.Error("ValidateToken() token id is empty")
	}
	if !claims.Owns("user-42") || claims.Owns("user-7") {
		t.Errorf("Owns() does not match only %q", "user-42")
	}
}

func TestValidateTokenRejects(t *testing.T) {
	expired, err := GenerateToken("user-42", testTokenSecret, time.Millisecond)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	wrongIssuer := validClaims("user-42")
	wrongIssuer.Issuer = "wrong-issuer"

	wrongAudience := validClaims("user-42")
	wrongAudience.Audience = jwt.ClaimStrings{"wrong-audience"}

	noExpiry := validClaims("user-42")
	noExpiry.ExpiresAt = nil

	otherSubject := validClaims("user-42")
	otherSubject.Subject = "user-7"

	noUser := validClaims("")

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"malformed", "not-a-valid-token", ErrInvalidToken},
		{"wrong secret", signClaims(t, validClaims("user-42"), jwt.SigningMethodHS256, []byte("wrong-secret")), ErrInvalidToken},
		{"other hmac method", signClaims(t, validClaims("user-42"), jwt.SigningMethodHS512, []byte(testTokenSecret)), ErrInvalidToken},
		{"expired", expired, ErrInvalidToken},
		{"wrong issuer", signClaims(t, wrongIssuer, jwt.SigningMethodHS256, []byte(testTokenSecret)), ErrInvalidToken},
		{"wrong audience", signClaims(t, wrongAudience, jwt.SigningMethodHS256, []byte(testTokenSecret)), ErrInvalidToken},
		{"no expiry", signClaims(t, noExpiry, jwt.SigningMethodHS256, []byte(testTokenSecret)), ErrInvalidToken},
		{"subject mismatch", signClaims(t, otherSubject, jwt.SigningMethodHS256, []byte(testTokenSecret)), ErrInvalidToken},
		{"missing user id", signClaims(t, noUser, jwt.SigningMethodHS256, []byte(testTokenSecret)), ErrTokenUserMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, testTokenSecret)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateToken() error = %v, want %v", err, tt.wantErr)
			}
			if claims != nil {
				t.Errorf("ValidateToken() claims = %+v, want nil", claims)
			}
		})
	}
}

func TestValidateTokenEmptySecret(t *testing.T) {
	if _, err := ValidateToken("anything", ""); !errors.Is(err, ErrEmptySecret) {
		t.Errorf("ValidateToken() error = %v, want %v", err, ErrEmptySecret)
	}
}
