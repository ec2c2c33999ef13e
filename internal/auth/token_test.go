package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestTokenRoundTrip проверяет подпись и разбор токена личности.
func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", "wellbeing-wheel")
	userID := uuid.New()

	token, err := manager.NewToken(userID, time.Minute)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	claims, err := manager.ParseToken(token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if claims.Subject != userID.String() {
		t.Fatalf("expected subject %s, got %s", userID, claims.Subject)
	}
}

// TestParseTokenWrongSecret проверяет отказ для чужого секрета.
func TestParseTokenWrongSecret(t *testing.T) {
	manager := NewTokenManager("test-secret", "wellbeing-wheel")
	other := NewTokenManager("other-secret", "wellbeing-wheel")

	token, err := manager.NewToken(uuid.New(), time.Minute)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := other.ParseToken(token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

// TestTokenManagerDisabled проверяет режим без секрета.
func TestTokenManagerDisabled(t *testing.T) {
	manager := NewTokenManager("", "wellbeing-wheel")
	if manager.Enabled() {
		t.Fatal("expected manager without secret to be disabled")
	}
}
