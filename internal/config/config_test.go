package config

import (
	"testing"
	"time"
)

// TestParseDurationEnv проверяет разбор таймаута из ENV.
func TestParseDurationEnv(t *testing.T) {
	t.Setenv("NOTIFY_TIMEOUT", "3s")

	got, err := parseDurationEnv("NOTIFY_TIMEOUT", 10*time.Second)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != 3*time.Second {
		t.Fatalf("expected 3s, got %v", got)
	}
}

// TestParseDurationEnvFallback проверяет значение по умолчанию.
func TestParseDurationEnvFallback(t *testing.T) {
	got, err := parseDurationEnv("MISSING_ENV", 10*time.Second)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != 10*time.Second {
		t.Fatalf("expected fallback, got %v", got)
	}
}

// TestParseIntEnvInvalid проверяет ошибку для нечислового значения.
func TestParseIntEnvInvalid(t *testing.T) {
	t.Setenv("SERVER_PORT", "eighty")

	if _, err := parseIntEnv("SERVER_PORT", 8080); err == nil {
		t.Fatal("expected error for invalid integer")
	}
}
