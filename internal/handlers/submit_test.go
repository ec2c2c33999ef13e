package handlers

import (
	"errors"
	"testing"

	"example.com/wellbeing-wheel/backend/internal/assessment"
)

// TestRedirectStage проверяет выбор этапа перенаправления по ошибке.
func TestRedirectStage(t *testing.T) {
	if got := redirectStage(assessment.ErrMissingUserInfo); got != assessment.StageUserInfo {
		t.Fatalf("expected user_info, got %s", got)
	}

	incomplete := &assessment.IncompleteError{Reason: "no_items_selected", RedirectStage: assessment.StageSelectItems}
	if got := redirectStage(incomplete); got != assessment.StageSelectItems {
		t.Fatalf("expected select_items, got %s", got)
	}

	if got := redirectStage(errors.New("other")); got != assessment.StageUserInfo {
		t.Fatalf("expected fallback to user_info, got %s", got)
	}
}
