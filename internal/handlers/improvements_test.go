package handlers

import (
	"testing"

	"example.com/wellbeing-wheel/backend/internal/assessment"
)

// TestParseSlot проверяет разбор индекса слота действия.
func TestParseSlot(t *testing.T) {
	for want := 0; want < 3; want++ {
		slot, err := parseSlot(string(rune('0' + want)))
		if err != nil || slot != want {
			t.Fatalf("expected %d, got %d (err=%v)", want, slot, err)
		}
	}

	if _, err := parseSlot("3"); err == nil {
		t.Fatal("expected error for slot 3")
	}
	if _, err := parseSlot("-1"); err == nil {
		t.Fatal("expected error for negative slot")
	}
	if _, err := parseSlot("one"); err == nil {
		t.Fatal("expected error for non-numeric slot")
	}
}

// TestSelectedIDs проверяет порядок выбранных пунктов.
func TestSelectedIDs(t *testing.T) {
	record := assessment.NewRecord()
	if err := record.SelectItem("work"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := record.SelectItem("health"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	ids := selectedIDs(record)
	if len(ids) != 2 || ids[0] != "work" || ids[1] != "health" {
		t.Fatalf("unexpected ids: %v", ids)
	}
}
