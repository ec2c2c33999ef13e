package session

import (
	"errors"
	"testing"
	"time"

	"example.com/wellbeing-wheel/backend/internal/assessment"
)

// TestStoreCreateAndGet проверяет создание и получение сессии.
func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore(time.Hour, time.Hour)
	defer store.Close()

	sess := store.Create()

	got, err := store.Get(sess.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != sess {
		t.Fatal("expected the same session instance")
	}

	err = got.Do(func(record *assessment.Record) error {
		if record.Stage != assessment.StageUserInfo {
			t.Fatalf("expected fresh record, got stage %s", record.Stage)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

// TestStoreGetMissing проверяет ошибку для неизвестной сессии.
func TestStoreGetMissing(t *testing.T) {
	store := NewStore(time.Hour, time.Hour)
	defer store.Close()

	sess := store.Create()
	store.Delete(sess.ID)

	if _, err := store.Get(sess.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestStoreEvictsExpired проверяет уборку просроченных сессий.
func TestStoreEvictsExpired(t *testing.T) {
	store := NewStore(time.Millisecond, time.Hour)
	defer store.Close()

	store.Create()
	time.Sleep(5 * time.Millisecond)
	store.evictExpired(time.Now())

	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d sessions", store.Len())
	}
}
