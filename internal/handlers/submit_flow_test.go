package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/wellbeing-wheel/backend/internal/assessment"
	"example.com/wellbeing-wheel/backend/internal/catalog"
	"example.com/wellbeing-wheel/backend/internal/notifications"
	"example.com/wellbeing-wheel/backend/internal/notify"
	"example.com/wellbeing-wheel/backend/internal/session"
)

type fakeNotifier struct {
	calls   int
	failure error
	last    notify.Payload
}

func (n *fakeNotifier) Notify(ctx context.Context, payload notify.Payload) error {
	n.calls++
	n.last = payload
	return n.failure
}

// TestSubmitMissingUserInfo проверяет, что без данных пользователя
// отправка перенаправляет на первый этап и не зовет доставку.
func TestSubmitMissingUserInfo(t *testing.T) {
	store := session.NewStore(time.Hour, time.Hour)
	defer store.Close()
	notifier := &fakeNotifier{}
	handler := NewSubmitHandler(store, nil, notifier, notifications.NewHub(), time.Second, nil)

	sess := store.Create()

	rec := httptest.NewRecorder()
	c := newSessionContext(t, sess.ID.String(), rec)

	if err := handler.Submit(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if notifier.calls != 0 {
		t.Fatalf("expected notifier to stay untouched, got %d calls", notifier.calls)
	}

	var body SubmitErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.RedirectStage != assessment.StageUserInfo {
		t.Fatalf("expected redirect to user_info, got %s", body.RedirectStage)
	}

	assertStage(t, sess, assessment.StageUserInfo)
}

// TestSubmitComplete проверяет успешную отправку: этап summary и отчет
// со строкой на каждый пункт каталога.
func TestSubmitComplete(t *testing.T) {
	store := session.NewStore(time.Hour, time.Hour)
	defer store.Close()
	notifier := &fakeNotifier{}
	handler := NewSubmitHandler(store, nil, notifier, notifications.NewHub(), time.Second, nil)

	sess := store.Create()
	fillRecord(t, sess)

	rec := httptest.NewRecorder()
	c := newSessionContext(t, sess.ID.String(), rec)

	if err := handler.Submit(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if notifier.calls != 1 {
		t.Fatalf("expected one notification, got %d", notifier.calls)
	}

	lines := strings.Split(strings.TrimRight(notifier.last.AssessmentResults, "\n"), "\n")
	if len(lines) != len(catalog.Items()) {
		t.Fatalf("expected %d result lines, got %d", len(catalog.Items()), len(lines))
	}

	assertStage(t, sess, assessment.StageSummary)
}

// TestSubmitNotifierFailure проверяет, что сбой доставки не меняет запись
// и повторная отправка проходит.
func TestSubmitNotifierFailure(t *testing.T) {
	store := session.NewStore(time.Hour, time.Hour)
	defer store.Close()
	notifier := &fakeNotifier{failure: errors.New("smtp down")}
	handler := NewSubmitHandler(store, nil, notifier, notifications.NewHub(), time.Second, nil)

	sess := store.Create()
	fillRecord(t, sess)

	rec := httptest.NewRecorder()
	c := newSessionContext(t, sess.ID.String(), rec)

	if err := handler.Submit(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	assertStage(t, sess, assessment.StageDefineActions)

	notifier.failure = nil
	rec = httptest.NewRecorder()
	c = newSessionContext(t, sess.ID.String(), rec)

	if err := handler.Submit(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on retry, got %d", rec.Code)
	}
	assertStage(t, sess, assessment.StageSummary)
}

// TestSubmitPublishesResultEvents проверяет, что отправка шлет подписчикам
// submit_failed при сбое доставки и submit_completed при успехе.
func TestSubmitPublishesResultEvents(t *testing.T) {
	store := session.NewStore(time.Hour, time.Hour)
	defer store.Close()
	hub := notifications.NewHub()
	notifier := &fakeNotifier{failure: errors.New("smtp down")}
	handler := NewSubmitHandler(store, nil, notifier, hub, time.Second, nil)

	sess := store.Create()
	fillRecord(t, sess)

	events, unsubscribe := hub.Subscribe(sess.ID)
	defer unsubscribe()

	rec := httptest.NewRecorder()
	if err := handler.Submit(newSessionContext(t, sess.ID.String(), rec)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := receiveEvent(t, events); got.Type != notifications.EventSubmitFailed {
		t.Fatalf("expected %s, got %s", notifications.EventSubmitFailed, got.Type)
	}

	notifier.failure = nil
	rec = httptest.NewRecorder()
	if err := handler.Submit(newSessionContext(t, sess.ID.String(), rec)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := receiveEvent(t, events); got.Type != notifications.EventSubmitCompleted {
		t.Fatalf("expected %s, got %s", notifications.EventSubmitCompleted, got.Type)
	}
}

func receiveEvent(t *testing.T, events <-chan notifications.Event) notifications.Event {
	t.Helper()

	select {
	case event := <-events:
		return event
	case <-time.After(time.Second):
		t.Fatalf("expected an event, got none")
		return notifications.Event{}
	}
}

func newSessionContext(t *testing.T, sessionID string, rec *httptest.ResponseRecorder) echo.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(sessionID)
	return c
}

func fillRecord(t *testing.T, sess *session.Session) {
	t.Helper()

	err := sess.Do(func(record *assessment.Record) error {
		record.UserInfo = &assessment.UserInfo{FullName: "Ana Silva", Email: "ana@example.com"}
		record.SetStage(assessment.StageDefineActions)

		for _, item := range catalog.Items() {
			if err := record.SetScore(item.ID, assessment.ScoreKindCurrent, 5); err != nil {
				return err
			}
			if err := record.SetScore(item.ID, assessment.ScoreKindDesired, 8); err != nil {
				return err
			}
		}

		if err := record.SelectItem("work"); err != nil {
			return err
		}
		record.SetActionText("work", 0, "Exercise")
		date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		record.SetActionDate("work", 0, &date)
		return nil
	})
	if err != nil {
		t.Fatalf("fill record: %v", err)
	}
}

func assertStage(t *testing.T, sess *session.Session, want assessment.Stage) {
	t.Helper()

	_ = sess.Do(func(record *assessment.Record) error {
		if record.Stage != want {
			t.Fatalf("expected stage %s, got %s", want, record.Stage)
		}
		return nil
	})
}
