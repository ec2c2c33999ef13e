package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/wellbeing-wheel/backend/internal/assessment"
	"example.com/wellbeing-wheel/backend/internal/notifications"
	"example.com/wellbeing-wheel/backend/internal/session"
)

type SessionHandler struct {
	Sessions *session.Store
	Notifier *notifications.Hub
}

// NewSessionHandler создает обработчик жизненного цикла сессий мастера.
func NewSessionHandler(sessions *session.Store, notifier *notifications.Hub) *SessionHandler {
	return &SessionHandler{Sessions: sessions, Notifier: notifier}
}

type SessionResponse struct {
	SessionID uuid.UUID       `json:"session_id"`
	Record    json.RawMessage `json:"record"`
}

type UserInfoRequest struct {
	FullName string `json:"full_name" validate:"required,max=200"`
	JobTitle string `json:"job_title" validate:"max=200"`
	Company  string `json:"company" validate:"max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"max=50"`
}

type StageRequest struct {
	Stage string `json:"stage" validate:"required"`
}

// Create создает новую сессию со свежей записью мастера.
func (h *SessionHandler) Create(c echo.Context) error {
	sess := h.Sessions.Create()

	record, err := recordSnapshot(sess)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, SessionResponse{SessionID: sess.ID, Record: record})
}

// Get возвращает текущее состояние записи сессии.
func (h *SessionHandler) Get(c echo.Context) error {
	sess, err := h.session(c)
	if sess == nil {
		return err
	}

	record, err := recordSnapshot(sess)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, SessionResponse{SessionID: sess.ID, Record: record})
}

// Restart полностью сбрасывает запись в стартовое состояние.
func (h *SessionHandler) Restart(c echo.Context) error {
	sess, err := h.session(c)
	if sess == nil {
		return err
	}

	_ = sess.Do(func(record *assessment.Record) error {
		record.Reset()
		return nil
	})

	h.publishStageChanged(sess.ID, assessment.StageUserInfo)

	record, err := recordSnapshot(sess)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, SessionResponse{SessionID: sess.ID, Record: record})
}

// SetUserInfo сохраняет данные пользователя и переводит мастер к текущим оценкам.
func (h *SessionHandler) SetUserInfo(c echo.Context) error {
	sess, err := h.session(c)
	if sess == nil {
		return err
	}

	var req UserInfoRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return badRequest(c, "full name is required")
	}

	var advanced bool
	_ = sess.Do(func(record *assessment.Record) error {
		record.UserInfo = &assessment.UserInfo{
			FullName: fullName,
			JobTitle: strings.TrimSpace(req.JobTitle),
			Company:  strings.TrimSpace(req.Company),
			Email:    strings.TrimSpace(req.Email),
			Phone:    strings.TrimSpace(req.Phone),
		}
		if record.Stage == assessment.StageUserInfo {
			record.SetStage(assessment.StageCurrentScore)
			advanced = true
		}
		return nil
	})

	if advanced {
		h.publishStageChanged(sess.ID, assessment.StageCurrentScore)
	}

	record, err := recordSnapshot(sess)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, SessionResponse{SessionID: sess.ID, Record: record})
}

// SetStage безусловно переводит мастер на запрошенный этап.
// Навигация назад не перепроверяет готовность пройденных этапов.
func (h *SessionHandler) SetStage(c echo.Context) error {
	sess, err := h.session(c)
	if sess == nil {
		return err
	}

	var req StageRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	stage, ok := assessment.ParseStage(req.Stage)
	if !ok {
		return badRequest(c, "invalid stage")
	}

	_ = sess.Do(func(record *assessment.Record) error {
		record.SetStage(stage)
		return nil
	})

	h.publishStageChanged(sess.ID, stage)

	record, err := recordSnapshot(sess)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, SessionResponse{SessionID: sess.ID, Record: record})
}

func (h *SessionHandler) session(c echo.Context) (*session.Session, error) {
	return sessionFromPath(c, h.Sessions)
}

func (h *SessionHandler) publishStageChanged(sessionID uuid.UUID, stage assessment.Stage) {
	publishStageChanged(h.Notifier, sessionID, stage)
}

func sessionFromPath(c echo.Context, store *session.Store) (*session.Session, error) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, badRequest(c, "invalid session id")
	}

	sess, err := store.Get(sessionID)
	if err != nil {
		return nil, notFound(c, "session not found")
	}

	return sess, nil
}

func recordSnapshot(sess *session.Session) (json.RawMessage, error) {
	var raw json.RawMessage
	err := sess.Do(func(record *assessment.Record) error {
		data, err := json.Marshal(record)
		if err != nil {
			return err
		}
		raw = data
		return nil
	})
	return raw, err
}

func publishStageChanged(hub *notifications.Hub, sessionID uuid.UUID, stage assessment.Stage) {
	if hub == nil {
		return
	}

	hub.Publish(sessionID, notifications.Event{
		Type: notifications.EventStageChanged,
		Data: map[string]interface{}{"stage": string(stage)},
	})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "identity required"})
}

func notFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": message})
}

func serverError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
