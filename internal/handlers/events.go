package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/wellbeing-wheel/backend/internal/notifications"
	"example.com/wellbeing-wheel/backend/internal/session"
)

type EventHandler struct {
	Sessions *session.Store
	Hub      *notifications.Hub
}

// NewEventHandler создает SSE-обработчик ленты обратной связи мастера.
func NewEventHandler(sessions *session.Store, hub *notifications.Hub) *EventHandler {
	return &EventHandler{Sessions: sessions, Hub: hub}
}

// Stream открывает SSE-поток событий сессии.
func (h *EventHandler) Stream(c echo.Context) error {
	sess, err := sessionFromPath(c, h.Sessions)
	if sess == nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	c.Response().Header().Set(echo.HeaderConnection, "keep-alive")
	c.Response().WriteHeader(http.StatusOK)

	flusher, ok := c.Response().Writer.(http.Flusher)
	if !ok {
		return serverError(c)
	}

	ch, unsubscribe := h.Hub.Subscribe(sess.ID)
	defer unsubscribe()

	_ = writeSSE(c, notifications.Event{Type: "connected", Data: map[string]string{"session_id": sess.ID.String()}})
	flusher.Flush()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			if err := writeSSE(c, event); err != nil {
				return nil
			}
			flusher.Flush()
		}
	}
}

func writeSSE(c echo.Context, event notifications.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if _, err := c.Response().Write([]byte("event: " + event.Type + "\n")); err != nil {
		return err
	}
	if _, err := c.Response().Write([]byte("data: " + string(payload) + "\n\n")); err != nil {
		return err
	}

	return nil
}
