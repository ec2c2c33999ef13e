package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/wellbeing-wheel/backend/internal/assessment"
	"example.com/wellbeing-wheel/backend/internal/notifications"
	"example.com/wellbeing-wheel/backend/internal/session"
)

const actionDateLayout = "2006-01-02"

type ImprovementHandler struct {
	Sessions *session.Store
	Notifier *notifications.Hub
}

// NewImprovementHandler создает обработчик плана улучшений.
func NewImprovementHandler(sessions *session.Store, notifier *notifications.Hub) *ImprovementHandler {
	return &ImprovementHandler{Sessions: sessions, Notifier: notifier}
}

type ActionRequest struct {
	Text    *string `json:"text"`
	DueDate *string `json:"due_date"`
}

type SelectionResponse struct {
	Selected    bool     `json:"selected"`
	SelectedIDs []string `json:"selected_ids"`
	Reason      string   `json:"reason,omitempty"`
}

// Select добавляет пункт в план улучшений. Четвертый пункт не добавляется:
// отказ уходит в SSE-ленту как ожидаемая обратная связь, а не ошибка.
func (h *ImprovementHandler) Select(c echo.Context) error {
	sess, err := sessionFromPath(c, h.Sessions)
	if sess == nil {
		return err
	}

	itemID := c.Param("itemId")

	var response SelectionResponse
	err = sess.Do(func(record *assessment.Record) error {
		selectErr := record.SelectItem(itemID)
		response.Selected = record.IsSelected(itemID)
		response.SelectedIDs = selectedIDs(record)
		return selectErr
	})
	if err != nil {
		if errors.Is(err, assessment.ErrUnknownItem) {
			return notFound(c, "item not found")
		}
		if errors.Is(err, assessment.ErrSelectionCap) {
			h.publishSelectionRejected(sess.ID, itemID)
			response.Reason = "selection_cap"
			return c.JSON(http.StatusOK, response)
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, response)
}

// Deselect убирает пункт из плана улучшений вместе с его слотами.
func (h *ImprovementHandler) Deselect(c echo.Context) error {
	sess, err := sessionFromPath(c, h.Sessions)
	if sess == nil {
		return err
	}

	itemID := c.Param("itemId")

	_ = sess.Do(func(record *assessment.Record) error {
		record.DeselectItem(itemID)
		return nil
	})

	return c.NoContent(http.StatusNoContent)
}

// UpdateAction обновляет текст и/или дату слота действия.
// Пустая строка в due_date стирает дату.
func (h *ImprovementHandler) UpdateAction(c echo.Context) error {
	sess, err := sessionFromPath(c, h.Sessions)
	if sess == nil {
		return err
	}

	itemID := c.Param("itemId")

	slot, err := parseSlot(c.Param("slot"))
	if err != nil {
		return badRequest(c, "invalid slot index")
	}

	var req ActionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	var dueDate *time.Time
	clearDate := false
	if req.DueDate != nil {
		if *req.DueDate == "" {
			clearDate = true
		} else {
			parsed, err := time.Parse(actionDateLayout, *req.DueDate)
			if err != nil {
				return badRequest(c, "invalid due date")
			}
			dueDate = &parsed
		}
	}

	_ = sess.Do(func(record *assessment.Record) error {
		if req.Text != nil {
			record.SetActionText(itemID, slot, *req.Text)
		}
		if clearDate {
			record.SetActionDate(itemID, slot, nil)
		} else if dueDate != nil {
			record.SetActionDate(itemID, slot, dueDate)
		}
		return nil
	})

	record, err := recordSnapshot(sess)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, SessionResponse{SessionID: sess.ID, Record: record})
}

// ClearAction очищает слот действия, сохраняя его на месте.
func (h *ImprovementHandler) ClearAction(c echo.Context) error {
	sess, err := sessionFromPath(c, h.Sessions)
	if sess == nil {
		return err
	}

	itemID := c.Param("itemId")

	slot, err := parseSlot(c.Param("slot"))
	if err != nil {
		return badRequest(c, "invalid slot index")
	}

	_ = sess.Do(func(record *assessment.Record) error {
		record.ClearAction(itemID, slot)
		return nil
	})

	return c.NoContent(http.StatusNoContent)
}

func (h *ImprovementHandler) publishSelectionRejected(sessionID uuid.UUID, itemID string) {
	if h.Notifier == nil {
		return
	}

	h.Notifier.Publish(sessionID, notifications.Event{
		Type: notifications.EventSelectionRejected,
		Data: map[string]interface{}{
			"item_id": itemID,
			"reason":  "selection_cap",
		},
	})
}

func parseSlot(value string) (int, error) {
	slot, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if slot < 0 || slot > 2 {
		return 0, errors.New("slot out of range")
	}
	return slot, nil
}

func selectedIDs(record *assessment.Record) []string {
	ids := make([]string, 0, len(record.Improvements))
	for _, improvement := range record.Improvements {
		ids = append(ids, improvement.ItemID)
	}
	return ids
}
