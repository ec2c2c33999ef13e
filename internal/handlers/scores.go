package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/wellbeing-wheel/backend/internal/assessment"
	"example.com/wellbeing-wheel/backend/internal/session"
)

type ScoreHandler struct {
	Sessions *session.Store
}

// NewScoreHandler создает обработчик оценок колеса.
func NewScoreHandler(sessions *session.Store) *ScoreHandler {
	return &ScoreHandler{Sessions: sessions}
}

type ScoreRequest struct {
	Kind  string `json:"kind" validate:"required,oneof=current desired"`
	Value int    `json:"value" validate:"required,gte=1,lte=10"`
}

type ScoreResponse struct {
	ItemID  string `json:"item_id"`
	Current *int   `json:"current,omitempty"`
	Desired *int   `json:"desired,omitempty"`
}

// Update записывает текущую или желаемую оценку пункта.
func (h *ScoreHandler) Update(c echo.Context) error {
	sess, err := sessionFromPath(c, h.Sessions)
	if sess == nil {
		return err
	}

	itemID := c.Param("itemId")

	var req ScoreRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	kind, ok := assessment.ParseScoreKind(req.Kind)
	if !ok {
		return badRequest(c, "invalid score kind")
	}

	var response ScoreResponse
	err = sess.Do(func(record *assessment.Record) error {
		if err := record.SetScore(itemID, kind, req.Value); err != nil {
			return err
		}

		for _, score := range record.ItemScores {
			if score.ItemID == itemID {
				response = ScoreResponse{ItemID: score.ItemID, Current: score.Current, Desired: score.Desired}
				break
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, assessment.ErrUnknownItem) {
			return notFound(c, "item not found")
		}
		if errors.Is(err, assessment.ErrScoreOutOfRange) {
			return badRequest(c, "score out of range")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, response)
}

// Percentages возвращает нормированные проценты по категориям.
func (h *ScoreHandler) Percentages(c echo.Context) error {
	sess, err := sessionFromPath(c, h.Sessions)
	if sess == nil {
		return err
	}

	var percentages []assessment.CategoryPercentage
	_ = sess.Do(func(record *assessment.Record) error {
		percentages = record.CategoryPercentages()
		return nil
	})

	return c.JSON(http.StatusOK, map[string][]assessment.CategoryPercentage{"categories": percentages})
}
