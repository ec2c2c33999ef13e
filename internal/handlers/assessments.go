package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/wellbeing-wheel/backend/internal/auth"
	"example.com/wellbeing-wheel/backend/internal/repository"
)

const maxAssessmentPayload = 1 << 20 // 1 MiB

type AssessmentHandler struct {
	Assessments *repository.AssessmentRepository
}

// NewAssessmentHandler создает обработчик хранилища итоговых документов.
func NewAssessmentHandler(assessments *repository.AssessmentRepository) *AssessmentHandler {
	return &AssessmentHandler{Assessments: assessments}
}

type SaveAssessmentResponse struct {
	Success bool   `json:"success"`
	DocID   string `json:"docId"`
}

type AssessmentErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Save принимает произвольный JSON-объект сессии и сохраняет его как документ.
// Сервер добавляет метку времени; user_id проставляется только при наличии
// проверенной личности в запросе.
func (h *AssessmentHandler) Save(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxAssessmentPayload))
	if err != nil {
		return c.JSON(http.StatusBadRequest, AssessmentErrorResponse{
			Error:   "invalid request body",
			Details: err.Error(),
		})
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return c.JSON(http.StatusBadRequest, AssessmentErrorResponse{
			Error:   "missing or invalid JSON",
			Details: err.Error(),
		})
	}

	var userID *uuid.UUID
	if id, ok := auth.UserIDFromContext(c); ok {
		userID = &id
	}

	doc, err := h.Assessments.Save(c.Request().Context(), userID, body)
	if err != nil {
		if errors.Is(err, repository.ErrInvalid) {
			return c.JSON(http.StatusBadRequest, AssessmentErrorResponse{
				Error:   "missing or invalid JSON",
				Details: err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, AssessmentErrorResponse{
			Error:   "store write failure",
			Details: err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, SaveAssessmentResponse{Success: true, DocID: doc.ID.String()})
}

// Get возвращает сохраненный документ по идентификатору.
func (h *AssessmentHandler) Get(c echo.Context) error {
	docID, err := uuid.Parse(c.Param("docId"))
	if err != nil {
		return badRequest(c, "invalid document id")
	}

	doc, err := h.Assessments.GetByID(c.Request().Context(), docID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "document not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, doc)
}

// List возвращает документы пользователя; без личности запрос отклоняется.
func (h *AssessmentHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	docs, err := h.Assessments.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	if docs == nil {
		docs = []repository.AssessmentDocument{}
	}

	return c.JSON(http.StatusOK, map[string][]repository.AssessmentDocument{"assessments": docs})
}
