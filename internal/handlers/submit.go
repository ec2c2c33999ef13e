package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/wellbeing-wheel/backend/internal/assessment"
	"example.com/wellbeing-wheel/backend/internal/auth"
	"example.com/wellbeing-wheel/backend/internal/notifications"
	"example.com/wellbeing-wheel/backend/internal/notify"
	"example.com/wellbeing-wheel/backend/internal/repository"
	"example.com/wellbeing-wheel/backend/internal/session"
)

type SubmitHandler struct {
	Sessions      *session.Store
	Assessments   *repository.AssessmentRepository
	Notifier      notify.Notifier
	Hub           *notifications.Hub
	NotifyTimeout time.Duration
	Logger        *slog.Logger
}

// NewSubmitHandler создает обработчик отправки завершенной оценки.
func NewSubmitHandler(sessions *session.Store, assessments *repository.AssessmentRepository, notifier notify.Notifier, hub *notifications.Hub, notifyTimeout time.Duration, logger *slog.Logger) *SubmitHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubmitHandler{
		Sessions:      sessions,
		Assessments:   assessments,
		Notifier:      notifier,
		Hub:           hub,
		NotifyTimeout: notifyTimeout,
		Logger:        logger,
	}
}

type SubmitResponse struct {
	Stage  assessment.Stage  `json:"stage"`
	Report assessment.Report `json:"report"`
}

type SubmitErrorResponse struct {
	Error         string           `json:"error"`
	Reason        string           `json:"reason,omitempty"`
	RedirectStage assessment.Stage `json:"redirect_stage"`
}

// Submit проверяет полноту записи, отправляет отчет и переводит мастер
// на итоговый этап. При неполной записи мастер возвращается на первый
// незавершенный этап; запись при ошибке доставки не меняется, повтор безопасен.
func (h *SubmitHandler) Submit(c echo.Context) error {
	sess, err := sessionFromPath(c, h.Sessions)
	if sess == nil {
		return err
	}

	var payload notify.Payload
	var auditDoc json.RawMessage

	err = sess.Do(func(record *assessment.Record) error {
		if err := record.ValidateForSubmission(); err != nil {
			redirect := redirectStage(err)
			record.SetStage(redirect)
			return err
		}

		report := record.BuildReport()
		payload = notify.Payload{
			FullName:          record.UserInfo.FullName,
			JobTitle:          record.UserInfo.JobTitle,
			Company:           record.UserInfo.Company,
			Email:             record.UserInfo.Email,
			Phone:             record.UserInfo.Phone,
			AssessmentResults: report.Results,
			ActionPlan:        report.ActionPlan,
		}

		doc, err := json.Marshal(record)
		if err != nil {
			return err
		}
		auditDoc = doc
		return nil
	})
	if err != nil {
		if errors.Is(err, assessment.ErrMissingUserInfo) {
			publishStageChanged(h.Hub, sess.ID, assessment.StageUserInfo)
			return c.JSON(http.StatusUnprocessableEntity, SubmitErrorResponse{
				Error:         "missing_user_info",
				RedirectStage: assessment.StageUserInfo,
			})
		}

		var incomplete *assessment.IncompleteError
		if errors.As(err, &incomplete) {
			publishStageChanged(h.Hub, sess.ID, incomplete.RedirectStage)
			return c.JSON(http.StatusUnprocessableEntity, SubmitErrorResponse{
				Error:         "incomplete_assessment",
				Reason:        incomplete.Reason,
				RedirectStage: incomplete.RedirectStage,
			})
		}

		return serverError(c)
	}

	notifyCtx, cancel := context.WithTimeout(c.Request().Context(), h.NotifyTimeout)
	defer cancel()

	if err := h.Notifier.Notify(notifyCtx, payload); err != nil {
		h.Logger.Error("notification failed", slog.String("error", err.Error()))
		h.publishSubmitResult(sess.ID, notifications.EventSubmitFailed)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "external_call_failure"})
	}

	_ = sess.Do(func(record *assessment.Record) error {
		record.SetStage(assessment.StageSummary)
		return nil
	})

	h.publishSubmitResult(sess.ID, notifications.EventSubmitCompleted)
	h.auditWrite(c, auditDoc)

	return c.JSON(http.StatusOK, SubmitResponse{
		Stage: assessment.StageSummary,
		Report: assessment.Report{
			Results:    payload.AssessmentResults,
			ActionPlan: payload.ActionPlan,
		},
	})
}

// Export выгружает текстовый отчет сессии в файл.
func (h *SubmitHandler) Export(c echo.Context) error {
	sess, err := sessionFromPath(c, h.Sessions)
	if sess == nil {
		return err
	}

	var report assessment.Report
	_ = sess.Do(func(record *assessment.Record) error {
		report = record.BuildReport()
		return nil
	})

	filename := "assessment-" + sess.ID.String() + ".txt"
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.String(http.StatusOK, report.Results+"\n"+report.ActionPlan)
}

// auditWrite асинхронно сохраняет итоговый документ в хранилище.
// Это побочный аудит, его сбой не виден пользователю и только логируется.
func (h *SubmitHandler) auditWrite(c echo.Context, payload json.RawMessage) {
	if h.Assessments == nil || payload == nil {
		return
	}

	var userID *uuid.UUID
	if id, ok := auth.UserIDFromContext(c); ok {
		userID = &id
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.NotifyTimeout)
		defer cancel()

		if _, err := h.Assessments.Save(ctx, userID, payload); err != nil {
			h.Logger.Error("audit write failed", slog.String("error", err.Error()))
		}
	}()
}

func (h *SubmitHandler) publishSubmitResult(sessionID uuid.UUID, eventType string) {
	if h.Hub == nil {
		return
	}

	h.Hub.Publish(sessionID, notifications.Event{Type: eventType})
}

func redirectStage(err error) assessment.Stage {
	if errors.Is(err, assessment.ErrMissingUserInfo) {
		return assessment.StageUserInfo
	}

	var incomplete *assessment.IncompleteError
	if errors.As(err, &incomplete) {
		return incomplete.RedirectStage
	}

	return assessment.StageUserInfo
}
