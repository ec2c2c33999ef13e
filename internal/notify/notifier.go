package notify

import (
	"context"
	"log/slog"
)

// Payload содержит данные пользователя и собранный текстовый отчет.
type Payload struct {
	FullName          string `json:"full_name"`
	JobTitle          string `json:"job_title,omitempty"`
	Company           string `json:"company,omitempty"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	AssessmentResults string `json:"assessment_results"`
	ActionPlan        string `json:"action_plan"`
}

// Notifier доставляет отчет внешнему получателю. Любой механизм доставки
// (почта, очередь) подключается за этим контрактом.
type Notifier interface {
	Notify(ctx context.Context, payload Payload) error
}

// LogNotifier пишет отчет в лог вместо реальной доставки.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier создает заглушку доставки поверх slog.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

// Notify логирует отчет и всегда завершается успешно.
func (n *LogNotifier) Notify(ctx context.Context, payload Payload) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	n.logger.InfoContext(ctx, "assessment notification",
		slog.String("full_name", payload.FullName),
		slog.String("email", payload.Email),
		slog.Int("results_len", len(payload.AssessmentResults)),
		slog.Int("action_plan_len", len(payload.ActionPlan)),
	)
	return nil
}
