package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AssessmentRepository struct {
	db *pgxpool.Pool
}

type AssessmentDocument struct {
	ID        uuid.UUID       `json:"id"`
	UserID    *uuid.UUID      `json:"user_id,omitempty"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewAssessmentRepository создает репозиторий документов с результатами.
func NewAssessmentRepository(db *pgxpool.Pool) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// EnsureSchema создает таблицу документов, если ее еще нет.
func (r *AssessmentRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS assessments (
		 id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		 user_id uuid,
		 payload jsonb NOT NULL,
		 created_at timestamptz NOT NULL DEFAULT now()
		 )`)
	return err
}

// Save сохраняет произвольный JSON-документ и возвращает его идентификатор
// и серверную метку времени.
func (r *AssessmentRepository) Save(ctx context.Context, userID *uuid.UUID, payload json.RawMessage) (AssessmentDocument, error) {
	doc := AssessmentDocument{UserID: userID, Payload: payload}
	if len(payload) == 0 || !json.Valid(payload) {
		return doc, ErrInvalid
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO assessments (user_id, payload)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		userID, string(payload),
	).Scan(&doc.ID, &doc.CreatedAt)
	if err != nil {
		return doc, err
	}

	return doc, nil
}

// GetByID возвращает сохраненный документ по идентификатору.
func (r *AssessmentRepository) GetByID(ctx context.Context, id uuid.UUID) (AssessmentDocument, error) {
	var doc AssessmentDocument
	var payload []byte

	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, payload, created_at
		 FROM assessments
		 WHERE id = $1`,
		id,
	).Scan(&doc.ID, &doc.UserID, &payload, &doc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return doc, ErrNotFound
		}
		return doc, err
	}

	doc.Payload = payload
	return doc, nil
}

// ListByUser возвращает документы пользователя от новых к старым.
func (r *AssessmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]AssessmentDocument, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, payload, created_at
		 FROM assessments
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []AssessmentDocument
	for rows.Next() {
		var doc AssessmentDocument
		var payload []byte
		if err := rows.Scan(&doc.ID, &doc.UserID, &payload, &doc.CreatedAt); err != nil {
			return nil, err
		}
		doc.Payload = payload
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}
