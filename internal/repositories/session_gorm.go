package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alfredoptarigan/interview-coach/internal/models"
)

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository stores sessions in the interview_sessions table.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) SaveQuestions(userID string, questions []models.Question) error {
	payload, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("failed to encode questions: %w", err)
	}

	return r.upsert(userID, "questions", string(payload))
}

func (r *sessionRepository) FindQuestions(userID string) ([]models.Question, error) {
	session, err := r.find(userID)
	if err != nil {
		return nil, err
	}
	if session.Questions == "" {
		return nil, ErrSessionNotFound
	}

	var questions []models.Question
	if err := json.Unmarshal([]byte(session.Questions), &questions); err != nil {
		return nil, fmt.Errorf("failed to decode questions: %w", err)
	}
	return questions, nil
}

func (r *sessionRepository) SaveEvaluations(userID string, evaluations []models.EvaluationResult) error {
	if evaluations == nil {
		evaluations = []models.EvaluationResult{}
	}

	payload, err := json.Marshal(evaluations)
	if err != nil {
		return fmt.Errorf("failed to encode evaluations: %w", err)
	}

	return r.upsert(userID, "evaluations", string(payload))
}

func (r *sessionRepository) FindEvaluations(userID string) ([]models.EvaluationResult, error) {
	session, err := r.find(userID)
	if err != nil {
		return nil, err
	}
	if session.Evaluations == "" {
		return nil, ErrSessionNotFound
	}

	var evaluations []models.EvaluationResult
	if err := json.Unmarshal([]byte(session.Evaluations), &evaluations); err != nil {
		return nil, fmt.Errorf("failed to decode evaluations: %w", err)
	}
	return evaluations, nil
}

// upsert writes one column, leaving the other entry of the row untouched.
func (r *sessionRepository) upsert(userID, column, payload string) error {
	now := time.Now()
	session := models.Session{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	switch column {
	case "questions":
		session.Questions = payload
	case "evaluations":
		session.Evaluations = payload
	default:
		return fmt.Errorf("unknown session column %q", column)
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{column, "updated_at"}),
	}).Create(&session).Error
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", column, err)
	}

	return nil
}

func (r *sessionRepository) find(userID string) (*models.Session, error) {
	var session models.Session
	if err := r.db.Where("user_id = ?", userID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return &session, nil
}
