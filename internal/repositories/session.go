package repositories

import (
	"errors"

	"alfredoptarigan/interview-coach/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository keeps, per user id, the current question set and the
// most recent evaluation set. The two entries are independent and every save
// overwrites the previous value.
type SessionRepository interface {
	SaveQuestions(userID string, questions []models.Question) error
	FindQuestions(userID string) ([]models.Question, error)
	SaveEvaluations(userID string, evaluations []models.EvaluationResult) error
	FindEvaluations(userID string) ([]models.EvaluationResult, error)
}
