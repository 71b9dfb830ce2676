package repositories

import (
	"sync"

	"alfredoptarigan/interview-coach/internal/models"
)

type memorySessionRepository struct {
	mu          sync.RWMutex
	questions   map[string][]models.Question
	evaluations map[string][]models.EvaluationResult
}

// NewMemorySessionRepository returns a process-lifetime store with no expiry
// and no size bound.
func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{
		questions:   make(map[string][]models.Question),
		evaluations: make(map[string][]models.EvaluationResult),
	}
}

func (r *memorySessionRepository) SaveQuestions(userID string, questions []models.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.questions[userID] = append([]models.Question(nil), questions...)
	return nil
}

func (r *memorySessionRepository) FindQuestions(userID string) ([]models.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	questions, ok := r.questions[userID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return append([]models.Question(nil), questions...), nil
}

func (r *memorySessionRepository) SaveEvaluations(userID string, evaluations []models.EvaluationResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evaluations[userID] = append([]models.EvaluationResult(nil), evaluations...)
	return nil
}

func (r *memorySessionRepository) FindEvaluations(userID string) ([]models.EvaluationResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	evaluations, ok := r.evaluations[userID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return append([]models.EvaluationResult(nil), evaluations...), nil
}
