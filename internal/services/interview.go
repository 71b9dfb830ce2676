package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/repositories"
)

const (
	// NextRoundJobRole is used for every follow-up round; the original role
	// is not kept with the session.
	NextRoundJobRole = "generic"

	fullRatingThreshold = 9.0

	MsgNoPreviousSession = "No previous session found."
	MsgFullRating        = "You’ve achieved full rating! No more questions needed."
)

// NextRoundResult holds exactly one outcome: Error, Message or Questions.
type NextRoundResult struct {
	Error     string
	Message   string
	Questions []models.Question
}

type InterviewService interface {
	StartInterview(ctx context.Context, jobRole, resumeText string) (*models.StartInterviewResponse, error)
	SubmitAnswers(ctx context.Context, userID string, answers []models.AnswerInput) (*models.EvaluationReport, error)
	NextRound(ctx context.Context, userID string) (*NextRoundResult, error)
	GetSession(ctx context.Context, userID string) (*models.SessionResponse, error)
}

type interviewService struct {
	sessions  repositories.SessionRepository
	generator QuestionGenerator
	evaluator AnswerEvaluator
	log       *zap.Logger
}

func NewInterviewService(
	sessions repositories.SessionRepository,
	generator QuestionGenerator,
	evaluator AnswerEvaluator,
	log *zap.Logger,
) InterviewService {
	return &interviewService{
		sessions:  sessions,
		generator: generator,
		evaluator: evaluator,
		log:       log,
	}
}

func (s *interviewService) StartInterview(ctx context.Context, jobRole, resumeText string) (*models.StartInterviewResponse, error) {
	userID := uuid.New().String()

	questions, err := s.generator.Generate(ctx, jobRole, resumeText)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.SaveQuestions(userID, questions); err != nil {
		return nil, fmt.Errorf("failed to store questions: %w", err)
	}

	s.log.Info("interview started", zap.String("user_id", userID), zap.Int("questions", len(questions)))

	return &models.StartInterviewResponse{
		UserID:    userID,
		Questions: questions,
	}, nil
}

// SubmitAnswers stores the round's evaluations before summarizing, so an
// empty submission still overwrites the previous evaluation set and then
// fails with ErrNoEvaluations.
func (s *interviewService) SubmitAnswers(ctx context.Context, userID string, answers []models.AnswerInput) (*models.EvaluationReport, error) {
	evaluations, err := s.evaluator.EvaluateAll(ctx, answers)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.SaveEvaluations(userID, evaluations); err != nil {
		return nil, fmt.Errorf("failed to store evaluations: %w", err)
	}

	report, err := Summarize(userID, evaluations)
	if err != nil {
		return nil, err
	}

	s.log.Info("answers evaluated",
		zap.String("user_id", userID),
		zap.Int("answers", len(evaluations)),
		zap.Float64("average_score", report.AverageScore),
	)

	return report, nil
}

func (s *interviewService) NextRound(ctx context.Context, userID string) (*NextRoundResult, error) {
	evaluations, err := s.sessions.FindEvaluations(userID)
	if err != nil && !errors.Is(err, repositories.ErrSessionNotFound) {
		return nil, fmt.Errorf("failed to load evaluations: %w", err)
	}
	if len(evaluations) == 0 {
		return &NextRoundResult{Error: MsgNoPreviousSession}, nil
	}

	avg, err := AverageScore(evaluations)
	if err != nil {
		return nil, err
	}
	if avg >= fullRatingThreshold {
		s.log.Info("full rating reached", zap.String("user_id", userID), zap.Float64("average_score", avg))
		return &NextRoundResult{Message: MsgFullRating}, nil
	}

	// TODO: carry the original job role and weak dimensions into the next round prompt.
	questions, err := s.generator.Generate(ctx, NextRoundJobRole, "")
	if err != nil {
		return nil, err
	}

	if err := s.sessions.SaveQuestions(userID, questions); err != nil {
		return nil, fmt.Errorf("failed to store questions: %w", err)
	}

	return &NextRoundResult{Questions: questions}, nil
}

func (s *interviewService) GetSession(ctx context.Context, userID string) (*models.SessionResponse, error) {
	questions, qErr := s.sessions.FindQuestions(userID)
	if qErr != nil && !errors.Is(qErr, repositories.ErrSessionNotFound) {
		return nil, fmt.Errorf("failed to load questions: %w", qErr)
	}

	evaluations, eErr := s.sessions.FindEvaluations(userID)
	if eErr != nil && !errors.Is(eErr, repositories.ErrSessionNotFound) {
		return nil, fmt.Errorf("failed to load evaluations: %w", eErr)
	}

	if qErr != nil && eErr != nil {
		return nil, repositories.ErrSessionNotFound
	}

	if questions == nil {
		questions = []models.Question{}
	}
	if evaluations == nil {
		evaluations = []models.EvaluationResult{}
	}

	return &models.SessionResponse{
		UserID:      userID,
		Questions:   questions,
		Evaluations: evaluations,
	}, nil
}
