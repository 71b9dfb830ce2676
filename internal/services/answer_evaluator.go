package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"alfredoptarigan/interview-coach/internal/logger"
	"alfredoptarigan/interview-coach/internal/models"
)

type AnswerEvaluator interface {
	Evaluate(ctx context.Context, answer models.AnswerInput) (*models.EvaluationResult, error)
	EvaluateAll(ctx context.Context, answers []models.AnswerInput) ([]models.EvaluationResult, error)
}

type answerEvaluator struct {
	model         LanguageModel
	promptBuilder *PromptBuilder
	log           *zap.Logger
}

func NewAnswerEvaluator(model LanguageModel, log *zap.Logger) AnswerEvaluator {
	return &answerEvaluator{
		model:         model,
		promptBuilder: NewPromptBuilder(),
		log:           log,
	}
}

func (e *answerEvaluator) Evaluate(ctx context.Context, answer models.AnswerInput) (*models.EvaluationResult, error) {
	prompt := e.promptBuilder.BuildEvaluationPrompt(answer.Question, answer.Answer)

	raw, err := e.model.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate answer %s: %w", answer.QuestionID, err)
	}

	result, err := ParseEvaluation(answer.QuestionID, raw)
	if err != nil {
		e.log.Warn("unparseable evaluation",
			zap.String("question_id", answer.QuestionID),
			zap.String("response", logger.Truncate(raw, 300)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to parse evaluation for %s: %w", answer.QuestionID, err)
	}

	return result, nil
}

// EvaluateAll evaluates answers one by one in input order and stops at the
// first failure.
func (e *answerEvaluator) EvaluateAll(ctx context.Context, answers []models.AnswerInput) ([]models.EvaluationResult, error) {
	evaluations := make([]models.EvaluationResult, 0, len(answers))

	for _, answer := range answers {
		result, err := e.Evaluate(ctx, answer)
		if err != nil {
			return nil, err
		}
		evaluations = append(evaluations, *result)
	}

	return evaluations, nil
}
