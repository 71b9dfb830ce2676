package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/interview-coach/internal/models"
)

type QuestionGenerator interface {
	Generate(ctx context.Context, jobRole, resumeText string) ([]models.Question, error)
}

type questionGenerator struct {
	model         LanguageModel
	promptBuilder *PromptBuilder
	log           *zap.Logger
}

func NewQuestionGenerator(model LanguageModel, log *zap.Logger) QuestionGenerator {
	return &questionGenerator{
		model:         model,
		promptBuilder: NewPromptBuilder(),
		log:           log,
	}
}

// PositionalCategory is the category heuristic: the model is asked to cover
// all four categories overall, and the i-th surviving line is labelled
// Categories[i mod 4]. It does not classify the question's content.
func PositionalCategory(index int) models.Category {
	return models.Categories[index%len(models.Categories)]
}

// Generate asks the model for a round of questions. Fewer than ten usable
// lines, including none, are returned as-is.
func (g *questionGenerator) Generate(ctx context.Context, jobRole, resumeText string) ([]models.Question, error) {
	prompt := g.promptBuilder.BuildQuestionPrompt(jobRole, resumeText)

	raw, err := g.model.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	questions := ParseQuestions(raw)
	g.log.Info("questions generated",
		zap.String("job_role", jobRole),
		zap.Bool("with_resume", resumeText != ""),
		zap.Int("count", len(questions)),
	)

	return questions, nil
}

// ParseQuestions turns each non-blank line of raw into a Question with a
// fresh id and its positional category.
func ParseQuestions(raw string) []models.Question {
	questions := []models.Question{}

	for _, line := range strings.Split(raw, "\n") {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}

		questions = append(questions, models.Question{
			ID:       uuid.New().String(),
			Text:     text,
			Category: PositionalCategory(len(questions)),
		})
	}

	return questions
}
