package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alfredoptarigan/interview-coach/internal/models"
)

const goodEvaluation = `Confidence: 8
Clarity: 7
Relevance: 9
Feedback: Solid answer.
Expected answer: Mention channels.`

func TestAnswerEvaluatorEvaluate(t *testing.T) {
	model := newFakeModel(goodEvaluation)
	evaluator := NewAnswerEvaluator(model, zap.NewNop())

	result, err := evaluator.Evaluate(context.Background(), models.AnswerInput{
		QuestionID: "q-7",
		Question:   "How do goroutines communicate?",
		Answer:     "Through channels.",
	})
	require.NoError(t, err)

	assert.Equal(t, models.EvaluationResult{
		QuestionID:     "q-7",
		Confidence:     8,
		Clarity:        7,
		Relevance:      9,
		Feedback:       "Solid answer.",
		ExpectedAnswer: "Mention channels.",
	}, *result)

	prompts := model.calls()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "Question: How do goroutines communicate?")
	assert.Contains(t, prompts[0], "Answer: Through channels.")
}

func TestAnswerEvaluatorMalformed(t *testing.T) {
	evaluator := NewAnswerEvaluator(newFakeModel("Confidence: high"), zap.NewNop())

	_, err := evaluator.Evaluate(context.Background(), models.AnswerInput{QuestionID: "q"})
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestAnswerEvaluatorEvaluateAllKeepsOrder(t *testing.T) {
	model := newFakeModel("Confidence: 1", "Confidence: 2", "Confidence: 3")
	evaluator := NewAnswerEvaluator(model, zap.NewNop())

	results, err := evaluator.EvaluateAll(context.Background(), []models.AnswerInput{
		{QuestionID: "a"}, {QuestionID: "b"}, {QuestionID: "c"},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, id := range []string{"a", "b", "c"} {
		assert.Equal(t, id, results[i].QuestionID)
		assert.Equal(t, float64(i+1), results[i].Confidence)
	}
}

func TestAnswerEvaluatorEvaluateAllEmpty(t *testing.T) {
	model := newFakeModel(goodEvaluation)

	results, err := NewAnswerEvaluator(model, zap.NewNop()).EvaluateAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, model.calls())
}

func TestAnswerEvaluatorEvaluateAllStopsOnError(t *testing.T) {
	model := newFakeModel()
	model.err = errors.New("provider unavailable")

	_, err := NewAnswerEvaluator(model, zap.NewNop()).EvaluateAll(context.Background(), []models.AnswerInput{
		{QuestionID: "a"}, {QuestionID: "b"},
	})
	assert.ErrorIs(t, err, model.err)
	assert.Len(t, model.calls(), 1)
}
