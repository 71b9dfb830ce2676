package services

import (
	"errors"
	"strings"

	"alfredoptarigan/interview-coach/internal/models"
)

var ErrNoEvaluations = errors.New("at least one evaluation is required")

const (
	strengthThreshold = 8.5
	weaknessThreshold = 6.5

	encouragementPlan = "You're doing great! Keep practicing."
)

// AverageScore is the mean of every evaluation's overall score.
func AverageScore(evaluations []models.EvaluationResult) (float64, error) {
	if len(evaluations) == 0 {
		return 0, ErrNoEvaluations
	}

	var total float64
	for _, e := range evaluations {
		total += e.OverallScore()
	}

	return total / float64(len(evaluations)), nil
}

// dimensionsWhere returns, in Dimensions order, every dimension on which at
// least one evaluation satisfies match.
func dimensionsWhere(evaluations []models.EvaluationResult, match func(float64) bool) []models.Dimension {
	dims := []models.Dimension{}
	for _, d := range models.Dimensions {
		for _, e := range evaluations {
			if match(d.Score(e)) {
				dims = append(dims, d)
				break
			}
		}
	}
	return dims
}

// Summarize builds the round report. Strengths and weaknesses are decided
// independently, so one dimension can appear in both.
func Summarize(userID string, evaluations []models.EvaluationResult) (*models.EvaluationReport, error) {
	avg, err := AverageScore(evaluations)
	if err != nil {
		return nil, err
	}

	strengths := dimensionsWhere(evaluations, func(s float64) bool { return s > strengthThreshold })
	weaknesses := dimensionsWhere(evaluations, func(s float64) bool { return s < weaknessThreshold })

	return &models.EvaluationReport{
		UserID:          userID,
		Evaluations:     evaluations,
		AverageScore:    avg,
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		ImprovementPlan: improvementPlan(weaknesses),
	}, nil
}

func improvementPlan(weaknesses []models.Dimension) string {
	if len(weaknesses) == 0 {
		return encouragementPlan
	}

	names := make([]string, len(weaknesses))
	for i, w := range weaknesses {
		names[i] = string(w)
	}

	return "Work on " + strings.Join(names, ", ")
}
