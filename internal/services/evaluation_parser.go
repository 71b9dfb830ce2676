package services

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"alfredoptarigan/interview-coach/internal/models"
)

// ErrMalformedResponse marks model output the evaluation parser cannot accept.
var ErrMalformedResponse = errors.New("malformed model response")

const (
	minScore = 0.0
	maxScore = 10.0
)

type evaluationField int

const (
	fieldNone evaluationField = iota
	fieldConfidence
	fieldClarity
	fieldRelevance
	fieldFeedback
	fieldExpected
)

// evaluationMarkers are tested in order; the first one contained in a line
// decides which field the line sets.
var evaluationMarkers = []struct {
	marker string
	field  evaluationField
}{
	{"Confidence", fieldConfidence},
	{"Clarity", fieldClarity},
	{"Relevance", fieldRelevance},
	{"Feedback", fieldFeedback},
	{"Expected", fieldExpected},
}

func classifyLine(line string) evaluationField {
	for _, m := range evaluationMarkers {
		if strings.Contains(line, m.marker) {
			return m.field
		}
	}
	return fieldNone
}

// valueAfterLastColon and valueAfterFirstColon return the whole line when it
// has no colon.
func valueAfterLastColon(line string) string {
	idx := strings.LastIndex(line, ":")
	return strings.TrimSpace(line[idx+1:])
}

func valueAfterFirstColon(line string) string {
	_, value, found := strings.Cut(line, ":")
	if !found {
		return strings.TrimSpace(line)
	}
	return strings.TrimSpace(value)
}

func parseScore(name, line string) (float64, error) {
	value := valueAfterLastColon(line)

	score, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s score %q in line %q", ErrMalformedResponse, name, value, line)
	}
	if math.IsNaN(score) || score < minScore || score > maxScore {
		return 0, fmt.Errorf("%w: %s score %v outside [%v, %v]", ErrMalformedResponse, name, score, minScore, maxScore)
	}

	return score, nil
}

// ParseEvaluation reads the labelled fields out of a raw evaluation. Each
// line is "label: value"; a later line for the same field overwrites an
// earlier one. Fields that never appear stay zero.
func ParseEvaluation(questionID, raw string) (*models.EvaluationResult, error) {
	result := &models.EvaluationResult{QuestionID: questionID}

	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		var err error

		switch classifyLine(line) {
		case fieldConfidence:
			result.Confidence, err = parseScore("confidence", line)
		case fieldClarity:
			result.Clarity, err = parseScore("clarity", line)
		case fieldRelevance:
			result.Relevance, err = parseScore("relevance", line)
		case fieldFeedback:
			result.Feedback = valueAfterFirstColon(line)
		case fieldExpected:
			result.ExpectedAnswer = valueAfterFirstColon(line)
		}

		if err != nil {
			return nil, err
		}
	}

	return result, nil
}
