package models

type Dimension string

const (
	DimensionConfidence Dimension = "Confidence"
	DimensionClarity    Dimension = "Clarity"
	DimensionRelevance  Dimension = "Relevance"
)

// Dimensions lists the scored axes in report order.
var Dimensions = []Dimension{
	DimensionConfidence,
	DimensionClarity,
	DimensionRelevance,
}

// Score returns the evaluation's score on d.
func (d Dimension) Score(e EvaluationResult) float64 {
	switch d {
	case DimensionConfidence:
		return e.Confidence
	case DimensionClarity:
		return e.Clarity
	case DimensionRelevance:
		return e.Relevance
	default:
		return 0
	}
}

type EvaluationResult struct {
	QuestionID     string  `json:"question_id"`
	Confidence     float64 `json:"confidence"`
	Clarity        float64 `json:"clarity"`
	Relevance      float64 `json:"relevance"`
	Feedback       string  `json:"feedback"`
	ExpectedAnswer string  `json:"expected_answer"`
}

// OverallScore is the unweighted mean of the three dimensions.
func (e EvaluationResult) OverallScore() float64 {
	return (e.Confidence + e.Clarity + e.Relevance) / 3
}

type EvaluationReport struct {
	UserID          string             `json:"user_id"`
	Evaluations     []EvaluationResult `json:"evaluations"`
	AverageScore    float64            `json:"average_score"`
	Strengths       []Dimension        `json:"strengths"`
	Weaknesses      []Dimension        `json:"weaknesses"`
	ImprovementPlan string             `json:"improvement_plan"`
}
