package models

type Category string

const (
	CategoryTechnical   Category = "Technical"
	CategoryBehavioral  Category = "Behavioral"
	CategoryHR          Category = "HR"
	CategorySituational Category = "Situational"
)

// Categories is the fixed order used for positional category assignment.
var Categories = []Category{
	CategoryTechnical,
	CategoryBehavioral,
	CategoryHR,
	CategorySituational,
}

type Question struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Category Category `json:"category"`
}

type AnswerInput struct {
	QuestionID string `json:"question_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}
