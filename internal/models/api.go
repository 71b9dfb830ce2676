package models

type StartInterviewResponse struct {
	UserID    string     `json:"user_id"`
	Questions []Question `json:"questions"`
}

type SubmitAnswersRequest struct {
	UserID  string        `json:"user_id"`
	Answers []AnswerInput `json:"answers"`
}

type SessionResponse struct {
	UserID      string             `json:"user_id"`
	Questions   []Question         `json:"questions"`
	Evaluations []EvaluationResult `json:"evaluations"`
}
