package services

import (
	"strings"
)

const questionTemplate = `You are an AI interview coach. Generate 10 diverse interview questions for the role of {job_role}.
The categories should include technical, behavioral, HR/general, and situational.
Use the resume content below if provided to customize the questions.

Resume:
{resume_text}

Provide the output as a list of questions only.`

const evaluationTemplate = `You are an AI evaluator. Score the following interview response:

Question: {question}
Answer: {answer}

Provide:
- Confidence score (0–10)
- Clarity score (0–10)
- Relevance score (0–10)
- Feedback
- Expected/model answer`

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionPrompt renders the question-generation prompt. An empty
// resumeText renders as an empty resume section.
func (pb *PromptBuilder) BuildQuestionPrompt(jobRole, resumeText string) string {
	return render(questionTemplate, map[string]string{
		"job_role":    jobRole,
		"resume_text": resumeText,
	})
}

// BuildEvaluationPrompt renders the answer-evaluation prompt.
func (pb *PromptBuilder) BuildEvaluationPrompt(question, answer string) string {
	return render(evaluationTemplate, map[string]string{
		"question": question,
		"answer":   answer,
	})
}

// render substitutes {name} placeholders in a single pass, so braces inside
// values are never re-expanded.
func render(tmpl string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for name, value := range values {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
