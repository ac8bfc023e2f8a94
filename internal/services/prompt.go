package services

import "fmt"

// resumeEvaluationPrompt is the fixed grading rubric. The JSON shape it
// demands matches models.EvaluationResult exactly.
const resumeEvaluationPrompt = `You are an expert HR recruiter and ATS (Applicant Tracking System) simulator.
Evaluate the provided resume text on overall quality, readability, actionable impact, formatting, structure, and keyword optimization (without a specific JD).
Output ONLY valid JSON in the following format, with no markdown code blocks formatting outside:
{
  "score": <integer from 0 to 100>,
  "feedback_tips": [
    "tip 1", "tip 2"
  ],
  "missing_keywords_or_sections": [
    "missing 1", "missing 2"
  ],
  "positives": [
    "positive 1", "positive 2"
  ],
  "suggested_improvements": [
    {
      "original_text": "text chunk from resume that needs improvement",
      "improved_text": "suggested replacement text that sounds professional and impactful",
      "reasoning": "why this change improves the resume",
      "potential_score_increase": <integer denoting how much the score could improve if this was applied>
    }
  ]
}`

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildSystemPrompt returns the grading rubric sent as the system message.
func (pb *PromptBuilder) BuildSystemPrompt() string {
	return resumeEvaluationPrompt
}

// BuildUserMessage wraps the literal resume text as the user message.
func (pb *PromptBuilder) BuildUserMessage(resumeText string) string {
	return fmt.Sprintf("Here is the resume text:\n\n%s", resumeText)
}
