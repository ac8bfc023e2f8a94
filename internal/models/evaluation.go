package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EvaluationResult is the structured evaluation produced by the AI for a
// single resume. Score is always present; on a degraded evaluation it is 0
// and Error explains what went wrong.
type EvaluationResult struct {
	Score                     int                    `json:"score"`
	FeedbackTips              []string               `json:"feedback_tips,omitempty"`
	MissingKeywordsOrSections []string               `json:"missing_keywords_or_sections,omitempty"`
	Positives                 []string               `json:"positives,omitempty"`
	SuggestedImprovements     []SuggestedImprovement `json:"suggested_improvements,omitempty"`
	Error                     string                 `json:"error,omitempty"`
}

type SuggestedImprovement struct {
	OriginalText           string `json:"original_text"`
	ImprovedText           string `json:"improved_text"`
	Reasoning              string `json:"reasoning"`
	PotentialScoreIncrease int    `json:"potential_score_increase"`
}

type ResumeEvaluation struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ParsedText   string         `gorm:"type:text" json:"parsed_text"`
	Score        int            `gorm:"not null;default:0" json:"score"`
	FeedbackJSON datatypes.JSON `gorm:"type:jsonb" json:"feedback_json"`
	CreatedAt    time.Time      `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (ResumeEvaluation) TableName() string {
	return "resume_evaluations"
}
