package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"alfredoptarigan/ats-resume-scorer/internal/models"
)

// ErrPersistenceUnavailable is returned for every save attempt when the
// store was never configured at process start. A request that cannot be
// recorded is incomplete, so this surfaces as an internal error.
var ErrPersistenceUnavailable = errors.New("evaluation store is not configured properly")

type EvaluationRepository interface {
	SaveEvaluation(ctx context.Context, parsedText string, score int, evaluation *models.EvaluationResult) (*models.ResumeEvaluation, error)
}

type evaluationRepository struct {
	db *gorm.DB
}

// NewEvaluationRepository accepts a nil db: the sink then stays
// non-functional for the process lifetime and reports it per request.
func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

func (r *evaluationRepository) SaveEvaluation(ctx context.Context, parsedText string, score int, evaluation *models.EvaluationResult) (*models.ResumeEvaluation, error) {
	if r.db == nil {
		return nil, ErrPersistenceUnavailable
	}

	payload, err := json.Marshal(evaluation)
	if err != nil {
		return nil, fmt.Errorf("failed to encode evaluation: %w", err)
	}

	record := &models.ResumeEvaluation{
		ParsedText:   parsedText,
		Score:        score,
		FeedbackJSON: datatypes.JSON(payload),
	}

	// Create returns the row with the server-assigned id populated.
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to save evaluation: %w", err)
	}

	return record, nil
}
