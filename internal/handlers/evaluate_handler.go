package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/ats-resume-scorer/internal/models"
	"alfredoptarigan/ats-resume-scorer/internal/repositories"
	"alfredoptarigan/ats-resume-scorer/internal/services"
)

type EvaluateHandler struct {
	pdfParser services.PDFParserService
	evaluator services.EvaluatorService
	evalRepo  repositories.EvaluationRepository
}

func NewEvaluateHandler(
	pdfParser services.PDFParserService,
	evaluator services.EvaluatorService,
	evalRepo repositories.EvaluationRepository,
) *EvaluateHandler {
	return &EvaluateHandler{
		pdfParser: pdfParser,
		evaluator: evaluator,
		evalRepo:  evalRepo,
	}
}

// HandleEvaluate runs the whole pipeline for one upload: validate, extract,
// evaluate, persist, respond. Validation and empty extraction abort before
// any external call; a degraded evaluation still gets persisted and
// returned, only a persistence failure turns into a 5xx.
func (h *EvaluateHandler) HandleEvaluate(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "No resume file uploaded. Send a PDF in the 'file' field.")
	}

	if err := services.ValidateResumeUpload(file); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("failed to read uploaded file: %w", err)
	}

	text := h.pdfParser.ExtractText(content)
	if text == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Could not extract text from this PDF.")
	}

	evaluation := h.evaluator.EvaluateResume(c.UserContext(), text)

	record, err := h.evalRepo.SaveEvaluation(c.UserContext(), text, evaluation.Score, evaluation)
	if err != nil {
		return err
	}

	var recordID *string
	if record != nil && record.ID != uuid.Nil {
		id := record.ID.String()
		recordID = &id
	}

	return c.JSON(models.EvaluateResponse{
		Success:    true,
		RecordID:   recordID,
		Evaluation: evaluation,
	})
}
