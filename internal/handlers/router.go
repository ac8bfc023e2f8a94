package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-resume-scorer/internal/models"
)

// RegisterRoutes mounts the API surface on the app.
func RegisterRoutes(app *fiber.App, evaluateHandler *EvaluateHandler) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Backend is running",
		})
	})

	api.Post("/evaluate", evaluateHandler.HandleEvaluate)
}

// ErrorHandler maps every error escaping a handler to a {"detail": ...}
// body. *fiber.Error keeps its status; anything unclassified is a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(models.ErrorResponse{Detail: err.Error()})
}
