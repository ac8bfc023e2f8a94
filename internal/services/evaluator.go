package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"alfredoptarigan/ats-resume-scorer/internal/models"
)

// evaluationTemperature is the fixed sampling temperature for every call.
const evaluationTemperature = 0.7

type EvaluatorService interface {
	// EvaluateResume scores the extracted resume text. It never fails:
	// every provider or parsing problem is absorbed into a degraded result
	// so the caller always gets a structured evaluation back.
	EvaluateResume(ctx context.Context, text string) *models.EvaluationResult
}

type evaluatorService struct {
	client        ChatCompleter
	model         string
	promptBuilder *PromptBuilder
}

// NewEvaluatorService wires the evaluator. A nil client is allowed: it means
// credentials were missing at startup, and every evaluation degrades.
func NewEvaluatorService(client ChatCompleter, model string) EvaluatorService {
	return &evaluatorService{
		client:        client,
		model:         model,
		promptBuilder: NewPromptBuilder(),
	}
}

func (e *evaluatorService) EvaluateResume(ctx context.Context, text string) *models.EvaluationResult {
	if strings.TrimSpace(text) == "" {
		// Short-circuit before spending a provider call.
		return degradedResult(
			"No text extracted from resume.",
			"The uploaded PDF appears to be empty or unscannable.",
		)
	}

	if e.client == nil {
		log.Println("❌ Azure AI client is not configured, returning degraded evaluation")
		return degradedResult(
			"Azure AI credentials missing.",
			"Failed to evaluate resume due to an internal API error.",
		)
	}

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: e.promptBuilder.BuildSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: e.promptBuilder.BuildUserMessage(text)},
		},
		Temperature: evaluationTemperature,
	})
	if err != nil {
		log.Printf("❌ Chat completion failed: %v", err)
		return degradedResult(err.Error(), "Failed to evaluate resume due to an internal API error.")
	}

	if len(resp.Choices) == 0 {
		log.Println("❌ Chat completion returned no choices")
		return degradedResult("Empty response from AI.", "Failed to evaluate resume due to an internal API error.")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	return parseEvaluation(content)
}

// parseEvaluation parses the model reply, stripping a markdown code fence
// the model may have wrapped the JSON in despite the rubric.
func parseEvaluation(content string) *models.EvaluationResult {
	var result models.EvaluationResult
	if err := json.Unmarshal([]byte(stripJSONFence(content)), &result); err != nil {
		log.Printf("❌ Failed to parse evaluation response: %v", err)
		return degradedResult("Invalid JSON response from AI.", "AI produced an unreadable evaluation. Please try again.")
	}

	return &result
}

func stripJSONFence(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	} else {
		content = strings.TrimPrefix(content, "```")
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")

	return strings.TrimSpace(content)
}

func degradedResult(errMsg, tip string) *models.EvaluationResult {
	return &models.EvaluationResult{
		Score:        0,
		Error:        errMsg,
		FeedbackTips: []string{tip},
	}
}
