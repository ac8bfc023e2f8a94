package services

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"alfredoptarigan/ats-resume-scorer/internal/config"
)

// ChatCompleter is the slice of the OpenAI client the evaluator needs.
// *openai.Client satisfies it; tests substitute a fake.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

func NewAzureChatClient(cfg config.AzureConfig) (ChatCompleter, error) {
	if cfg.Endpoint == "" || cfg.APIKey == "" {
		return nil, fmt.Errorf("azure AI credentials missing (AZURE_AI_ENDPOINT, AZURE_AI_KEY)")
	}

	clientConfig := openai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
	clientConfig.APIVersion = cfg.APIVersion

	return openai.NewClientWithConfig(clientConfig), nil
}
