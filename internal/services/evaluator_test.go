package services

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/ats-resume-scorer/internal/config"
)

type fakeChatCompleter struct {
	content string
	err     error
	calls   int
	lastReq openai.ChatCompletionRequest
}

func (f *fakeChatCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.content}},
		},
	}, nil
}

const sampleEvaluationJSON = `{
  "score": 82,
  "feedback_tips": ["Add metrics", "Shorten summary"],
  "missing_keywords_or_sections": ["Certifications"],
  "positives": ["Clear structure"],
  "suggested_improvements": [
    {
      "original_text": "Worked on backend",
      "improved_text": "Built and operated Go services handling 10k rps",
      "reasoning": "Quantified impact reads stronger",
      "potential_score_increase": 5
    }
  ]
}`

func TestEvaluateResumeParsesFencedJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"json fence", "```json\n" + sampleEvaluationJSON + "\n```"},
		{"bare fence", "```\n" + sampleEvaluationJSON + "\n```"},
		{"no fence", sampleEvaluationJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeChatCompleter{content: tt.content}
			evaluator := NewEvaluatorService(fake, "gpt-4o")

			result := evaluator.EvaluateResume(context.Background(), "resume text")

			require.Equal(t, 1, fake.calls)
			assert.Equal(t, 82, result.Score)
			assert.Equal(t, []string{"Add metrics", "Shorten summary"}, result.FeedbackTips)
			assert.Equal(t, []string{"Certifications"}, result.MissingKeywordsOrSections)
			assert.Equal(t, []string{"Clear structure"}, result.Positives)
			require.Len(t, result.SuggestedImprovements, 1)
			assert.Equal(t, 5, result.SuggestedImprovements[0].PotentialScoreIncrease)
			assert.Empty(t, result.Error)
		})
	}
}

func TestEvaluateResumeRequestShape(t *testing.T) {
	fake := &fakeChatCompleter{content: sampleEvaluationJSON}
	evaluator := NewEvaluatorService(fake, "gpt-4o-mini")

	evaluator.EvaluateResume(context.Background(), "ten years of Go")

	req := fake.lastReq
	assert.Equal(t, "gpt-4o-mini", req.Model)
	assert.InDelta(t, 0.7, req.Temperature, 0.001)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "ATS (Applicant Tracking System) simulator")
	assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[1].Role)
	assert.Contains(t, req.Messages[1].Content, "ten years of Go")
}

func TestEvaluateResumeInvalidJSONDegrades(t *testing.T) {
	fake := &fakeChatCompleter{content: "I would rate this resume quite highly."}
	evaluator := NewEvaluatorService(fake, "gpt-4o")

	result := evaluator.EvaluateResume(context.Background(), "resume text")

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, "Invalid JSON response from AI.", result.Error)
	require.NotEmpty(t, result.FeedbackTips)
}

func TestEvaluateResumeEmptyTextShortCircuits(t *testing.T) {
	fake := &fakeChatCompleter{content: sampleEvaluationJSON}
	evaluator := NewEvaluatorService(fake, "gpt-4o")

	for _, text := range []string{"", "   \n\t  "} {
		result := evaluator.EvaluateResume(context.Background(), text)

		assert.Equal(t, 0, result.Score)
		assert.Equal(t, "No text extracted from resume.", result.Error)
		require.NotEmpty(t, result.FeedbackTips)
		assert.Contains(t, result.FeedbackTips[0], "empty or unscannable")
	}
	assert.Equal(t, 0, fake.calls)
}

func TestEvaluateResumeProviderErrorDegrades(t *testing.T) {
	fake := &fakeChatCompleter{err: errors.New("429 too many requests")}
	evaluator := NewEvaluatorService(fake, "gpt-4o")

	result := evaluator.EvaluateResume(context.Background(), "resume text")

	assert.Equal(t, 0, result.Score)
	assert.Contains(t, result.Error, "429")
	require.NotEmpty(t, result.FeedbackTips)
}

func TestEvaluateResumeNilClientDegrades(t *testing.T) {
	evaluator := NewEvaluatorService(nil, "gpt-4o")

	result := evaluator.EvaluateResume(context.Background(), "resume text")

	assert.Equal(t, 0, result.Score)
	assert.Contains(t, result.Error, "credentials missing")
	require.NotEmpty(t, result.FeedbackTips)
}

func TestEvaluateResumeEmptyChoicesDegrades(t *testing.T) {
	fake := &emptyChoicesCompleter{}
	evaluator := NewEvaluatorService(fake, "gpt-4o")

	result := evaluator.EvaluateResume(context.Background(), "resume text")

	assert.Equal(t, 0, result.Score)
	assert.NotEmpty(t, result.Error)
}

type emptyChoicesCompleter struct{}

func (e *emptyChoicesCompleter) CreateChatCompletion(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return openai.ChatCompletionResponse{}, nil
}

func TestStripJSONFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, stripJSONFence(tt.in))
	}
}

func TestNewAzureChatClientRequiresCredentials(t *testing.T) {
	tests := []config.AzureConfig{
		{},
		{Endpoint: "https://example.openai.azure.com"},
		{APIKey: "key"},
	}

	for _, cfg := range tests {
		_, err := NewAzureChatClient(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "credentials missing")
	}
}

func TestNewAzureChatClientWithCredentials(t *testing.T) {
	client, err := NewAzureChatClient(config.AzureConfig{
		Endpoint:   "https://example.openai.azure.com",
		APIKey:     "key",
		APIVersion: "2024-02-15-preview",
	})
	require.NoError(t, err)
	assert.NotNil(t, client)
}
