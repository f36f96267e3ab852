package openai

import (
	"context"
	"fmt"

	"github.com/quillforge/quill/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

// Service is the optional OpenAI-compatible generation backend, selected
// with GENERATOR_BACKEND=openai.
type Service struct {
	client *openai.Client
	model  string
}

func NewService() *Service {
	log.Info().Msg("Initialising OpenAI service")
	key := config.GetOpenAIKey()

	if key == "" {
		log.Warn().Msg("OpenAI service not configured - OPENAI_KEY missing")
		return nil
	}

	return &Service{
		client: openai.NewClient(key),
		model:  config.GetOpenAIModel(),
	}
}

// Generate requests a single chat completion for the prompt under the given
// token budget and returns the raw assistant text.
func (s *Service) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     s.model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		log.Warn().Err(err).Msg("OpenAI completion request failed")
		return "", fmt.Errorf("openai completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		log.Warn().Msg("OpenAI response contained no choices")
		return "", fmt.Errorf("no response choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}
