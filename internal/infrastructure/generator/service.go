package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/quillforge/quill/internal/config"
	"github.com/rs/zerolog/log"
)

type generateRequest struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

type generateResponse struct {
	// Pointer so an absent field is distinguishable from an empty completion
	Response *string `json:"response"`
}

// Service talks to the local text-generation endpoint. The request blocks
// until the endpoint responds or the transport itself fails; no client-side
// timeout is configured.
type Service struct {
	client *http.Client
}

func NewService() *Service {
	log.Info().Str("url", config.GetGeneratorURL()).Msg("Initialising local generator service")

	return &Service{
		client: &http.Client{},
	}
}

// Generate sends the prompt and token budget to the endpoint and returns the
// raw completion text. Transport failures and responses of any unexpected
// shape are returned as errors with their distinct cause logged here.
func (s *Service) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	body, err := json.Marshal(generateRequest{Prompt: prompt, MaxTokens: maxTokens})
	if err != nil {
		return "", fmt.Errorf("failed to encode generation request: %w", err)
	}

	url := config.GetGeneratorURL()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("Generation endpoint unreachable")
		return "", fmt.Errorf("endpoint unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("url", url).Msg("Generation endpoint returned non-OK status")
		return "", fmt.Errorf("unexpected status %d from generation endpoint", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("Malformed generation response body")
		return "", fmt.Errorf("malformed response body: %w", err)
	}

	if decoded.Response == nil {
		log.Warn().Str("url", url).Msg("Generation response missing response field")
		return "", fmt.Errorf("response field missing from generation response")
	}

	return *decoded.Response, nil
}
