package completion

import (
	"context"
	"fmt"

	"github.com/quillforge/quill/pkg/sanitize"
	"github.com/rs/zerolog/log"
)

// MaxTokens is the fixed generation-length budget sent with every request.
const MaxTokens = 500

// Backend is a text-generation backend. Implementations return the raw,
// unsanitised model output.
type Backend interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Outcome classifies a completion attempt.
type Outcome string

const (
	// OutcomeSuccess means the backend responded and sanitisation kept code.
	OutcomeSuccess Outcome = "success"
	// OutcomeEmpty means the backend responded but nothing survived sanitisation.
	OutcomeEmpty Outcome = "empty"
	// OutcomeFailure means the backend was unreachable or its response was malformed.
	OutcomeFailure Outcome = "failure"
)

// Result is the outcome of a completion attempt. Code is empty for both
// Empty and Failure; callers deciding placement treat the two identically,
// the distinction exists for status display and logging.
type Result struct {
	Outcome Outcome
	Code    string
	Err     error
}

// Usable reports whether the result carries code worth placing.
func (r Result) Usable() bool {
	return r.Outcome == OutcomeSuccess && r.Code != ""
}

// Service fetches completions from a backend and sanitises them down to
// code. It never returns an error: every transport or parse failure is
// collapsed into a Failure result with empty code.
type Service struct {
	backend Backend
}

func NewService(backend Backend) (*Service, error) {
	if backend == nil {
		return nil, fmt.Errorf("generation backend is required")
	}
	return &Service{backend: backend}, nil
}

// Fetch sends the prompt with the fixed token budget and returns the
// sanitised result. The call blocks until the backend responds or its
// transport fails; no timeout is applied here.
func (s *Service) Fetch(ctx context.Context, prompt string) Result {
	raw, err := s.backend.Generate(ctx, prompt, MaxTokens)
	if err != nil {
		log.Warn().Err(err).Msg("Completion attempt failed")
		return Result{Outcome: OutcomeFailure, Err: err}
	}

	code := sanitize.ExtractCode(raw)
	if code == "" {
		log.Debug().Int("raw_len", len(raw)).Msg("Completion sanitised to nothing")
		return Result{Outcome: OutcomeEmpty}
	}

	return Result{Outcome: OutcomeSuccess, Code: code}
}
