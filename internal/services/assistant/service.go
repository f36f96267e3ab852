package assistant

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/quillforge/quill/internal/services/assistant/models"
	"github.com/quillforge/quill/internal/services/completion"
	"github.com/quillforge/quill/internal/services/prompt"
	"github.com/quillforge/quill/internal/services/status"
	"github.com/rs/zerolog/log"
)

// User-visible messages for the short-circuit outcomes.
const (
	msgDisabled    = "Quill is disabled"
	msgEmptyPrompt = "No prompt provided"
	msgNoComment   = "No comment found"
	msgNoResponse  = "No response from the model"
)

// Service ties prompt acquisition, the completion client and the status
// controller together and owns the placement decision for returned code.
type Service struct {
	completions *completion.Service
	status      *status.Service
}

func NewService(completions *completion.Service, statusService *status.Service) *Service {
	return &Service{
		completions: completions,
		status:      statusService,
	}
}

// Enable turns the assistant on and returns it to Ready.
func (s *Service) Enable() {
	log.Info().Msg("Assistant enabled")
	s.status.SetEnabled(true)
}

// Disable turns the assistant off. Subsequent triggers are refused before
// any network work starts; nothing in flight is cancelled.
func (s *Service) Disable() {
	log.Info().Msg("Assistant disabled")
	s.status.SetEnabled(false)
}

// Status returns the current assistant status snapshot.
func (s *Service) Status() status.Snapshot {
	return s.status.Snapshot()
}

// GenerateFromPrompt runs the explicit-prompt flow. Non-empty results are
// returned as a block insert, wrapped in a leading and trailing newline, for
// the editor to apply at the cursor.
func (s *Service) GenerateFromPrompt(ctx context.Context, userPrompt string) models.GenerateResponse {
	requestID := uuid.New().String()

	if !s.status.Enabled() {
		return models.GenerateResponse{RequestID: requestID, Status: models.StatusDisabled, Message: msgDisabled}
	}

	if strings.TrimSpace(userPrompt) == "" {
		log.Debug().Str("request_id", requestID).Msg("Empty prompt, skipping request")
		return models.GenerateResponse{RequestID: requestID, Status: models.StatusEmptyPrompt, Message: msgEmptyPrompt}
	}

	return s.generate(ctx, requestID, userPrompt)
}

// GenerateFromComment runs the comment-triggered flow over the active
// document: the bottom-most comment line becomes the prompt.
func (s *Service) GenerateFromComment(ctx context.Context, lines []string) models.GenerateResponse {
	requestID := uuid.New().String()

	if !s.status.Enabled() {
		return models.GenerateResponse{RequestID: requestID, Status: models.StatusDisabled, Message: msgDisabled}
	}

	comment, found := prompt.LastComment(lines)
	if !found || strings.TrimSpace(comment) == "" {
		log.Debug().Str("request_id", requestID).Int("lines", len(lines)).Msg("No usable comment in document")
		return models.GenerateResponse{RequestID: requestID, Status: models.StatusNoComment, Message: msgNoComment}
	}

	return s.generate(ctx, requestID, comment)
}

// InlineCompletions answers one cursor-context query with zero or one
// suggestion items. It never returns an error to the editor surface: a
// disabled assistant, trivial context, or failed completion all produce an
// empty item set.
func (s *Service) InlineCompletions(ctx context.Context, lines []string, position models.Position) models.InlineResponse {
	requestID := uuid.New().String()
	resp := models.InlineResponse{RequestID: requestID, Items: []models.InlineItem{}}

	if !s.status.Enabled() {
		return resp
	}

	preCursor := prompt.PreCursorText(lines, position.Line, position.Character)
	if strings.TrimSpace(preCursor) == "" {
		// backpressure: no network call on trivial context
		return resp
	}

	s.status.SetActivity(status.ActivityGenerating)
	result := s.completions.Fetch(ctx, preCursor)

	if !result.Usable() {
		s.status.SetActivity(terminalActivity(result))
		return resp
	}

	s.status.SetActivity(status.ActivityReady)
	resp.Items = append(resp.Items, models.InlineItem{
		Text:      result.Code,
		Line:      position.Line,
		Character: position.Character,
	})
	return resp
}

func (s *Service) generate(ctx context.Context, requestID, userPrompt string) models.GenerateResponse {
	s.status.SetActivity(status.ActivityGenerating)

	result := s.completions.Fetch(ctx, userPrompt)
	if !result.Usable() {
		// Empty and Failure place nothing either way; only the status bar
		// distinguishes them.
		s.status.SetActivity(terminalActivity(result))
		log.Info().
			Str("request_id", requestID).
			Str("outcome", string(result.Outcome)).
			Msg("Generation produced no usable code")
		return models.GenerateResponse{RequestID: requestID, Status: models.StatusNoResponse, Message: msgNoResponse}
	}

	s.status.SetActivity(status.ActivityReady)
	log.Info().
		Str("request_id", requestID).
		Int("code_len", len(result.Code)).
		Msg("Generation succeeded")

	return models.GenerateResponse{
		RequestID:  requestID,
		Status:     models.StatusInserted,
		InsertText: "\n" + result.Code + "\n",
	}
}

func terminalActivity(result completion.Result) status.Activity {
	if result.Outcome == completion.OutcomeFailure {
		return status.ActivityError
	}
	return status.ActivityNoResponse
}
