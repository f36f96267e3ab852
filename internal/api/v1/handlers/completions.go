package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/quillforge/quill/internal/services/assistant"
	"github.com/quillforge/quill/internal/services/assistant/models"
	"github.com/quillforge/quill/pkg/httpext"
	"github.com/rs/zerolog/log"
)

// use a single instance of Validate, it caches struct info
var validate = validator.New(validator.WithRequiredStructEnabled())

// HandleGenerate handles the explicit-prompt command
func HandleGenerate(assistantService *assistant.Service, w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Client sent malformed generate request")
		httpext.JsonError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	resp := assistantService.GenerateFromPrompt(r.Context(), req.Prompt)

	log.Info().
		Str("request_id", resp.RequestID).
		Str("status", resp.Status).
		Str("client_ip", r.RemoteAddr).
		Msg("Processed generate request")

	writeJSON(w, resp)
}

// HandleGenerateFromComment handles the comment-triggered command
func HandleGenerateFromComment(assistantService *assistant.Service, w http.ResponseWriter, r *http.Request) {
	var req models.CommentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Client sent malformed comment request")
		httpext.JsonError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	resp := assistantService.GenerateFromComment(r.Context(), req.Lines)

	log.Info().
		Str("request_id", resp.RequestID).
		Str("status", resp.Status).
		Int("line_count", len(req.Lines)).
		Msg("Processed comment generate request")

	writeJSON(w, resp)
}

// HandleInlineCompletions handles one cursor-context query from the editor
func HandleInlineCompletions(assistantService *assistant.Service, w http.ResponseWriter, r *http.Request) {
	var req models.InlineRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Client sent malformed inline completion request")
		httpext.JsonError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	// Validate request against model constraints
	if err := validate.Struct(req); err != nil {
		log.Warn().Err(err).Msg("Inline completion request validation failed")
		httpext.JsonError(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	resp := assistantService.InlineCompletions(r.Context(), req.Lines, req.Position)

	log.Debug().
		Str("request_id", resp.RequestID).
		Int("items", len(resp.Items)).
		Msg("Processed inline completion query")

	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
		httpext.JsonError(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
