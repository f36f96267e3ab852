package handlers

import (
	"net/http"

	"github.com/quillforge/quill/internal/services/assistant"
	"github.com/rs/zerolog/log"
)

// HandleEnable turns the assistant on
func HandleEnable(assistantService *assistant.Service, w http.ResponseWriter, r *http.Request) {
	assistantService.Enable()
	writeJSON(w, assistantService.Status())
}

// HandleDisable turns the assistant off
func HandleDisable(assistantService *assistant.Service, w http.ResponseWriter, r *http.Request) {
	assistantService.Disable()
	writeJSON(w, assistantService.Status())
}

// HandleStatus returns the current assistant status snapshot
func HandleStatus(assistantService *assistant.Service, w http.ResponseWriter, r *http.Request) {
	snap := assistantService.Status()

	log.Debug().
		Bool("enabled", snap.Enabled).
		Str("activity", string(snap.Activity)).
		Msg("Status queried")

	writeJSON(w, snap)
}
