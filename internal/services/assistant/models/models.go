package models

// Outcome values reported to the editor surface for the generate flows.
const (
	StatusInserted    = "inserted"
	StatusNoResponse  = "no_response"
	StatusEmptyPrompt = "empty_prompt"
	StatusNoComment   = "no_comment"
	StatusDisabled    = "disabled"
)

// GenerateRequest is the explicit-prompt command payload.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// CommentRequest carries the active document for the comment-triggered flow.
type CommentRequest struct {
	Lines []string `json:"lines"`
}

// Position is a zero-based cursor location within a document.
type Position struct {
	Line      int `json:"line" validate:"gte=0"`
	Character int `json:"character" validate:"gte=0"`
}

// InlineRequest is one cursor-context query from the editor surface.
type InlineRequest struct {
	Lines    []string `json:"lines"`
	Position Position `json:"position"`
}

// GenerateResponse is the result of the two generate flows. InsertText is
// present only when Status is "inserted"; Message carries the user-visible
// text for every other status.
type GenerateResponse struct {
	RequestID  string `json:"request_id"`
	Status     string `json:"status"`
	InsertText string `json:"insert_text,omitempty"`
	Message    string `json:"message,omitempty"`
}

// InlineItem is a single ghost-text suggestion placed at the cursor.
type InlineItem struct {
	Text      string `json:"text"`
	Line      int    `json:"line"`
	Character int    `json:"character"`
}

// InlineResponse carries zero or one suggestion items.
type InlineResponse struct {
	RequestID string       `json:"request_id"`
	Items     []InlineItem `json:"items"`
}
