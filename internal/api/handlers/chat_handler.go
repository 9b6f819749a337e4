package handlers

import (
	"encoding/json"
	"net/http"

	middleware "github.com/smartprobono/intake-api/internal/api/middlewares"
	"github.com/smartprobono/intake-api/internal/core/analytics"
	"github.com/smartprobono/intake-api/internal/models"
	"github.com/smartprobono/intake-api/internal/services"
)

type ChatHandler struct {
	intake    *services.IntakeService
	analytics *analytics.Client
}

func NewChatHandler(intake *services.IntakeService, analytics *analytics.Client) *ChatHandler {
	return &ChatHandler{intake: intake, analytics: analytics}
}

type chatRequest struct {
	Messages     []models.Message `json:"messages"`
	UploadedText string           `json:"uploadedText"`
	Mode         string           `json:"mode"` // "chat" | "extract"
}

type chatResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// Respond answers a chat turn. The endpoint returns 200 with usable text
// even when the configured provider fails: the rule-based responder is the
// availability floor.
func (h *ChatHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "")
		return
	}
	if len(req.Messages) == 0 {
		writeError(w, http.StatusBadRequest, "Messages array is required", "")
		return
	}
	if req.Messages[len(req.Messages)-1].Role != models.RoleUser {
		writeError(w, http.StatusBadRequest, "Last message must be from user", "")
		return
	}

	userID := middleware.UserID(r.Context())
	text := h.intake.Respond(r.Context(), userID, req.Messages, req.UploadedText, req.Mode)

	h.analytics.Capture(r.Context(), userID, "chat_message", map[string]any{
		"mode":          req.Mode,
		"has_upload":    req.UploadedText != "",
		"message_count": len(req.Messages),
	})

	writeJSON(w, http.StatusOK, chatResponse{Message: text, Success: true})
}
