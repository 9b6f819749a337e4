package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"regexp"

	"github.com/smartprobono/intake-api/internal/core/analytics"
	"github.com/smartprobono/intake-api/internal/core/mail"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type EarlyAccessHandler struct {
	sender    *mail.Sender
	analytics *analytics.Client
}

func NewEarlyAccessHandler(sender *mail.Sender, an *analytics.Client) *EarlyAccessHandler {
	return &EarlyAccessHandler{sender: sender, analytics: an}
}

type earlyAccessRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Firm    string `json:"firm"`
	Message string `json:"message"`
}

// Submit validates the signup form and sends the email pair. An unconfigured
// mail provider still succeeds so the marketing site works in demos.
func (h *EarlyAccessHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req earlyAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required", "")
		return
	}
	if !emailRe.MatchString(req.Email) {
		writeError(w, http.StatusBadRequest, "Invalid email format", "")
		return
	}

	demo, err := h.sender.SendEarlyAccess(r.Context(), mail.EarlyAccessRequest{
		Email:   req.Email,
		Name:    req.Name,
		Firm:    req.Firm,
		Message: req.Message,
	})
	if err != nil {
		log.Printf("early access email failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to send early access request. Please try again later.", "")
		return
	}

	h.analytics.Capture(r.Context(), req.Email, "signup_started", map[string]any{
		"source": "landing",
		"firm":   req.Firm,
	})

	msg := "Early access request submitted successfully!"
	if demo {
		msg = "Early access request received! (Demo mode - emails will be sent when Resend is configured)"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": msg,
		"demo":    demo,
	})
}
