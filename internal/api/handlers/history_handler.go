package handlers

import (
	"net/http"

	middleware "github.com/smartprobono/intake-api/internal/api/middlewares"
	db "github.com/smartprobono/intake-api/internal/core/database"
	"github.com/smartprobono/intake-api/internal/models"
)

// HistoryHandler serves the dashboard read paths: saved chats and
// generated documents for the authenticated user.
type HistoryHandler struct {
	dbclient db.DbClient
}

func NewHistoryHandler(dbclient db.DbClient) *HistoryHandler {
	return &HistoryHandler{dbclient: dbclient}
}

func (h *HistoryHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	if h.dbclient == nil {
		writeError(w, http.StatusServiceUnavailable, "history is not available in this deployment", "")
		return
	}
	userID := middleware.UserID(r.Context())
	chats, err := h.dbclient.ListChatsByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load chats", "")
		return
	}
	if chats == nil {
		chats = []models.Chat{}
	}
	writeJSON(w, http.StatusOK, chats)
}

func (h *HistoryHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	if h.dbclient == nil {
		writeError(w, http.StatusServiceUnavailable, "history is not available in this deployment", "")
		return
	}
	userID := middleware.UserID(r.Context())
	docs, err := h.dbclient.ListGeneratedDocumentsByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load documents", "")
		return
	}
	if docs == nil {
		docs = []models.GeneratedDocument{}
	}
	writeJSON(w, http.StatusOK, docs)
}
