package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"
	middleware "github.com/smartprobono/intake-api/internal/api/middlewares"
	db "github.com/smartprobono/intake-api/internal/core/database"
	"github.com/smartprobono/intake-api/internal/models"
)

type AuthHandler struct {
	dbclient db.DbClient
	secret   string
}

func NewAuthHandler(dbclient db.DbClient, secret string) *AuthHandler {
	return &AuthHandler{dbclient: dbclient, secret: secret}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	FirmName string `json:"firm_name"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if h.dbclient == nil {
		writeError(w, http.StatusServiceUnavailable, "accounts are not available in this deployment", "")
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required", "")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not create account", "")
		return
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.dbclient.CreateUser(r.Context(), user); err != nil {
		writeError(w, http.StatusConflict, "user exists", "")
		return
	}

	h.ensureProfile(r, user, req.FullName, req.FirmName)

	writeJSON(w, http.StatusOK, map[string]string{"token": h.generateJWT(user.ID)})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.dbclient == nil {
		writeError(w, http.StatusServiceUnavailable, "accounts are not available in this deployment", "")
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body", "")
		return
	}

	user, err := h.dbclient.GetUserByEmail(r.Context(), req.Email)
	if err != nil || user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	h.ensureProfile(r, user, "", "")

	writeJSON(w, http.StatusOK, map[string]string{"token": h.generateJWT(user.ID)})
}

// Me returns the caller's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if h.dbclient == nil {
		writeError(w, http.StatusServiceUnavailable, "accounts are not available in this deployment", "")
		return
	}
	userID := middleware.UserID(r.Context())
	profile, err := h.dbclient.GetProfile(r.Context(), userID)
	if err != nil || profile == nil {
		writeError(w, http.StatusNotFound, "profile not found", "")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// ensureProfile lazily creates the 1:1 profile row. Profile creation is not
// allowed to fail a signup or login.
func (h *AuthHandler) ensureProfile(r *http.Request, user *models.User, fullName, firmName string) {
	err := h.dbclient.EnsureProfile(r.Context(), &models.Profile{
		ID:       user.ID,
		Email:    user.Email,
		FullName: fullName,
		FirmName: firmName,
	})
	if err != nil {
		log.Printf("profile ensure failed (non-critical): %v", err)
	}
}

// generateJWT creates a signed token with user ID claim
func (h *AuthHandler) generateJWT(userID string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, _ := tok.SignedString([]byte(h.secret))
	return token
}
