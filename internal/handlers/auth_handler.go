package handlers

import (
	"encoding/json"
	"net/http"

	"studio-backend/internal/auth"
	"studio-backend/internal/middleware"
	"studio-backend/internal/models"
	"studio-backend/internal/services"
	"studio-backend/pkg/utils"
)

type AuthHandler struct {
	Service    *services.UserService
	JWTManager *auth.JWTManager
}

func NewAuthHandler(s *services.UserService, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{Service: s, JWTManager: jwtManager}
}

func (h *AuthHandler) setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.JWTManager.TokenDuration().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Service.Register(r.Context(), &req)
	if err != nil {
		serviceError(w, err)
		return
	}

	h.setTokenCookie(w, resp.Token)
	utils.JSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Service.Login(r.Context(), &req)
	if err != nil {
		serviceError(w, err)
		return
	}

	// 2FA accounts get only the temp token; no session cookie yet.
	if !resp.RequiresTOTP {
		h.setTokenCookie(w, resp.Token)
	}
	utils.JSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.Service.GetUser(r.Context(), userID)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, user)
}

// Verify confirms the presented token still resolves to a user.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.Service.GetUser(r.Context(), userID)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"valid": true, "user": user})
}

// GetUser is the admin-side user lookup; the password hash never serializes.
func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.GetUser(r.Context(), idParam(r))
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, user)
}
