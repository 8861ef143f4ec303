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

type TOTPHandler struct {
	TOTPService *services.TOTPService
	UserService *services.UserService
	JWTManager  *auth.JWTManager
}

func NewTOTPHandler(totpService *services.TOTPService, userService *services.UserService, jwtManager *auth.JWTManager) *TOTPHandler {
	return &TOTPHandler{
		TOTPService: totpService,
		UserService: userService,
		JWTManager:  jwtManager,
	}
}

// Setup provisions a new secret for the authenticated user.
func (h *TOTPHandler) Setup(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	user, err := h.UserService.GetUser(r.Context(), userID)
	if err != nil {
		serviceError(w, err)
		return
	}

	resp, err := h.TOTPService.GenerateSetup(r.Context(), user)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, resp)
}

// Enable verifies the first code from the authenticator app and turns 2FA on.
func (h *TOTPHandler) Enable(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req models.TOTPEnableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.TOTPService.VerifyAndEnable(r.Context(), userID, req.Code); err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "enabled": true})
}

// VerifyLogin is the second login step: temp token + code in, real token out.
func (h *TOTPHandler) VerifyLogin(w http.ResponseWriter, r *http.Request) {
	var req models.TOTPVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	claims, err := h.JWTManager.ValidateTempToken(req.TempToken)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "Invalid or expired temp token")
		return
	}

	if err := h.TOTPService.Verify(r.Context(), claims.UserID, req.Code); err != nil {
		serviceError(w, err)
		return
	}

	user, err := h.UserService.GetUser(r.Context(), claims.UserID)
	if err != nil {
		serviceError(w, err)
		return
	}
	token, err := h.JWTManager.GenerateToken(user)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.JWTManager.TokenDuration().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.JSON(w, http.StatusOK, &models.AuthResponse{Success: true, Token: token, User: user})
}
