package handler

import (
	"log"
	"time"

	"main/model"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

type AuthHandler struct {
	UserService *usecase.UserService
	SessionRepo SessionStore
}

func NewAuthHandler(userService *usecase.UserService, sessionRepo SessionStore) *AuthHandler {
	return &AuthHandler{
		UserService: userService,
		SessionRepo: sessionRepo,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := h.UserService.Register(c.Request.Context(), req)
	if err != nil {
		if err == usecase.ErrEmailTaken {
			utils.Conflict(c, "Email already registered")
			return
		}
		log.Printf("Registration failed: %v", err)
		utils.InternalError(c, "Failed to register user")
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}
	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	utils.TrackAuthAttempt("success", "register")
	utils.Created(c, gin.H{
		"token":   token,
		"refresh": refreshToken,
		"user": gin.H{
			"id":        user.UserID,
			"email":     user.Email,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := h.UserService.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		utils.TrackError("auth", "user_lookup")
		utils.InternalError(c, "Failed to look up user")
		return
	}
	if user == nil {
		utils.TrackAuthAttempt("failure", "user_not_found")
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	match, err := services.VerifyPassword(user.Password, req.Password)
	if err != nil || !match {
		utils.TrackAuthAttempt("failure", "invalid_password")
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	// Admin accounts may require a TOTP code.
	if user.TwoFactorEnabled {
		if req.TwoFactorCode == "" {
			utils.TrackAuthAttempt("pending", "2fa_required")
			utils.Success(c, gin.H{
				"requires2FA": true,
				"message":     "2FA code required",
			})
			return
		}
		if !totp.Validate(req.TwoFactorCode, user.TwoFactorSecret) {
			utils.TrackAuthAttempt("failure", "invalid_2fa")
			utils.Unauthorized(c, "Invalid 2FA code")
			return
		}
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}
	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	session := &model.Session{
		SessionID:      utils.GenerateID(),
		UserID:         user.UserID,
		CreatedAt:      time.Now(),
		ExpiresAt:      time.Now().Add(utils.RefreshTokenExpiration),
		LastActivityAt: time.Now(),
		DeviceInfo:     utils.ParseDeviceInfo(c.Request.UserAgent()),
		IPAddress:      c.ClientIP(),
		IsActive:       true,
	}
	if err := h.SessionRepo.CreateSession(c.Request.Context(), session); err != nil {
		// Session tracking is advisory; login still succeeds.
		log.Printf("Failed to record session for user %s: %v", user.UserID, err)
	}

	utils.TrackAuthAttempt("success", "login")
	utils.Success(c, gin.H{
		"message": "Login successful",
		"token":   token,
		"refresh": refreshToken,
		"user": gin.H{
			"id":        user.UserID,
			"email":     user.Email,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"isAdmin":   user.IsAdmin,
			"plan":      user.Plan,
		},
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	if services.IsTokenBlacklisted(req.RefreshToken) {
		utils.Unauthorized(c, "Token has been invalidated")
		return
	}

	userID, err := services.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		utils.TrackAuthAttempt("failure", "refresh")
		switch err.Error() {
		case "token has expired":
			utils.Unauthorized(c, "Refresh token has expired")
		default:
			utils.Unauthorized(c, "Invalid refresh token")
		}
		return
	}

	token, err := services.GenerateToken(userID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}
	refreshToken, err := services.GenerateRefreshToken(userID)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	// A refresh is user activity; keep the session records current.
	if err := h.SessionRepo.UpdateLastActivity(c.Request.Context(), userID); err != nil {
		log.Printf("Failed to update session activity for user %s: %v", userID, err)
	}

	utils.TrackAuthAttempt("success", "refresh")
	utils.Success(c, gin.H{
		"token":   token,
		"refresh": refreshToken,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	if accessToken, ok := c.Get("access_token"); ok {
		if err := services.BlacklistTokens(accessToken.(string), ""); err != nil {
			log.Printf("Failed to blacklist token: %v", err)
		}
	}

	ended, err := h.SessionRepo.EndAllUserSessions(c.Request.Context(), userID.(string))
	if err != nil {
		log.Printf("Failed to end sessions for user %s: %v", userID, err)
	}

	utils.Success(c, gin.H{
		"message":       "Logged out",
		"sessionsEnded": ended,
	})
}
