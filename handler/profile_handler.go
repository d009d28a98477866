package handler

import (
	"log"

	"main/model"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	UserService *usecase.UserService
	SessionRepo SessionStore
}

func NewProfileHandler(userService *usecase.UserService, sessionRepo SessionStore) *ProfileHandler {
	return &ProfileHandler{
		UserService: userService,
		SessionRepo: sessionRepo,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	user, err := h.UserService.FindUser(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch user details")
		return
	}
	if user == nil {
		utils.NotFound(c, "User not found")
		return
	}

	utils.Success(c, gin.H{
		"id":           user.UserID,
		"email":        user.Email,
		"firstName":    user.FirstName,
		"lastName":     user.LastName,
		"plan":         user.Plan,
		"subscription": user.Subscription,
		"semesters":    user.Semesters,
		"isAdmin":      user.IsAdmin,
		"createdAt":    user.CreatedAt,
	})
}

// DeleteAccount removes the authenticated user and ends their sessions.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	if err := h.UserService.DeleteAccount(c.Request.Context(), userID.(string)); err != nil {
		if err == usecase.ErrUserNotFound {
			utils.NotFound(c, "User not found")
			return
		}
		log.Printf("Failed to delete account %s: %v", userID, err)
		utils.InternalError(c, "Failed to delete account")
		return
	}

	if _, err := h.SessionRepo.EndAllUserSessions(c.Request.Context(), userID.(string)); err != nil {
		log.Printf("Failed to end sessions for deleted user %s: %v", userID, err)
	}
	if accessToken, ok := c.Get("access_token"); ok {
		if err := services.BlacklistTokens(accessToken.(string), ""); err != nil {
			log.Printf("Failed to blacklist token for deleted user %s: %v", userID, err)
		}
	}

	utils.Success(c, gin.H{"message": "Account deleted"})
}

// UpdateSubscription sets a user's subscription; admin only.
func (h *ProfileHandler) UpdateSubscription(c *gin.Context) {
	var sub model.Subscription
	if err := c.ShouldBindJSON(&sub); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	if sub.PlanName == "" {
		utils.BadRequest(c, "Plan name is required")
		return
	}

	userID := c.Param("id")
	if err := h.UserService.ChangeSubscription(c.Request.Context(), userID, sub); err != nil {
		if err == usecase.ErrUserNotFound {
			utils.NotFound(c, "User not found")
			return
		}
		log.Printf("Failed to update subscription for user %s: %v", userID, err)
		utils.InternalError(c, "Failed to update subscription")
		return
	}

	utils.Success(c, gin.H{"message": "Subscription updated"})
}
