package handler

import (
	"context"

	"main/model"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// SessionStore is the slice of the session repository the handlers need.
type SessionStore interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetUserActiveSessions(ctx context.Context, userID string) ([]*model.Session, error)
	UpdateLastActivity(ctx context.Context, userID string) error
	EndAllUserSessions(ctx context.Context, userID string) (int64, error)
}

type SessionHandler struct {
	SessionRepo SessionStore
}

func NewSessionHandler(sessionRepo SessionStore) *SessionHandler {
	return &SessionHandler{SessionRepo: sessionRepo}
}

func (h *SessionHandler) GetActiveSessions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	sessions, err := h.SessionRepo.GetUserActiveSessions(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch sessions")
		return
	}
	if sessions == nil {
		sessions = []*model.Session{}
	}

	utils.UpdateActiveSessions(float64(len(sessions)))
	utils.Success(c, gin.H{"sessions": sessions})
}
