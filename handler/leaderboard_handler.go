package handler

import (
	"log"
	"strconv"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

const defaultLeaderboardSize = 50

type LeaderboardHandler struct {
	LeaderboardService *usecase.LeaderboardService
}

func NewLeaderboardHandler(service *usecase.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{LeaderboardService: service}
}

func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	limit := defaultLeaderboardSize
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 200 {
			limit = parsed
		}
	}

	entries, err := h.LeaderboardService.GetLeaderboard(c.Request.Context(), limit)
	if err != nil {
		log.Printf("Failed to build leaderboard: %v", err)
		utils.InternalError(c, "Failed to fetch leaderboard")
		return
	}

	utils.Success(c, gin.H{"leaderboard": entries})
}
