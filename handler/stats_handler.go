package handler

import (
	"log"

	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	StatsService *usecase.StatsService
}

func NewStatsHandler(statsService *usecase.StatsService) *StatsHandler {
	return &StatsHandler{StatsService: statsService}
}

// MyStats returns the user's statistics. A user with no recorded
// activity gets the zero-valued payload, never an error.
func (h *StatsHandler) MyStats(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	semester := c.Query("semester")

	stats, err := h.StatsService.MyStats(c.Request.Context(), userID.(string), semester)
	if err != nil {
		log.Printf("Failed to assemble stats for user %s: %v", userID, err)
		utils.InternalError(c, "Failed to fetch statistics")
		return
	}

	utils.Success(c, stats)
}

// SubmitAnswer grades a submission and updates the user's statistics.
func (h *StatsHandler) SubmitAnswer(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	questionID := c.Param("id")

	var sub model.AnswerSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	result, err := h.StatsService.SubmitAnswer(c.Request.Context(), userID.(string), questionID, sub)
	if err != nil {
		if err == usecase.ErrQuestionNotFound {
			utils.NotFound(c, "Question not found")
			return
		}
		log.Printf("Failed to record answer for user %s: %v", userID, err)
		utils.InternalError(c, "Failed to record answer")
		return
	}

	utils.Success(c, result)
}
