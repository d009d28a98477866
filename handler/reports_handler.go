package handler

import (
	"log"
	"strings"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	ReportRepo   *repository.ReportRepo
	QuestionRepo *repository.QuestionRepo
}

func NewReportHandler(reportRepo *repository.ReportRepo, questionRepo *repository.QuestionRepo) *ReportHandler {
	return &ReportHandler{
		ReportRepo:   reportRepo,
		QuestionRepo: questionRepo,
	}
}

func (h *ReportHandler) CreateReport(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	questionID := c.Param("id")

	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	req.Reason = strings.TrimSpace(req.Reason)
	if req.Reason == "" {
		utils.BadRequest(c, "Reason is required")
		return
	}

	question, err := h.QuestionRepo.FindQuestion(c.Request.Context(), questionID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch question")
		return
	}
	if question == nil {
		utils.NotFound(c, "Question not found")
		return
	}

	report := &model.Report{
		ReportID:   utils.GenerateID(),
		UserID:     userID.(string),
		QuestionID: questionID,
		Reason:     req.Reason,
	}
	if err := h.ReportRepo.CreateReport(c.Request.Context(), report); err != nil {
		log.Printf("Failed to create report: %v", err)
		utils.InternalError(c, "Failed to create report")
		return
	}

	utils.Created(c, report)
}

func (h *ReportHandler) ListReports(c *gin.Context) {
	reports, err := h.ReportRepo.ListReports(c.Request.Context(), c.Query("status"))
	if err != nil {
		log.Printf("Failed to list reports: %v", err)
		utils.InternalError(c, "Failed to list reports")
		return
	}
	if reports == nil {
		reports = []*model.Report{}
	}
	utils.Success(c, gin.H{"reports": reports})
}

func (h *ReportHandler) ResolveReport(c *gin.Context) {
	err := h.ReportRepo.UpdateStatus(c.Request.Context(), c.Param("id"), model.ReportStatusResolved)
	if err != nil {
		if err.Error() == "report not found" {
			utils.NotFound(c, "Report not found")
			return
		}
		utils.InternalError(c, "Failed to resolve report")
		return
	}
	utils.Success(c, gin.H{"message": "Report resolved"})
}
