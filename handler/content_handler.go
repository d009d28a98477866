package handler

import (
	"log"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	ModuleRepo   *repository.ModuleRepo
	QuestionRepo *repository.QuestionRepo
}

func NewContentHandler(moduleRepo *repository.ModuleRepo, questionRepo *repository.QuestionRepo) *ContentHandler {
	return &ContentHandler{
		ModuleRepo:   moduleRepo,
		QuestionRepo: questionRepo,
	}
}

func (h *ContentHandler) ListModules(c *gin.Context) {
	modules, err := h.ModuleRepo.ListModules(c.Request.Context())
	if err != nil {
		log.Printf("Failed to list modules: %v", err)
		utils.InternalError(c, "Failed to list modules")
		return
	}
	if modules == nil {
		modules = []*model.Module{}
	}
	utils.Success(c, gin.H{"modules": modules})
}

func (h *ContentHandler) ListModuleQuestions(c *gin.Context) {
	moduleID := c.Param("id")

	module, err := h.ModuleRepo.FindModule(c.Request.Context(), moduleID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch module")
		return
	}
	if module == nil {
		utils.NotFound(c, "Module not found")
		return
	}

	questions, err := h.QuestionRepo.ListByModule(c.Request.Context(), moduleID)
	if err != nil {
		log.Printf("Failed to list questions for module %s: %v", moduleID, err)
		utils.InternalError(c, "Failed to list questions")
		return
	}
	if questions == nil {
		questions = []*model.Question{}
	}

	utils.Success(c, gin.H{
		"module":    module,
		"questions": questions,
	})
}

func (h *ContentHandler) GetQuestion(c *gin.Context) {
	question, err := h.QuestionRepo.FindQuestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch question")
		return
	}
	if question == nil {
		utils.NotFound(c, "Question not found")
		return
	}
	utils.Success(c, question)
}
