package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	NotesService *usecase.NotesService
}

func NewNoteHandler(notesService *usecase.NotesService) *NoteHandler {
	return &NoteHandler{NotesService: notesService}
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var note model.Note
	if err := c.ShouldBindJSON(&note); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	note.UserID = userID.(string)

	if err := h.NotesService.CreateNote(c.Request.Context(), &note); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, note)
}

func (h *NoteHandler) GetUserNotes(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	// Optional filter by question.
	if questionID := c.Query("questionId"); questionID != "" {
		notes, err := h.NotesService.GetQuestionNotes(c.Request.Context(), userID.(string), questionID)
		if err != nil {
			utils.InternalError(c, "Failed to fetch notes")
			return
		}
		utils.Success(c, gin.H{"notes": notes})
		return
	}

	notes, err := h.NotesService.GetUserNotes(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch notes")
		return
	}
	utils.Success(c, gin.H{"notes": notes})
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	err := h.NotesService.UpdateNote(c.Request.Context(), c.Param("id"), userID.(string), req.Content)
	if err != nil {
		if err.Error() == "note not found" {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Note updated"})
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	err := h.NotesService.DeleteNote(c.Request.Context(), c.Param("id"), userID.(string))
	if err != nil {
		if err.Error() == "note not found" {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.InternalError(c, "Failed to delete note")
		return
	}

	utils.Success(c, gin.H{"message": "Note deleted"})
}
