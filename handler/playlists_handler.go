package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	PlaylistService *usecase.PlaylistService
}

func NewPlaylistHandler(playlistService *usecase.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{PlaylistService: playlistService}
}

func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var playlist model.Playlist
	if err := c.ShouldBindJSON(&playlist); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	playlist.UserID = userID.(string)

	if err := h.PlaylistService.CreatePlaylist(c.Request.Context(), &playlist); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, playlist)
}

func (h *PlaylistHandler) GetUserPlaylists(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	playlists, err := h.PlaylistService.GetUserPlaylists(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch playlists")
		return
	}
	utils.Success(c, gin.H{"playlists": playlists})
}

func (h *PlaylistHandler) GetPlaylist(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	playlist, err := h.PlaylistService.GetPlaylist(c.Request.Context(), c.Param("id"), userID.(string))
	if err != nil {
		if err.Error() == "playlist not found" {
			utils.NotFound(c, "Playlist not found")
			return
		}
		utils.InternalError(c, "Failed to fetch playlist")
		return
	}
	utils.Success(c, playlist)
}

func (h *PlaylistHandler) RenamePlaylist(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	err := h.PlaylistService.RenamePlaylist(c.Request.Context(), c.Param("id"), userID.(string), req.Name)
	if err != nil {
		if err.Error() == "playlist not found" {
			utils.NotFound(c, "Playlist not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Playlist renamed"})
}

func (h *PlaylistHandler) AddQuestion(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req struct {
		QuestionID string `json:"questionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	err := h.PlaylistService.AddQuestion(c.Request.Context(), c.Param("id"), userID.(string), req.QuestionID)
	if err != nil {
		if err.Error() == "playlist not found" {
			utils.NotFound(c, "Playlist not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Question added"})
}

func (h *PlaylistHandler) RemoveQuestion(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	err := h.PlaylistService.RemoveQuestion(c.Request.Context(), c.Param("id"), userID.(string), c.Param("questionId"))
	if err != nil {
		if err.Error() == "playlist not found" {
			utils.NotFound(c, "Playlist not found")
			return
		}
		utils.InternalError(c, "Failed to remove question")
		return
	}

	utils.Success(c, gin.H{"message": "Question removed"})
}

func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	err := h.PlaylistService.DeletePlaylist(c.Request.Context(), c.Param("id"), userID.(string))
	if err != nil {
		if err.Error() == "playlist not found" {
			utils.NotFound(c, "Playlist not found")
			return
		}
		utils.InternalError(c, "Failed to delete playlist")
		return
	}

	utils.Success(c, gin.H{"message": "Playlist deleted"})
}
