// File: handlers/admin.go
package handlers

import (
	"errors"
	"net/http"

	"consultify/services/blog"
	"consultify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates the moderation and dashboard operations.
type AdminHandler struct {
	Service blog.BlogService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service blog.BlogService) *AdminHandler {
	return &AdminHandler{Service: service}
}

// GetAllBlogs returns every post, drafts included.
func (h *AdminHandler) GetAllBlogs(c *gin.Context) {
	posts, err := h.Service.ListAllAdmin(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list all blogs", zap.Error(err))
		utils.JSONFail(c, http.StatusBadGateway, err.Error())
		return
	}
	utils.JSONSuccess(c, gin.H{"blogs": posts})
}

// GetAllComments returns every comment, pending and approved.
func (h *AdminHandler) GetAllComments(c *gin.Context) {
	comments, err := h.Service.ListAllComments(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list all comments", zap.Error(err))
		utils.JSONFail(c, http.StatusBadGateway, err.Error())
		return
	}
	utils.JSONSuccess(c, gin.H{"comments": comments})
}

// ApproveComment opens a comment to public display. Approving an
// already-approved comment succeeds.
func (h *AdminHandler) ApproveComment(c *gin.Context) {
	var input struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ID == "" {
		utils.JSONFail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Service.ApproveComment(c.Request.Context(), input.ID); err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			utils.JSONFail(c, http.StatusNotFound, "Comment not found")
			return
		}
		zap.L().Error("Failed to approve comment", zap.Error(err))
		utils.JSONFail(c, http.StatusBadGateway, err.Error())
		return
	}
	utils.JSONSuccess(c, gin.H{"message": "Comment approved successfully."})
}

// DeleteComment removes a comment.
func (h *AdminHandler) DeleteComment(c *gin.Context) {
	var input struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ID == "" {
		utils.JSONFail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Service.DeleteComment(c.Request.Context(), input.ID); err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			utils.JSONFail(c, http.StatusNotFound, "Comment not found")
			return
		}
		zap.L().Error("Failed to delete comment", zap.Error(err))
		utils.JSONFail(c, http.StatusBadGateway, err.Error())
		return
	}
	utils.JSONSuccess(c, gin.H{"message": "Comment deleted successfully."})
}

// Dashboard aggregates counts and the most recent posts.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	data, err := h.Service.Dashboard(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to build dashboard", zap.Error(err))
		utils.JSONFail(c, http.StatusBadGateway, err.Error())
		return
	}
	utils.JSONSuccess(c, gin.H{"dashboardData": data})
}
