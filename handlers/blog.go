// File: handlers/blog.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"consultify/services/blog"
	"consultify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BlogHandler serves public blog reads, comment submission, and the
// admin content/moderation surface.
type BlogHandler struct {
	Service blog.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(service blog.BlogService) *BlogHandler {
	return &BlogHandler{Service: service}
}

// savedUploadedImage writes the multipart "image" file to a unique temp
// path for the storage upload; the client filename never becomes part of
// the path. Returns "" when the field is absent.
func savedUploadedImage(c *gin.Context) (string, func(), error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", func() {}, nil
	}
	f, err := os.CreateTemp("", "upload-*"+filepath.Ext(fileHeader.Filename))
	if err != nil {
		return "", func() {}, err
	}
	tempPath := f.Name()
	f.Close()
	if err := c.SaveUploadedFile(fileHeader, tempPath); err != nil {
		os.Remove(tempPath)
		return "", func() {}, err
	}
	return tempPath, func() { os.Remove(tempPath) }, nil
}

func (h *BlogHandler) failFromErr(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, blog.ErrValidation):
		utils.JSONFail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, blog.ErrNotFound):
		utils.JSONFail(c, http.StatusNotFound, "Blog not found")
	default:
		zap.L().Error(action, zap.Error(err))
		utils.JSONFail(c, http.StatusBadGateway, err.Error())
	}
}

// Add creates a post from the multipart form: a "blog" JSON field plus a
// required "image" file uploaded to the CDN.
func (h *BlogHandler) Add(c *gin.Context) {
	var in blog.PostInput
	if err := json.Unmarshal([]byte(c.PostForm("blog")), &in); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "invalid blog payload")
		return
	}

	imagePath, cleanup, err := savedUploadedImage(c)
	if err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "failed to read image upload")
		return
	}
	defer cleanup()

	post, err := h.Service.AddPost(c.Request.Context(), in, imagePath)
	if err != nil {
		h.failFromErr(c, err, "Failed to add blog")
		return
	}
	utils.JSONSuccess(c, gin.H{"message": "Successfully uploaded blog", "blog": post})
}

// Edit updates a post; the image file is optional.
func (h *BlogHandler) Edit(c *gin.Context) {
	var in blog.PostInput
	if err := json.Unmarshal([]byte(c.PostForm("blog")), &in); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "invalid blog payload")
		return
	}

	imagePath, cleanup, err := savedUploadedImage(c)
	if err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "failed to read image upload")
		return
	}
	defer cleanup()

	post, err := h.Service.EditPost(c.Request.Context(), in, imagePath)
	if err != nil {
		h.failFromErr(c, err, "Failed to edit blog")
		return
	}
	utils.JSONSuccess(c, gin.H{"message": "Blog updated successfully", "blog": post})
}

// GetAll lists published posts only.
func (h *BlogHandler) GetAll(c *gin.Context) {
	posts, err := h.Service.ListPublished(c.Request.Context())
	if err != nil {
		h.failFromErr(c, err, "Failed to list blogs")
		return
	}
	utils.JSONSuccess(c, gin.H{"blogs": posts})
}

// Search matches published posts by case-insensitive substring over
// title, subtitle and description.
func (h *BlogHandler) Search(c *gin.Context) {
	posts, err := h.Service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.failFromErr(c, err, "Failed to search blogs")
		return
	}
	utils.JSONSuccess(c, gin.H{"blogs": posts})
}

// Recent lists the N most recent published posts (default 5).
func (h *BlogHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	posts, err := h.Service.Recent(c.Request.Context(), limit)
	if err != nil {
		h.failFromErr(c, err, "Failed to list recent blogs")
		return
	}
	utils.JSONSuccess(c, gin.H{"blogs": posts})
}

// GetByID fetches one post.
func (h *BlogHandler) GetByID(c *gin.Context) {
	post, err := h.Service.GetByID(c.Request.Context(), c.Param("blogId"))
	if err != nil {
		h.failFromErr(c, err, "Failed to fetch blog")
		return
	}
	utils.JSONSuccess(c, gin.H{"blog": post})
}

// Delete removes a post and all its comments.
func (h *BlogHandler) Delete(c *gin.Context) {
	var input struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ID == "" {
		utils.JSONFail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Service.DeletePost(c.Request.Context(), input.ID); err != nil {
		h.failFromErr(c, err, "Failed to delete blog")
		return
	}
	utils.JSONSuccess(c, gin.H{"message": "Successfully deleted blog and associated comments"})
}

// TogglePublish flips a post's publish state.
func (h *BlogHandler) TogglePublish(c *gin.Context) {
	var input struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ID == "" {
		utils.JSONFail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	post, err := h.Service.TogglePublish(c.Request.Context(), input.ID)
	if err != nil {
		h.failFromErr(c, err, "Failed to toggle publish")
		return
	}
	utils.JSONSuccess(c, gin.H{"message": "Successfully updated blog", "isPublished": post.IsPublished})
}

// UploadEditorImage uploads an in-article image and returns its URL.
func (h *BlogHandler) UploadEditorImage(c *gin.Context) {
	imagePath, cleanup, err := savedUploadedImage(c)
	if err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "failed to read image upload")
		return
	}
	defer cleanup()

	url, err := h.Service.UploadEditorImage(c.Request.Context(), imagePath)
	if err != nil {
		h.failFromErr(c, err, "Failed to upload editor image")
		return
	}
	utils.JSONSuccess(c, gin.H{"url": url})
}

// AddComment accepts an unauthenticated reader comment; it stays hidden
// until approved.
func (h *BlogHandler) AddComment(c *gin.Context) {
	var input struct {
		Blog    string `json:"blog"`
		Name    string `json:"name"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := h.Service.AddComment(c.Request.Context(), input.Blog, input.Name, input.Content); err != nil {
		h.failFromErr(c, err, "Failed to add comment")
		return
	}
	utils.JSONSuccess(c, gin.H{"message": "Successfully created comment"})
}

// GetComments lists the approved comments for a post.
func (h *BlogHandler) GetComments(c *gin.Context) {
	var input struct {
		BlogID string `json:"blogId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.BlogID == "" {
		utils.JSONFail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	comments, err := h.Service.ListApprovedComments(c.Request.Context(), input.BlogID)
	if err != nil {
		h.failFromErr(c, err, "Failed to list comments")
		return
	}
	utils.JSONSuccess(c, gin.H{"comments": comments})
}
