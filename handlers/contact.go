// File: handlers/contact.go
package handlers

import (
	"errors"
	"net/http"

	"consultify/models"
	"consultify/services/contact"
	"consultify/utils"

	"github.com/gin-gonic/gin"
)

// ContactHandler accepts the public contact/booking form.
type ContactHandler struct {
	Service contact.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service contact.ContactService) *ContactHandler {
	return &ContactHandler{Service: service}
}

// Submit relays the request to the consultant and the requester by
// email. It never reserves slot capacity.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.SendBookingRequest(req); err != nil {
		if errors.Is(err, contact.ErrValidation) {
			utils.JSONFail(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONFail(c, http.StatusBadGateway, "Failed to send message. Please try again later.")
		return
	}
	utils.JSONSuccess(c, gin.H{"message": "Message sent successfully! Check your email for confirmation."})
}
