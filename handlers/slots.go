// File: handlers/slots.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"consultify/models"
	"consultify/services/availability"
	"consultify/services/slot"
	"consultify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SlotHandler serves the admin slot manager and the public scheduling
// widget.
type SlotHandler struct {
	Service slot.SlotService
	Engine  *availability.Engine
}

// NewSlotHandler creates a new SlotHandler.
func NewSlotHandler(service slot.SlotService, engine *availability.Engine) *SlotHandler {
	return &SlotHandler{Service: service, Engine: engine}
}

// activeFilter maps the ?active query param to an isActive filter:
// "true"/"false" filter exactly, anything else applies the default.
func activeFilter(c *gin.Context, defaultValue string) *bool {
	v := c.DefaultQuery("active", defaultValue)
	switch v {
	case "true":
		t := true
		return &t
	case "false":
		f := false
		return &f
	}
	return nil
}

// Create accepts one or more slots in any of the four supported body
// shapes.
func (h *SlotHandler) Create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "failed to read request body")
		return
	}

	inputs, err := slot.ParseCreatePayload(body)
	if err != nil {
		utils.JSONFail(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), inputs)
	if err != nil {
		if errors.Is(err, slot.ErrValidation) {
			utils.JSONFail(c, http.StatusBadRequest, err.Error())
			return
		}
		zap.L().Error("Failed to create time slots", zap.Error(err))
		utils.JSONFail(c, http.StatusBadGateway, err.Error())
		return
	}
	utils.JSONSuccess(c, gin.H{"created": created})
}

// AdminList is the flexible admin listing: includePast and includeFull
// default to true, active is an optional exact filter.
func (h *SlotHandler) AdminList(c *gin.Context) {
	filters := slot.AdminFilters{
		IncludePast: c.DefaultQuery("includePast", "true") == "true",
		IncludeFull: c.DefaultQuery("includeFull", "true") == "true",
		Active:      activeFilter(c, ""),
	}

	slots, err := h.Service.List(c.Request.Context(), time.Now(), filters)
	if err != nil {
		zap.L().Error("Failed to list time slots", zap.Error(err))
		utils.JSONFail(c, http.StatusBadGateway, err.Error())
		return
	}
	utils.JSONSuccess(c, gin.H{"timeSlots": slots})
}

// Update applies a partial update to a slot; any field may change,
// including currentParticipants and isActive.
func (h *SlotHandler) Update(c *gin.Context) {
	var patch models.SlotPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrValidation):
			utils.JSONFail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, slot.ErrNotFound):
			utils.JSONFail(c, http.StatusNotFound, "Time slot not found")
		default:
			zap.L().Error("Failed to update time slot", zap.Error(err))
			utils.JSONFail(c, http.StatusBadGateway, err.Error())
		}
		return
	}
	utils.JSONSuccess(c, gin.H{"slot": updated})
}

// Delete removes a slot.
func (h *SlotHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, slot.ErrNotFound) {
			utils.JSONFail(c, http.StatusNotFound, "Time slot not found")
			return
		}
		zap.L().Error("Failed to delete time slot", zap.Error(err))
		utils.JSONFail(c, http.StatusBadGateway, err.Error())
		return
	}
	utils.JSONSuccess(c, gin.H{"message": "Time slot deleted"})
}

// Increment reserves one seat through the atomic conditional update.
func (h *SlotHandler) Increment(c *gin.Context) {
	updated, err := h.Service.IncrementParticipants(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrNotFound):
			utils.JSONFail(c, http.StatusNotFound, "Time slot not found")
		case errors.Is(err, slot.ErrSlotFull):
			utils.JSONFail(c, http.StatusConflict, "Time slot is at capacity")
		default:
			zap.L().Error("Failed to increment participants", zap.Error(err))
			utils.JSONFail(c, http.StatusBadGateway, err.Error())
		}
		return
	}
	utils.JSONSuccess(c, gin.H{"slot": updated})
}

// PublicList feeds the embeddable scheduling widget: active defaults to
// true, includePast to false, includeFull to true. With ?grouped=true
// the response also carries bookable slots grouped per calendar day for
// the month-calendar markers. Store failures render as an empty listing.
func (h *SlotHandler) PublicList(c *gin.Context) {
	filters := availability.Filters{
		Active:      activeFilter(c, "true"),
		IncludePast: c.DefaultQuery("includePast", "false") == "true",
		IncludeFull: c.DefaultQuery("includeFull", "true") == "true",
	}

	now := time.Now()
	slots := h.Engine.ListPublic(c.Request.Context(), now, filters)

	payload := gin.H{"timeSlots": slots}
	if c.Query("grouped") == "true" {
		payload["days"] = h.Engine.GroupByDay(slots, now)
	}
	utils.JSONSuccess(c, payload)
}
