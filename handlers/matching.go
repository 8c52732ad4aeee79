package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"washly/models"
	"washly/services/matching"
	"washly/utils"

	"github.com/gin-gonic/gin"
)

// MatchingHandler exposes the washer matching flow.
type MatchingHandler struct {
	Svc matching.Service
}

func NewMatchingHandler(svc matching.Service) *MatchingHandler {
	return &MatchingHandler{Svc: svc}
}

// StartFlow begins a simulated search around the given centre point.
func (h *MatchingHandler) StartFlow(c *gin.Context) {
	var input struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	snap, err := h.Svc.StartFlow(c.Request.Context(), models.GeoPoint{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to start matching flow", err.Error())
		return
	}
	c.JSON(http.StatusOK, snap)
}

// GetFlow returns the current phase, elapsed seconds and revealed candidates.
func (h *MatchingHandler) GetFlow(c *gin.Context) {
	snap, err := h.Svc.GetFlow(c.Param("flowID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "matching flow not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, snap)
}

// SelectWasher marks a revealed, available washer as the active selection.
func (h *MatchingHandler) SelectWasher(c *gin.Context) {
	var input struct {
		WasherID string `json:"washerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	snap, err := h.Svc.SelectWasher(c.Param("flowID"), input.WasherID)
	if err != nil {
		status := http.StatusConflict
		if errors.Is(err, matching.ErrFlowNotFound) {
			status = http.StatusNotFound
		}
		utils.JSONError(c, status, "failed to select washer", err.Error())
		return
	}
	c.JSON(http.StatusOK, snap)
}

// ConfirmFlow finalizes the flow into a booking.
func (h *MatchingHandler) ConfirmFlow(c *gin.Context) {
	booking, err := h.Svc.ConfirmFlow(c.Param("flowID"))
	if err != nil {
		status := http.StatusConflict
		if errors.Is(err, matching.ErrFlowNotFound) {
			status = http.StatusNotFound
		}
		utils.JSONError(c, status, "failed to confirm booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// CancelFlow discards the flow and stops its timers.
func (h *MatchingHandler) CancelFlow(c *gin.Context) {
	if err := h.Svc.CancelFlow(c.Param("flowID")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "matching flow not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// NearbyWashers returns the proximity-ranked catalogue around a point.
func (h *MatchingHandler) NearbyWashers(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid latitude", c.Query("lat"))
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid longitude", c.Query("lng"))
		return
	}
	washers, err := h.Svc.NearbyWashers(c.Request.Context(), models.GeoPoint{Latitude: lat, Longitude: lng})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to find nearby washers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"washers": washers})
}
