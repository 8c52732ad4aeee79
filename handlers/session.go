package handlers

import (
	"net/http"

	"washly/models"
	"washly/services/booking"
	"washly/services/location"
	"washly/services/session"
	"washly/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHandler exposes the shared booking context.
type SessionHandler struct {
	Store     session.Store
	Locations location.Service
}

func NewSessionHandler(store session.Store, locations location.Service) *SessionHandler {
	return &SessionHandler{Store: store, Locations: locations}
}

// GetSession returns a snapshot of the whole session state.
func (h *SessionHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Snapshot())
}

// SetProfile overwrites the profile fields.
func (h *SessionHandler) SetProfile(c *gin.Context) {
	var input struct {
		Phone     string `json:"phone"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	h.Store.SetProfile(input.Phone, input.FirstName, input.LastName, input.Email)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetLocation records the confirmed pickup location and pushes it onto the
// recent-locations list when coordinates are present.
func (h *SessionHandler) SetLocation(c *gin.Context) {
	var input struct {
		Label  string           `json:"label" binding:"required"`
		Coords *models.GeoPoint `json:"coords"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	h.Store.SetLocation(input.Label, input.Coords)

	if input.Coords != nil {
		h.Locations.AddRecent(c.Request.Context(), models.RecentLocation{
			ID:        uuid.New().String(),
			Label:     input.Label,
			Latitude:  input.Coords.Latitude,
			Longitude: input.Coords.Longitude,
		})
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetVehicle records the selected vehicle type.
func (h *SessionHandler) SetVehicle(c *gin.Context) {
	var input struct {
		Vehicle models.VehicleType `json:"vehicle" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	h.Store.SetVehicle(input.Vehicle)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetWashType records the selected wash type and returns its quoted price.
func (h *SessionHandler) SetWashType(c *gin.Context) {
	var input struct {
		WashType models.WashType `json:"washType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	h.Store.SetWashType(input.WashType)

	resp := gin.H{"status": "ok"}
	if price, err := booking.WashPrice(input.WashType); err == nil {
		resp["price"] = price
	}
	c.JSON(http.StatusOK, resp)
}

// GetQuote prices the currently selected wash type for an optional time slot.
func (h *SessionHandler) GetQuote(c *gin.Context) {
	washType := h.Store.Snapshot().SelectedWashType
	price, err := booking.QuotePrice(washType, c.Query("timeSlot"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "cannot quote wash type", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"washType":       washType,
		"price":          price,
		"formattedPrice": utils.FormatAmount(price),
	})
}

// Reset restores the session to its defaults.
func (h *SessionHandler) Reset(c *gin.Context) {
	h.Store.Reset()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
