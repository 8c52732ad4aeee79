package handlers

import (
	"net/http"
	"strconv"

	"washly/models"
	"washly/services/geocode"
	"washly/services/location"
	"washly/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LocationHandler exposes geocoding and the recent-locations cache.
type LocationHandler struct {
	Geocode   geocode.Service
	Locations location.Service
}

func NewLocationHandler(geo geocode.Service, locations location.Service) *LocationHandler {
	return &LocationHandler{Geocode: geo, Locations: locations}
}

// Search forward-geocodes a free-text query. Always returns 200; geocoding
// failures degrade to an empty result list.
func (h *LocationHandler) Search(c *gin.Context) {
	results := h.Geocode.Search(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// Reverse resolves coordinates to a label, falling back to a fixed one.
func (h *LocationHandler) Reverse(c *gin.Context) {
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
	label := h.Geocode.Reverse(c.Request.Context(), models.GeoPoint{Latitude: lat, Longitude: lng})
	c.JSON(http.StatusOK, gin.H{"label": label})
}

// GetRecent returns the capped recent-locations list.
func (h *LocationHandler) GetRecent(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": h.Locations.Recent(c.Request.Context())})
}

// AddRecent pushes a location onto the recent list.
func (h *LocationHandler) AddRecent(c *gin.Context) {
	var input struct {
		Label     string  `json:"label" binding:"required"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	list := h.Locations.AddRecent(c.Request.Context(), models.RecentLocation{
		ID:        uuid.New().String(),
		Label:     input.Label,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	})
	c.JSON(http.StatusOK, gin.H{"locations": list})
}

// ClearRecent wipes the recent-locations list.
func (h *LocationHandler) ClearRecent(c *gin.Context) {
	h.Locations.ClearRecent(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
