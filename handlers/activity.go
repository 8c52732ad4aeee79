package handlers

import (
	"net/http"

	"washly/services/session"
	"washly/utils"

	"github.com/gin-gonic/gin"
)

// ActivityHandler exposes the booking history.
type ActivityHandler struct {
	Store session.Store
}

func NewActivityHandler(store session.Store) *ActivityHandler {
	return &ActivityHandler{Store: store}
}

// GetActivities lists all recorded activities, most recent first.
func (h *ActivityHandler) GetActivities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"activities": h.Store.Activities()})
}

// RateActivity sets the rating on one activity. Unknown ids are a 404.
func (h *ActivityHandler) RateActivity(c *gin.Context) {
	var input struct {
		Rating float64 `json:"rating" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Rating < 1 || input.Rating > 5 {
		utils.JSONError(c, http.StatusBadRequest, "invalid rating", "rating must be between 1 and 5")
		return
	}
	if !h.Store.UpdateActivityRating(c.Param("id"), input.Rating) {
		utils.JSONError(c, http.StatusNotFound, "activity not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
