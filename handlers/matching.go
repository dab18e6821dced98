package handlers

import (
	"net/http"

	"nestly/models"
	"nestly/services/matching"
	"nestly/utils"

	"github.com/gin-gonic/gin"
)

// MatchingHandler exposes the sitter-matching engine over HTTP.
type MatchingHandler struct {
	Svc matching.MatchingService
}

func NewMatchingHandler(svc matching.MatchingService) *MatchingHandler {
	return &MatchingHandler{Svc: svc}
}

type matchRequest struct {
	Latitude    *float64                `json:"latitude"`
	Longitude   *float64                `json:"longitude"`
	Preferences models.MatchPreferences `json:"preferences"`
}

// SmartMatches returns a ranked list of nearby sitters for the parent's
// location and preferences. A missing parent location is a defined no-match
// result, not an error.
func (h *MatchingHandler) SmartMatches(c *gin.Context) {
	var input matchRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if input.Latitude == nil || input.Longitude == nil {
		c.JSON(http.StatusOK, gin.H{"matches": []models.ScoredCandidate{}})
		return
	}

	origin := models.NewGeoPoint(*input.Latitude, *input.Longitude)
	candidates, err := h.Svc.SmartMatches(origin, input.Preferences)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to match sitters", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": candidates})
}
