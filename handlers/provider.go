package handlers

import (
	"net/http"

	providerRepo "nestly/database/repository/provider"
	"nestly/models"
	"nestly/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProviderHandler exposes sitter profile CRUD.
type ProviderHandler struct {
	Repo providerRepo.ProviderRepository
}

func NewProviderHandler(repo providerRepo.ProviderRepository) *ProviderHandler {
	return &ProviderHandler{Repo: repo}
}

// RegisterProvider creates a new sitter profile.
func (h *ProviderHandler) RegisterProvider(c *gin.Context) {
	var provider models.Provider
	if err := c.ShouldBindJSON(&provider); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if provider.ID == "" {
		provider.ID = uuid.New().String()
	}
	if !validAvailability(provider.Availability) {
		utils.JSONError(c, http.StatusBadRequest, "invalid availability", "each slot must satisfy 0 <= start < end <= 1440")
		return
	}
	if err := h.Repo.Create(&provider); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create provider", err.Error())
		return
	}
	c.JSON(http.StatusCreated, provider)
}

// GetProviderByID returns one sitter profile.
func (h *ProviderHandler) GetProviderByID(c *gin.Context) {
	id := c.Param("id")
	provider, err := h.Repo.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "provider not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, provider)
}

// GetAllProviders returns the full sitter roster.
func (h *ProviderHandler) GetAllProviders(c *gin.Context) {
	providers, err := h.Repo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list providers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// UpdateProvider replaces a sitter profile.
func (h *ProviderHandler) UpdateProvider(c *gin.Context) {
	id := c.Param("id")
	var provider models.Provider
	if err := c.ShouldBindJSON(&provider); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	provider.ID = id
	if !validAvailability(provider.Availability) {
		utils.JSONError(c, http.StatusBadRequest, "invalid availability", "each slot must satisfy 0 <= start < end <= 1440")
		return
	}
	if err := h.Repo.Update(&provider); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to update provider", err.Error())
		return
	}
	c.JSON(http.StatusOK, provider)
}

// DeleteProvider removes a sitter profile.
func (h *ProviderHandler) DeleteProvider(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.Delete(id); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete provider", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// SetAvailability replaces a sitter's recurring weekly availability.
func (h *ProviderHandler) SetAvailability(c *gin.Context) {
	id := c.Param("id")
	var availability models.WeeklyAvailability
	if err := c.ShouldBindJSON(&availability); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !validAvailability(availability) {
		utils.JSONError(c, http.StatusBadRequest, "invalid availability", "each slot must satisfy 0 <= start < end <= 1440")
		return
	}
	if err := h.Repo.SetAvailability(id, availability); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to set availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "availability": availability})
}

// validAvailability checks the start<end invariant at the write boundary, so
// the engines downstream can assume well-formed slots.
func validAvailability(w models.WeeklyAvailability) bool {
	for _, slots := range w {
		for _, slot := range slots {
			if !slot.IsValid() {
				return false
			}
		}
	}
	return true
}
