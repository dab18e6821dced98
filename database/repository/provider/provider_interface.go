package providerRepo

import (
	"nestly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProviderRepository defines methods for sitter data access.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID.
	GetByID(id string) (*models.Provider, error)
	// GetAll retrieves all providers.
	GetAll() ([]models.Provider, error)
	// GetByEmail retrieves a provider by its email address.
	GetByEmail(email string) (*models.Provider, error)
	// Create inserts a new provider record.
	Create(provider *models.Provider) error
	// Update modifies an existing provider record.
	Update(provider *models.Provider) error
	// Delete removes a provider record by its ID.
	Delete(id string) error
	// UpdateWithDocument patches a provider document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// SetAvailability replaces a provider's weekly availability.
	SetAvailability(id string, availability models.WeeklyAvailability) error
}
