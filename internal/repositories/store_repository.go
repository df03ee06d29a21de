package repositories

import "pasar/internal/models"

// StoreRepository defines the interface for store data access.
type StoreRepository interface {
	Create(store *models.Store) error
	GetByID(id string) (*models.Store, error)
	GetByName(name string) (*models.Store, error)
	ExistsByName(name string) (bool, error)
	Save(store *models.Store) error
}
