package repositories

import "pasar/internal/models"

// ProductRepository defines the interface for product catalog access.
// The catalog is read-only for marketplace operations; Create exists for
// seeding and administration.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
}
