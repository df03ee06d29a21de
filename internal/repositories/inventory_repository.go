package repositories

import "pasar/internal/models"

// InventoryRepository defines the interface for per-(store, product)
// stock records.
type InventoryRepository interface {
	// GetByStoreID returns all stock records of a store with the Product
	// association populated.
	GetByStoreID(storeID string) ([]models.Inventory, error)
	GetByStoreAndProduct(storeID, productID string) (*models.Inventory, error)
	// GetOrCreate returns the record for the pair, creating and persisting
	// a zero-quantity one when the store has never stocked the product.
	GetOrCreate(storeID, productID string) (*models.Inventory, error)
	Save(inventory *models.Inventory) error
}
