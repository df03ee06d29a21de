package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pasar/internal/errs"
	"pasar/internal/models"
)

// GORMInventoryRepository is a GORM implementation of InventoryRepository.
type GORMInventoryRepository struct {
	db *gorm.DB
}

// NewGORMInventoryRepository creates a new instance of GORMInventoryRepository.
func NewGORMInventoryRepository(db *gorm.DB) *GORMInventoryRepository {
	return &GORMInventoryRepository{
		db: db,
	}
}

// GetByStoreID retrieves all inventory records of a store with products
// preloaded, in the database's natural order.
func (r *GORMInventoryRepository) GetByStoreID(storeID string) ([]models.Inventory, error) {
	var inventories []models.Inventory
	if err := r.db.Preload("Product").Find(&inventories, "store_id = ?", storeID).Error; err != nil {
		return nil, fmt.Errorf("failed to get inventory for store %s: %w", storeID, err)
	}
	return inventories, nil
}

// GetByStoreAndProduct retrieves the record for a (store, product) pair.
func (r *GORMInventoryRepository) GetByStoreAndProduct(storeID, productID string) (*models.Inventory, error) {
	var inventory models.Inventory
	err := r.db.First(&inventory, "store_id = ? AND product_id = ?", storeID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("inventory for store %s and product %s: %w", storeID, productID, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get inventory for store %s and product %s: %w", storeID, productID, err)
	}
	return &inventory, nil
}

// GetOrCreate returns the record for the pair, locking the row when the
// dialect supports it, or persists a fresh zero-quantity record. The
// composite unique index keeps concurrent creations from producing
// duplicates.
func (r *GORMInventoryRepository) GetOrCreate(storeID, productID string) (*models.Inventory, error) {
	var inventory models.Inventory
	err := lockForUpdate(r.db).First(&inventory, "store_id = ? AND product_id = ?", storeID, productID).Error
	if err == nil {
		return &inventory, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get inventory for store %s and product %s: %w", storeID, productID, err)
	}

	inventory = models.Inventory{
		ID:        uuid.New().String(),
		StoreID:   storeID,
		ProductID: productID,
		Quantity:  0,
	}
	if err := r.db.Create(&inventory).Error; err != nil {
		return nil, fmt.Errorf("failed to create inventory for store %s and product %s: %w", storeID, productID, err)
	}
	return &inventory, nil
}

// Save persists changes to an existing inventory record.
func (r *GORMInventoryRepository) Save(inventory *models.Inventory) error {
	res := r.db.Save(inventory)
	if res.Error != nil {
		return fmt.Errorf("failed to save inventory: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("inventory with ID %s not found for update: %w", inventory.ID, errs.ErrNotFound)
	}
	return nil
}
