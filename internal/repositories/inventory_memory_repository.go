package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"pasar/internal/errs"
	"pasar/internal/models"
)

// MemoryInventoryRepository is an in-memory implementation of
// InventoryRepository. It resolves the Product association through the
// given product repository, mirroring the GORM preload.
type MemoryInventoryRepository struct {
	inventories map[string]models.Inventory
	products    ProductRepository
	mu          sync.RWMutex
}

// NewMemoryInventoryRepository creates a new instance of MemoryInventoryRepository.
func NewMemoryInventoryRepository(products ProductRepository) *MemoryInventoryRepository {
	return &MemoryInventoryRepository{
		inventories: make(map[string]models.Inventory),
		products:    products,
	}
}

// GetByStoreID returns all inventory records of a store with products populated.
func (r *MemoryInventoryRepository) GetByStoreID(storeID string) ([]models.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Inventory
	for _, inv := range r.inventories {
		if inv.StoreID != storeID {
			continue
		}
		if product, err := r.products.GetByID(inv.ProductID); err == nil {
			inv.Product = *product
		}
		result = append(result, inv)
	}
	return result, nil
}

// GetByStoreAndProduct returns the record for a (store, product) pair.
func (r *MemoryInventoryRepository) GetByStoreAndProduct(storeID, productID string) (*models.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, inv := range r.inventories {
		if inv.StoreID == storeID && inv.ProductID == productID {
			i := inv
			return &i, nil
		}
	}
	return nil, fmt.Errorf("inventory for store %s and product %s: %w", storeID, productID, errs.ErrNotFound)
}

// GetOrCreate returns the record for the pair, creating a zero-quantity
// one when the store has never stocked the product.
func (r *MemoryInventoryRepository) GetOrCreate(storeID, productID string) (*models.Inventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, inv := range r.inventories {
		if inv.StoreID == storeID && inv.ProductID == productID {
			i := inv
			return &i, nil
		}
	}
	inventory := models.Inventory{
		ID:        uuid.New().String(),
		StoreID:   storeID,
		ProductID: productID,
		Quantity:  0,
	}
	r.inventories[inventory.ID] = inventory
	return &inventory, nil
}

// Save stores changes to an existing inventory record.
func (r *MemoryInventoryRepository) Save(inventory *models.Inventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.inventories[inventory.ID]; !ok {
		return fmt.Errorf("inventory with ID %s not found for update: %w", inventory.ID, errs.ErrNotFound)
	}
	r.inventories[inventory.ID] = *inventory
	return nil
}
