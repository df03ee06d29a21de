package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"pasar/internal/errs"
	"pasar/internal/models"
)

// MemoryStoreRepository is an in-memory implementation of StoreRepository.
type MemoryStoreRepository struct {
	stores map[string]models.Store
	mu     sync.RWMutex
}

// NewMemoryStoreRepository creates a new instance of MemoryStoreRepository.
func NewMemoryStoreRepository() *MemoryStoreRepository {
	return &MemoryStoreRepository{
		stores: make(map[string]models.Store),
	}
}

// Create adds a new store.
func (r *MemoryStoreRepository) Create(store *models.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if store.ID == "" {
		store.ID = uuid.New().String()
	}
	r.stores[store.ID] = *store
	return nil
}

// GetByID returns a store by its ID.
func (r *MemoryStoreRepository) GetByID(id string) (*models.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	store, ok := r.stores[id]
	if !ok {
		return nil, fmt.Errorf("store with ID %s: %w", id, errs.ErrNotFound)
	}
	return &store, nil
}

// GetByName returns a store by its name.
func (r *MemoryStoreRepository) GetByName(name string) (*models.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, store := range r.stores {
		if store.Name == name {
			s := store
			return &s, nil
		}
	}
	return nil, fmt.Errorf("store with name %s: %w", name, errs.ErrNotFound)
}

// ExistsByName reports whether a store with the name exists.
func (r *MemoryStoreRepository) ExistsByName(name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, store := range r.stores {
		if store.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// Save stores changes to an existing store.
func (r *MemoryStoreRepository) Save(store *models.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stores[store.ID]; !ok {
		return fmt.Errorf("store with ID %s not found for update: %w", store.ID, errs.ErrNotFound)
	}
	r.stores[store.ID] = *store
	return nil
}
