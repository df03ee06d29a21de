package services

import (
	"fmt"
	"log"

	"pasar/internal/errs"
	"pasar/internal/models"
	"pasar/internal/repositories"
)

const (
	minStoreNameLength = 3
	maxStoreNameLength = 30
)

// StoreService handles business logic for store creation and renaming.
type StoreService struct {
	storeRepo   repositories.StoreRepository
	accountRepo repositories.AccountRepository
}

// NewStoreService creates a new StoreService.
func NewStoreService(storeRepo repositories.StoreRepository, accountRepo repositories.AccountRepository) *StoreService {
	return &StoreService{
		storeRepo:   storeRepo,
		accountRepo: accountRepo,
	}
}

// CreateStore creates a store named storeName owned by the acting account.
func (s *StoreService) CreateStore(actorID, storeName string) (*models.StoreOperationResult, error) {
	if storeName == "" {
		return nil, fmt.Errorf("store name cannot be empty: %w", errs.ErrInvalidInput)
	}
	account, err := s.accountRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if err := checkStoreNameLength(storeName); err != nil {
		return nil, err
	}
	exists, err := s.storeRepo.ExistsByName(storeName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("store with name '%s' already exists: %w", storeName, errs.ErrAlreadyExists)
	}

	store := &models.Store{Name: storeName, OwnerID: account.ID}
	if err := s.storeRepo.Create(store); err != nil {
		return nil, err
	}
	log.Printf("Store '%s' created by '%s'", storeName, account.Username)

	return &models.StoreOperationResult{
		Operation: models.OpCreateStore,
		OwnerName: account.Username,
		StoreName: store.Name,
	}, nil
}

// RenameStore renames the store called oldName, provided it belongs to
// the acting account and newName is valid and unused.
func (s *StoreService) RenameStore(actorID, oldName, newName string) (*models.StoreOperationResult, error) {
	if newName == "" {
		return nil, fmt.Errorf("store name cannot be empty: %w", errs.ErrInvalidInput)
	}
	account, err := s.accountRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	store, err := s.storeRepo.GetByName(oldName)
	if err != nil {
		return nil, err
	}
	if err := checkStoreNameLength(newName); err != nil {
		return nil, err
	}
	exists, err := s.storeRepo.ExistsByName(newName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("store with name '%s' already exists: %w", newName, errs.ErrAlreadyExists)
	}
	if oldName == newName {
		return nil, fmt.Errorf("new name must differ from the old one: %w", errs.ErrInvalidInput)
	}
	if store.OwnerID != account.ID {
		return nil, fmt.Errorf("store '%s' does not belong to the current account: %w", oldName, errs.ErrAccessDenied)
	}

	store.Name = newName
	if err := s.storeRepo.Save(store); err != nil {
		return nil, err
	}

	return &models.StoreOperationResult{
		Operation: models.OpChangeName,
		OwnerName: account.Username,
		StoreName: newName,
	}, nil
}

func checkStoreNameLength(name string) error {
	if len(name) < minStoreNameLength || len(name) > maxStoreNameLength {
		return fmt.Errorf("store name must be between %d and %d characters: %w",
			minStoreNameLength, maxStoreNameLength, errs.ErrInvalidInput)
	}
	return nil
}
