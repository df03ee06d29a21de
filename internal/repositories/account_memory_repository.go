package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"pasar/internal/errs"
	"pasar/internal/models"
)

// MemoryAccountRepository is an in-memory implementation of AccountRepository.
type MemoryAccountRepository struct {
	accounts map[string]models.Account
	mu       sync.RWMutex
}

// NewMemoryAccountRepository creates a new instance of MemoryAccountRepository.
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		accounts: make(map[string]models.Account),
	}
}

// Create adds a new account.
func (r *MemoryAccountRepository) Create(account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	r.accounts[account.ID] = *account
	return nil
}

// GetByID returns an account by its ID.
func (r *MemoryAccountRepository) GetByID(id string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account with ID %s: %w", id, errs.ErrNotFound)
	}
	return &account, nil
}

// GetByIDForUpdate returns an account by its ID. The in-memory store has
// no row locks; the map mutex is the only guard.
func (r *MemoryAccountRepository) GetByIDForUpdate(id string) (*models.Account, error) {
	return r.GetByID(id)
}

// GetByUsername returns an account by its username.
func (r *MemoryAccountRepository) GetByUsername(username string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if account.Username == username {
			a := account
			return &a, nil
		}
	}
	return nil, fmt.Errorf("account with username %s: %w", username, errs.ErrNotFound)
}

// ExistsByUsername reports whether an account with the username exists.
func (r *MemoryAccountRepository) ExistsByUsername(username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if account.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// Save stores changes to an existing account.
func (r *MemoryAccountRepository) Save(account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.ID]; !ok {
		return fmt.Errorf("account with ID %s not found for update: %w", account.ID, errs.ErrNotFound)
	}
	r.accounts[account.ID] = *account
	return nil
}

// MemoryRoleRepository is an in-memory implementation of RoleRepository.
type MemoryRoleRepository struct {
	roles map[string]models.Role
	mu    sync.Mutex
}

// NewMemoryRoleRepository creates a new instance of MemoryRoleRepository.
func NewMemoryRoleRepository() *MemoryRoleRepository {
	return &MemoryRoleRepository{
		roles: make(map[string]models.Role),
	}
}

// GetOrCreate returns the role with the given name, creating it on first use.
func (r *MemoryRoleRepository) GetOrCreate(name string) (*models.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if role, ok := r.roles[name]; ok {
		return &role, nil
	}
	role := models.Role{ID: uuid.New().String(), Name: name}
	r.roles[name] = role
	return &role, nil
}
