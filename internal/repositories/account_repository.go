package repositories

import "pasar/internal/models"

// AccountRepository defines the interface for account data access.
type AccountRepository interface {
	Create(account *models.Account) error
	GetByID(id string) (*models.Account, error)
	// GetByIDForUpdate loads the account with a row lock when the backing
	// store supports one. Only meaningful inside a transaction.
	GetByIDForUpdate(id string) (*models.Account, error)
	GetByUsername(username string) (*models.Account, error)
	ExistsByUsername(username string) (bool, error)
	Save(account *models.Account) error
}

// RoleRepository defines the interface for role data access.
type RoleRepository interface {
	GetOrCreate(name string) (*models.Role, error)
}
