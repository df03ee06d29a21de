package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pasar/internal/errs"
	"pasar/internal/models"
)

// GORMAccountRepository is a GORM implementation of AccountRepository.
type GORMAccountRepository struct {
	db *gorm.DB
}

// NewGORMAccountRepository creates a new instance of GORMAccountRepository.
func NewGORMAccountRepository(db *gorm.DB) *GORMAccountRepository {
	return &GORMAccountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *GORMAccountRepository) Create(account *models.Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by its ID from the database.
func (r *GORMAccountRepository) GetByID(id string) (*models.Account, error) {
	return r.getByID(r.db, id)
}

// GetByIDForUpdate retrieves an account by its ID holding a row lock.
func (r *GORMAccountRepository) GetByIDForUpdate(id string) (*models.Account, error) {
	return r.getByID(lockForUpdate(r.db), id)
}

func (r *GORMAccountRepository) getByID(db *gorm.DB, id string) (*models.Account, error) {
	var account models.Account
	if err := db.Preload("Roles").First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("account with ID %s: %w", id, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get account by ID %s: %w", id, err)
	}
	return &account, nil
}

// GetByUsername retrieves an account by its username from the database.
func (r *GORMAccountRepository) GetByUsername(username string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Preload("Roles").First(&account, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("account with username %s: %w", username, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get account by username %s: %w", username, err)
	}
	return &account, nil
}

// ExistsByUsername reports whether an account with the username exists.
func (r *GORMAccountRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Account{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check username %s: %w", username, err)
	}
	return count > 0, nil
}

// Save persists changes to an existing account.
func (r *GORMAccountRepository) Save(account *models.Account) error {
	res := r.db.Save(account) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to save account: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("account with ID %s not found for update: %w", account.ID, errs.ErrNotFound)
	}
	return nil
}

// GORMRoleRepository is a GORM implementation of RoleRepository.
type GORMRoleRepository struct {
	db *gorm.DB
}

// NewGORMRoleRepository creates a new instance of GORMRoleRepository.
func NewGORMRoleRepository(db *gorm.DB) *GORMRoleRepository {
	return &GORMRoleRepository{
		db: db,
	}
}

// GetOrCreate returns the role with the given name, creating it on first use.
func (r *GORMRoleRepository) GetOrCreate(name string) (*models.Role, error) {
	var role models.Role
	err := r.db.First(&role, "name = ?", name).Error
	if err == nil {
		return &role, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get role %s: %w", name, err)
	}
	role = models.Role{ID: uuid.New().String(), Name: name}
	if err := r.db.Create(&role).Error; err != nil {
		return nil, fmt.Errorf("failed to create role %s: %w", name, err)
	}
	return &role, nil
}
