package services

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"pasar/internal/auth"
	"pasar/internal/errs"
	"pasar/internal/models"
	"pasar/internal/repositories"
)

const (
	minUsernameLength = 4
	maxUsernameLength = 20
	minPasswordLength = 6
	maxPasswordLength = 30

	defaultRole = "ROLE_USER"
)

// startingBalance is credited to every account at registration.
var startingBalance = decimal.NewFromInt(5000)

// AccountService handles business logic for account registration,
// authentication checks and credential changes.
type AccountService struct {
	accountRepo repositories.AccountRepository
	roleRepo    repositories.RoleRepository
	hasher      auth.PasswordHasher
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo repositories.AccountRepository, roleRepo repositories.RoleRepository, hasher auth.PasswordHasher) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		roleRepo:    roleRepo,
		hasher:      hasher,
	}
}

// Register creates a new active account with the starting balance and the
// default role. The username must be unused and both credentials must
// satisfy the length rules.
func (s *AccountService) Register(username, password string) (*models.AccountOperationResult, error) {
	exists, err := s.accountRepo.ExistsByUsername(username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("username '%s' is already taken: %w", username, errs.ErrAlreadyExists)
	}
	if err := checkUsernameLength(username); err != nil {
		return nil, err
	}
	if err := checkPasswordLength(password); err != nil {
		return nil, err
	}

	role, err := s.roleRepo.GetOrCreate(defaultRole)
	if err != nil {
		return nil, err
	}
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Username: username,
		Password: hashed,
		Balance:  startingBalance,
		Roles:    []models.Role{*role},
		Active:   true,
	}
	if err := s.accountRepo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to register account: %w", err)
	}
	log.Printf("Account '%s' registered", username)

	return &models.AccountOperationResult{
		Username:  username,
		Operation: models.OpRegistration,
		Success:   true,
	}, nil
}

// Login validates the credentials against the stored hash. It does not
// issue a session or token; that is the caller's concern.
func (s *AccountService) Login(username, password string) (*models.AccountOperationResult, error) {
	account, err := s.accountRepo.GetByUsername(username)
	if err != nil {
		// Do not reveal whether the username exists.
		return nil, fmt.Errorf("username or password is incorrect: %w", errs.ErrInvalidCredentials)
	}
	if !account.Active {
		return nil, fmt.Errorf("username or password is incorrect: %w", errs.ErrInvalidCredentials)
	}
	if !s.hasher.Verify(password, account.Password) {
		return nil, fmt.Errorf("username or password is incorrect: %w", errs.ErrInvalidCredentials)
	}

	return &models.AccountOperationResult{
		Username:  username,
		Operation: models.OpLogin,
		Success:   true,
	}, nil
}

// ChangeUsername renames the account called oldName, provided it belongs
// to the acting account and newName is valid and unused.
func (s *AccountService) ChangeUsername(actorID, oldName, newName string) (*models.AccountOperationResult, error) {
	if oldName == "" || newName == "" {
		return nil, fmt.Errorf("username cannot be empty: %w", errs.ErrInvalidInput)
	}
	if err := checkUsernameLength(newName); err != nil {
		return nil, err
	}
	account, err := s.accountRepo.GetByUsername(oldName)
	if err != nil {
		return nil, err
	}
	if account.ID != actorID {
		return nil, fmt.Errorf("username '%s' does not belong to the current account: %w", oldName, errs.ErrAccessDenied)
	}
	exists, err := s.accountRepo.ExistsByUsername(newName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("username '%s' is already taken: %w", newName, errs.ErrInvalidInput)
	}

	account.Username = newName
	if err := s.accountRepo.Save(account); err != nil {
		return nil, err
	}

	return &models.AccountOperationResult{
		Username:  oldName + " -> " + newName,
		Operation: models.OpChangeUsername,
		Success:   true,
	}, nil
}

// ChangePassword replaces the acting account's password after verifying
// the current one. The new password must differ from the old.
func (s *AccountService) ChangePassword(actorID, oldPassword, newPassword string) (*models.AccountOperationResult, error) {
	if oldPassword == "" || newPassword == "" {
		return nil, fmt.Errorf("password cannot be empty: %w", errs.ErrInvalidInput)
	}
	if err := checkPasswordLength(newPassword); err != nil {
		return nil, err
	}
	account, err := s.accountRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if !s.hasher.Verify(oldPassword, account.Password) {
		return nil, fmt.Errorf("current password is incorrect: %w", errs.ErrInvalidCredentials)
	}
	if s.hasher.Verify(newPassword, account.Password) {
		return nil, fmt.Errorf("new password must differ from the old one: %w", errs.ErrInvalidPassword)
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return nil, err
	}
	account.Password = hashed
	if err := s.accountRepo.Save(account); err != nil {
		return nil, err
	}

	return &models.AccountOperationResult{
		Username:  account.Username,
		Operation: models.OpChangePassword,
		Success:   true,
	}, nil
}

func checkUsernameLength(username string) error {
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return fmt.Errorf("username must be between %d and %d characters: %w",
			minUsernameLength, maxUsernameLength, errs.ErrInvalidUsername)
	}
	return nil
}

func checkPasswordLength(password string) error {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return fmt.Errorf("password must be between %d and %d characters: %w",
			minPasswordLength, maxPasswordLength, errs.ErrInvalidPassword)
	}
	return nil
}
