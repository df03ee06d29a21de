package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repositories bundles the per-entity repositories that participate in a
// single unit of work.
type Repositories struct {
	Accounts    AccountRepository
	Roles       RoleRepository
	Stores      StoreRepository
	Products    ProductRepository
	Inventories InventoryRepository
}

// Transactor runs a function against a repository bundle atomically:
// either every mutation made through the bundle is committed, or none is.
type Transactor interface {
	WithinTransaction(fn func(repos Repositories) error) error
}

// NewGormRepositories builds the repository bundle over a gorm handle,
// which may be a root connection or an open transaction.
func NewGormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Accounts:    NewGORMAccountRepository(db),
		Roles:       NewGORMRoleRepository(db),
		Stores:      NewGORMStoreRepository(db),
		Products:    NewGORMProductRepository(db),
		Inventories: NewGORMInventoryRepository(db),
	}
}

// GormTransactor implements Transactor over a gorm database transaction.
type GormTransactor struct {
	db *gorm.DB
}

// NewGormTransactor creates a new GormTransactor.
func NewGormTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

// WithinTransaction runs fn with repositories bound to one database
// transaction. A returned error rolls everything back.
func (t *GormTransactor) WithinTransaction(fn func(repos Repositories) error) error {
	return t.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGormRepositories(tx))
	})
}

// PassthroughTransactor runs the function directly against a fixed
// repository bundle, without a real transaction. Used with the in-memory
// repositories and in unit tests.
type PassthroughTransactor struct {
	Repos Repositories
}

// NewPassthroughTransactor creates a PassthroughTransactor over repos.
func NewPassthroughTransactor(repos Repositories) *PassthroughTransactor {
	return &PassthroughTransactor{Repos: repos}
}

// WithinTransaction runs fn against the fixed bundle.
func (t *PassthroughTransactor) WithinTransaction(fn func(repos Repositories) error) error {
	return fn(t.Repos)
}

// lockForUpdate adds a SELECT ... FOR UPDATE clause on dialects that
// support row locks. SQLite serializes writers on its own, so the clause
// is skipped there.
func lockForUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}
