package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Role represents a named authority granted to an account.
type Role struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name       string `json:"name" gorm:"uniqueIndex;type:varchar(50)" validate:"required"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Account represents a marketplace user with a spendable balance.
type Account struct {
	ID         string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string          `json:"username" gorm:"uniqueIndex;type:varchar(20)" validate:"required,min=4,max=20"`
	Password   string          `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Balance    decimal.Decimal `json:"balance" gorm:"type:decimal(20,2);not null" validate:"omitempty"`
	Roles      []Role          `json:"roles" gorm:"many2many:account_roles"`
	Active     bool            `json:"active"`
	gorm.Model                 // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
