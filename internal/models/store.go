package models

import "gorm.io/gorm"

// Store represents a shop owned by exactly one account. Ownership never
// changes after creation; only the name can be updated.
type Store struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string  `json:"name" gorm:"uniqueIndex;type:varchar(30)" validate:"required,min=3,max=30"`
	OwnerID    string  `json:"owner_id" gorm:"index;type:varchar(36);not null"`
	Owner      Account `json:"-" gorm:"foreignKey:OwnerID"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
