package models

import "gorm.io/gorm"

// MaxStockPerProduct is the storage capacity of a single (store, product)
// inventory record.
const MaxStockPerProduct = 69

// Inventory represents the stock a store holds for one product. There is
// at most one record per (store, product) pair, enforced by the composite
// unique index.
type Inventory struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	StoreID    string  `json:"store_id" gorm:"uniqueIndex:idx_store_product;type:varchar(36);not null"`
	Store      Store   `json:"-" gorm:"foreignKey:StoreID"`
	ProductID  string  `json:"product_id" gorm:"uniqueIndex:idx_store_product;type:varchar(36);not null"`
	Product    Product `json:"-" gorm:"foreignKey:ProductID"`
	Quantity   int     `json:"quantity" validate:"gte=0,lte=69"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
