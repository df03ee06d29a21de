package models

import "github.com/shopspring/decimal"

// AccountOperation tags the outcome of an account-level operation.
type AccountOperation string

const (
	OpRegistration   AccountOperation = "REGISTRATION"
	OpLogin          AccountOperation = "LOGIN"
	OpChangeUsername AccountOperation = "CHANGE_USERNAME"
	OpChangePassword AccountOperation = "CHANGE_PASSWORD"
)

// AccountOperationResult is returned by account management operations.
type AccountOperationResult struct {
	Username  string           `json:"username"`
	Operation AccountOperation `json:"operation"`
	Success   bool             `json:"success"`
}

// StoreOperation tags the outcome of a store-level operation.
type StoreOperation string

const (
	OpCreateStore StoreOperation = "CREATE"
	OpChangeName  StoreOperation = "CHANGE_NAME"
)

// StoreOperationResult is returned by store management operations.
type StoreOperationResult struct {
	Operation StoreOperation `json:"operation"`
	OwnerName string         `json:"owner_name"`
	StoreName string         `json:"store_name"`
}

// InventoryOperation selects the direction of a stock/balance trade.
type InventoryOperation string

const (
	OpBuy  InventoryOperation = "BUY"
	OpSell InventoryOperation = "SELL"
)

// InventoryOperationResult is returned by ManageProduct on success.
type InventoryOperationResult struct {
	Operation        InventoryOperation `json:"operation"`
	RemainingBalance decimal.Decimal    `json:"remaining_balance"`
	ProductName      string             `json:"product_name"`
	Quantity         int                `json:"quantity"`
	OwnerName        string             `json:"owner_name"`
	StoreName        string             `json:"store_name"`
	Success          bool               `json:"success"`
}

// StoreProduct is the projection returned when listing a store's stock.
type StoreProduct struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}
