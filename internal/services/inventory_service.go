package services

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"pasar/internal/errs"
	"pasar/internal/models"
	"pasar/internal/repositories"
)

// TradePublisher publishes an event after a committed buy or sell. A nil
// publisher disables events.
type TradePublisher interface {
	PublishTradeEvent(event map[string]interface{}) error
}

// InventoryService executes buy/sell operations against a store's stock
// and the owner's balance, and serves stock listings.
type InventoryService struct {
	repos  repositories.Repositories
	tx     repositories.Transactor
	events TradePublisher
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(repos repositories.Repositories, tx repositories.Transactor, events TradePublisher) *InventoryService {
	return &InventoryService{
		repos:  repos,
		tx:     tx,
		events: events,
	}
}

// GetAllProducts lists the stocked products of a store. A store with no
// stock records is indistinguishable from a nonexistent one at this
// layer, matching existing client expectations.
func (s *InventoryService) GetAllProducts(storeID string) ([]models.StoreProduct, error) {
	inventories, err := s.repos.Inventories.GetByStoreID(storeID)
	if err != nil {
		return nil, err
	}
	if len(inventories) == 0 {
		return nil, fmt.Errorf("store is empty or does not exist: %w", errs.ErrNotFound)
	}

	products := make([]models.StoreProduct, 0, len(inventories))
	for _, inventory := range inventories {
		products = append(products, models.StoreProduct{
			ProductID:   inventory.ProductID,
			ProductName: inventory.Product.Name,
			Price:       inventory.Product.Price,
			Quantity:    inventory.Quantity,
		})
	}
	return products, nil
}

// ManageProduct executes a BUY or SELL of count units of a product at a
// store owned by the acting account. Stock and balance change together
// inside one transaction; any validation failure leaves both untouched.
//
// Ownership and existence checks run before any quantity or balance math
// so authorization failures never leak inventory state.
func (s *InventoryService) ManageProduct(actorID, storeID, productID string, count int, operation models.InventoryOperation) (*models.InventoryOperationResult, error) {
	var result *models.InventoryOperationResult

	err := s.tx.WithinTransaction(func(repos repositories.Repositories) error {
		account, err := repos.Accounts.GetByIDForUpdate(actorID)
		if err != nil {
			return err
		}
		store, err := repos.Stores.GetByID(storeID)
		if err != nil {
			return err
		}
		if store.OwnerID != account.ID {
			return fmt.Errorf("store '%s' does not belong to the current account: %w", store.Name, errs.ErrAccessDenied)
		}
		product, err := repos.Products.GetByID(productID)
		if err != nil {
			return err
		}
		if count <= 0 {
			return fmt.Errorf("count must be greater than zero: %w", errs.ErrInvalidInput)
		}

		totalCost := product.Price.Mul(decimal.NewFromInt(int64(count)))

		inventory, err := repos.Inventories.GetOrCreate(store.ID, product.ID)
		if err != nil {
			return err
		}

		switch operation {
		case models.OpBuy:
			if inventory.Quantity+count > models.MaxStockPerProduct {
				return fmt.Errorf("storage capacity exceeded, current quantity: %d, maximum capacity: %d: %w",
					inventory.Quantity, models.MaxStockPerProduct, errs.ErrExceedsCapacity)
			}
			if account.Balance.LessThan(totalCost) {
				return fmt.Errorf("balance %s does not cover total cost %s: %w",
					account.Balance, totalCost, errs.ErrInsufficientBalance)
			}
			inventory.Quantity += count
			account.Balance = account.Balance.Sub(totalCost)
		case models.OpSell:
			if inventory.Quantity-count < 0 {
				return fmt.Errorf("not enough stock to sell, current quantity: %d: %w",
					inventory.Quantity, errs.ErrExceedsCapacity)
			}
			inventory.Quantity -= count
			account.Balance = account.Balance.Add(totalCost)
		default:
			return fmt.Errorf("unknown operation '%s': %w", operation, errs.ErrInvalidInput)
		}

		if err := repos.Accounts.Save(account); err != nil {
			return err
		}
		if err := repos.Inventories.Save(inventory); err != nil {
			return err
		}
		log.Printf("Store '%s': %s of %d x '%s' by '%s'", store.Name, operation, count, product.Name, account.Username)

		result = &models.InventoryOperationResult{
			Operation:        operation,
			RemainingBalance: account.Balance,
			ProductName:      product.Name,
			Quantity:         count,
			OwnerName:        account.Username,
			StoreName:        store.Name,
			Success:          true,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishTradeEvent(result)
	return result, nil
}

// publishTradeEvent emits the committed trade. Publish failures are
// logged and never fail the operation.
func (s *InventoryService) publishTradeEvent(result *models.InventoryOperationResult) {
	if s.events == nil {
		return
	}
	event := map[string]interface{}{
		"operation":         result.Operation,
		"store":             result.StoreName,
		"product":           result.ProductName,
		"quantity":          result.Quantity,
		"owner":             result.OwnerName,
		"remaining_balance": result.RemainingBalance.String(),
	}
	if err := s.events.PublishTradeEvent(event); err != nil {
		log.Printf("Warning: failed to publish trade event for store %s: %v", result.StoreName, err)
	}
}
