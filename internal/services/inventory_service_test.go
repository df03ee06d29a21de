package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pasar/internal/errs"
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

// MockInventoryRepository is a mock implementation of repositories.InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) GetByStoreID(storeID string) ([]models.Inventory, error) {
	args := m.Called(storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) GetByStoreAndProduct(storeID, productID string) (*models.Inventory, error) {
	args := m.Called(storeID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) GetOrCreate(storeID, productID string) (*models.Inventory, error) {
	args := m.Called(storeID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) Save(inventory *models.Inventory) error {
	args := m.Called(inventory)
	return args.Error(0)
}

type inventoryFixture struct {
	accounts    *MockAccountRepository
	stores      *MockStoreRepository
	products    *MockProductRepository
	inventories *MockInventoryRepository
	service     *services.InventoryService
}

func newInventoryFixture() *inventoryFixture {
	f := &inventoryFixture{
		accounts:    new(MockAccountRepository),
		stores:      new(MockStoreRepository),
		products:    new(MockProductRepository),
		inventories: new(MockInventoryRepository),
	}
	repos := repositories.Repositories{
		Accounts:    f.accounts,
		Stores:      f.stores,
		Products:    f.products,
		Inventories: f.inventories,
	}
	f.service = services.NewInventoryService(repos, repositories.NewPassthroughTransactor(repos), nil)
	return f
}

// expectHappyPath wires the lookups shared by successful operations:
// account balance 5000, a store it owns, a product priced 55 and an
// existing record with the given quantity.
func (f *inventoryFixture) expectHappyPath(quantity int) {
	account := &models.Account{ID: "acc-1", Username: "trader1", Balance: decimal.NewFromInt(5000)}
	store := &models.Store{ID: "store-1", Name: "Test Store", OwnerID: "acc-1"}
	product := &models.Product{ID: "prod-1", Name: "Keyboard", Price: decimal.NewFromInt(55)}
	inventory := &models.Inventory{ID: "inv-1", StoreID: "store-1", ProductID: "prod-1", Quantity: quantity}

	f.accounts.On("GetByIDForUpdate", "acc-1").Return(account, nil).Once()
	f.stores.On("GetByID", "store-1").Return(store, nil).Once()
	f.products.On("GetByID", "prod-1").Return(product, nil).Once()
	f.inventories.On("GetOrCreate", "store-1", "prod-1").Return(inventory, nil).Once()
}

func TestInventoryService_ManageProduct_Buy(t *testing.T) {
	f := newInventoryFixture()
	f.expectHappyPath(1)
	f.accounts.On("Save", mock.MatchedBy(func(a *models.Account) bool {
		return a.Balance.Equal(decimal.NewFromInt(4725))
	})).Return(nil).Once()
	f.inventories.On("Save", mock.MatchedBy(func(i *models.Inventory) bool {
		return i.Quantity == 6
	})).Return(nil).Once()

	result, err := f.service.ManageProduct("acc-1", "store-1", "prod-1", 5, models.OpBuy)
	assert.NoError(t, err)
	assert.Equal(t, models.OpBuy, result.Operation)
	assert.True(t, result.RemainingBalance.Equal(decimal.NewFromInt(4725)))
	assert.Equal(t, "Keyboard", result.ProductName)
	assert.Equal(t, 5, result.Quantity)
	assert.Equal(t, "trader1", result.OwnerName)
	assert.Equal(t, "Test Store", result.StoreName)
	assert.True(t, result.Success)
	f.accounts.AssertExpectations(t)
	f.inventories.AssertExpectations(t)
}

func TestInventoryService_ManageProduct_BuyExceedsCapacity(t *testing.T) {
	f := newInventoryFixture()
	f.expectHappyPath(1)

	result, err := f.service.ManageProduct("acc-1", "store-1", "prod-1", 70, models.OpBuy)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrExceedsCapacity)
	assert.Contains(t, err.Error(), "current quantity: 1")
	assert.Contains(t, err.Error(), "maximum capacity: 69")
	f.accounts.AssertNotCalled(t, "Save", mock.Anything)
	f.inventories.AssertNotCalled(t, "Save", mock.Anything)
}

func TestInventoryService_ManageProduct_BuyInsufficientBalance(t *testing.T) {
	f := newInventoryFixture()
	account := &models.Account{ID: "acc-1", Username: "trader1", Balance: decimal.NewFromInt(100)}
	store := &models.Store{ID: "store-1", Name: "Test Store", OwnerID: "acc-1"}
	product := &models.Product{ID: "prod-1", Name: "Keyboard", Price: decimal.NewFromInt(55)}
	inventory := &models.Inventory{ID: "inv-1", StoreID: "store-1", ProductID: "prod-1", Quantity: 0}
	f.accounts.On("GetByIDForUpdate", "acc-1").Return(account, nil).Once()
	f.stores.On("GetByID", "store-1").Return(store, nil).Once()
	f.products.On("GetByID", "prod-1").Return(product, nil).Once()
	f.inventories.On("GetOrCreate", "store-1", "prod-1").Return(inventory, nil).Once()

	_, err := f.service.ManageProduct("acc-1", "store-1", "prod-1", 5, models.OpBuy)
	assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
	f.accounts.AssertNotCalled(t, "Save", mock.Anything)
	f.inventories.AssertNotCalled(t, "Save", mock.Anything)
}

func TestInventoryService_ManageProduct_Sell(t *testing.T) {
	f := newInventoryFixture()
	f.expectHappyPath(6)
	f.accounts.On("Save", mock.MatchedBy(func(a *models.Account) bool {
		return a.Balance.Equal(decimal.NewFromInt(5275))
	})).Return(nil).Once()
	f.inventories.On("Save", mock.MatchedBy(func(i *models.Inventory) bool {
		return i.Quantity == 1
	})).Return(nil).Once()

	result, err := f.service.ManageProduct("acc-1", "store-1", "prod-1", 5, models.OpSell)
	assert.NoError(t, err)
	assert.Equal(t, models.OpSell, result.Operation)
	assert.True(t, result.RemainingBalance.Equal(decimal.NewFromInt(5275)))
	f.accounts.AssertExpectations(t)
	f.inventories.AssertExpectations(t)
}

func TestInventoryService_ManageProduct_SellInsufficientStock(t *testing.T) {
	f := newInventoryFixture()
	f.expectHappyPath(1)

	_, err := f.service.ManageProduct("acc-1", "store-1", "prod-1", 2, models.OpSell)
	assert.ErrorIs(t, err, errs.ErrExceedsCapacity)
	assert.Contains(t, err.Error(), "current quantity: 1")
	f.accounts.AssertNotCalled(t, "Save", mock.Anything)
	f.inventories.AssertNotCalled(t, "Save", mock.Anything)
}

func TestInventoryService_ManageProduct_LazyCreate(t *testing.T) {
	f := newInventoryFixture()
	f.expectHappyPath(0)
	f.accounts.On("Save", mock.Anything).Return(nil).Once()
	f.inventories.On("Save", mock.MatchedBy(func(i *models.Inventory) bool {
		return i.Quantity == 3
	})).Return(nil).Once()

	result, err := f.service.ManageProduct("acc-1", "store-1", "prod-1", 3, models.OpBuy)
	assert.NoError(t, err)
	assert.True(t, result.RemainingBalance.Equal(decimal.NewFromInt(4835)))
	f.inventories.AssertExpectations(t)
}

func TestInventoryService_ManageProduct_CountNotPositive(t *testing.T) {
	for _, count := range []int{0, -3} {
		for _, op := range []models.InventoryOperation{models.OpBuy, models.OpSell} {
			f := newInventoryFixture()
			account := &models.Account{ID: "acc-1", Balance: decimal.NewFromInt(5000)}
			store := &models.Store{ID: "store-1", Name: "Test Store", OwnerID: "acc-1"}
			product := &models.Product{ID: "prod-1", Name: "Keyboard", Price: decimal.NewFromInt(55)}
			f.accounts.On("GetByIDForUpdate", "acc-1").Return(account, nil).Once()
			f.stores.On("GetByID", "store-1").Return(store, nil).Once()
			f.products.On("GetByID", "prod-1").Return(product, nil).Once()

			_, err := f.service.ManageProduct("acc-1", "store-1", "prod-1", count, op)
			assert.ErrorIs(t, err, errs.ErrInvalidInput)
			f.inventories.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
		}
	}
}

func TestInventoryService_ManageProduct_UnknownOperation(t *testing.T) {
	f := newInventoryFixture()
	f.expectHappyPath(1)

	_, err := f.service.ManageProduct("acc-1", "store-1", "prod-1", 1, models.InventoryOperation("GIFT"))
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
	assert.Contains(t, err.Error(), "unknown operation")
	f.accounts.AssertNotCalled(t, "Save", mock.Anything)
	f.inventories.AssertNotCalled(t, "Save", mock.Anything)
}

func TestInventoryService_ManageProduct_AccessDenied(t *testing.T) {
	f := newInventoryFixture()
	account := &models.Account{ID: "acc-1", Username: "trader1", Balance: decimal.NewFromInt(5000)}
	store := &models.Store{ID: "store-1", Name: "Test Store", OwnerID: "acc-2"}
	f.accounts.On("GetByIDForUpdate", "acc-1").Return(account, nil).Once()
	f.stores.On("GetByID", "store-1").Return(store, nil).Once()

	_, err := f.service.ManageProduct("acc-1", "store-1", "prod-1", 1, models.OpBuy)
	assert.ErrorIs(t, err, errs.ErrAccessDenied)
	f.products.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestInventoryService_ManageProduct_NotFound(t *testing.T) {
	t.Run("user", func(t *testing.T) {
		f := newInventoryFixture()
		f.accounts.On("GetByIDForUpdate", "acc-1").Return(nil, errs.ErrNotFound).Once()
		_, err := f.service.ManageProduct("acc-1", "store-1", "prod-1", 1, models.OpBuy)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("store", func(t *testing.T) {
		f := newInventoryFixture()
		account := &models.Account{ID: "acc-1", Balance: decimal.NewFromInt(5000)}
		f.accounts.On("GetByIDForUpdate", "acc-1").Return(account, nil).Once()
		f.stores.On("GetByID", "store-1").Return(nil, errs.ErrNotFound).Once()
		_, err := f.service.ManageProduct("acc-1", "store-1", "prod-1", 1, models.OpBuy)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("product", func(t *testing.T) {
		f := newInventoryFixture()
		account := &models.Account{ID: "acc-1", Balance: decimal.NewFromInt(5000)}
		store := &models.Store{ID: "store-1", OwnerID: "acc-1"}
		f.accounts.On("GetByIDForUpdate", "acc-1").Return(account, nil).Once()
		f.stores.On("GetByID", "store-1").Return(store, nil).Once()
		f.products.On("GetByID", "prod-1").Return(nil, errs.ErrNotFound).Once()
		_, err := f.service.ManageProduct("acc-1", "store-1", "prod-1", 1, models.OpBuy)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestInventoryService_GetAllProducts(t *testing.T) {
	f := newInventoryFixture()

	inventories := []models.Inventory{
		{
			ID: "inv-1", StoreID: "store-1", ProductID: "prod-1", Quantity: 6,
			Product: models.Product{ID: "prod-1", Name: "Keyboard", Price: decimal.NewFromInt(55)},
		},
		{
			ID: "inv-2", StoreID: "store-1", ProductID: "prod-2", Quantity: 2,
			Product: models.Product{ID: "prod-2", Name: "Mouse", Price: decimal.NewFromInt(25)},
		},
	}
	f.inventories.On("GetByStoreID", "store-1").Return(inventories, nil).Once()

	products, err := f.service.GetAllProducts("store-1")
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "Keyboard", products[0].ProductName)
	assert.Equal(t, 6, products[0].Quantity)
	assert.True(t, products[0].Price.Equal(decimal.NewFromInt(55)))
}

func TestInventoryService_GetAllProducts_Empty(t *testing.T) {
	f := newInventoryFixture()
	f.inventories.On("GetByStoreID", "store-9").Return([]models.Inventory{}, nil).Once()

	products, err := f.service.GetAllProducts("store-9")
	assert.Nil(t, products)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
