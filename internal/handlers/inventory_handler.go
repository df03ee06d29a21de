package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"
)

// InventoryHandler handles HTTP requests for stock management and the
// product catalog.
type InventoryHandler struct {
	inventoryService *services.InventoryService
	productRepo      repositories.ProductRepository
	validate         *validator.Validate
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(inventoryService *services.InventoryService, productRepo repositories.ProductRepository) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		productRepo:      productRepo,
		validate:         validator.New(),
	}
}

// RegisterRoutes registers the inventory routes with the Fiber app.
func (h *InventoryHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Get("/products", h.HandleGetProducts)
	router.Get("/stores/:storeId/products", h.HandleGetStoreProducts)
	router.Post("/inventory/manage", authRequired, h.HandleManageProduct)
}

// HandleGetProducts lists the product catalog.
func (h *InventoryHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.productRepo.GetAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// HandleGetStoreProducts lists the stocked products of a store.
func (h *InventoryHandler) HandleGetStoreProducts(c *fiber.Ctx) error {
	storeID := c.Params("storeId")
	products, err := h.inventoryService.GetAllProducts(storeID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// ManageProductRequest represents the request body for a buy/sell operation.
type ManageProductRequest struct {
	StoreID   string                    `json:"store_id" validate:"required"`
	ProductID string                    `json:"product_id" validate:"required"`
	Count     int                       `json:"count" validate:"required"`
	Operation models.InventoryOperation `json:"operation" validate:"required"`
}

// HandleManageProduct executes a BUY or SELL for the acting store owner.
func (h *InventoryHandler) HandleManageProduct(c *fiber.Ctx) error {
	var req ManageProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}
	actorID, err := currentAccountID(c)
	if err != nil {
		return fail(c, err)
	}

	result, err := h.inventoryService.ManageProduct(actorID, req.StoreID, req.ProductID, req.Count, req.Operation)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(result)
}
