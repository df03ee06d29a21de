package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pasar/internal/services"
)

// StoreHandler handles HTTP requests for store management.
type StoreHandler struct {
	storeService *services.StoreService
	validate     *validator.Validate
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(storeService *services.StoreService) *StoreHandler {
	return &StoreHandler{
		storeService: storeService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the store routes with the Fiber app.
func (h *StoreHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	storeRoutes := router.Group("/stores")
	storeRoutes.Post("/", authRequired, h.HandleCreateStore)
	storeRoutes.Patch("/name", authRequired, h.HandleRenameStore)
}

// CreateStoreRequest represents the request body for store creation.
type CreateStoreRequest struct {
	Name string `json:"name" validate:"required"`
}

// HandleCreateStore creates a store owned by the acting account.
func (h *StoreHandler) HandleCreateStore(c *fiber.Ctx) error {
	var req CreateStoreRequest
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

	result, err := h.storeService.CreateStore(actorID, req.Name)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// RenameStoreRequest represents the request body for a store rename.
type RenameStoreRequest struct {
	OldName string `json:"old_name" validate:"required"`
	NewName string `json:"new_name" validate:"required"`
}

// HandleRenameStore renames a store owned by the acting account.
func (h *StoreHandler) HandleRenameStore(c *fiber.Ctx) error {
	var req RenameStoreRequest
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

	result, err := h.storeService.RenameStore(actorID, req.OldName, req.NewName)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(result)
}
