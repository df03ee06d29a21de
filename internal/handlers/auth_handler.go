package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pasar/internal/auth"
	"pasar/internal/repositories"
	"pasar/internal/services"
)

// AuthHandler handles HTTP requests for registration, login and
// credential changes.
type AuthHandler struct {
	accountService *services.AccountService
	accountRepo    repositories.AccountRepository
	tokens         *auth.TokenService
	validate       *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(accountService *services.AccountService, accountRepo repositories.AccountRepository, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{
		accountService: accountService,
		accountRepo:    accountRepo,
		tokens:         tokens,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the auth routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/change-username", authRequired, h.HandleChangeUsername)
	authRoutes.Post("/change-password", authRequired, h.HandleChangePassword)
}

// CredentialsRequest represents the request body for register and login.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleRegister handles new account registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	result, err := h.accountService.Register(req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// HandleLogin handles login and issues a JWT token on success.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	result, err := h.accountService.Login(req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}

	account, err := h.accountRepo.GetByUsername(req.Username)
	if err != nil {
		return fail(c, err)
	}
	token, err := h.tokens.Generate(account.ID, account.Username)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"result": result,
		"token":  token,
	})
}

// ChangeUsernameRequest represents the request body for a username change.
type ChangeUsernameRequest struct {
	OldName string `json:"old_name" validate:"required"`
	NewName string `json:"new_name" validate:"required"`
}

// HandleChangeUsername renames the acting account.
func (h *AuthHandler) HandleChangeUsername(c *fiber.Ctx) error {
	var req ChangeUsernameRequest
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

	result, err := h.accountService.ChangeUsername(actorID, req.OldName, req.NewName)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(result)
}

// ChangePasswordRequest represents the request body for a password change.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// HandleChangePassword replaces the acting account's password.
func (h *AuthHandler) HandleChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
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

	result, err := h.accountService.ChangePassword(actorID, req.OldPassword, req.NewPassword)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(result)
}
