package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pasar/internal/errs"
)

// statusForError maps a service error kind to an HTTP status.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, errs.ErrAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, errs.ErrInvalidCredentials), errors.Is(err, errs.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, errs.ErrAccessDenied):
		return fiber.StatusForbidden
	case errors.Is(err, errs.ErrInvalidInput),
		errors.Is(err, errs.ErrInvalidUsername),
		errors.Is(err, errs.ErrInvalidPassword),
		errors.Is(err, errs.ErrInsufficientBalance),
		errors.Is(err, errs.ErrExceedsCapacity):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// fail writes the error as a JSON response. Unclassified errors are
// logged and answered with a generic message.
func fail(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(status).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"message": err.Error(),
	})
}

// currentAccountID reads the acting account's id placed in the request
// locals by the auth middleware.
func currentAccountID(c *fiber.Ctx) (string, error) {
	id, ok := c.Locals("account_id").(string)
	if !ok || id == "" {
		return "", fmt.Errorf("no authenticated account: %w", errs.ErrUnauthenticated)
	}
	return id, nil
}

// validationFailed writes a field-by-field validation error response.
func validationFailed(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
