package handler

import (
	"errors"

	"go-fichas-ws/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// getUserID reads the authenticated owner's id set by the auth middleware.
func getUserID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals("user_id").(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// parseOptionalUUID turns an optional query parameter into a filter value.
func parseOptionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// serviceError maps a service failure onto the normalized status convention.
func serviceError(c *fiber.Ctx, err error) error {
	status := 500
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrBadDate):
		status = 400
	case errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrGroupNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		status = 404
	case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrClientExists):
		status = 409
	case errors.Is(err, service.ErrInvalidCredentials):
		status = 401
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
