package handler

import (
	"go-fichas-ws/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ChipHandler struct {
	service service.ChipService
}

func NewChipHandler(s service.ChipService) *ChipHandler {
	return &ChipHandler{service: s}
}

type chipRequest struct {
	Value    int64     `json:"value"`
	Date     string    `json:"date"`
	ClientID uuid.UUID `json:"client_id"`
}

func (h *ChipHandler) List(c *fiber.Ctx) error {
	chips, err := h.service.List(getUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"data": chips})
}

func (h *ChipHandler) Create(c *fiber.Ctx) error {
	var req chipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	chip, err := h.service.Create(getUserID(c), req.Value, req.Date, req.ClientID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"data": chip})
}

func (h *ChipHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid chip ID"})
	}

	if err := h.service.Delete(id, getUserID(c)); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
