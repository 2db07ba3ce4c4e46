package handler

import (
	"go-fichas-ws/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ClientHandler struct {
	service service.ClientService
}

func NewClientHandler(s service.ClientService) *ClientHandler {
	return &ClientHandler{service: s}
}

type clientRequest struct {
	Name    string     `json:"name"`
	GroupID *uuid.UUID `json:"group_id"`
}

// List returns clients with chips, orders and computed balances.
// Optional group_id narrows to one group.
func (h *ClientHandler) List(c *fiber.Ctx) error {
	groupID, err := parseOptionalUUID(c.Query("group_id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid group_id"})
	}

	clients, err := h.service.List(getUserID(c), groupID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"data": clients})
}

func (h *ClientHandler) Find(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	client, err := h.service.Find(id, getUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"data": client})
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var req clientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	client, err := h.service.Create(getUserID(c), req.Name, req.GroupID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"data": client})
}

func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	if err := h.service.Delete(id, getUserID(c)); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
