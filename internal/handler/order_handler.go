package handler

import (
	"go-fichas-ws/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// List returns orders with their lines; ?date=YYYY-MM-DD narrows to one day.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.service.List(getUserID(c), c.Query("date"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"data": orders})
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in service.CreateOrderInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.Create(getUserID(c), &in)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"data": order})
}

type checkRequest struct {
	OrderID uuid.UUID `json:"order_id"`
	To      bool      `json:"to"`
}

// Check toggles an order's concluded flag.
// POST /api/v1/orders/check
func (h *OrderHandler) Check(c *fiber.Ctx) error {
	var req checkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Check(req.OrderID, getUserID(c), req.To); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	if err := h.service.Delete(id, getUserID(c)); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
