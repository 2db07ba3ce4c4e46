package handler

import (
	"go-fichas-ws/internal/model"
	"go-fichas-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	categoryID, err := parseOptionalUUID(c.Query("category_id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category_id"})
	}

	products, err := h.service.List(getUserID(c), categoryID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"data": products})
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Create(getUserID(c), &product); err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"data": product})
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.Delete(id, getUserID(c)); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
