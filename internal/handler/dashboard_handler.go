package handler

import (
	"go-fichas-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// Summary returns the product rollup and totals, optionally for one day.
// GET /api/v1/dashboard/summary?date=YYYY-MM-DD
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(getUserID(c), c.Query("date"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(summary)
}
