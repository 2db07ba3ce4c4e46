package handler

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"go-fichas-ws/internal/balance"
	"go-fichas-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ExportHandler streams CSV files the way the spreadsheet-facing screens
// expect them: ';' delimited with a leading "sep=;" line so Excel picks the
// delimiter up.
type ExportHandler struct {
	chips  service.ChipService
	orders service.OrderService
}

func NewExportHandler(chips service.ChipService, orders service.OrderService) *ExportHandler {
	return &ExportHandler{chips: chips, orders: orders}
}

// Chips exports every chip with its client.
// GET /api/v1/chips/export
func (h *ExportHandler) Chips(c *fiber.Ctx) error {
	chips, err := h.chips.List(getUserID(c))
	if err != nil {
		return serviceError(c, err)
	}

	rows := [][]string{{"client", "value", "date"}}
	for _, chip := range chips {
		clientName := ""
		if chip.Client != nil {
			clientName = chip.Client.Name
		}
		rows = append(rows, []string{
			clientName,
			strconv.FormatInt(chip.Value, 10),
			chip.Date.Format(time.RFC3339),
		})
	}

	return sendCSV(c, "fichas", rows)
}

// Orders exports order lines, one row per line plus the order total.
// GET /api/v1/orders/export?date=YYYY-MM-DD
func (h *ExportHandler) Orders(c *fiber.Ctx) error {
	orders, err := h.orders.List(getUserID(c), c.Query("date"))
	if err != nil {
		return serviceError(c, err)
	}

	rows := [][]string{{"date", "client", "product", "quantity", "price", "order_total", "concluded"}}
	for _, o := range orders {
		total := strconv.FormatInt(balance.OrderTotal(o), 10)
		for _, line := range o.OrderProducts {
			rows = append(rows, []string{
				o.Date.Format(time.RFC3339),
				o.ClientName,
				line.ProductName,
				strconv.Itoa(line.Quantity),
				strconv.FormatInt(line.Price, 10),
				total,
				strconv.FormatBool(o.Concluded),
			})
		}
	}

	return sendCSV(c, "pedidos", rows)
}

func sendCSV(c *fiber.Ctx, name string, rows [][]string) error {
	var buf bytes.Buffer
	buf.WriteString("sep=;\n")

	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := w.WriteAll(rows); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to write CSV"})
	}

	filename := name + "_" + time.Now().Format("2006-01-02") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
