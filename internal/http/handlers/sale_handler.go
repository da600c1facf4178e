package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"petshop/internal/domain"
	"petshop/internal/flatjson"
	applog "petshop/internal/log"
	"petshop/internal/services"
)

// SaleHandler exposes the ledger. Sales are never updated or deleted, so the
// resource has no item operations.
type SaleHandler struct {
	Sales *services.SaleService
}

// GET /api/sales
func (h *SaleHandler) List(c *fiber.Ctx) error {
	rows, err := h.Sales.List(c.UserContext())
	if err != nil {
		return err
	}
	return writeJSON(c, fiber.StatusOK, encodeAll(rows, encodeSale))
}

// POST /api/sales
//
// The sale runs detached from the request context: a client that hangs up
// does not abort a transaction already in progress.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	m := flatjson.Decode(c.Body())
	in := services.SaleInput{
		PetID:      flatjson.Int(m, "pet_id"),
		CustomerID: flatjson.Int(m, "customer_id"),
		Quantity:   flatjson.Int(m, "quantity"),
		TotalPrice: flatjson.Money(m, "total_price"),
	}
	fields := map[string]any{
		"pet_id":      in.PetID,
		"customer_id": in.CustomerID,
		"quantity":    in.Quantity,
		"total_price": in.TotalPrice.StringFixed(2),
	}

	sale, err := h.Sales.Record(context.WithoutCancel(c.UserContext()), in)
	if errors.Is(err, domain.ErrInsufficientStock) {
		applog.Security(c, "sale.reject", fields)
	}
	if err != nil {
		return err
	}
	fields["sale_id"] = sale.ID
	applog.Audit(c, "sale.create", fields)
	return writeStatus(c, fiber.StatusCreated, "created", sale.ID)
}

func (h *SaleHandler) Resource() Resource {
	return Resource{List: h.List, Create: h.Create}
}
