package handlers

import (
	"github.com/gofiber/fiber/v2"

	"petshop/internal/domain"
	"petshop/internal/flatjson"
	applog "petshop/internal/log"
	"petshop/internal/services"
)

type CustomerHandler struct {
	Customers *services.CustomerService
}

// GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	cs, err := h.Customers.List(c.UserContext())
	if err != nil {
		return err
	}
	return writeJSON(c, fiber.StatusOK, encodeAll(cs, encodeCustomer))
}

// POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	m := flatjson.Decode(c.Body())
	cust := domain.Customer{
		Name:    m["name"],
		Email:   flatjson.NullStr(m, "email"),
		Phone:   m["phone"],
		Address: flatjson.NullStr(m, "address"),
	}
	id, err := h.Customers.Create(c.UserContext(), cust)
	if err != nil {
		return err
	}
	applog.Audit(c, "customer.create", map[string]any{"customer_id": id})
	return writeStatus(c, fiber.StatusCreated, "created", id)
}

// PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx, id int64) error {
	m := flatjson.Decode(c.Body())
	if err := h.Customers.Update(c.UserContext(), id, m); err != nil {
		return err
	}
	applog.Audit(c, "customer.update", map[string]any{"customer_id": id, "fields": keys(m)})
	return writeStatus(c, fiber.StatusOK, "updated", 0)
}

// DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx, id int64) error {
	if err := h.Customers.Delete(c.UserContext(), id); err != nil {
		return err
	}
	applog.Audit(c, "customer.delete", map[string]any{"customer_id": id})
	return writeStatus(c, fiber.StatusOK, "deleted", 0)
}

func (h *CustomerHandler) Resource() Resource {
	return Resource{List: h.List, Create: h.Create, Update: h.Update, Delete: h.Delete}
}
