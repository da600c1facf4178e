package handlers

import (
	"github.com/gofiber/fiber/v2"

	"petshop/internal/domain"
	"petshop/internal/flatjson"
	applog "petshop/internal/log"
	"petshop/internal/services"
)

type PetHandler struct {
	Pets *services.PetService
}

// GET /api/pets[?in_stock=true]
func (h *PetHandler) List(c *fiber.Ctx) error {
	pets, err := h.Pets.List(c.UserContext(), c.QueryBool("in_stock"))
	if err != nil {
		return err
	}
	return writeJSON(c, fiber.StatusOK, encodeAll(pets, encodePet))
}

// POST /api/pets
//
// Missing or unparsable fields fall back to zero values; nothing is rejected.
func (h *PetHandler) Create(c *fiber.Ctx) error {
	m := flatjson.Decode(c.Body())
	qty := flatjson.Int(m, "quantity")
	if _, ok := m["quantity"]; !ok {
		qty = flatjson.Int(m, "stock")
	}
	p := domain.Pet{
		Name:     m["name"],
		Species:  m["species"],
		Breed:    m["breed"],
		Age:      services.Age(flatjson.Int(m, "age")),
		Price:    flatjson.Money(m, "price"),
		Quantity: qty,
	}
	id, err := h.Pets.Create(c.UserContext(), p)
	if err != nil {
		return err
	}
	applog.Audit(c, "pet.create", map[string]any{"pet_id": id, "name": p.Name, "quantity": p.Quantity})
	return writeStatus(c, fiber.StatusCreated, "created", id)
}

// PUT /api/pets/:id
func (h *PetHandler) Update(c *fiber.Ctx, id int64) error {
	m := flatjson.Decode(c.Body())
	if err := h.Pets.Update(c.UserContext(), id, m); err != nil {
		return err
	}
	applog.Audit(c, "pet.update", map[string]any{"pet_id": id, "fields": keys(m)})
	return writeStatus(c, fiber.StatusOK, "updated", 0)
}

// DELETE /api/pets/:id
func (h *PetHandler) Delete(c *fiber.Ctx, id int64) error {
	if err := h.Pets.Delete(c.UserContext(), id); err != nil {
		return err
	}
	applog.Audit(c, "pet.delete", map[string]any{"pet_id": id})
	return writeStatus(c, fiber.StatusOK, "deleted", 0)
}

func (h *PetHandler) Resource() Resource {
	return Resource{List: h.List, Create: h.Create, Update: h.Update, Delete: h.Delete}
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
