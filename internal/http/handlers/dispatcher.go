package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"petshop/internal/domain"
)

// Resource binds the operations one entity type supports. A nil operation is
// routed as not found.
type Resource struct {
	List   fiber.Handler
	Create fiber.Handler
	Update func(c *fiber.Ctx, id int64) error
	Delete func(c *fiber.Ctx, id int64) error
}

// Dispatcher routes /api/<resource>[/<id>] by method and segment count.
type Dispatcher struct {
	resources map[string]Resource
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{resources: map[string]Resource{}}
}

func (d *Dispatcher) Register(name string, r Resource) {
	d.resources[name] = r
}

var errNoRoute = errors.Wrap(domain.ErrNotFound, "no route")

func (d *Dispatcher) Serve(c *fiber.Ctx) error {
	path := strings.TrimSuffix(strings.TrimPrefix(c.Path(), "/api/"), "/")
	parts := strings.Split(path, "/")
	r, ok := d.resources[parts[0]]
	if !ok {
		return errNoRoute
	}

	var h fiber.Handler
	switch len(parts) {
	case 1:
		switch c.Method() {
		case fiber.MethodGet:
			h = r.List
		case fiber.MethodPost:
			h = r.Create
		}
	case 2:
		id, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return errNoRoute
		}
		var op func(*fiber.Ctx, int64) error
		switch c.Method() {
		case fiber.MethodPut:
			op = r.Update
		case fiber.MethodDelete:
			op = r.Delete
		}
		if op != nil {
			h = func(c *fiber.Ctx) error { return op(c, id) }
		}
	}
	if h == nil {
		return errNoRoute
	}
	return h(c)
}

// CORS sets the JSON and permissive cross-origin headers on every response
// and answers preflight requests itself.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		setHeaders(c)
		if c.Method() == fiber.MethodOptions {
			c.Status(fiber.StatusNoContent)
			return nil
		}
		return c.Next()
	}
}
