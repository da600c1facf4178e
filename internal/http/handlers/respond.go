package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"petshop/internal/domain"
	"petshop/internal/flatjson"
	applog "petshop/internal/log"
)

// setHeaders applies the headers every response carries, including those
// written by the error handler for requests rejected before any middleware.
func setHeaders(c *fiber.Ctx) {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	c.Set(fiber.HeaderAccessControlAllowMethods, "GET, POST, PUT, DELETE, OPTIONS")
	c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type")
}

func writeJSON(c *fiber.Ctx, status int, body string) error {
	setHeaders(c)
	return c.Status(status).SendString(body)
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return writeJSON(c, status, flatjson.NewObject().Str("error", msg).String())
}

// writeStatus answers {"status":word} with the id appended when non-zero.
func writeStatus(c *fiber.Ctx, status int, word string, id int64) error {
	o := flatjson.NewObject().Str("status", word)
	if id != 0 {
		o.Int("id", id)
	}
	return writeJSON(c, status, o.String())
}

// ErrorHandler turns handler errors into JSON responses. Unclassified errors
// become 500 carrying their message unless hide is set.
func ErrorHandler(hide bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		switch {
		case errors.Is(err, domain.ErrValidation):
			return writeError(c, fiber.StatusBadRequest,
				strings.TrimSuffix(err.Error(), ": "+domain.ErrValidation.Error()))
		case errors.Is(err, domain.ErrNotFound):
			return writeError(c, fiber.StatusNotFound, "Not found")
		case errors.Is(err, domain.ErrInsufficientStock):
			return writeError(c, fiber.StatusConflict, err.Error())
		case errors.As(err, &fe):
			if fe.Code == fiber.StatusNotFound {
				return writeError(c, fe.Code, "Not found")
			}
			return writeError(c, fe.Code, fe.Message)
		}

		applog.Error(c, "server.error", err, nil)
		msg := err.Error()
		if hide {
			msg = "internal server error"
		}
		return writeError(c, fiber.StatusInternalServerError, msg)
	}
}
