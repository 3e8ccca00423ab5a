package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"tutormock/internal/model"
)

const (
	errNotFound = "Not found"
	errInternal = "Internal server error"
)

// writeError writes an error envelope with the given status.
func writeError(c *fiber.Ctx, status int, kind, message string) error {
	return c.Status(status).JSON(model.Fail(kind, message))
}

func writeNotFound(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusNotFound, errNotFound, "Route "+c.Path()+" not found")
}

// NotFound is the terminal handler for anything the route table does not match,
// including a known path with the wrong method.
func NotFound() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	}
}

// ErrorHandler returns a Fiber global error handler that converts every error
// into the envelope shape. 404 and 405 become NotFound; other *fiber.Error
// codes are kept; anything else is a 500 carrying the error text.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
				return writeNotFound(c)
			case fiber.StatusInternalServerError:
				return writeError(c, fe.Code, errInternal, fe.Message)
			default:
				return writeError(c, fe.Code, utils.StatusMessage(fe.Code), fe.Message)
			}
		}
		return writeError(c, fiber.StatusInternalServerError, errInternal, err.Error())
	}
}
