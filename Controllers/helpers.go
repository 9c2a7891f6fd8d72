package Controllers

import (
	"errors"

	"LogiTrack/Store"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// respondSaved reports a mutation back to the caller. A remote sync
// failure is a warning on a success response: the local copy is
// authoritative and the data is not lost. Anything else is a real error.
func respondSaved(c *fiber.Ctx, status int, body fiber.Map, err error) error {
	if err == nil {
		return c.Status(status).JSON(body)
	}
	var syncErr *Store.SyncError
	if errors.As(err, &syncErr) {
		body["warning"] = "Saved locally; remote sync failed and will catch up on the next edit"
		return c.Status(status).JSON(body)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to persist record",
	})
}

func validationError(c *fiber.Ctx, err error) error {
	fields := fiber.Map{}
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		for _, f := range invalid {
			fields[f.Field()] = f.Tag()
		}
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "Validation failed",
		"fields": fields,
	})
}
