package Controllers

import (
	"errors"

	"LogiTrack/Models"
	"LogiTrack/Store"

	"github.com/gofiber/fiber/v2"
)

type RateHandler struct {
	Data *Store.Data
}

func NewRateHandler(data *Store.Data) *RateHandler {
	return &RateHandler{Data: data}
}

func (h *RateHandler) GetRates(c *fiber.Ctx) error {
	rates, err := h.Data.ResolveRates(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to resolve rate table",
		})
	}
	return c.JSON(rates)
}

// UpdateRate replaces the pricing parameters for one existing category.
// Categories cannot be added or removed here; the table keeps exactly one
// entry per category.
func (h *RateHandler) UpdateRate(c *fiber.Ctx) error {
	rate := new(Models.VehicleRate)
	if err := c.BodyParser(rate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(rate); err != nil {
		return validationError(c, err)
	}

	err := h.Data.UpdateRate(c.Context(), *rate)
	if errors.Is(err, Store.ErrUnknownRateCategory) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return respondSaved(c, fiber.StatusOK, fiber.Map{"rate": rate}, err)
}
