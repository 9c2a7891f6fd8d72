package Controllers

import (
	"time"

	"LogiTrack/Models"
	"LogiTrack/Store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Drivers and clients share the same lifecycle: registered, edited, never
// hard-deleted. Historical requests and expenses keep their references.
type DriverHandler struct {
	Data *Store.Data
}

func NewDriverHandler(data *Store.Data) *DriverHandler {
	return &DriverHandler{Data: data}
}

func (h *DriverHandler) GetDrivers(c *fiber.Ctx) error {
	drivers, err := h.Data.Drivers.FetchAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch drivers",
		})
	}
	return c.JSON(drivers)
}

func (h *DriverHandler) CreateDriver(c *fiber.Ctx) error {
	driver := new(Models.Driver)
	if err := c.BodyParser(driver); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(driver); err != nil {
		return validationError(c, err)
	}

	driver.ID = uuid.NewString()
	driver.CreatedAt = Models.Timestamp(time.Now())

	saveErr := h.Data.Drivers.Add(c.Context(), *driver)
	return respondSaved(c, fiber.StatusCreated, fiber.Map{"driver": driver}, saveErr)
}

func (h *DriverHandler) UpdateDriver(c *fiber.Ctx) error {
	driver := new(Models.Driver)
	if err := c.BodyParser(driver); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(driver); err != nil {
		return validationError(c, err)
	}

	saveErr := h.Data.Drivers.Update(c.Context(), *driver)
	return respondSaved(c, fiber.StatusOK, fiber.Map{"driver": driver}, saveErr)
}

type ClientHandler struct {
	Data *Store.Data
}

func NewClientHandler(data *Store.Data) *ClientHandler {
	return &ClientHandler{Data: data}
}

func (h *ClientHandler) GetClients(c *fiber.Ctx) error {
	clients, err := h.Data.Clients.FetchAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch clients",
		})
	}
	return c.JSON(clients)
}

func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	client := new(Models.Client)
	if err := c.BodyParser(client); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(client); err != nil {
		return validationError(c, err)
	}

	client.ID = uuid.NewString()
	client.CreatedAt = Models.Timestamp(time.Now())

	saveErr := h.Data.Clients.Add(c.Context(), *client)
	return respondSaved(c, fiber.StatusCreated, fiber.Map{"client": client}, saveErr)
}

func (h *ClientHandler) UpdateClient(c *fiber.Ctx) error {
	client := new(Models.Client)
	if err := c.BodyParser(client); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(client); err != nil {
		return validationError(c, err)
	}

	saveErr := h.Data.Clients.Update(c.Context(), *client)
	return respondSaved(c, fiber.StatusOK, fiber.Map{"client": client}, saveErr)
}
