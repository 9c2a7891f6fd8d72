package Controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"LogiTrack/Models"
	"LogiTrack/Pricing"
	"LogiTrack/Store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// InvoicePrefix is the sequential invoice numbering scheme for requests.
const InvoicePrefix = "IBEC - "

type RequestHandler struct {
	Data *Store.Data
}

func NewRequestHandler(data *Store.Data) *RequestHandler {
	return &RequestHandler{Data: data}
}

func (h *RequestHandler) GetRequests(c *fiber.Ctx) error {
	requests, err := h.Data.Requests.FetchAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch requests",
		})
	}
	return c.JSON(requests)
}

// CreateRequest shapes and prices a new transport request. Fees come from
// the rate table; an unknown vehicle category is a configuration error,
// never a silent zero.
func (h *RequestHandler) CreateRequest(c *fiber.Ctx) error {
	request := new(Models.TransportRequest)
	if err := c.BodyParser(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(request); err != nil {
		return validationError(c, err)
	}

	rates, err := h.Data.ResolveRates(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to resolve rate table",
		})
	}
	fees, err := Pricing.ComputeFees(request.VehicleType, request.DistanceKm, rates)
	if err != nil {
		var unknown *Pricing.UnknownCategoryError
		if errors.As(err, &unknown) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": unknown.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute fees",
		})
	}

	existing, err := h.Data.Requests.FetchAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch requests",
		})
	}

	request.ID = uuid.NewString()
	request.CreatedAt = Models.Timestamp(time.Now())
	request.Status = Models.StatusPending
	request.DriverFee = fees.DriverFee
	request.ClientCharge = fees.ClientCharge
	if request.InvoiceNumber == "" {
		request.InvoiceNumber = NextInvoiceNumber(existing)
	}

	saveErr := h.Data.Requests.Add(c.Context(), *request)
	return respondSaved(c, fiber.StatusCreated, fiber.Map{"request": request}, saveErr)
}

// UpdateRequest edits a request in any state. Stored fees, including
// manual overrides, are preserved unless the distance or vehicle category
// changed; only then are they recomputed from the rate table.
func (h *RequestHandler) UpdateRequest(c *fiber.Ctx) error {
	request := new(Models.TransportRequest)
	if err := c.BodyParser(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(request); err != nil {
		return validationError(c, err)
	}

	previous, found, err := h.Data.Requests.FetchOne(c.Context(), request.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch requests",
		})
	}
	if found && Pricing.ShouldRecomputeFees(previous, *request) {
		rates, err := h.Data.ResolveRates(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to resolve rate table",
			})
		}
		fees, err := Pricing.ComputeFees(request.VehicleType, request.DistanceKm, rates)
		if err != nil {
			var unknown *Pricing.UnknownCategoryError
			if errors.As(err, &unknown) {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
					"error": unknown.Error(),
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to compute fees",
			})
		}
		request.DriverFee = fees.DriverFee
		request.ClientCharge = fees.ClientCharge
	}

	saveErr := h.Data.Requests.Update(c.Context(), *request)
	return respondSaved(c, fiber.StatusOK, fiber.Map{"request": request}, saveErr)
}

// UpdateStatus sets the request status directly. Monotonicity is not
// enforced; operators can move a request to any of the three states.
func (h *RequestHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var input struct {
		Status Models.RequestStatus `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	switch input.Status {
	case Models.StatusPending, Models.StatusInProgress, Models.StatusCompleted:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown request status",
		})
	}

	request, found, err := h.Data.Requests.FetchOne(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch requests",
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Request not found",
		})
	}

	request.Status = input.Status
	saveErr := h.Data.Requests.Update(c.Context(), request)
	return respondSaved(c, fiber.StatusOK, fiber.Map{"request": request}, saveErr)
}

func (h *RequestHandler) DeleteRequest(c *fiber.Ctx) error {
	saveErr := h.Data.Requests.Delete(c.Context(), c.Params("id"))
	return respondSaved(c, fiber.StatusOK, fiber.Map{
		"message": "Request deleted",
	}, saveErr)
}

// GetDelayed lists requests past their schedule and not yet completed.
// Derived at read time, never stored.
func (h *RequestHandler) GetDelayed(c *fiber.Ctx) error {
	requests, err := h.Data.Requests.FetchAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch requests",
		})
	}
	now := time.Now()
	delayed := []Models.TransportRequest{}
	for _, r := range requests {
		if r.IsDelayed(now) {
			delayed = append(delayed, r)
		}
	}
	return c.JSON(delayed)
}

// NextInvoiceNumber continues the highest "IBEC - NNN" sequence found in
// the existing requests.
func NextInvoiceNumber(requests []Models.TransportRequest) string {
	max := 0
	for _, r := range requests {
		if !strings.HasPrefix(r.InvoiceNumber, InvoicePrefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(r.InvoiceNumber, InvoicePrefix))
		if err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", InvoicePrefix, max+1)
}
