package Controllers

import (
	"time"

	"LogiTrack/Models"
	"LogiTrack/Pricing"
	"LogiTrack/Store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ContractHandler struct {
	Data *Store.Data
}

func NewContractHandler(data *Store.Data) *ContractHandler {
	return &ContractHandler{Data: data}
}

func (h *ContractHandler) GetContracts(c *fiber.Ctx) error {
	contracts, err := h.Data.Contracts.FetchAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch contracts",
		})
	}
	return c.JSON(contracts)
}

func (h *ContractHandler) CreateContract(c *fiber.Ctx) error {
	contract := new(Models.FixedContract)
	if err := c.BodyParser(contract); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(contract); err != nil {
		return validationError(c, err)
	}

	contract.ID = uuid.NewString()
	contract.CreatedAt = Models.Timestamp(time.Now())
	if contract.Staff == nil {
		contract.Staff = []Models.StaffExpense{}
	}
	assignStaffIDs(contract.Staff)

	saveErr := h.Data.Contracts.Add(c.Context(), *contract)
	return respondSaved(c, fiber.StatusCreated, fiber.Map{"contract": contract}, saveErr)
}

func (h *ContractHandler) UpdateContract(c *fiber.Ctx) error {
	contract := new(Models.FixedContract)
	if err := c.BodyParser(contract); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(contract); err != nil {
		return validationError(c, err)
	}
	assignStaffIDs(contract.Staff)

	saveErr := h.Data.Contracts.Update(c.Context(), *contract)
	return respondSaved(c, fiber.StatusOK, fiber.Map{"contract": contract}, saveErr)
}

// DeleteContract removes the contract and, with it, the staff list it
// owns. The staff members' expense ledgers stay behind as orphans.
func (h *ContractHandler) DeleteContract(c *fiber.Ctx) error {
	saveErr := h.Data.Contracts.Delete(c.Context(), c.Params("id"))
	return respondSaved(c, fiber.StatusOK, fiber.Map{
		"message": "Contract deleted",
	}, saveErr)
}

// assignStaffIDs gives inline staff members without an id the same
// server-assigned identity AddStaff would, so the expense ledger and
// FindStaff always match on a real id.
func assignStaffIDs(staff []Models.StaffExpense) {
	for i := range staff {
		if staff[i].ID == "" {
			staff[i].ID = uuid.NewString()
			staff[i].CreatedAt = Models.Timestamp(time.Now())
		}
	}
}

// AddStaff appends a staff member to the contract that owns it.
func (h *ContractHandler) AddStaff(c *fiber.Ctx) error {
	staff := new(Models.StaffExpense)
	if err := c.BodyParser(staff); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(staff); err != nil {
		return validationError(c, err)
	}

	contract, found, err := h.Data.Contracts.FetchOne(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch contracts",
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Contract not found",
		})
	}

	staff.ID = uuid.NewString()
	staff.CreatedAt = Models.Timestamp(time.Now())
	contract.Staff = append(contract.Staff, *staff)

	saveErr := h.Data.Contracts.Update(c.Context(), contract)
	return respondSaved(c, fiber.StatusCreated, fiber.Map{"contract": contract}, saveErr)
}

func (h *ContractHandler) UpdateStaff(c *fiber.Ctx) error {
	staff := new(Models.StaffExpense)
	if err := c.BodyParser(staff); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	staff.ID = c.Params("staffId")
	if err := validate.Struct(staff); err != nil {
		return validationError(c, err)
	}

	contract, found, err := h.Data.Contracts.FetchOne(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch contracts",
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Contract not found",
		})
	}

	replaced := false
	for i := range contract.Staff {
		if contract.Staff[i].ID == staff.ID {
			staff.CreatedAt = contract.Staff[i].CreatedAt
			contract.Staff[i] = *staff
			replaced = true
		}
	}
	if !replaced {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Staff member not found",
		})
	}

	saveErr := h.Data.Contracts.Update(c.Context(), contract)
	return respondSaved(c, fiber.StatusOK, fiber.Map{"contract": contract}, saveErr)
}

func (h *ContractHandler) DeleteStaff(c *fiber.Ctx) error {
	contract, found, err := h.Data.Contracts.FetchOne(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch contracts",
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Contract not found",
		})
	}

	staffID := c.Params("staffId")
	kept := contract.Staff[:0]
	for _, s := range contract.Staff {
		if s.ID != staffID {
			kept = append(kept, s)
		}
	}
	contract.Staff = kept

	saveErr := h.Data.Contracts.Update(c.Context(), contract)
	return respondSaved(c, fiber.StatusOK, fiber.Map{"contract": contract}, saveErr)
}

// GetSummary returns the per-contract breakdowns and the global margin
// across every contract.
func (h *ContractHandler) GetSummary(c *fiber.Ctx) error {
	contracts, err := h.Data.Contracts.FetchAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch contracts",
		})
	}

	type contractLine struct {
		ID         string                  `json:"id"`
		ClientName string                  `json:"clientName"`
		Summary    Pricing.ContractSummary `json:"summary"`
	}
	lines := make([]contractLine, 0, len(contracts))
	for _, contract := range contracts {
		lines = append(lines, contractLine{
			ID:         contract.ID,
			ClientName: contract.ClientName,
			Summary:    Pricing.SummarizeContract(contract),
		})
	}

	return c.JSON(fiber.Map{
		"contracts": lines,
		"global":    Pricing.SummarizeContracts(contracts),
	})
}
