package Controllers

import (
	"LogiTrack/Models"
	"LogiTrack/Store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ExpenseHandler struct {
	Data *Store.Data
}

func NewExpenseHandler(data *Store.Data) *ExpenseHandler {
	return &ExpenseHandler{Data: data}
}

// GetExpenses lists the ledger, optionally filtered to one payee with
// ?kind=DRIVER|STAFF&payee=<id>.
func (h *ExpenseHandler) GetExpenses(c *fiber.Ctx) error {
	expenses, err := h.Data.Expenses.FetchAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch expenses",
		})
	}

	payeeID := c.Query("payee")
	if payeeID == "" {
		return c.JSON(expenses)
	}
	payee := Models.PayeeRef{Kind: Models.PayeeKind(c.Query("kind", string(Models.PayeeDriver))), ID: payeeID}
	filtered := []Models.DriverExpense{}
	for _, e := range expenses {
		if e.Payee == payee {
			filtered = append(filtered, e)
		}
	}
	return c.JSON(filtered)
}

// CreateExpense records a debit against a payee. The payee is a tagged
// reference; an id pointing at a removed driver or staff member is kept as
// an orphan and resolved to "unknown" at display time.
func (h *ExpenseHandler) CreateExpense(c *fiber.Ctx) error {
	expense := new(Models.DriverExpense)
	if err := c.BodyParser(expense); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(expense); err != nil {
		return validationError(c, err)
	}

	expense.ID = uuid.NewString()

	saveErr := h.Data.Expenses.Add(c.Context(), *expense)
	return respondSaved(c, fiber.StatusCreated, fiber.Map{"expense": expense}, saveErr)
}
