package Controllers

import (
	"time"

	"LogiTrack/Models"
	"LogiTrack/Pricing"
	"LogiTrack/Store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	Data *Store.Data
}

func NewTransactionHandler(data *Store.Data) *TransactionHandler {
	return &TransactionHandler{Data: data}
}

func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	transactions, err := h.Data.Transactions.FetchAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch transactions",
		})
	}
	return c.JSON(transactions)
}

func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	transaction := new(Models.FinancialTransaction)
	if err := c.BodyParser(transaction); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(transaction); err != nil {
		return validationError(c, err)
	}

	transaction.ID = uuid.NewString()
	transaction.CreatedAt = Models.Timestamp(time.Now())

	saveErr := h.Data.Transactions.Add(c.Context(), *transaction)
	return respondSaved(c, fiber.StatusCreated, fiber.Map{"transaction": transaction}, saveErr)
}

func (h *TransactionHandler) UpdateTransaction(c *fiber.Ctx) error {
	transaction := new(Models.FinancialTransaction)
	if err := c.BodyParser(transaction); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(transaction); err != nil {
		return validationError(c, err)
	}

	saveErr := h.Data.Transactions.Update(c.Context(), *transaction)
	return respondSaved(c, fiber.StatusOK, fiber.Map{"transaction": transaction}, saveErr)
}

func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	saveErr := h.Data.Transactions.Delete(c.Context(), c.Params("id"))
	return respondSaved(c, fiber.StatusOK, fiber.Map{
		"message": "Transaction deleted",
	}, saveErr)
}

// ToggleStatus flips a ledger entry between projected and realized.
func (h *TransactionHandler) ToggleStatus(c *fiber.Ctx) error {
	transaction, found, err := h.Data.Transactions.FetchOne(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch transactions",
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Transaction not found",
		})
	}

	if transaction.Status == Models.TransactionProjected {
		transaction.Status = Models.TransactionRealized
	} else {
		transaction.Status = Models.TransactionProjected
	}

	saveErr := h.Data.Transactions.Update(c.Context(), transaction)
	return respondSaved(c, fiber.StatusOK, fiber.Map{"transaction": transaction}, saveErr)
}

// GetSummary totals the ledger, split by direction and by whether the
// money actually moved.
func (h *TransactionHandler) GetSummary(c *fiber.Ctx) error {
	transactions, err := h.Data.Transactions.FetchAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch transactions",
		})
	}

	var inflow, outflow, realizedInflow, realizedOutflow float64
	for _, t := range transactions {
		if t.Type == Models.TransactionInflow {
			inflow += t.Value
			if t.Status == Models.TransactionRealized {
				realizedInflow += t.Value
			}
		} else {
			outflow += t.Value
			if t.Status == Models.TransactionRealized {
				realizedOutflow += t.Value
			}
		}
	}

	return c.JSON(fiber.Map{
		"inflow":           Pricing.Round2(inflow),
		"outflow":          Pricing.Round2(outflow),
		"realizedInflow":   Pricing.Round2(realizedInflow),
		"realizedOutflow":  Pricing.Round2(realizedOutflow),
		"realizedBalance":  Pricing.Round2(realizedInflow - realizedOutflow),
		"projectedBalance": Pricing.Round2(inflow - outflow),
	})
}
