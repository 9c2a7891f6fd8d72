package Models

// FinancialTransaction is an independent cash flow ledger entry, not tied
// to requests or drivers.
type FinancialTransaction struct {
	ID            string            `json:"id"`
	Date          string            `json:"date" validate:"required"`
	Type          TransactionType   `json:"type" validate:"required,oneof=ENTRADA SAIDA"`
	Category      string            `json:"category"`
	Description   string            `json:"description"`
	Value         float64           `json:"value" validate:"gt=0"`
	Status        TransactionStatus `json:"status" validate:"required,oneof=REALIZADO PREVISTO"`
	PaymentMethod string            `json:"paymentMethod"`
	CreatedAt     string            `json:"createdAt"`
}
