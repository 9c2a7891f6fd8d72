package Models

// PayeeRef is a tagged reference to whoever accrues earnings and debits in
// payroll. The kind tag makes the driver/staff namespaces explicit instead
// of relying on the two id spaces never colliding.
type PayeeRef struct {
	Kind PayeeKind `json:"kind" validate:"required,oneof=DRIVER STAFF"`
	ID   string    `json:"id" validate:"required"`
}

// DriverExpense is an ad-hoc debit against a payee: fuel, advances, tolls.
// A personal ledger entry, not a contract or request cost.
type DriverExpense struct {
	ID          string      `json:"id"`
	Payee       PayeeRef    `json:"payee" validate:"required"`
	Type        ExpenseType `json:"type" validate:"required"`
	Amount      float64     `json:"amount" validate:"gt=0"`
	Date        string      `json:"date" validate:"required"`
	Description string      `json:"description,omitempty"`
}
