package Models

// VehicleType is the pricing category a driver or request belongs to.
type VehicleType string

const (
	VehicleMoto       VehicleType = "MOTO"
	VehicleCarro      VehicleType = "CARRO"
	VehicleUtilitario VehicleType = "UTILITARIO"
	VehicleCaminhao   VehicleType = "CAMINHAO"
)

// RequestStatus follows PENDENTE -> EM_ANDAMENTO -> CONCLUIDO. The store
// does not enforce the order; operators can set any of the three directly.
type RequestStatus string

const (
	StatusPending    RequestStatus = "PENDENTE"
	StatusInProgress RequestStatus = "EM_ANDAMENTO"
	StatusCompleted  RequestStatus = "CONCLUIDO"
)

type ActivityType string

const (
	ActivityCollect        ActivityType = "COLETAR"
	ActivityDeliver        ActivityType = "ENTREGAR"
	ActivityCollectDeliver ActivityType = "COLETAR_ENTREGAR"
	ActivityOther          ActivityType = "OUTROS"
)

type ExpenseType string

const (
	ExpenseFuel    ExpenseType = "GASOLINA"
	ExpenseAdvance ExpenseType = "VALE"
	ExpenseToll    ExpenseType = "PEDAGIO"
	ExpenseOther   ExpenseType = "OUTROS"
)

type UserRole string

const (
	RoleAdmin       UserRole = "ADMIN"
	RoleOperational UserRole = "OPERATIONAL"
	RoleClient      UserRole = "CLIENT"
)

// TransactionType marks a cash flow entry as money in or money out.
type TransactionType string

const (
	TransactionInflow  TransactionType = "ENTRADA"
	TransactionOutflow TransactionType = "SAIDA"
)

// TransactionStatus separates money that moved from money expected to move.
type TransactionStatus string

const (
	TransactionRealized  TransactionStatus = "REALIZADO"
	TransactionProjected TransactionStatus = "PREVISTO"
)

// PayeeKind tags which collection a payroll payee id belongs to.
type PayeeKind string

const (
	PayeeDriver PayeeKind = "DRIVER"
	PayeeStaff  PayeeKind = "STAFF"
)
