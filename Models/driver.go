package Models

// Driver is a contracted driver paid per completed request. Drivers are
// registered and edited but never hard-deleted; historical requests keep
// referencing them.
type Driver struct {
	ID          string      `json:"id"`
	Name        string      `json:"name" validate:"required"`
	CPF         string      `json:"cpf" validate:"required"`
	Address     string      `json:"address"`
	VehicleType VehicleType `json:"vehicleType" validate:"required"`
	Phone       string      `json:"phone"`
	CreatedAt   string      `json:"createdAt"`
	Plate       string      `json:"plate,omitempty"`
	Model       string      `json:"model,omitempty"`
	Color       string      `json:"color,omitempty"`
}

// Client is a billed customer. Same lifecycle shape as Driver.
type Client struct {
	ID           string `json:"id"`
	Name         string `json:"name" validate:"required"`
	CNPJ         string `json:"cnpj" validate:"required"`
	Address      string `json:"address"`
	CostCenter   string `json:"costCenter"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	PaymentDay   int    `json:"paymentDay" validate:"gte=0,lte=31"`
	CreatedAt    string `json:"createdAt"`
}
