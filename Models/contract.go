package Models

// FixedContract is a recurring monthly contract with a client. It owns its
// staff list exclusively; deleting the contract removes the staff with it.
type FixedContract struct {
	ID            string         `json:"id"`
	ClientName    string         `json:"clientName" validate:"required"`
	ContractValue float64        `json:"contractValue" validate:"gte=0"`
	InvoiceDay    int            `json:"invoiceDay" validate:"gte=1,lte=31"`
	CreatedAt     string         `json:"createdAt"`
	Staff         []StaffExpense `json:"staff"`
}

// StaffExpense is a fixed-contract staff member. It exists only nested
// inside exactly one FixedContract. Missing allowance fields count as zero.
type StaffExpense struct {
	ID                     string  `json:"id"`
	EmployeeName           string  `json:"employeeName" validate:"required"`
	Department             string  `json:"department"`
	Salary                 float64 `json:"salary" validate:"gte=0"`
	MealAllowance          float64 `json:"mealAllowance,omitempty"`
	TransportAllowance     float64 `json:"transportAllowance,omitempty"`
	HazardAllowance        float64 `json:"hazardAllowance,omitempty"`
	VehicleRentalAllowance float64 `json:"vehicleRentalAllowance,omitempty"`
	CreatedAt              string  `json:"createdAt"`
}

// FindStaff resolves a staff member by id inside the contract.
func (c FixedContract) FindStaff(id string) (StaffExpense, bool) {
	for _, s := range c.Staff {
		if s.ID == id {
			return s, true
		}
	}
	return StaffExpense{}, false
}
